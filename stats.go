package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordler/internal/agent"
	"github.com/robalobadob/wordler/internal/render"
)

// newStatsCmd prints the size of the loaded dictionary and its most frequent words.
func newStatsCmd(a *app) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show dictionary statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			source := a.cfg.WordsFile
			if source == "" {
				source = "embedded"
			}
			fmt.Fprintf(out, "%s %d\n", render.Styles.Bold.Render("Words:"), a.dict.Len())
			fmt.Fprintf(out, "%s %s\n", render.Styles.Bold.Render("Source:"), source)
			ranked := agent.Ranked(a.dict, a.dict.Words())
			if top > 0 && len(ranked) > top {
				ranked = ranked[:top]
			}
			for i, w := range ranked {
				fmt.Fprintf(out, "%3d. %s %d\n", i+1, w, a.dict.Frequency(w))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&top, "top", 10, "how many of the most frequent words to list")
	return cmd
}
