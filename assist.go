// assist.go
//
// Solver helper for games played elsewhere: enter each guess with the
// colours it received and get the words that are still possible.
//
// Input lines:
//   <guess> <pattern>   e.g. "crane bgybb" (g/+ green, y/~ yellow, b/x/-/. gray)
//   reset               start over with the full word list
//   quit                leave

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordler/internal/agent"
	"github.com/robalobadob/wordler/internal/game"
	"github.com/robalobadob/wordler/internal/render"
)

func newAssistCmd(a *app) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "assist",
		Short: "Narrow down candidates from guesses and colour patterns",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return assist(cmd.InOrStdin(), cmd.OutOrStdout(), a.dict, top)
		},
	}
	cmd.Flags().IntVar(&top, "top", 10, "how many candidates to list, most frequent first")
	return cmd
}

func assist(in io.Reader, out io.Writer, dict *game.Dictionary, top int) error {
	cands := game.NewCandidateSet(dict)
	fmt.Fprintf(out, "%d words. Enter \"<guess> <pattern>\", \"reset\" or \"quit\".\n", cands.Len())

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		switch {
		case len(fields) == 0:
			continue
		case len(fields) == 1 && fields[0] == "quit":
			return nil
		case len(fields) == 1 && fields[0] == "reset":
			cands = game.NewCandidateSet(dict)
			fmt.Fprintf(out, "%d words.\n", cands.Len())
			continue
		case len(fields) != 2:
			fmt.Fprintln(out, render.Styles.Error.Render("want: <guess> <pattern>"))
			continue
		}

		guess, err := game.ParseWord(fields[0])
		if err != nil {
			fmt.Fprintln(out, render.Styles.Error.Render(err.Error()))
			continue
		}
		fb, err := game.ParseFeedback(fields[1])
		if err != nil {
			fmt.Fprintln(out, render.Styles.Error.Render(err.Error()))
			continue
		}

		cands = cands.Filter(guess, fb)
		fmt.Fprintln(out, render.Row(guess, fb, render.Tiles))
		if cands.Len() == 0 {
			fmt.Fprintln(out, render.Styles.Warning.Render("No words left; check the pattern or type reset."))
			continue
		}
		ranked := agent.Ranked(dict, cands.Words())
		if top > 0 && len(ranked) > top {
			ranked = ranked[:top]
		}
		list := make([]string, len(ranked))
		for i, w := range ranked {
			list[i] = string(w)
		}
		fmt.Fprintf(out, "%d left: %s\n", cands.Len(), strings.Join(list, " "))
	}
	return sc.Err()
}
