// play.go
//
// Interactive game in the terminal. A human types guesses, or an agent
// plays and the moves are printed. The board is redrawn after every guess.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordler/assets"
	"github.com/robalobadob/wordler/internal/agent"
	"github.com/robalobadob/wordler/internal/daily"
	"github.com/robalobadob/wordler/internal/game"
	"github.com/robalobadob/wordler/internal/render"
)

type playOpts struct {
	target    string
	daily     bool
	agentName string
	emoji     bool
	rules     bool
}

func newPlayCmd(a *app) *cobra.Command {
	var o playOpts
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game yourself, or watch an agent play one",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runPlay(cmd, o)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.target, "target", "", "fixed target word (default: random)")
	f.BoolVar(&o.daily, "daily", false, "play the word of the day")
	f.StringVar(&o.agentName, "agent", "", fmt.Sprintf("let an agent play (%s)", strings.Join(agent.Names(), ", ")))
	f.BoolVar(&o.emoji, "emoji", false, "draw rows with emoji squares instead of coloured tiles")
	f.BoolVar(&o.rules, "rules", false, "print the rules first")
	cmd.MarkFlagsMutuallyExclusive("target", "daily")
	return cmd
}

func (a *app) runPlay(cmd *cobra.Command, o playOpts) error {
	out := cmd.OutOrStdout()

	target := o.target
	if o.daily {
		w, err := daily.Target(a.dict, time.Now(), a.cfg.DailySalt)
		if err != nil {
			return err
		}
		target = string(w)
	}

	var ag agent.Agent
	if o.agentName != "" {
		var err error
		if ag, err = agent.New(o.agentName, a.dict, nil); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, render.Styles.Box.Render(render.Styles.Title.Render("Welcome to Wordler!")))
	if o.rules {
		if err := printRules(out); err != nil {
			return err
		}
	}

	mode := render.Tiles
	if o.emoji {
		mode = render.Emoji
	}
	_, err := playGame(cmd.InOrStdin(), out, a.newSession(), ag, target, mode)
	return err
}

func printRules(out io.Writer) error {
	lines, err := assets.RulesLines()
	if err != nil {
		return err
	}
	for i, l := range lines {
		if i == 0 {
			fmt.Fprintln(out, render.Styles.Bold.Render(l))
			continue
		}
		fmt.Fprintln(out, l)
	}
	fmt.Fprintln(out)
	return nil
}

// playGame runs one game on s. With a nil agent, guesses are read from in,
// one per line; end of input abandons the game.
func playGame(in io.Reader, out io.Writer, s *game.Session, ag agent.Agent, target string, mode render.Mode) (game.Info, error) {
	st, err := s.Reset(target)
	if err != nil {
		return game.Info{}, err
	}
	sc := bufio.NewScanner(in)
	fmt.Fprintln(out, "Enter your first guess:")

	for {
		var guess string
		if ag != nil {
			guess = ag.ChooseWord(st)
			fmt.Fprintf(out, "%s guesses %s\n", ag.Name(), strings.ToUpper(guess))
		} else {
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return game.Info{}, err
				}
				fmt.Fprintln(out, render.Styles.Muted.Render("Game abandoned."))
				return game.Info{}, nil
			}
			guess = sc.Text()
		}

		next, done, info, err := s.Step(guess)
		switch {
		case errors.Is(err, game.ErrInvalidGuess):
			fmt.Fprintln(out, render.Styles.Error.Render("Invalid guess; please enter a five-letter word from the word list."))
			if ag != nil {
				// Agents only propose dictionary words; anything else would loop forever.
				return info, err
			}
			continue
		case err != nil:
			return info, err
		}
		st = next

		fmt.Fprint(out, render.Board(st, mode))
		if !done {
			continue
		}
		if info.Solved {
			fmt.Fprintln(out, render.Styles.Success.Render(fmt.Sprintf("Congrats! You solved the Wordle in %d.", info.AttemptsUsed)))
		} else {
			fmt.Fprintln(out, render.Styles.Error.Render(fmt.Sprintf("Failed to solve; the answer was %s.", strings.ToUpper(string(info.Target)))))
		}
		return info, nil
	}
}
