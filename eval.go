// eval.go
//
// Benchmark the baseline agents over many games and print a report per
// agent.

package main

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordler/internal/agent"
	"github.com/robalobadob/wordler/internal/eval"
)

type evalOpts struct {
	agents  []string
	games   int
	workers int
	seed    uint64
	format  string
	detail  bool
}

func newEvalCmd(a *app) *cobra.Command {
	var o evalOpts
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate guessing agents over many games",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runEval(cmd, o)
		},
	}
	f := cmd.Flags()
	f.StringSliceVar(&o.agents, "agent", agent.Names(), "agents to evaluate")
	f.IntVar(&o.games, "games", 0, "games per agent; overrides EVAL_GAMES")
	f.IntVar(&o.workers, "workers", 0, "parallel games; overrides EVAL_WORKERS")
	f.Uint64Var(&o.seed, "seed", 0, "seed for targets and agents; overrides SEED (0 = random)")
	f.StringVar(&o.format, "format", "text", "report format: text or yaml")
	f.BoolVar(&o.detail, "detail", false, "include every game in yaml reports")
	return cmd
}

func (a *app) runEval(cmd *cobra.Command, o evalOpts) error {
	cfg := eval.Config{
		Games:       a.cfg.EvalGames,
		Workers:     a.cfg.EvalWorkers,
		MaxAttempts: a.cfg.MaxAttempts,
		Seed:        a.cfg.Seed,
	}
	if o.games > 0 {
		cfg.Games = o.games
	}
	if o.workers > 0 {
		cfg.Workers = o.workers
	}
	if o.seed != 0 {
		cfg.Seed = o.seed
	}
	format := strings.ToLower(o.format)
	if format != "text" && format != "yaml" {
		return fmt.Errorf("unknown format %q (want text or yaml)", o.format)
	}
	for _, name := range o.agents {
		if _, err := agent.New(name, a.dict, nil); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	for _, name := range o.agents {
		newAgent := func(rng *rand.Rand) agent.Agent {
			ag, _ := agent.New(name, a.dict, rng)
			return ag
		}
		rep, err := eval.Run(cmd.Context(), a.dict, agentTitle(name), newAgent, cfg)
		if err != nil {
			return fmt.Errorf("evaluate %s: %w", name, err)
		}
		if format == "yaml" {
			if !o.detail {
				rep.Games = nil
			}
			if err := rep.WriteYAML(out); err != nil {
				return err
			}
			continue
		}
		if err := rep.WriteText(out); err != nil {
			return err
		}
	}
	return nil
}

// agentTitle turns "frequency" into "Frequency Agent".
func agentTitle(name string) string {
	if name == "" {
		return "Agent"
	}
	return strings.ToUpper(name[:1]) + name[1:] + " Agent"
}
