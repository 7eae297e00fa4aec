// internal/eval/eval.go
//
// Batch evaluation of guessing agents.
// Responsibilities:
//   - Play N games with one agent and aggregate the outcomes into a Report.
//   - Run games on a pool of workers; each worker owns its Session, and
//     every game gets its own agent, so no mutable state is shared.
//   - Stop agents that keep submitting invalid guesses (invalid guesses do
//     not consume attempts, so such an agent would never finish).
//
// Given a seed, targets and agent randomness are derived per game index, so
// a run is reproducible regardless of worker count or scheduling.

package eval

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordler/internal/agent"
	"github.com/robalobadob/wordler/internal/game"
)

// DefaultMaxInvalid bounds the invalid guesses tolerated in one game.
const DefaultMaxInvalid = 20

// Factory builds the agent for one game. rng is seeded per game.
type Factory func(rng *rand.Rand) agent.Agent

// Config controls a run. Zero values pick defaults.
type Config struct {
	Games       int
	Workers     int
	MaxAttempts int
	MaxInvalid  int
	Seed        uint64      // 0 picks a random seed (reported back)
	Targets     []game.Word // optional fixed targets, cycled
}

// GameResult is the outcome of a single game.
type GameResult struct {
	Target   game.Word `yaml:"target"`
	Solved   bool      `yaml:"solved"`
	Attempts int       `yaml:"attempts"`
	Invalid  int       `yaml:"invalid_guesses"`
	Stalled  bool      `yaml:"stalled,omitempty"`
}

// Play runs one game on s against target until it ends. An agent that
// submits more than maxInvalid invalid guesses is stopped and the game
// counts as lost.
func Play(s *game.Session, a agent.Agent, target string, maxInvalid int) (GameResult, error) {
	st, err := s.Reset(target)
	if err != nil {
		return GameResult{}, err
	}
	res := GameResult{}
	for {
		guess := a.ChooseWord(st)
		next, done, info, err := s.Step(guess)
		if errors.Is(err, game.ErrInvalidGuess) {
			res.Invalid++
			if res.Invalid > maxInvalid {
				res.Stalled = true
				res.Attempts = s.MaxAttempts()
				res.Target = game.Word(target)
				log.Warn().Str("agent", a.Name()).Str("guess", guess).Int("invalid", res.Invalid).Msg("agent stalled")
				return res, nil
			}
			continue
		}
		if err != nil {
			return res, err
		}
		st = next
		if done {
			res.Solved = info.Solved
			res.Attempts = info.AttemptsUsed
			res.Target = info.Target
			return res, nil
		}
	}
}

// Run plays cfg.Games games with agents from newAgent and aggregates them.
func Run(ctx context.Context, dict *game.Dictionary, name string, newAgent Factory, cfg Config) (*Report, error) {
	if dict.Len() == 0 {
		return nil, game.ErrEmptyDictionary
	}
	if cfg.Games <= 0 {
		return nil, fmt.Errorf("eval: games must be positive, got %d", cfg.Games)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = game.DefaultMaxAttempts
	}
	if cfg.MaxInvalid <= 0 {
		cfg.MaxInvalid = DefaultMaxInvalid
	}
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64() | 1
	}

	runID := uuid.NewString()
	logger := log.With().Str("run", runID).Str("agent", name).Logger()
	logger.Info().Int("games", cfg.Games).Int("workers", cfg.Workers).Uint64("seed", cfg.Seed).Msg("evaluation started")
	start := time.Now()

	targets := make([]game.Word, cfg.Games)
	pick := rand.New(rand.NewPCG(cfg.Seed, 0))
	for i := range targets {
		if len(cfg.Targets) > 0 {
			targets[i] = cfg.Targets[i%len(cfg.Targets)]
		} else {
			targets[i] = dict.At(pick.IntN(dict.Len()))
		}
	}

	results := make([]GameResult, cfg.Games)
	jobs := make(chan int)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for i := range targets {
			select {
			case jobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < cfg.Workers; w++ {
		g.Go(func() error {
			s := game.NewSession(dict, game.WithMaxAttempts(cfg.MaxAttempts))
			for i := range jobs {
				a := newAgent(rand.New(rand.NewPCG(cfg.Seed, uint64(i)+1)))
				res, err := Play(s, a, string(targets[i]), cfg.MaxInvalid)
				if err != nil {
					return fmt.Errorf("game %d (%s): %w", i, targets[i], err)
				}
				results[i] = res
				logger.Debug().Int("game", i).Str("target", string(res.Target)).Bool("solved", res.Solved).Int("attempts", res.Attempts).Msg("game finished")
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	rep := Aggregate(name, cfg.MaxAttempts, results)
	rep.RunID = runID
	rep.Seed = cfg.Seed
	rep.Games = results
	logger.Info().
		Dur("elapsed", time.Since(start)).
		Float64("winRate", rep.WinRate).
		Float64("avgGuesses", rep.AvgGuesses).
		Msg("evaluation finished")
	return rep, nil
}
