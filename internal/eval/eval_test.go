package eval

import (
	"bytes"
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/wordler/internal/agent"
	"github.com/robalobadob/wordler/internal/game"
	"github.com/robalobadob/wordler/internal/words"
)

// fixed always submits the same guess.
type fixed string

func (f fixed) Name() string                { return "fixed" }
func (f fixed) ChooseWord(game.State) string { return string(f) }

func TestPlayStopsStalledAgent(t *testing.T) {
	d, err := words.Default()
	require.NoError(t, err)
	s := game.NewSession(d)
	res, err := Play(s, fixed("zz"), "creed", 3)
	require.NoError(t, err)
	assert.True(t, res.Stalled)
	assert.False(t, res.Solved)
	assert.Equal(t, 4, res.Invalid)
	assert.Equal(t, game.DefaultMaxAttempts, res.Attempts)
}

func TestPlayRepeatedWrongGuessLoses(t *testing.T) {
	d, err := words.Default()
	require.NoError(t, err)
	res, err := Play(game.NewSession(d), fixed("about"), "creed", 3)
	require.NoError(t, err)
	assert.False(t, res.Solved)
	assert.False(t, res.Stalled)
	assert.Equal(t, 6, res.Attempts)
	assert.Equal(t, game.Word("creed"), res.Target)
}

func TestAggregate(t *testing.T) {
	rep := Aggregate("x", 6, []GameResult{
		{Solved: true, Attempts: 2},
		{Solved: true, Attempts: 4},
		{Solved: false, Attempts: 6},
		{Stalled: true, Attempts: 6},
	})
	assert.Equal(t, 4, rep.GamesPlayed)
	assert.Equal(t, 2, rep.GamesWon)
	assert.Equal(t, 2, rep.Failed)
	assert.Equal(t, 1, rep.Stalled)
	assert.Equal(t, []int{0, 1, 0, 1, 0, 0}, rep.Distribution)
	assert.Equal(t, 18, rep.TotalGuesses)
	assert.InDelta(t, 0.5, rep.WinRate, 1e-9)
	assert.InDelta(t, 4.5, rep.AvgGuesses, 1e-9)
	assert.InDelta(t, 3.0, rep.AvgGuessesWhenWon, 1e-9)
}

func TestRunFrequencyAgent(t *testing.T) {
	d, err := words.Default()
	require.NoError(t, err)
	newAgent := func(*rand.Rand) agent.Agent { return agent.NewFrequency(d) }

	rep, err := Run(context.Background(), d, "frequency", newAgent, Config{Games: 40, Workers: 4, Seed: 42})
	require.NoError(t, err)
	assert.Equal(t, 40, rep.GamesPlayed)
	assert.Equal(t, rep.GamesPlayed, rep.GamesWon+rep.Failed)
	assert.Equal(t, uint64(42), rep.Seed)
	assert.NotEmpty(t, rep.RunID)
	sum := 0
	for _, n := range rep.Distribution {
		sum += n
	}
	assert.Equal(t, rep.GamesWon, sum)
}

func TestRunIsReproducibleAcrossWorkerCounts(t *testing.T) {
	d, err := words.Default()
	require.NoError(t, err)
	newAgent := func(rng *rand.Rand) agent.Agent { return agent.NewRandom(d, rng) }

	one, err := Run(context.Background(), d, "random", newAgent, Config{Games: 30, Workers: 1, Seed: 7})
	require.NoError(t, err)
	many, err := Run(context.Background(), d, "random", newAgent, Config{Games: 30, Workers: 5, Seed: 7})
	require.NoError(t, err)
	assert.Equal(t, one.Distribution, many.Distribution)
	assert.Equal(t, one.TotalGuesses, many.TotalGuesses)
}

func TestRunFixedTargets(t *testing.T) {
	d, err := words.Default()
	require.NoError(t, err)
	newAgent := func(*rand.Rand) agent.Agent { return fixed("creed") }

	rep, err := Run(context.Background(), d, "fixed", newAgent, Config{Games: 3, Targets: []game.Word{"creed"}})
	require.NoError(t, err)
	assert.Equal(t, 3, rep.GamesWon)
	assert.Equal(t, 3, rep.Distribution[0])
	assert.InDelta(t, 1.0, rep.AvgGuesses, 1e-9)
}

func TestRunErrors(t *testing.T) {
	d, err := words.Default()
	require.NoError(t, err)
	newAgent := func(*rand.Rand) agent.Agent { return fixed("creed") }

	_, err = Run(context.Background(), game.NewDictionary(nil), "x", newAgent, Config{Games: 1})
	assert.ErrorIs(t, err, game.ErrEmptyDictionary)

	_, err = Run(context.Background(), d, "x", newAgent, Config{})
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, d, "x", newAgent, Config{Games: 1000, Workers: 2})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReportWriters(t *testing.T) {
	rep := Aggregate("Frequency Agent", 6, []GameResult{{Solved: true, Attempts: 3}, {Attempts: 6}})

	var txt bytes.Buffer
	require.NoError(t, rep.WriteText(&txt))
	out := txt.String()
	assert.Contains(t, out, "Frequency Agent Results")
	assert.Contains(t, out, "Win rate: 50.0%")
	assert.Contains(t, out, "Average guesses (all games): 4.50")
	assert.Contains(t, out, "  X:   1")

	var y bytes.Buffer
	require.NoError(t, rep.WriteYAML(&y))
	var back Report
	require.NoError(t, yaml.Unmarshal(y.Bytes(), &back))
	assert.Equal(t, rep.GamesWon, back.GamesWon)
	assert.Equal(t, rep.Distribution, back.Distribution)
}
