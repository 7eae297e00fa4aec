package eval

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/robalobadob/wordler/internal/render"
)

// Report aggregates the results of one evaluation run.
//
// Failed games count as MaxAttempts guesses in TotalGuesses and AvgGuesses;
// AvgGuessesWhenWon only covers solved games.
type Report struct {
	RunID             string       `yaml:"run_id,omitempty"`
	Agent             string       `yaml:"agent"`
	Seed              uint64       `yaml:"seed,omitempty"`
	MaxAttempts       int          `yaml:"max_attempts"`
	GamesPlayed       int          `yaml:"games_played"`
	GamesWon          int          `yaml:"games_won"`
	TotalGuesses      int          `yaml:"total_guesses"`
	Distribution      []int        `yaml:"guess_distribution"` // [i] = games won in i+1 guesses
	Failed            int          `yaml:"failed"`
	Stalled           int          `yaml:"stalled,omitempty"`
	WinRate           float64      `yaml:"win_rate"`
	AvgGuesses        float64      `yaml:"avg_guesses"`
	AvgGuessesWhenWon float64      `yaml:"avg_guesses_when_won,omitempty"`
	Games             []GameResult `yaml:"games,omitempty"`
}

// Aggregate builds a Report from per-game results.
func Aggregate(name string, maxAttempts int, results []GameResult) *Report {
	rep := &Report{
		Agent:        name,
		MaxAttempts:  maxAttempts,
		GamesPlayed:  len(results),
		Distribution: make([]int, maxAttempts),
	}
	wonGuesses := 0
	for _, r := range results {
		if r.Stalled {
			rep.Stalled++
		}
		if r.Solved && r.Attempts >= 1 && r.Attempts <= maxAttempts {
			rep.GamesWon++
			rep.TotalGuesses += r.Attempts
			wonGuesses += r.Attempts
			rep.Distribution[r.Attempts-1]++
			continue
		}
		rep.Failed++
		rep.TotalGuesses += maxAttempts
	}
	if rep.GamesPlayed > 0 {
		rep.WinRate = float64(rep.GamesWon) / float64(rep.GamesPlayed)
		rep.AvgGuesses = float64(rep.TotalGuesses) / float64(rep.GamesPlayed)
	}
	if rep.GamesWon > 0 {
		rep.AvgGuessesWhenWon = float64(wonGuesses) / float64(rep.GamesWon)
	}
	return rep
}

// barWidth is the width of a bar for a bucket holding every game.
const barWidth = 50

// WriteText prints the report with a bar per distribution bucket.
func (r *Report) WriteText(w io.Writer) error {
	var sb strings.Builder
	rule := strings.Repeat("=", barWidth)
	fmt.Fprintf(&sb, "\n%s\n%s\n%s\n", rule, render.Styles.Title.Render(r.Agent+" Results"), rule)
	fmt.Fprintf(&sb, "Games played: %d\n", r.GamesPlayed)
	fmt.Fprintf(&sb, "Win rate: %.1f%%\n", r.WinRate*100)
	fmt.Fprintf(&sb, "Average guesses (all games): %.2f\n", r.AvgGuesses)
	if r.GamesWon > 0 {
		fmt.Fprintf(&sb, "Average guesses (won games): %.2f\n", r.AvgGuessesWhenWon)
	}
	if r.Stalled > 0 {
		fmt.Fprintf(&sb, "%s\n", render.Styles.Warning.Render(fmt.Sprintf("Stalled games: %d", r.Stalled)))
	}
	sb.WriteString("\nGuess distribution:\n")
	for i, n := range r.Distribution {
		fmt.Fprintf(&sb, "  %d: %3d %s\n", i+1, n, r.bar(n))
	}
	fmt.Fprintf(&sb, "  X: %3d\n", r.Failed)
	_, err := io.WriteString(w, sb.String())
	return err
}

func (r *Report) bar(n int) string {
	if r.GamesPlayed == 0 {
		return ""
	}
	return render.Styles.Success.Render(strings.Repeat("█", n*barWidth/r.GamesPlayed))
}

// WriteYAML encodes the report as YAML.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
