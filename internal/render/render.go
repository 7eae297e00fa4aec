// Package render draws game state for the terminal: coloured letter tiles
// with lipgloss, or the emoji squares used when sharing results.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordler/internal/game"
)

// Tile colours, matching the classic board.
var (
	ColorGreen  = lipgloss.Color("#538D4E")
	ColorYellow = lipgloss.Color("#B59F3B")
	ColorGray   = lipgloss.Color("#3A3A3C")
	ColorText   = lipgloss.Color("#FFFFFF")
	ColorMuted  = lipgloss.Color("#818384")
	ColorError  = lipgloss.Color("#E74C3C")
)

var tile = lipgloss.NewStyle().Bold(true).Foreground(ColorText).Padding(0, 1)

// Styles provides pre-configured text styles shared by the commands.
var Styles = struct {
	Title   lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Box     lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(ColorGreen),
	Bold:    lipgloss.NewStyle().Bold(true),
	Muted:   lipgloss.NewStyle().Foreground(ColorMuted),
	Success: lipgloss.NewStyle().Foreground(ColorGreen),
	Warning: lipgloss.NewStyle().Foreground(ColorYellow),
	Error:   lipgloss.NewStyle().Foreground(ColorError),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorGray).
		Padding(0, 1),
}

// Mode selects how rows are drawn.
type Mode int

const (
	Tiles Mode = iota // coloured letter tiles
	Emoji             // "CRANE: 🟩⬜⬜🟨⬜"
)

// Row renders one scored guess.
func Row(guess game.Word, fb game.Feedback, mode Mode) string {
	letters := strings.ToUpper(string(guess))
	if mode == Emoji {
		return letters + ": " + fb.Emoji()
	}
	cells := make([]string, 0, game.WordLength)
	for i, m := range fb {
		var ch string
		if i < len(letters) {
			ch = letters[i : i+1]
		}
		cells = append(cells, tile.Background(markColor(m)).Render(ch))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// Board renders the attempt counter, the candidate count and every row
// played so far.
func Board(st game.State, mode Mode) string {
	var sb strings.Builder
	total := st.AttemptsUsed + st.AttemptsRemaining
	fmt.Fprintf(&sb, "%s\n", Styles.Bold.Render(fmt.Sprintf("Attempt %d/%d", st.AttemptsUsed, total)))
	fmt.Fprintf(&sb, "%s\n", Styles.Muted.Render(fmt.Sprintf("Valid words remaining: %d", len(st.Candidates))))
	for i, g := range st.Guesses {
		sb.WriteString(Row(g, st.Feedback[i], mode))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func markColor(m game.Mark) lipgloss.Color {
	switch m {
	case game.Green:
		return ColorGreen
	case game.Yellow:
		return ColorYellow
	default:
		return ColorGray
	}
}
