package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/wordler/internal/game"
)

func TestRowEmoji(t *testing.T) {
	got := Row("erase", game.Score("crane", "erase"), Emoji)
	assert.Equal(t, "ERASE: ⬜🟩🟩⬜🟩", got)
}

func TestRowTilesKeepsLetters(t *testing.T) {
	got := Row("crane", game.Score("crane", "crane"), Tiles)
	for _, ch := range []string{"C", "R", "A", "N", "E"} {
		assert.Contains(t, got, ch)
	}
}

func TestBoard(t *testing.T) {
	st := game.State{
		Guesses:           []game.Word{"about", "creed"},
		Feedback:          []game.Feedback{game.Score("creed", "about"), game.Score("creed", "creed")},
		AttemptsUsed:      2,
		AttemptsRemaining: 4,
		Candidates:        []game.Word{"creed"},
	}
	out := Board(st, Emoji)
	assert.Contains(t, out, "Attempt 2/6")
	assert.Contains(t, out, "Valid words remaining: 1")
	assert.Contains(t, out, "ABOUT: ⬜⬜⬜⬜⬜")
	assert.Contains(t, out, "CREED: 🟩🟩🟩🟩🟩")
	assert.Equal(t, 4, strings.Count(out, "\n"))
}
