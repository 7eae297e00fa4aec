// internal/daily/daily.go
//
// Deterministic "word of the day": everyone using the same salt and word
// list gets the same target on the same UTC date.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordler/internal/game"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Target picks the day's word from dict.
func Target(dict *game.Dictionary, date time.Time, salt string) (game.Word, error) {
	if dict.Len() == 0 {
		return "", game.ErrEmptyDictionary
	}
	return dict.At(WordIndex(date, salt, dict.Len())), nil
}
