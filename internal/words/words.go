// internal/words/words.go
//
// Dictionary loading for the game engine.
//
// Responsibilities:
//   - Read word lists from CSV (word,count) or plain text files.
//   - Fall back to the embedded default list (assets/words.csv).
//   - Normalize to lowercase and keep only five-letter alphabetic words.
//
// Formats:
//   - CSV: a header row naming a "word" column and, optionally, a "count"
//     (or "frequency"/"freq") column. Other columns are ignored.
//   - Plain text: one word per line, optionally followed by whitespace and a
//     frequency. Blank lines and lines starting with '#' are skipped.
//
// Duplicates keep their first occurrence (see game.NewDictionary).

package words

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordler/assets"
	"github.com/robalobadob/wordler/internal/game"
)

// ErrNoWordColumn is returned for CSV input without a "word" header.
var ErrNoWordColumn = errors.New("words: csv has no word column")

var (
	defaultOnce sync.Once
	defaultDict *game.Dictionary
	defaultErr  error
)

// Load returns the dictionary stored at path, or the embedded default when
// path is empty.
func Load(path string) (*game.Dictionary, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Default returns the embedded dictionary. It is parsed once and shared.
func Default() (*game.Dictionary, error) {
	defaultOnce.Do(func() {
		f, err := assets.WordsCSV()
		if err != nil {
			defaultErr = err
			return
		}
		defer f.Close()
		defaultDict, defaultErr = build("embedded:words.csv", f, ReadCSV)
	})
	return defaultDict, defaultErr
}

// LoadFile reads a dictionary file; *.csv is parsed as CSV, anything else
// as a plain word list.
func LoadFile(path string) (*game.Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	read := ReadList
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		read = ReadCSV
	}
	return build(path, f, read)
}

func build(name string, r io.Reader, read func(io.Reader) ([]game.Entry, error)) (*game.Dictionary, error) {
	entries, err := read(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	d := game.NewDictionary(entries)
	if d.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", name, game.ErrEmptyDictionary)
	}
	log.Debug().Str("source", name).Int("entries", len(entries)).Int("words", d.Len()).Msg("loaded dictionary")
	return d, nil
}

// ReadCSV parses a headed CSV word list.
func ReadCSV(r io.Reader) ([]game.Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoWordColumn
	}
	if err != nil {
		return nil, err
	}
	wordCol, countCol := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "word":
			wordCol = i
		case "count", "frequency", "freq":
			countCol = i
		}
	}
	if wordCol < 0 {
		return nil, ErrNoWordColumn
	}

	var out []game.Entry
	skipped := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if wordCol >= len(rec) {
			skipped++
			continue
		}
		w, ok := normalize(rec[wordCol])
		if !ok {
			skipped++
			continue
		}
		freq := 0
		if countCol >= 0 && countCol < len(rec) {
			freq = parseCount(rec[countCol])
		}
		out = append(out, game.Entry{Word: w, Frequency: freq})
	}
	if skipped > 0 {
		log.Debug().Int("skipped", skipped).Msg("csv rows without a five-letter word")
	}
	return out, nil
}

// ReadList parses a plain word list.
func ReadList(r io.Reader) ([]game.Entry, error) {
	var out []game.Entry
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		w, ok := normalize(fields[0])
		if !ok {
			continue
		}
		freq := 0
		if len(fields) > 1 {
			freq = parseCount(fields[1])
		}
		out = append(out, game.Entry{Word: w, Frequency: freq})
	}
	return out, sc.Err()
}

// normalize lowercases s and keeps it only if it is a valid word.
func normalize(s string) (game.Word, bool) {
	w, err := game.ParseWord(s)
	return w, err == nil
}

// parseCount reads a non-negative count; "12.0" style floats are truncated
// and anything unreadable is 0.
func parseCount(s string) int {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return max(n, 0)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 && f < 1e15 {
		return int(f)
	}
	return 0
}
