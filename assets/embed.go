// assets/embed.go
//
// Embedded data shipped with the binary:
//   - words.csv: default dictionary (word,count), used when WORDS_FILE is unset.
//   - rules.txt: the rules text shown by the play command.
package assets

import (
	"embed"
	"io"
	"strings"
)

//go:embed words.csv rules.txt
var FS embed.FS

// WordsCSV opens the default dictionary. The caller closes it.
func WordsCSV() (io.ReadCloser, error) {
	return FS.Open("words.csv")
}

// RulesLines returns the rules text one line per rule, blank lines dropped.
func RulesLines() ([]string, error) {
	b, err := FS.ReadFile("rules.txt")
	if err != nil {
		return nil, err
	}
	var out []string
	for _, line := range strings.Split(string(b), "\n") {
		if s := strings.TrimSpace(line); s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}
