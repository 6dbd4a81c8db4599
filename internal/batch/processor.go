package batch

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Entry is one line of a batch file: either a word/particle pair or a
// sentence template.
type Entry struct {
	// Line is the 1-based line number in the source file
	Line     int
	Word     string
	Particle string
	// Sentence holds a "{word, particle}" template; Word and Particle are empty then
	Sentence string
}

// IsSentence reports whether the entry is a sentence template.
func (e Entry) IsSentence() bool {
	return e.Sentence != ""
}

// ReadBatchFile reads entries from a file.
// Supported line formats:
// - Pair: "집 = 으로" (split on the first '=')
// - Sentence: "{철수, 은} {영희, 를} 만났다." (any line containing '{')
// - Comment: "# ..." (skipped)
// Blank lines and lines that match neither format are ignored.
func ReadBatchFile(filename string) ([]Entry, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.Contains(line, "{") {
			entries = append(entries, Entry{Line: lineNo, Sentence: line})
			continue
		}

		word, particle, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		word = strings.TrimSpace(word)
		particle = strings.TrimSpace(particle)
		// Ignore lines with an empty side
		if word == "" || particle == "" {
			continue
		}
		entries = append(entries, Entry{Line: lineNo, Word: word, Particle: particle})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	return entries, nil
}
