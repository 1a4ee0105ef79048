package importer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is one corpus line: a gloss with its transcription.
type Record struct {
	Line   int
	Gloss  string
	Text   string
	Source string
}

// LineError reports a corpus line that could not be read as a record.
type LineError struct {
	Line   int
	Reason string
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// maxLineBytes bounds one corpus line.
const maxLineBytes = 1 << 20

// ReadCorpusFile opens path and reads it with ReadCorpus.
func ReadCorpusFile(path string) ([]Record, []LineError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	return ReadCorpus(f)
}

// ReadCorpus reads tab-separated gloss, transcription and optional source
// columns. The transcription is kept verbatim since spaces are glyphs.
// Blank lines and lines starting with '#' are skipped, as is a
// leading header row whose first column is "gloss". Malformed lines are
// returned as LineErrors; only I/O failures abort the read.
func ReadCorpus(r io.Reader) ([]Record, []LineError, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		records []Record
		bad     []LineError
		lineNo  int
		seen    bool
	)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cols := strings.Split(line, "\t")
		if !seen {
			seen = true
			if strings.EqualFold(strings.TrimSpace(cols[0]), "gloss") {
				continue
			}
		}

		if len(cols) < 2 || len(cols) > 3 {
			bad = append(bad, LineError{Line: lineNo, Reason: fmt.Sprintf("expected 2 or 3 columns, got %d", len(cols))})
			continue
		}

		rec := Record{
			Line:  lineNo,
			Gloss: strings.TrimSpace(cols[0]),
			Text:  cols[1],
		}
		if len(cols) == 3 {
			rec.Source = strings.TrimSpace(cols[2])
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("read corpus: %w", err)
	}

	return records, bad, nil
}
