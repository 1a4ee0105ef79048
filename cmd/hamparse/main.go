// Command hamparse parses HamNoSys transcriptions from the command line and
// prints one table per sign. Compound transcriptions joined by " + " print
// one table for each of their signs. With no arguments it reads one
// transcription per line from stdin.
//
// Flags:
//
//	--ascii    render glyph names instead of glyphs (default: true)
//	--sep      separator between glyph names (default: ".")
//	--enable   comma-separated categories to resolve; each must be present (default: all)
//	--table    path to a glyph table (default: embedded table)
//	--json     print signs as JSON lines
//
// Exit codes: 0 = success, 1 = at least one transcription failed.
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/heartmarshall/signphon/internal/app"
	"github.com/heartmarshall/signphon/internal/domain"
	"github.com/heartmarshall/signphon/internal/parser"
)

func main() {
	asciiFlag := flag.Bool("ascii", true, "render glyph names instead of glyphs")
	sepFlag := flag.String("sep", ".", "separator between glyph names")
	enableFlag := flag.String("enable", "", "comma-separated categories to resolve (default: all)")
	tableFlag := flag.String("table", "", "path to glyph table (default: embedded)")
	jsonFlag := flag.Bool("json", false, "print signs as JSON lines")
	flag.Parse()

	opts, err := buildOptions(*asciiFlag, *sepFlag, *enableFlag)
	if err != nil {
		log.Fatalf("options: %v", err)
	}

	table, err := app.LoadGlyphTable(*tableFlag)
	if err != nil {
		log.Fatalf("%v", err)
	}
	p := parser.New(table)

	inputs := flag.Args()
	if len(inputs) == 0 {
		inputs, err = readLines(os.Stdin)
		if err != nil {
			log.Fatalf("read stdin: %v", err)
		}
	}

	failed := false
	for _, text := range inputs {
		signs, err := p.ParseWord(text, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", p.Translate(text, opts.Separator), err)
			failed = true
			continue
		}
		for _, sign := range signs {
			if *jsonFlag {
				err = writeJSON(os.Stdout, sign)
			} else {
				err = writeTable(os.Stdout, sign)
			}
			if err != nil {
				log.Fatalf("write: %v", err)
			}
		}
	}
	if failed {
		os.Exit(1)
	}
}

func buildOptions(ascii bool, sep, enable string) (parser.Options, error) {
	opts := parser.DefaultOptions()
	opts.ASCII = ascii
	opts.Separator = sep

	if enable != "" {
		set, err := domain.ParseCategorySet(splitList(enable))
		if err != nil {
			return opts, fmt.Errorf("enable: %w", err)
		}
		opts.Enabled = set
	}
	return opts, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// readLines returns the non-blank lines of r. Transcriptions may contain
// spaces, so lines are not trimmed beyond the line ending.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errors.New("no input")
	}
	return lines, nil
}

func writeJSON(w io.Writer, s domain.Sign) error {
	return json.NewEncoder(w).Encode(s)
}

func writeTable(w io.Writer, s domain.Sign) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tDOMINANT\tCHANGE\tNONDOMINANT")
	for _, row := range s.Rows() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", row.Category, row.Dominant, row.Change, row.Nondominant)
	}
	if rest := s.Meta.Rest; rest != "" {
		fmt.Fprintf(tw, "rest\t%s\t\t\n", rest)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}
