// Package parser turns HamNoSys transcriptions into signs.
//
// Parsing runs in two stages. A single left-to-right scan assigns every glyph
// to a category segment, a category's metadata string, or the unparsed
// remainder, looking at most one glyph behind and one glyph ahead. The
// resolver then decides per category which segment describes the dominant
// hand, which the nondominant hand, and which are changes.
//
// Parsing never fails on odd input. The only error is a missing dominant
// segment for an enabled category.
package parser

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/signphon/internal/domain"
	"github.com/heartmarshall/signphon/internal/hamnosys"
)

// Classifier is the glyph table the parser reads from.
type Classifier interface {
	Classify(r rune) hamnosys.Class
	Name(r rune) (string, bool)
}

// Options control a single parse.
type Options struct {
	// Enabled categories are resolved and must each produce a dominant
	// segment; the others come back empty.
	Enabled domain.CategorySet
	// ASCII renders output values as glyph names.
	ASCII bool
	// Separator joins glyph names when ASCII is set.
	Separator string
}

// DefaultOptions enables every hand category and renders glyphs.
func DefaultOptions() Options {
	return Options{
		Enabled:   domain.AllHandCategories(),
		Separator: hamnosys.DefaultSeparator,
	}
}

// Parser parses transcriptions against one glyph table. It holds no mutable
// state and is safe for concurrent use.
type Parser struct {
	table Classifier
}

// New creates a parser over the given table.
func New(table Classifier) *Parser {
	return &Parser{table: table}
}

// Parse scans and resolves text.
func (p *Parser) Parse(text string, opts Options) (domain.Sign, error) {
	s := scan(p.table, text)

	sign, err := resolve(p.table, s, opts)
	if err != nil {
		return domain.Sign{}, err
	}

	if opts.ASCII {
		sep := opts.Separator
		if sep == "" {
			sep = hamnosys.DefaultSeparator
		}
		sign = sign.MapText(func(v string) string {
			return hamnosys.Ascify(p.table, v, sep)
		})
	}
	return sign, nil
}

// WordDelimiter separates the signs of a compound transcription.
const WordDelimiter = " + "

// ParseWord parses a compound transcription made of several signs joined by
// WordDelimiter. It stops at the first sign that fails.
func (p *Parser) ParseWord(text string, opts Options) ([]domain.Sign, error) {
	parts := strings.Split(text, WordDelimiter)
	signs := make([]domain.Sign, 0, len(parts))
	for i, part := range parts {
		sign, err := p.Parse(part, opts)
		if err != nil {
			return nil, fmt.Errorf("sign %d: %w", i+1, err)
		}
		signs = append(signs, sign)
	}
	return signs, nil
}

// Translate renders text as glyph names joined by sep.
func (p *Parser) Translate(text, sep string) string {
	if sep == "" {
		sep = hamnosys.DefaultSeparator
	}
	return hamnosys.Ascify(p.table, text, sep)
}

// Names returns the glyph name of every code point in text.
func (p *Parser) Names(text string) []string {
	return hamnosys.Names(p.table, text)
}
