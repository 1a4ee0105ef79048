// Package hamnosys holds the glyph table: which code points exist, what they
// are called, and which scanner class each one has. A Table is immutable after
// construction and safe for concurrent use.
package hamnosys

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/signphon/internal/domain"
)

// Glyph is one entry of the table.
type Glyph struct {
	Rune  rune
	Name  string
	Roles []Role
}

// Table maps code points to glyph names and classes.
type Table struct {
	glyphs  map[rune]Glyph
	classes map[rune]Class
}

// NewTable validates the glyphs and builds a table. Duplicate code points,
// empty names and unknown roles are rejected.
func NewTable(glyphs []Glyph) (*Table, error) {
	t := &Table{
		glyphs:  make(map[rune]Glyph, len(glyphs)),
		classes: make(map[rune]Class, len(glyphs)),
	}

	var errs []domain.FieldError
	for _, g := range glyphs {
		field := fmt.Sprintf("glyph %04X", g.Rune)
		if _, dup := t.glyphs[g.Rune]; dup {
			errs = append(errs, domain.FieldError{Field: field, Message: "duplicate code point"})
			continue
		}
		if strings.TrimSpace(g.Name) == "" {
			errs = append(errs, domain.FieldError{Field: field, Message: "name is required"})
			continue
		}
		for _, r := range g.Roles {
			if !r.IsValid() {
				errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("unknown role %q", r)})
			}
		}
		t.glyphs[g.Rune] = g
		t.classes[g.Rune] = classify(g.Roles)
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	return t, nil
}

// Lookup returns the table entry for r.
func (t *Table) Lookup(r rune) (Glyph, bool) {
	g, ok := t.glyphs[r]
	return g, ok
}

// Name returns the display name of r.
func (t *Table) Name(r rune) (string, bool) {
	g, ok := t.glyphs[r]
	if !ok {
		return "", false
	}
	return g.Name, true
}

// Classify returns the scanner class of r. Unmapped glyphs are KindUnknown.
func (t *Table) Classify(r rune) Class {
	return t.classes[r]
}

// Len returns the number of glyphs in the table.
func (t *Table) Len() int {
	return len(t.glyphs)
}

// Ascify renders text as glyph names joined by sep.
func (t *Table) Ascify(text, sep string) string {
	return Ascify(t, text, sep)
}
