package domain

import (
	"strings"
	"unicode/utf8"
)

// NormalizeGloss prepares a gloss for storage and search:
//   - trims surrounding whitespace
//   - collapses inner whitespace runs into one space
//   - converts to lowercase
//
// Digits and punctuation used by gloss conventions (HOUSE-2, ASK^OUT) are kept.
func NormalizeGloss(gloss string) string {
	fields := strings.Fields(gloss)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(strings.Join(fields, " "))
}

// GlyphCount returns the number of code points in a transcription.
func GlyphCount(text string) int {
	return utf8.RuneCountInString(text)
}
