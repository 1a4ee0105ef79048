package hamnosys

import (
	"slices"

	"github.com/heartmarshall/signphon/internal/domain"
)

// Kind is the scanner-facing class of a glyph.
type Kind int

const (
	KindUnknown Kind = iota
	KindBase
	KindDiacritic
	KindAmbiguous
	KindBracketOpen
	KindBracketClose
	KindParenOpen
	KindParenClose
	KindFusionOpen
	KindFusionClose
	KindDominance
	KindBrush
	KindRepetition
	KindSpace
)

var kindNames = [...]string{
	KindUnknown:      "unknown",
	KindBase:         "base",
	KindDiacritic:    "diacritic",
	KindAmbiguous:    "ambiguous",
	KindBracketOpen:  "bracket_open",
	KindBracketClose: "bracket_close",
	KindParenOpen:    "paren_open",
	KindParenClose:   "paren_close",
	KindFusionOpen:   "fusion_open",
	KindFusionClose:  "fusion_close",
	KindDominance:    "dominance",
	KindBrush:        "brush",
	KindRepetition:   "repetition",
	KindSpace:        "space",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Class is what the scanner knows about a glyph. Category is set only for
// KindBase and KindDiacritic.
type Class struct {
	Kind     Kind
	Category domain.Category
}

// Is reports whether c is a base or diacritic of the given category.
func (c Class) Is(kind Kind, cat domain.Category) bool {
	return c.Kind == kind && c.Category == cat
}

func (c Class) String() string {
	if c.Category == "" {
		return c.Kind.String()
	}
	return c.Category.String() + "_" + c.Kind.String()
}

// classify derives a single class from a set of role tags. Structural roles
// win over base roles, base roles over category diacritics, and those over
// the ambiguous diacritic tag. Among categories, display order decides.
func classify(roles []Role) Class {
	for _, s := range structuralRoles {
		if slices.Contains(roles, s.role) {
			return Class{Kind: s.kind}
		}
	}
	for _, cat := range domain.Categories {
		for _, r := range roles {
			if baseRoles[r] == cat {
				return Class{Kind: KindBase, Category: cat}
			}
		}
	}
	for _, cat := range domain.Categories {
		for _, r := range roles {
			if diacriticRoles[r] == cat {
				return Class{Kind: KindDiacritic, Category: cat}
			}
		}
	}
	if slices.Contains(roles, RoleAmbiguousDiacritic) {
		return Class{Kind: KindAmbiguous}
	}
	return Class{Kind: KindUnknown}
}
