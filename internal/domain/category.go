package domain

import (
	"fmt"
	"strings"
)

// Category is one of the phonological buckets a transcription is split into.
type Category string

const (
	CategorySymmetry    Category = "symmetry"
	CategoryHandshape   Category = "handshape"
	CategoryOrientation Category = "orientation"
	CategoryLocation    Category = "location"
	CategoryContact     Category = "contact"
	CategoryMovement    Category = "movement"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategorySymmetry,
	CategoryHandshape,
	CategoryOrientation,
	CategoryLocation,
	CategoryContact,
	CategoryMovement,
}

// HandCategories lists the categories that resolve into Hand features.
// These are the ones callers can enable, disable or require.
var HandCategories = []Category{
	CategoryHandshape,
	CategoryOrientation,
	CategoryLocation,
	CategoryContact,
	CategoryMovement,
}

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	return c.index() >= 0
}

// IsHandCategory reports whether c resolves into a Hand feature.
func (c Category) IsHandCategory() bool {
	return c.IsValid() && c != CategorySymmetry
}

func (c Category) index() int {
	for i, cat := range Categories {
		if cat == c {
			return i
		}
	}
	return -1
}

// ParseCategory accepts a category name in any letter case.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", NewValidationError("category", fmt.Sprintf("unknown category %q", s))
	}
	return c, nil
}

// CategorySet is a small set of categories.
type CategorySet uint8

// NewCategorySet builds a set from the given categories. Invalid values are ignored.
func NewCategorySet(cats ...Category) CategorySet {
	var s CategorySet
	for _, c := range cats {
		s = s.With(c)
	}
	return s
}

// AllHandCategories is the set of every hand category.
func AllHandCategories() CategorySet {
	return NewCategorySet(HandCategories...)
}

// ParseCategorySet parses a list of category names.
func ParseCategorySet(names []string) (CategorySet, error) {
	var s CategorySet
	for _, n := range names {
		c, err := ParseCategory(n)
		if err != nil {
			return 0, err
		}
		s = s.With(c)
	}
	return s, nil
}

func (s CategorySet) Has(c Category) bool {
	i := c.index()
	return i >= 0 && s&(1<<i) != 0
}

func (s CategorySet) With(c Category) CategorySet {
	i := c.index()
	if i < 0 {
		return s
	}
	return s | 1<<i
}

func (s CategorySet) Without(c Category) CategorySet {
	i := c.index()
	if i < 0 {
		return s
	}
	return s &^ (1 << i)
}

// Categories returns the members in display order.
func (s CategorySet) Categories() []Category {
	var out []Category
	for _, c := range Categories {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s CategorySet) String() string {
	cats := s.Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.String()
	}
	return strings.Join(names, ",")
}
