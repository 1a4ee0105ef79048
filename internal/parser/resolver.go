package parser

import (
	"slices"

	"github.com/heartmarshall/signphon/internal/domain"
)

// split turns one category's segments into dominant, nondominant and change
// values. twoHands means the second segment belongs to the other hand;
// mirror means the other hand repeats the first segment.
func split(segs []string, twoHands, mirror bool) (dominant, nondominant string, change domain.Change) {
	if len(segs) == 0 {
		return "", "", nil
	}
	dominant = segs[0]
	rest := segs[1:]
	switch {
	case twoHands:
		if len(rest) > 0 {
			nondominant = rest[0]
			rest = rest[1:]
		}
	case mirror:
		nondominant = dominant
	}
	if len(rest) > 0 {
		change = slices.Clone(rest)
	}
	return dominant, nondominant, change
}

// resolve builds the sign from a finished scan.
func resolve(c Classifier, s *scanner, opts Options) (domain.Sign, error) {
	sign := domain.Sign{
		Text:     string(s.glyphs),
		Symmetry: slices.Clone(s.segs[slotSymmetry]),
		Dominant: domain.Hand{Dominant: true},
		Meta:     s.meta(),
	}
	mirror := len(sign.Symmetry) > 0
	initial := s.segs[slotInitial]

	for _, cat := range domain.HandCategories {
		if !opts.Enabled.Has(cat) {
			continue
		}

		segs := s.segs[slotOf(cat)]
		twoHands := s.markers[cat].hasDominance()
		if cat == domain.CategoryLocation && len(initial) > 0 {
			segs = append(slices.Clone(initial), segs...)
			twoHands = true
			sign.InitialPosition = slices.Clone(initial)
		}

		if len(segs) == 0 {
			return domain.Sign{}, &domain.MissingSegmentError{Category: cat}
		}

		dom, nondom, change := split(segs, twoHands, mirror)
		if cat == domain.CategoryMovement {
			sign.Dominant.Movement = movementFeature(c, dom, change)
			sign.Nondominant.Movement = movementFeature(c, nondom, nil)
			continue
		}
		setFeature(&sign.Dominant, cat, domain.Feature{Value: dom, Change: change})
		setFeature(&sign.Nondominant, cat, domain.Feature{Value: nondom})
	}

	sign.Dominant.Repetition = repetitionOf(c, sign.Dominant.Movement.Texts())
	sign.Nondominant.Repetition = repetitionOf(c, sign.Nondominant.Movement.Texts())
	return sign, nil
}

func movementFeature(c Classifier, value string, change domain.Change) domain.MovementFeature {
	var mf domain.MovementFeature
	if value != "" {
		mf.Value = parseMovement(c, value)
	}
	for _, ch := range change {
		mf.Change = append(mf.Change, parseMovement(c, ch))
	}
	return mf
}

func setFeature(h *domain.Hand, cat domain.Category, f domain.Feature) {
	switch cat {
	case domain.CategoryHandshape:
		h.Shape = f
	case domain.CategoryOrientation:
		h.Orientation = f
	case domain.CategoryLocation:
		h.Location = f
	case domain.CategoryContact:
		h.Contact = f
	}
}

// meta copies the raw scan output.
func (s *scanner) meta() domain.Meta {
	m := domain.Meta{
		Segments: make(map[domain.Category][]string),
		Markers:  make(map[domain.Category]string),
		Initial:  slices.Clone(s.segs[slotInitial]),
		Rest:     string(s.rest),
		Issues:   slices.Clone(s.issues),
	}
	for _, cat := range domain.Categories {
		if segs := s.segs[slotOf(cat)]; len(segs) > 0 {
			m.Segments[cat] = slices.Clone(segs)
		}
		if log, ok := s.markers[cat]; ok {
			m.Markers[cat] = string(log.text)
		}
	}
	return m
}
