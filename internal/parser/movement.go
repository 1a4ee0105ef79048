package parser

import (
	"github.com/heartmarshall/signphon/internal/domain"
	"github.com/heartmarshall/signphon/internal/hamnosys"
)

// parseMovement tags a movement segment with its group kind and, for groups,
// splits it into base glyphs with their diacritics. Plain segments are
// returned as they are.
func parseMovement(c Classifier, text string) domain.Movement {
	runes := []rune(text)
	m := domain.Movement{Text: text, Kind: movementKind(c, runes)}
	if m.Kind == domain.MovementPlain {
		return m
	}

	attach := func(r rune) {
		if len(m.Parts) == 0 {
			m.Parts = append(m.Parts, domain.MovementPart{})
		}
		m.Parts[len(m.Parts)-1].Diacritics += string(r)
	}

	for _, r := range runes {
		switch c.Classify(r).Kind {
		case hamnosys.KindBase:
			m.Parts = append(m.Parts, domain.MovementPart{Base: string(r)})
		case hamnosys.KindDiacritic, hamnosys.KindAmbiguous:
			attach(r)
		case hamnosys.KindRepetition:
			if m.Kind == domain.MovementRepeated {
				m.Repetition += string(r)
			} else {
				attach(r)
			}
		}
	}
	return m
}

func movementKind(c Classifier, runes []rune) domain.MovementKind {
	if len(runes) == 0 {
		return domain.MovementPlain
	}
	switch c.Classify(runes[0]).Kind {
	case hamnosys.KindBracketOpen:
		return domain.MovementSimultaneous
	case hamnosys.KindFusionOpen:
		return domain.MovementFused
	}
	for i := 0; i+1 < len(runes); i++ {
		if c.Classify(runes[i]).Kind == hamnosys.KindParenOpen &&
			c.Classify(runes[i+1]).Kind == hamnosys.KindRepetition {
			return domain.MovementRepeated
		}
	}
	return domain.MovementPlain
}

// repetitionOf collects every repetition glyph in the given texts.
func repetitionOf(c Classifier, texts []string) string {
	var out []rune
	for _, t := range texts {
		for _, r := range t {
			if c.Classify(r).Kind == hamnosys.KindRepetition {
				out = append(out, r)
			}
		}
	}
	return string(out)
}
