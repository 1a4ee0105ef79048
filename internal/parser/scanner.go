package parser

import (
	"github.com/heartmarshall/signphon/internal/domain"
	"github.com/heartmarshall/signphon/internal/hamnosys"
)

// slot is the bucket that currently has an open segment. At most one slot is
// active at any scan position.
type slot int

const (
	slotNone slot = iota
	slotSymmetry
	slotHandshape
	slotOrientation
	slotLocation
	slotContact
	slotMovement
	slotInitial
	slotCount
)

func slotOf(cat domain.Category) slot {
	switch cat {
	case domain.CategorySymmetry:
		return slotSymmetry
	case domain.CategoryHandshape:
		return slotHandshape
	case domain.CategoryOrientation:
		return slotOrientation
	case domain.CategoryLocation:
		return slotLocation
	case domain.CategoryContact:
		return slotContact
	case domain.CategoryMovement:
		return slotMovement
	}
	return slotNone
}

// category returns the category whose diacritics and markers the slot takes.
func (s slot) category() (domain.Category, bool) {
	switch s {
	case slotSymmetry:
		return domain.CategorySymmetry, true
	case slotHandshape:
		return domain.CategoryHandshape, true
	case slotOrientation:
		return domain.CategoryOrientation, true
	case slotLocation, slotInitial:
		return domain.CategoryLocation, true
	case slotContact:
		return domain.CategoryContact, true
	case slotMovement:
		return domain.CategoryMovement, true
	}
	return "", false
}

// markerLog is the metadata string of one category plus the counters the
// scanner needs to match closers.
type markerLog struct {
	text      []rune
	opened    [2]int
	closed    [2]int
	dominance int
}

func (m *markerLog) unclosed(k pairKind) bool {
	return m != nil && m.opened[k] > m.closed[k]
}

func (m *markerLog) hasDominance() bool {
	return m != nil && m.dominance > 0
}

// scanner splits a transcription into per-category segments in one pass.
// It never fails: glyphs no rule accepts go to the remainder.
type scanner struct {
	glyphs        []rune
	classes       []hamnosys.Class
	lastDominance int

	pos         int
	active      slot
	bases       int // base glyphs in the open segment
	groups      []groupKind
	brush       bool // previous glyph opened a brush contact
	closedMeta  bool // previous glyph closed a bracket metadata group
	initialMode bool

	segs    [slotCount][]string
	markers map[domain.Category]*markerLog
	rest    []rune
	issues  []domain.ScanIssue
}

// scan runs the scanner over text.
func scan(c Classifier, text string) *scanner {
	s := &scanner{
		glyphs:        []rune(text),
		lastDominance: -1,
		markers:       make(map[domain.Category]*markerLog),
	}
	s.classes = make([]hamnosys.Class, len(s.glyphs))
	for i, r := range s.glyphs {
		s.classes[i] = c.Classify(r)
		if s.classes[i].Kind == hamnosys.KindDominance {
			s.lastDominance = i
		}
	}

	for i := range s.glyphs {
		s.pos = i
		s.step()
	}
	return s
}

func (s *scanner) step() {
	r, c := s.glyphs[s.pos], s.classes[s.pos]

	if len(s.groups) > 0 {
		if s.stepGroup(r, c) {
			return
		}
		s.groups = s.groups[:0]
	}

	brush := s.brush
	s.brush = false
	closedMeta := s.closedMeta
	s.closedMeta = false

	switch c.Kind {
	case hamnosys.KindSpace:
		s.reject(r, "space")
		s.deactivate()
	case hamnosys.KindBase:
		s.base(r, c.Category, brush, closedMeta)
	case hamnosys.KindDiacritic:
		s.diacritic(r, c.Category)
	case hamnosys.KindRepetition:
		s.diacritic(r, domain.CategoryMovement)
	case hamnosys.KindAmbiguous:
		s.ambiguous(r)
	case hamnosys.KindBrush:
		s.start(slotContact, r)
		s.brush = true
		s.closedMeta = closedMeta
	case hamnosys.KindBracketOpen:
		s.open(r, routeOpenBracket(s.window()), pairBracket)
	case hamnosys.KindParenOpen:
		s.open(r, routeOpenParen(s.window()), pairParen)
	case hamnosys.KindFusionOpen:
		s.openGroup(r, groupFused)
	case hamnosys.KindBracketClose:
		s.close(r, pairBracket)
	case hamnosys.KindParenClose:
		s.close(r, pairParen)
	case hamnosys.KindDominance:
		s.dominance(r)
	case hamnosys.KindFusionClose:
		s.reject(r, "fusion close outside group")
	default:
		s.reject(r, "unknown glyph")
	}
}

func (s *scanner) window() window {
	w := window{dominanceAhead: s.lastDominance > s.pos}
	if s.pos > 0 {
		w.prev = s.classes[s.pos-1]
	}
	if s.pos+1 < len(s.classes) {
		w.next = s.classes[s.pos+1]
	}
	return w
}

// stepGroup feeds a glyph to the open movement group. It returns false when
// the glyph cannot belong to the group, which ends every open group.
func (s *scanner) stepGroup(r rune, c hamnosys.Class) bool {
	top := s.groups[len(s.groups)-1]

	switch c.Kind {
	case hamnosys.KindBase, hamnosys.KindDiacritic:
		if c.Category != domain.CategoryMovement {
			return false
		}
	case hamnosys.KindAmbiguous, hamnosys.KindRepetition:
	case hamnosys.KindBracketClose, hamnosys.KindParenClose, hamnosys.KindFusionClose:
		if !closes(c.Kind, top) {
			return false
		}
		s.extend(r)
		s.groups = s.groups[:len(s.groups)-1]
		return true
	case hamnosys.KindBracketOpen, hamnosys.KindParenOpen, hamnosys.KindFusionOpen:
		g := nestedGroup(c.Kind, s.window())
		if g == groupNone {
			return false
		}
		s.extend(r)
		s.groups = append(s.groups, g)
		return true
	default:
		return false
	}

	s.extend(r)
	return true
}

func (s *scanner) base(r rune, cat domain.Category, brush, closedMeta bool) {
	switch cat {
	case domain.CategoryContact:
		if brush && s.active == slotContact {
			s.extend(r)
		} else {
			s.start(slotContact, r)
		}
		if closedMeta {
			s.initialMode = true
		}
	case domain.CategoryOrientation:
		s.pair(slotOrientation, r)
	case domain.CategoryLocation:
		if s.initialMode {
			s.pair(slotInitial, r)
		} else {
			s.pair(slotLocation, r)
		}
	case domain.CategoryMovement:
		s.initialMode = false
		s.start(slotMovement, r)
	default:
		s.start(slotOf(cat), r)
	}
}

// pair merges up to two consecutive base glyphs into one segment.
func (s *scanner) pair(sl slot, r rune) {
	if s.active == sl && s.bases == 1 {
		s.extend(r)
		s.bases++
		return
	}
	s.start(sl, r)
}

func (s *scanner) diacritic(r rune, cat domain.Category) {
	if active, ok := s.active.category(); ok && active == cat {
		s.extend(r)
		return
	}
	s.reject(r, "diacritic outside "+cat.String())
}

// ambiguous attaches to whatever is open, falling back to the last location.
func (s *scanner) ambiguous(r rune) {
	if s.active != slotNone {
		s.extend(r)
		return
	}
	if n := len(s.segs[slotLocation]); n > 0 {
		s.segs[slotLocation][n-1] += string(r)
		return
	}
	s.reject(r, "ambiguous diacritic outside category")
}

func (s *scanner) open(r rune, rt route, pk pairKind) {
	switch rt.kind {
	case routeMeta:
		s.mark(rt.cat, r).opened[pk]++
	case routeGroup:
		s.openGroup(r, rt.group)
	default:
		s.reject(r, "unresolved opener")
	}
}

// openGroup starts a movement group. A repetition group continues the open
// movement segment; other groups start a segment of their own.
func (s *scanner) openGroup(r rune, g groupKind) {
	if g == groupRepeated && s.active == slotMovement {
		s.extend(r)
	} else {
		s.start(slotMovement, r)
	}
	s.groups = append(s.groups, g)
	s.initialMode = false
}

func (s *scanner) close(r rune, pk pairKind) {
	defer s.deactivate()
	for _, cat := range closePriority {
		if m := s.markers[cat]; m.unclosed(pk) {
			s.mark(cat, r).closed[pk]++
			s.closedMeta = pk == pairBracket
			return
		}
	}
	s.reject(r, "closer without opener")
}

// dominance routes the marker to the active category. A second marker in the
// same category belongs to the movement instead.
func (s *scanner) dominance(r rune) {
	cat, ok := s.active.category()
	if !ok {
		s.reject(r, "dominance marker outside category")
		return
	}
	if s.markers[cat].hasDominance() {
		cat = domain.CategoryMovement
	}
	s.mark(cat, r).dominance++
	s.deactivate()
}

func (s *scanner) start(sl slot, r rune) {
	s.active = sl
	s.bases = 1
	s.segs[sl] = append(s.segs[sl], string(r))
}

func (s *scanner) extend(r rune) {
	segs := s.segs[s.active]
	segs[len(segs)-1] += string(r)
}

func (s *scanner) deactivate() {
	s.active = slotNone
	s.bases = 0
}

func (s *scanner) mark(cat domain.Category, r rune) *markerLog {
	m, ok := s.markers[cat]
	if !ok {
		m = &markerLog{}
		s.markers[cat] = m
	}
	m.text = append(m.text, r)
	return m
}

func (s *scanner) reject(r rune, reason string) {
	s.rest = append(s.rest, r)
	s.issues = append(s.issues, domain.ScanIssue{
		Pos:    s.pos,
		Glyph:  string(r),
		Reason: reason,
	})
}
