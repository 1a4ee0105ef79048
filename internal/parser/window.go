package parser

import (
	"github.com/heartmarshall/signphon/internal/domain"
	"github.com/heartmarshall/signphon/internal/hamnosys"
)

// groupKind is a compound movement notation the scanner can be inside of.
type groupKind int

const (
	groupNone groupKind = iota
	groupSimultaneous
	groupFused
	groupRepeated
)

// pairKind distinguishes brackets from parentheses when matching closers.
type pairKind int

const (
	pairBracket pairKind = iota
	pairParen
)

// window is the context a structural marker is resolved against: one glyph
// behind, one glyph ahead, and whether a dominance marker occurs anywhere
// later in the input.
type window struct {
	prev           hamnosys.Class
	next           hamnosys.Class
	dominanceAhead bool
}

type routeKind int

const (
	routeRest routeKind = iota
	routeMeta
	routeGroup
)

// route is where an opening marker goes.
type route struct {
	kind  routeKind
	cat   domain.Category
	group groupKind
}

func metaRoute(cat domain.Category) route {
	return route{kind: routeMeta, cat: cat}
}

func groupRoute(g groupKind) route {
	return route{kind: routeGroup, group: g}
}

// closePriority is the order in which metadata buckets are checked for a
// missing closer.
var closePriority = []domain.Category{
	domain.CategoryHandshape,
	domain.CategoryOrientation,
	domain.CategoryLocation,
	domain.CategoryContact,
	domain.CategoryMovement,
}

// routeOpenBracket decides what an open bracket starts.
func routeOpenBracket(w window) route {
	switch w.next.Kind {
	case hamnosys.KindDiacritic, hamnosys.KindAmbiguous:
		return metaRoute(domain.CategoryLocation)
	case hamnosys.KindBracketOpen, hamnosys.KindParenOpen:
		return metaRoute(domain.CategoryMovement)
	case hamnosys.KindBase:
		if w.next.Category == domain.CategoryMovement {
			if !w.dominanceAhead || w.prev.Kind == hamnosys.KindBracketOpen {
				return groupRoute(groupSimultaneous)
			}
			return metaRoute(domain.CategoryMovement)
		}
		return baseMetaRoute(w.next.Category)
	}
	return route{kind: routeRest}
}

// routeOpenParen decides what an open parenthesis starts. A repetition glyph
// right after it opens a repetition group inside the movement.
func routeOpenParen(w window) route {
	switch w.next.Kind {
	case hamnosys.KindRepetition:
		return groupRoute(groupRepeated)
	case hamnosys.KindDiacritic, hamnosys.KindAmbiguous:
		return metaRoute(domain.CategoryLocation)
	case hamnosys.KindBracketOpen, hamnosys.KindParenOpen:
		return metaRoute(domain.CategoryMovement)
	case hamnosys.KindBase:
		if w.next.Category == domain.CategoryMovement {
			return metaRoute(domain.CategoryMovement)
		}
		return baseMetaRoute(w.next.Category)
	}
	return route{kind: routeRest}
}

func baseMetaRoute(cat domain.Category) route {
	switch cat {
	case domain.CategoryHandshape, domain.CategoryOrientation:
		return metaRoute(cat)
	case domain.CategoryLocation, domain.CategoryContact:
		return metaRoute(domain.CategoryLocation)
	}
	return route{kind: routeRest}
}

// nestedGroup reports which group, if any, an opener starts while the scanner
// is already inside a movement group.
func nestedGroup(kind hamnosys.Kind, w window) groupKind {
	switch kind {
	case hamnosys.KindBracketOpen:
		if w.next.Is(hamnosys.KindBase, domain.CategoryMovement) {
			return groupSimultaneous
		}
	case hamnosys.KindParenOpen:
		if w.next.Kind == hamnosys.KindRepetition {
			return groupRepeated
		}
	case hamnosys.KindFusionOpen:
		return groupFused
	}
	return groupNone
}

// closes reports whether a glyph of the given kind ends group g. An open
// simultaneous group is ended by either closer.
func closes(kind hamnosys.Kind, g groupKind) bool {
	switch kind {
	case hamnosys.KindBracketClose:
		return g == groupSimultaneous
	case hamnosys.KindParenClose:
		return g == groupRepeated || g == groupSimultaneous
	case hamnosys.KindFusionClose:
		return g == groupFused
	}
	return false
}
