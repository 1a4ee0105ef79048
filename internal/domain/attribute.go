package domain

import "slices"

// Names of the hand attributes used for similarity.
const (
	AttrContact     = "contact"
	AttrLocation    = "location"
	AttrMovement    = "movement"
	AttrOrientation = "orientation"
	AttrRepetition  = "repetition"
	AttrShape       = "shape"
)

// AttributeNames lists every attribute in lexicographic order.
var AttributeNames = []string{
	AttrContact,
	AttrLocation,
	AttrMovement,
	AttrOrientation,
	AttrRepetition,
	AttrShape,
}

// Attribute is a comparable view of one hand attribute: its value and, for
// features that can change, the ordered changes.
type Attribute struct {
	Value  string
	Change []string
}

// Equal reports whether both value and changes match.
func (a Attribute) Equal(b Attribute) bool {
	return a.Value == b.Value && slices.Equal(a.Change, b.Change)
}

// Attribute returns the named attribute of the hand.
func (h Hand) Attribute(name string) (Attribute, bool) {
	switch name {
	case AttrShape:
		return featureAttribute(h.Shape), true
	case AttrOrientation:
		return featureAttribute(h.Orientation), true
	case AttrLocation:
		return featureAttribute(h.Location), true
	case AttrContact:
		return featureAttribute(h.Contact), true
	case AttrMovement:
		return featureAttribute(h.Movement.Feature()), true
	case AttrRepetition:
		return Attribute{Value: h.Repetition}, true
	}
	return Attribute{}, false
}

func featureAttribute(f Feature) Attribute {
	return Attribute{Value: f.Value, Change: []string(f.Change)}
}
