package domain

import (
	"encoding/json"
	"slices"
	"strings"
)

// Change is the ordered list of segments that follow the dominant value of a
// feature. It serializes the way transcribers read it: nothing as "", a single
// change as a plain string, more than one as a list.
type Change []string

func (c Change) MarshalJSON() ([]byte, error) {
	switch len(c) {
	case 0:
		return json.Marshal("")
	case 1:
		return json.Marshal(c[0])
	default:
		return json.Marshal([]string(c))
	}
}

func (c *Change) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		if one == "" {
			*c = nil
		} else {
			*c = Change{one}
		}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*c = many
	return nil
}

// String joins the changes for tabular output.
func (c Change) String() string {
	return strings.Join(c, ", ")
}

// Feature is the resolved value of one hand category.
type Feature struct {
	Value  string `json:"value"`
	Change Change `json:"change"`
}

// IsEmpty reports whether the feature carries no value and no change.
func (f Feature) IsEmpty() bool {
	return f.Value == "" && len(f.Change) == 0
}

// MovementKind tags compound movement notations.
type MovementKind string

const (
	MovementPlain        MovementKind = "plain"
	MovementSimultaneous MovementKind = "simultaneous"
	MovementFused        MovementKind = "fused"
	MovementRepeated     MovementKind = "repeated"
)

func (k MovementKind) String() string { return string(k) }

// MovementPart is one base movement glyph with its diacritics.
type MovementPart struct {
	Base       string `json:"base"`
	Diacritics string `json:"diacritics,omitempty"`
}

// Movement is a single movement segment, sub-parsed when it is a group.
type Movement struct {
	Text       string         `json:"text"`
	Kind       MovementKind   `json:"kind,omitempty"`
	Parts      []MovementPart `json:"parts,omitempty"`
	Repetition string         `json:"repetition,omitempty"`
}

// MovementFeature is the resolved movement of a hand.
type MovementFeature struct {
	Value  Movement   `json:"value"`
	Change []Movement `json:"change,omitempty"`
}

// Texts returns the value text followed by every change text.
func (m MovementFeature) Texts() []string {
	if m.Value.Text == "" && len(m.Change) == 0 {
		return nil
	}
	out := make([]string, 0, 1+len(m.Change))
	out = append(out, m.Value.Text)
	for _, c := range m.Change {
		out = append(out, c.Text)
	}
	return out
}

// Feature flattens the movement to plain text.
func (m MovementFeature) Feature() Feature {
	f := Feature{Value: m.Value.Text}
	for _, c := range m.Change {
		f.Change = append(f.Change, c.Text)
	}
	return f
}

// Hand is the resolved description of one hand of a sign.
type Hand struct {
	Dominant    bool            `json:"is_dominant"`
	Shape       Feature         `json:"shape"`
	Orientation Feature         `json:"orientation"`
	Location    Feature         `json:"location"`
	Contact     Feature         `json:"contact"`
	Movement    MovementFeature `json:"movement"`
	Repetition  string          `json:"repetition"`
}

// Feature returns the flattened feature for a hand category.
func (h Hand) Feature(c Category) Feature {
	switch c {
	case CategoryHandshape:
		return h.Shape
	case CategoryOrientation:
		return h.Orientation
	case CategoryLocation:
		return h.Location
	case CategoryContact:
		return h.Contact
	case CategoryMovement:
		return h.Movement.Feature()
	}
	return Feature{}
}

// IsEmpty reports whether no feature of the hand is set.
func (h Hand) IsEmpty() bool {
	for _, c := range HandCategories {
		if !h.Feature(c).IsEmpty() {
			return false
		}
	}
	return h.Repetition == ""
}

// ScanIssue records a glyph the scanner could not place.
type ScanIssue struct {
	Pos    int    `json:"pos"`
	Glyph  string `json:"glyph"`
	Reason string `json:"reason"`
}

// Meta keeps the raw scan output for diagnosis. Values here are never rendered
// as names.
type Meta struct {
	Segments map[Category][]string `json:"segments"`
	Markers  map[Category]string   `json:"markers"`
	Initial  []string              `json:"initial,omitempty"`
	Rest     string                `json:"rest"`
	Issues   []ScanIssue           `json:"issues,omitempty"`
}

// Sign is the parsed form of one transcription.
type Sign struct {
	Text            string   `json:"text"`
	Symmetry        []string `json:"symmetry"`
	InitialPosition []string `json:"initial_position,omitempty"`
	Dominant        Hand     `json:"dominant"`
	Nondominant     Hand     `json:"nondominant"`
	Meta            Meta     `json:"meta"`
}

// IsTwoHanded reports whether the sign describes a second hand.
func (s Sign) IsTwoHanded() bool {
	return !s.Nondominant.IsEmpty()
}

// Row is one line of the tabular view of a sign.
type Row struct {
	Category    Category
	Dominant    string
	Change      string
	Nondominant string
}

// Rows returns one row per category in display order.
func (s Sign) Rows() []Row {
	rows := make([]Row, 0, len(Categories))
	rows = append(rows, Row{
		Category: CategorySymmetry,
		Dominant: strings.Join(s.Symmetry, " "),
	})
	for _, c := range HandCategories {
		d := s.Dominant.Feature(c)
		rows = append(rows, Row{
			Category:    c,
			Dominant:    d.Value,
			Change:      d.Change.String(),
			Nondominant: s.Nondominant.Feature(c).Value,
		})
	}
	return rows
}

// MapText returns a copy of the sign with every rendered value passed through
// f. Text and Meta are kept as they are.
func (s Sign) MapText(f func(string) string) Sign {
	out := s
	out.Symmetry = mapStrings(s.Symmetry, f)
	out.InitialPosition = mapStrings(s.InitialPosition, f)
	out.Dominant = s.Dominant.mapText(f)
	out.Nondominant = s.Nondominant.mapText(f)
	return out
}

func (h Hand) mapText(f func(string) string) Hand {
	out := h
	out.Shape = h.Shape.mapText(f)
	out.Orientation = h.Orientation.mapText(f)
	out.Location = h.Location.mapText(f)
	out.Contact = h.Contact.mapText(f)
	out.Movement.Value = h.Movement.Value.mapText(f)
	out.Movement.Change = nil
	for _, m := range h.Movement.Change {
		out.Movement.Change = append(out.Movement.Change, m.mapText(f))
	}
	out.Repetition = mapString(h.Repetition, f)
	return out
}

func (ft Feature) mapText(f func(string) string) Feature {
	return Feature{
		Value:  mapString(ft.Value, f),
		Change: mapStrings(ft.Change, f),
	}
}

func (m Movement) mapText(f func(string) string) Movement {
	out := m
	out.Text = mapString(m.Text, f)
	out.Repetition = mapString(m.Repetition, f)
	if m.Parts != nil {
		out.Parts = make([]MovementPart, len(m.Parts))
		for i, p := range m.Parts {
			out.Parts[i] = MovementPart{
				Base:       mapString(p.Base, f),
				Diacritics: mapString(p.Diacritics, f),
			}
		}
	}
	return out
}

func mapString(s string, f func(string) string) string {
	if s == "" {
		return ""
	}
	return f(s)
}

func mapStrings(in []string, f func(string) string) []string {
	if in == nil {
		return nil
	}
	out := slices.Clone(in)
	for i := range out {
		out[i] = mapString(out[i], f)
	}
	return out
}
