package hamnosys

import "github.com/heartmarshall/signphon/internal/domain"

// Role is a semantic tag attached to a glyph in the table.
type Role string

const (
	RoleSymmetry    Role = "symmetry"
	RoleHandshape   Role = "handshape"
	RoleOrientation Role = "orientation"
	RoleLocation    Role = "location"
	RoleContact     Role = "contact"
	RoleMovement    Role = "movement"

	RoleSymmetryDiacritic    Role = "symmetry_diacritic"
	RoleHandshapeDiacritic   Role = "handshape_diacritic"
	RoleOrientationDiacritic Role = "orientation_diacritic"
	RoleLocationDiacritic    Role = "location_diacritic"
	RoleContactDiacritic     Role = "contact_diacritic"
	RoleMovementDiacritic    Role = "movement_diacritic"
	RoleAmbiguousDiacritic   Role = "ambiguous_diacritic"

	RoleBracketOpen  Role = "bracket_open"
	RoleBracketClose Role = "bracket_close"
	RoleParenOpen    Role = "paren_open"
	RoleParenClose   Role = "paren_close"
	RoleFusionOpen   Role = "fusion_open"
	RoleFusionClose  Role = "fusion_close"
	RoleDominance    Role = "dominance"
	RoleBrush        Role = "brush"
	RoleRepetition   Role = "repetition"
	RoleSpace        Role = "space"
)

// structural roles in classification precedence.
var structuralRoles = []struct {
	role Role
	kind Kind
}{
	{RoleSpace, KindSpace},
	{RoleBracketOpen, KindBracketOpen},
	{RoleBracketClose, KindBracketClose},
	{RoleParenOpen, KindParenOpen},
	{RoleParenClose, KindParenClose},
	{RoleFusionOpen, KindFusionOpen},
	{RoleFusionClose, KindFusionClose},
	{RoleDominance, KindDominance},
	{RoleBrush, KindBrush},
	{RoleRepetition, KindRepetition},
}

var baseRoles = map[Role]domain.Category{
	RoleSymmetry:    domain.CategorySymmetry,
	RoleHandshape:   domain.CategoryHandshape,
	RoleOrientation: domain.CategoryOrientation,
	RoleLocation:    domain.CategoryLocation,
	RoleContact:     domain.CategoryContact,
	RoleMovement:    domain.CategoryMovement,
}

var diacriticRoles = map[Role]domain.Category{
	RoleSymmetryDiacritic:    domain.CategorySymmetry,
	RoleHandshapeDiacritic:   domain.CategoryHandshape,
	RoleOrientationDiacritic: domain.CategoryOrientation,
	RoleLocationDiacritic:    domain.CategoryLocation,
	RoleContactDiacritic:     domain.CategoryContact,
	RoleMovementDiacritic:    domain.CategoryMovement,
}

// IsValid reports whether r is a known role tag.
func (r Role) IsValid() bool {
	if _, ok := baseRoles[r]; ok {
		return true
	}
	if _, ok := diacriticRoles[r]; ok {
		return true
	}
	if r == RoleAmbiguousDiacritic {
		return true
	}
	for _, s := range structuralRoles {
		if s.role == r {
			return true
		}
	}
	return false
}
