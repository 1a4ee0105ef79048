package domain

import (
	"time"

	"github.com/google/uuid"
)

// SignEntry is a stored transcription with its gloss and parse.
type SignEntry struct {
	ID        uuid.UUID
	Gloss     string
	Text      string
	Source    string
	Sign      Sign
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// IsDeleted reports whether the entry was soft-deleted.
func (e *SignEntry) IsDeleted() bool {
	return e.DeletedAt != nil
}

// SignFilter holds search and pagination parameters for listing entries.
type SignFilter struct {
	Search *string
	Source *string
	Limit  int
	Offset int
}

// ScoredEntry is an entry paired with its distance to a query sign.
type ScoredEntry struct {
	Entry    SignEntry
	Distance float64
}
