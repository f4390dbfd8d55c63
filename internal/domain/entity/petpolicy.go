package entity

import (
	"fmt"
	"time"
)

// Pet size classes, ordered so that a larger class admits everything below it.
// SizeClassUnknown means the contributor did not specify a size limit.
const (
	SizeClassUnknown = 0
	SizeClassSmall   = 1
	SizeClassMedium  = 2
	SizeClassLarge   = 3
)

// PetPolicy is the user-contributed pet-friendliness record attached to a
// catalog place. Coverage is sparse: most places have no record at all, and
// absence does not imply the place disallows pets.
type PetPolicy struct {
	ContentID string // normalized catalog identifier
	Allowed   bool
	SizeClass int    // largest admitted size class, SizeClassUnknown if unspecified
	MaxCount  int    // maximum number of animals admitted, 0 if unspecified
	Notes     string
	// Category and AreaCode are denormalized from the place at submission
	// time so bulk queries can be scoped without a catalog round trip.
	Category  string
	AreaCode  string
	UpdatedAt time.Time
}

// Validate checks the policy fields for contributor input errors.
// Returns a ValidationError describing the first invalid field.
func (p *PetPolicy) Validate() error {
	if p.ContentID == "" {
		return &ValidationError{Field: "contentID", Message: "is required"}
	}
	if p.SizeClass < SizeClassUnknown || p.SizeClass > SizeClassLarge {
		return &ValidationError{
			Field:   "sizeClass",
			Message: fmt.Sprintf("must be between %d and %d", SizeClassUnknown, SizeClassLarge),
		}
	}
	if p.MaxCount < 0 {
		return &ValidationError{Field: "maxCount", Message: "cannot be negative"}
	}
	if len(p.Notes) > maxNotesLength {
		return &ValidationError{
			Field:   "notes",
			Message: fmt.Sprintf("must not exceed %d characters", maxNotesLength),
		}
	}
	return nil
}

// maxNotesLength bounds contributor-supplied notes.
const maxNotesLength = 2000

// AdmitsSize reports whether the policy admits pets of at least the given
// size class. An unknown size class on the record is treated as admitting
// any size: contributors who leave it blank typically mean "no size limit".
func (p *PetPolicy) AdmitsSize(minClass int) bool {
	if minClass <= SizeClassUnknown || p.SizeClass == SizeClassUnknown {
		return true
	}
	return p.SizeClass >= minClass
}

// AdmitsCount reports whether the policy admits at least n animals.
// MaxCount of 0 means no stated limit.
func (p *PetPolicy) AdmitsCount(n int) bool {
	if n <= 0 || p.MaxCount == 0 {
		return true
	}
	return p.MaxCount >= n
}
