// Package annotation provides use cases for managing pet-policy annotations:
// submitting community- or operator-sourced policies, correcting them, and
// looking them up for individual places.
package annotation

import "errors"

// Sentinel errors for annotation use case operations.
var (
	// ErrPolicyNotFound indicates that no policy is stored for the
	// requested content ID.
	ErrPolicyNotFound = errors.New("pet policy not found")

	// ErrInvalidContentID indicates that the content identifier was blank
	// after normalization.
	ErrInvalidContentID = errors.New("invalid content ID")
)
