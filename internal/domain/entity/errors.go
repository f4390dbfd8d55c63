package entity

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that no stored record exists for the requested
// identifier. Repositories return it for missing pet policies and bookmarks
// alike; callers translate it to their own sentinel or a 404.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a rejected field on a submitted entity. Handlers
// match it with errors.As to turn domain rejections into 400 responses that
// name the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
