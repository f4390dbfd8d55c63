package entity

import "time"

// Bookmark marks a catalog place saved by a visitor. VisitorKey is an opaque
// client-generated key; there is no account system behind it.
type Bookmark struct {
	ID         int64
	VisitorKey string
	ContentID  string // normalized catalog identifier
	Title      string // denormalized for list rendering without a catalog round trip
	Category   string
	CreatedAt  time.Time
}

// Validate checks the bookmark fields.
func (b *Bookmark) Validate() error {
	if b.VisitorKey == "" {
		return &ValidationError{Field: "visitorKey", Message: "is required"}
	}
	if b.ContentID == "" {
		return &ValidationError{Field: "contentID", Message: "is required"}
	}
	if b.Title == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	return nil
}
