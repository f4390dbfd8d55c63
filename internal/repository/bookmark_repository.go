package repository

import (
	"context"

	"tourcatalog/internal/domain/entity"
)

type BookmarkRepository interface {
	// ListByVisitor returns the visitor's bookmarks ordered by creation
	// time, newest first.
	ListByVisitor(ctx context.Context, visitorKey string) ([]*entity.Bookmark, error)
	// Create stores a bookmark. Creating a bookmark that already exists for
	// the same (visitorKey, contentID) pair is a no-op.
	Create(ctx context.Context, bookmark *entity.Bookmark) error
	// Delete removes the visitor's bookmark for a content ID.
	// Returns entity.ErrNotFound if no such bookmark exists.
	Delete(ctx context.Context, visitorKey, contentID string) error
	// Exists reports whether the visitor has bookmarked the content ID.
	Exists(ctx context.Context, visitorKey, contentID string) (bool, error)
	// Count returns the total number of stored bookmarks.
	Count(ctx context.Context) (int64, error)
}
