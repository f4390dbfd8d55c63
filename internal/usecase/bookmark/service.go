// Package bookmark provides use cases for per-visitor place bookmarks.
// Visitors are identified by an opaque client-generated key; there are no
// accounts.
package bookmark

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tourcatalog/internal/domain/entity"
	"tourcatalog/internal/repository"
	"tourcatalog/internal/utils/identifier"
)

// Sentinel errors for bookmark use case operations.
var (
	ErrBookmarkNotFound = errors.New("bookmark not found")
	ErrInvalidInput     = errors.New("invalid bookmark input")
)

// AddInput represents the input parameters for adding a bookmark.
type AddInput struct {
	VisitorKey string
	ContentID  string
	Title      string
	Category   string
}

// Service provides bookmark use cases.
type Service struct {
	Repo repository.BookmarkRepository
}

// List returns the visitor's bookmarks, newest first.
func (s *Service) List(ctx context.Context, visitorKey string) ([]*entity.Bookmark, error) {
	if strings.TrimSpace(visitorKey) == "" {
		return nil, ErrInvalidInput
	}
	bookmarks, err := s.Repo.ListByVisitor(ctx, visitorKey)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	return bookmarks, nil
}

// Add stores a bookmark. Adding an already bookmarked place is a no-op.
func (s *Service) Add(ctx context.Context, in AddInput) (*entity.Bookmark, error) {
	b := &entity.Bookmark{
		VisitorKey: strings.TrimSpace(in.VisitorKey),
		ContentID:  identifier.Normalize(in.ContentID),
		Title:      strings.TrimSpace(in.Title),
		Category:   in.Category,
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("add bookmark: %w", err)
	}
	return b, nil
}

// Remove deletes the visitor's bookmark for a place.
func (s *Service) Remove(ctx context.Context, visitorKey, contentID string) error {
	if strings.TrimSpace(visitorKey) == "" {
		return ErrInvalidInput
	}
	id := identifier.Normalize(contentID)
	if err := s.Repo.Delete(ctx, visitorKey, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrBookmarkNotFound
		}
		return fmt.Errorf("remove bookmark: %w", err)
	}
	return nil
}

// Exists reports whether the visitor has bookmarked the place.
func (s *Service) Exists(ctx context.Context, visitorKey, contentID string) (bool, error) {
	if strings.TrimSpace(visitorKey) == "" {
		return false, ErrInvalidInput
	}
	ok, err := s.Repo.Exists(ctx, visitorKey, identifier.Normalize(contentID))
	if err != nil {
		return false, fmt.Errorf("check bookmark: %w", err)
	}
	return ok, nil
}
