package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tourcatalog/internal/domain/entity"
	"tourcatalog/internal/observability/metrics"
	"tourcatalog/internal/repository"
)

type BookmarkRepo struct {
	db *sql.DB
}

func NewBookmarkRepo(db *sql.DB) repository.BookmarkRepository {
	return &BookmarkRepo{db: db}
}

func (repo *BookmarkRepo) ListByVisitor(ctx context.Context, visitorKey string) ([]*entity.Bookmark, error) {
	const query = `
SELECT id, visitor_key, content_id, title, category, created_at
FROM bookmarks
WHERE visitor_key = $1
ORDER BY created_at DESC`

	start := time.Now()
	rows, err := repo.db.QueryContext(ctx, query, visitorKey)
	metrics.RecordDBQuery("bookmark_list", time.Since(start))
	if err != nil {
		metrics.RecordDBError("bookmark_list")
		return nil, fmt.Errorf("ListByVisitor: %w", err)
	}
	defer func() { _ = rows.Close() }()

	bookmarks := make([]*entity.Bookmark, 0, 50)
	for rows.Next() {
		var b entity.Bookmark
		if err := rows.Scan(&b.ID, &b.VisitorKey, &b.ContentID, &b.Title,
			&b.Category, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListByVisitor: Scan: %w", err)
		}
		bookmarks = append(bookmarks, &b)
	}
	return bookmarks, rows.Err()
}

func (repo *BookmarkRepo) Create(ctx context.Context, bookmark *entity.Bookmark) error {
	const query = `
INSERT INTO bookmarks (visitor_key, content_id, title, category)
VALUES ($1, $2, $3, $4)
ON CONFLICT (visitor_key, content_id) DO NOTHING
RETURNING id, created_at`

	start := time.Now()
	err := repo.db.QueryRowContext(ctx, query,
		bookmark.VisitorKey, bookmark.ContentID, bookmark.Title, bookmark.Category).
		Scan(&bookmark.ID, &bookmark.CreatedAt)
	metrics.RecordDBQuery("bookmark_create", time.Since(start))
	if err == sql.ErrNoRows {
		// conflict: the bookmark already exists
		return nil
	}
	if err != nil {
		metrics.RecordDBError("bookmark_create")
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *BookmarkRepo) Delete(ctx context.Context, visitorKey, contentID string) error {
	start := time.Now()
	res, err := repo.db.ExecContext(ctx,
		"DELETE FROM bookmarks WHERE visitor_key = $1 AND content_id = $2",
		visitorKey, contentID)
	metrics.RecordDBQuery("bookmark_delete", time.Since(start))
	if err != nil {
		metrics.RecordDBError("bookmark_delete")
		return fmt.Errorf("Delete: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	if affected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (repo *BookmarkRepo) Exists(ctx context.Context, visitorKey, contentID string) (bool, error) {
	var exists bool
	start := time.Now()
	err := repo.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM bookmarks WHERE visitor_key = $1 AND content_id = $2)",
		visitorKey, contentID).Scan(&exists)
	metrics.RecordDBQuery("bookmark_exists", time.Since(start))
	if err != nil {
		metrics.RecordDBError("bookmark_exists")
		return false, fmt.Errorf("Exists: %w", err)
	}
	return exists, nil
}

func (repo *BookmarkRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	start := time.Now()
	err := repo.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM bookmarks").Scan(&count)
	metrics.RecordDBQuery("bookmark_count", time.Since(start))
	if err != nil {
		metrics.RecordDBError("bookmark_count")
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}
