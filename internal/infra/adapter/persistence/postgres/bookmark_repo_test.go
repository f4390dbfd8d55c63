package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"tourcatalog/internal/domain/entity"
	pg "tourcatalog/internal/infra/adapter/persistence/postgres"
)

func bookmarkRows(bs ...*entity.Bookmark) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "visitor_key", "content_id", "title", "category", "created_at",
	})
	for _, b := range bs {
		rows.AddRow(b.ID, b.VisitorKey, b.ContentID, b.Title, b.Category, b.CreatedAt)
	}
	return rows
}

func TestBookmarkRepo_ListByVisitor(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM bookmarks").
		WithArgs("visitor-1").
		WillReturnRows(bookmarkRows(
			&entity.Bookmark{ID: 2, VisitorKey: "visitor-1", ContentID: "125267", Title: "광안리 식당", Category: "39", CreatedAt: now},
			&entity.Bookmark{ID: 1, VisitorKey: "visitor-1", ContentID: "125266", Title: "해운대 카페", Category: "39", CreatedAt: now.Add(-time.Hour)},
		))

	repo := pg.NewBookmarkRepo(db)
	got, err := repo.ListByVisitor(context.Background(), "visitor-1")
	if err != nil {
		t.Fatalf("ListByVisitor err=%v", err)
	}
	if len(got) != 2 || got[0].ContentID != "125267" {
		t.Fatalf("unexpected result: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestBookmarkRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookmarks")).
		WithArgs("visitor-1", "125266", "해운대 카페", "39").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), now))

	repo := pg.NewBookmarkRepo(db)
	b := &entity.Bookmark{VisitorKey: "visitor-1", ContentID: "125266", Title: "해운대 카페", Category: "39"}
	if err := repo.Create(context.Background(), b); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if b.ID != 7 {
		t.Fatalf("ID = %d, want 7", b.ID)
	}
}

func TestBookmarkRepo_CreateDuplicateIsNoop(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	// ON CONFLICT DO NOTHING returns no row for an existing pair.
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookmarks")).
		WithArgs("visitor-1", "125266", "해운대 카페", "39").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}))

	repo := pg.NewBookmarkRepo(db)
	b := &entity.Bookmark{VisitorKey: "visitor-1", ContentID: "125266", Title: "해운대 카페", Category: "39"}
	if err := repo.Create(context.Background(), b); err != nil {
		t.Fatalf("Create err=%v", err)
	}
}

func TestBookmarkRepo_DeleteMissing(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookmarks")).
		WithArgs("visitor-1", "999").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := pg.NewBookmarkRepo(db)
	err := repo.Delete(context.Background(), "visitor-1", "999")
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestBookmarkRepo_Exists(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("visitor-1", "125266").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	repo := pg.NewBookmarkRepo(db)
	ok, err := repo.Exists(context.Background(), "visitor-1", "125266")
	if err != nil {
		t.Fatalf("Exists err=%v", err)
	}
	if !ok {
		t.Fatal("Exists = false, want true")
	}
}
