package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"tourcatalog/internal/domain/entity"
	pg "tourcatalog/internal/infra/adapter/persistence/postgres"
	"tourcatalog/internal/repository"
)

/* ─────────────────────────── helpers ─────────────────────────── */

func policyRows(policies ...*entity.PetPolicy) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"content_id", "allowed", "size_class", "max_count",
		"notes", "category", "area_code", "updated_at",
	})
	for _, p := range policies {
		rows.AddRow(p.ContentID, p.Allowed, p.SizeClass, p.MaxCount,
			p.Notes, p.Category, p.AreaCode, p.UpdatedAt)
	}
	return rows
}

func samplePolicy() *entity.PetPolicy {
	return &entity.PetPolicy{
		ContentID: "125266",
		Allowed:   true,
		SizeClass: entity.SizeClassMedium,
		MaxCount:  2,
		Notes:     "목줄 필수",
		Category:  "39",
		AreaCode:  "6",
		UpdatedAt: time.Date(2025, 7, 19, 0, 0, 0, 0, time.UTC),
	}
}

/* ─────────────────────────── Get ─────────────────────────── */

func TestPetPolicyRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	want := samplePolicy()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT content_id")).
		WithArgs("125266").
		WillReturnRows(policyRows(want))

	repo := pg.NewPetPolicyRepo(db)
	got, err := repo.Get(context.Background(), "125266")
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPetPolicyRepo_GetMissingIsNotAnError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT content_id")).
		WithArgs("999").
		WillReturnRows(policyRows())

	repo := pg.NewPetPolicyRepo(db)
	got, err := repo.Get(context.Background(), "999")
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if got != nil {
		t.Fatalf("got = %+v, want nil", got)
	}
}

/* ─────────────────────────── List ─────────────────────────── */

func TestPetPolicyRepo_ListUnfiltered(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM pet_policies").
		WillReturnRows(policyRows(samplePolicy()))

	repo := pg.NewPetPolicyRepo(db)
	got, err := repo.List(context.Background(), repository.PetPolicyFilter{})
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPetPolicyRepo_ListScopedFilter(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	allowed := true
	mock.ExpectQuery(regexp.QuoteMeta(
		"WHERE area_code = $1 AND category IN ($2, $3) AND allowed = $4")).
		WithArgs("6", "12", "39", true).
		WillReturnRows(policyRows(samplePolicy()))

	repo := pg.NewPetPolicyRepo(db)
	_, err := repo.List(context.Background(), repository.PetPolicyFilter{
		AreaCode:   "6",
		Categories: []string{"12", "39"},
		Allowed:    &allowed,
	})
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPetPolicyRepo_ListEmptyScope(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM pet_policies").
		WillReturnRows(policyRows())

	repo := pg.NewPetPolicyRepo(db)
	got, err := repo.List(context.Background(), repository.PetPolicyFilter{AreaCode: "99"})
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

/* ─────────────────────────── Upsert / Delete ─────────────────────────── */

func TestPetPolicyRepo_Upsert(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	p := samplePolicy()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO pet_policies")).
		WithArgs(p.ContentID, p.Allowed, p.SizeClass, p.MaxCount,
			p.Notes, p.Category, p.AreaCode).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewPetPolicyRepo(db)
	if err := repo.Upsert(context.Background(), p); err != nil {
		t.Fatalf("Upsert err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPetPolicyRepo_DeleteMissing(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM pet_policies")).
		WithArgs("999").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := pg.NewPetPolicyRepo(db)
	err := repo.Delete(context.Background(), "999")
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

/* ─────────────────────────── Counts ─────────────────────────── */

func TestPetPolicyRepo_CountByCategory(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	rows := sqlmock.NewRows([]string{"category", "count", "count_allowed"}).
		AddRow("12", int64(10), int64(4)).
		AddRow("39", int64(25), int64(18))
	mock.ExpectQuery("GROUP BY category").WillReturnRows(rows)

	repo := pg.NewPetPolicyRepo(db)
	got, err := repo.CountByCategory(context.Background())
	if err != nil {
		t.Fatalf("CountByCategory err=%v", err)
	}
	want := []repository.PetPolicyCategoryCount{
		{Category: "12", Total: 10, Allowed: 4},
		{Category: "39", Total: 25, Allowed: 18},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestPetPolicyRepo_CountError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("SELECT COUNT").WillReturnError(sql.ErrConnDone)

	repo := pg.NewPetPolicyRepo(db)
	if _, err := repo.Count(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
