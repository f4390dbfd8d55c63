package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"tourcatalog/internal/domain/entity"
	"tourcatalog/internal/observability/metrics"
	"tourcatalog/internal/repository"
)

type PetPolicyRepo struct {
	db *sql.DB
}

func NewPetPolicyRepo(db *sql.DB) repository.PetPolicyRepository {
	return &PetPolicyRepo{db: db}
}

const petPolicyColumns = "content_id, allowed, size_class, max_count, notes, category, area_code, updated_at"

func (repo *PetPolicyRepo) List(ctx context.Context, filter repository.PetPolicyFilter) ([]*entity.PetPolicy, error) {
	query := "SELECT " + petPolicyColumns + " FROM pet_policies"
	where, args := buildPetPolicyWhere(filter)
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY content_id"

	start := time.Now()
	rows, err := repo.db.QueryContext(ctx, query, args...)
	metrics.RecordDBQuery("pet_policy_list", time.Since(start))
	if err != nil {
		metrics.RecordDBError("pet_policy_list")
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	policies := make([]*entity.PetPolicy, 0, 100)
	for rows.Next() {
		p, err := scanPetPolicy(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		policies = append(policies, p)
	}
	return policies, rows.Err()
}

func (repo *PetPolicyRepo) Get(ctx context.Context, contentID string) (*entity.PetPolicy, error) {
	const query = "SELECT " + petPolicyColumns + " FROM pet_policies WHERE content_id = $1"

	start := time.Now()
	row := repo.db.QueryRowContext(ctx, query, contentID)
	metrics.RecordDBQuery("pet_policy_get", time.Since(start))

	p, err := scanPetPolicy(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		metrics.RecordDBError("pet_policy_get")
		return nil, fmt.Errorf("Get: %w", err)
	}
	return p, nil
}

func (repo *PetPolicyRepo) Upsert(ctx context.Context, policy *entity.PetPolicy) error {
	const query = `
INSERT INTO pet_policies (content_id, allowed, size_class, max_count, notes, category, area_code, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now())
ON CONFLICT (content_id) DO UPDATE SET
    allowed    = EXCLUDED.allowed,
    size_class = EXCLUDED.size_class,
    max_count  = EXCLUDED.max_count,
    notes      = EXCLUDED.notes,
    category   = EXCLUDED.category,
    area_code  = EXCLUDED.area_code,
    updated_at = now()`

	start := time.Now()
	_, err := repo.db.ExecContext(ctx, query,
		policy.ContentID, policy.Allowed, policy.SizeClass, policy.MaxCount,
		policy.Notes, policy.Category, policy.AreaCode)
	metrics.RecordDBQuery("pet_policy_upsert", time.Since(start))
	if err != nil {
		metrics.RecordDBError("pet_policy_upsert")
		return fmt.Errorf("Upsert: %w", err)
	}
	return nil
}

func (repo *PetPolicyRepo) Delete(ctx context.Context, contentID string) error {
	start := time.Now()
	res, err := repo.db.ExecContext(ctx, "DELETE FROM pet_policies WHERE content_id = $1", contentID)
	metrics.RecordDBQuery("pet_policy_delete", time.Since(start))
	if err != nil {
		metrics.RecordDBError("pet_policy_delete")
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

func (repo *PetPolicyRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	start := time.Now()
	err := repo.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM pet_policies").Scan(&count)
	metrics.RecordDBQuery("pet_policy_count", time.Since(start))
	if err != nil {
		metrics.RecordDBError("pet_policy_count")
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *PetPolicyRepo) CountByCategory(ctx context.Context) ([]repository.PetPolicyCategoryCount, error) {
	const query = `
SELECT category, COUNT(*), COUNT(*) FILTER (WHERE allowed)
FROM pet_policies
GROUP BY category
ORDER BY category`

	start := time.Now()
	rows, err := repo.db.QueryContext(ctx, query)
	metrics.RecordDBQuery("pet_policy_count_by_category", time.Since(start))
	if err != nil {
		metrics.RecordDBError("pet_policy_count_by_category")
		return nil, fmt.Errorf("CountByCategory: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []repository.PetPolicyCategoryCount
	for rows.Next() {
		var c repository.PetPolicyCategoryCount
		if err := rows.Scan(&c.Category, &c.Total, &c.Allowed); err != nil {
			return nil, fmt.Errorf("CountByCategory: Scan: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (repo *PetPolicyRepo) CountByArea(ctx context.Context) ([]repository.PetPolicyAreaCount, error) {
	const query = `
SELECT area_code, COUNT(*), COUNT(*) FILTER (WHERE allowed)
FROM pet_policies
GROUP BY area_code
ORDER BY area_code`

	start := time.Now()
	rows, err := repo.db.QueryContext(ctx, query)
	metrics.RecordDBQuery("pet_policy_count_by_area", time.Since(start))
	if err != nil {
		metrics.RecordDBError("pet_policy_count_by_area")
		return nil, fmt.Errorf("CountByArea: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []repository.PetPolicyAreaCount
	for rows.Next() {
		var c repository.PetPolicyAreaCount
		if err := rows.Scan(&c.AreaCode, &c.Total, &c.Allowed); err != nil {
			return nil, fmt.Errorf("CountByArea: Scan: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// buildPetPolicyWhere assembles the WHERE clause for a filter. Placeholders
// are numbered in argument order; an IN list is expanded per category.
func buildPetPolicyWhere(filter repository.PetPolicyFilter) (string, []any) {
	var conds []string
	var args []any
	if filter.AreaCode != "" {
		args = append(args, filter.AreaCode)
		conds = append(conds, fmt.Sprintf("area_code = $%d", len(args)))
	}
	if len(filter.Categories) > 0 {
		placeholders := make([]string, 0, len(filter.Categories))
		for _, c := range filter.Categories {
			args = append(args, c)
			placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
		}
		conds = append(conds, "category IN ("+strings.Join(placeholders, ", ")+")")
	}
	if filter.Allowed != nil {
		args = append(args, *filter.Allowed)
		conds = append(conds, fmt.Sprintf("allowed = $%d", len(args)))
	}
	return strings.Join(conds, " AND "), args
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPetPolicy(row rowScanner) (*entity.PetPolicy, error) {
	var p entity.PetPolicy
	err := row.Scan(&p.ContentID, &p.Allowed, &p.SizeClass, &p.MaxCount,
		&p.Notes, &p.Category, &p.AreaCode, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
