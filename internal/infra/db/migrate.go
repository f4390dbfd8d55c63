package db

import "database/sql"

// MigrateUp creates the schema. All statements are idempotent so the
// migration can run on every startup.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS pet_policies (
    content_id  TEXT PRIMARY KEY,
    allowed     BOOLEAN NOT NULL,
    size_class  SMALLINT NOT NULL DEFAULT 0,
    max_count   INTEGER NOT NULL DEFAULT 0,
    notes       TEXT NOT NULL DEFAULT '',
    category    VARCHAR(10) NOT NULL DEFAULT '',
    area_code   VARCHAR(10) NOT NULL DEFAULT '',
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS bookmarks (
    id          SERIAL PRIMARY KEY,
    visitor_key TEXT NOT NULL,
    content_id  TEXT NOT NULL,
    title       TEXT NOT NULL,
    category    VARCHAR(10) NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE(visitor_key, content_id)
)`); err != nil {
		return err
	}

	indexes := []string{
		// scoped bulk lookups during annotation resolution
		`CREATE INDEX IF NOT EXISTS idx_pet_policies_area_code ON pet_policies(area_code)`,
		`CREATE INDEX IF NOT EXISTS idx_pet_policies_category ON pet_policies(category)`,
		// stats dashboard filters on allowed
		`CREATE INDEX IF NOT EXISTS idx_pet_policies_allowed ON pet_policies(allowed) WHERE allowed = TRUE`,
		// per-visitor bookmark listing, newest first
		`CREATE INDEX IF NOT EXISTS idx_bookmarks_visitor_key ON bookmarks(visitor_key, created_at DESC)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}
	return nil
}

// MigrateDown removes the schema. Use with caution: this deletes all data.
func MigrateDown(db *sql.DB) error {
	dropStatements := []string{
		`DROP TABLE IF EXISTS bookmarks`,
		`DROP TABLE IF EXISTS pet_policies`,
	}
	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
