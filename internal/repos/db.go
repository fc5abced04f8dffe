package repos

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// OpenDB opens the process-wide connection pool and makes sure the schema
// exists. Call it once at startup and inject the handle everywhere.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

CREATE TABLE IF NOT EXISTS items(
  id          TEXT PRIMARY KEY,
  name        TEXT    NOT NULL DEFAULT 'Unnamed Item',
  description TEXT    NOT NULL DEFAULT 'No description provided',
  quantity    INTEGER NOT NULL DEFAULT 1 CHECK (quantity >= 0),
  unit_price  NUMERIC NOT NULL DEFAULT 0 CHECK (unit_price >= 0),
  category    TEXT    NOT NULL DEFAULT 'General',
  date        TEXT    NOT NULL DEFAULT CURRENT_TIMESTAMP,
  owner_id    TEXT    NOT NULL DEFAULT 'unassigned',
  created_at  TEXT    NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at  TEXT    NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Reserved for filtered queries; no read path uses them yet.
CREATE INDEX IF NOT EXISTS idx_items_owner    ON items(owner_id);
CREATE INDEX IF NOT EXISTS idx_items_date     ON items(date);
CREATE INDEX IF NOT EXISTS idx_items_category ON items(category);
`
	_, err := db.Exec(schema)
	return err
}
