package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// DB is a SQLite-backed store. Like File, values are cached in memory;
// Flush writes them back in one transaction and records a save revision.
type DB struct {
	db     *sql.DB
	values map[string]string
}

// Open opens (or creates) the SQLite database at path with WAL mode and
// recommended pragmas, runs migrations, and loads all stored settings.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// Verify connection.
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	st := &DB{db: db, values: map[string]string{}}
	if _, err := st.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := st.loadAll(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return st, nil
}

func (st *DB) loadAll() error {
	rows, err := st.db.Query(`SELECT key, value FROM settings`)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return err
		}
		st.values[k] = v
	}
	return rows.Err()
}

// Get returns the stored value for key, or fallback when absent.
func (st *DB) Get(key, fallback string) string {
	if v, ok := st.values[key]; ok {
		return v
	}
	return fallback
}

// Set stores value under key.
func (st *DB) Set(key, value string) {
	st.values[key] = value
}

// Len returns the number of stored keys.
func (st *DB) Len() int { return len(st.values) }

// Flush upserts every cached value in one transaction and records a
// revision row identifying the save.
func (st *DB) Flush() error {
	tx, err := st.db.Begin()
	if err != nil {
		return err
	}
	now := time.Now().UnixMilli()
	for k, v := range st.values {
		if _, err := tx.Exec(`
			INSERT INTO settings (key, value, updated_at)
			VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET
				value = excluded.value,
				updated_at = excluded.updated_at`,
			k, v, now); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("upsert %s: %w", k, err)
		}
	}
	if _, err := tx.Exec(`INSERT INTO revisions (id, saved_at, entries) VALUES (?, ?, ?)`,
		uuid.New().String(), now, len(st.values)); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("record revision: %w", err)
	}
	return tx.Commit()
}

// Revision records one Flush.
type Revision struct {
	ID      string
	SavedAt int64
	Entries int
}

// Revisions returns past saves, newest first.
func (st *DB) Revisions(limit int) ([]Revision, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := st.db.Query(`
		SELECT id, saved_at, entries
		FROM revisions
		ORDER BY saved_at DESC, id
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var revs []Revision
	for rows.Next() {
		var r Revision
		if err := rows.Scan(&r.ID, &r.SavedAt, &r.Entries); err != nil {
			return nil, err
		}
		revs = append(revs, r)
	}
	return revs, rows.Err()
}

// Close closes the underlying database.
func (st *DB) Close() error {
	return st.db.Close()
}
