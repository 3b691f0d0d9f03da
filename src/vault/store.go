package vault

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Store is a SQLite-backed credential vault with the same redaction contract
// as List: secrets go in, only entries come out.
type Store struct {
	db *sql.DB
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS credentials (
  id          TEXT PRIMARY KEY,
  name        TEXT NOT NULL,
  secret      TEXT NOT NULL,
  created_at  TIMESTAMP NOT NULL
);
`

// Open opens (and creates if needed) a vault database at dbPath with WAL
// mode enabled.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=30000")
	if err != nil {
		return nil, fmt.Errorf("open vault: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping vault: %w", err)
	}
	if _, err := db.Exec(schemaDDL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate vault: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores a new credential and returns its redacted entry.
func (s *Store) Put(name, secret string) (Entry, error) {
	c := Credential{
		ID:        uuid.NewString(),
		Name:      name,
		Secret:    secret,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.Exec(
		`INSERT INTO credentials (id, name, secret, created_at) VALUES (?, ?, ?, ?)`,
		c.ID, c.Name, c.Secret, c.CreatedAt,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("put credential: %w", err)
	}
	return c.redacted(), nil
}

// LookupSecret returns the redacted entry of the first stored credential
// whose secret equals the input exactly, scanning in insertion order.
// Absence is reported in the boolean, not as an error; the error is reserved
// for storage failures.
func (s *Store) LookupSecret(secret string) (Entry, bool, error) {
	row := s.db.QueryRow(
		`SELECT id, name, created_at FROM credentials WHERE secret = ? ORDER BY rowid LIMIT 1`,
		secret,
	)
	var e Entry
	if err := row.Scan(&e.ID, &e.Name, &e.CreatedAt); errors.Is(err, sql.ErrNoRows) {
		return Entry{}, false, nil
	} else if err != nil {
		return Entry{}, false, fmt.Errorf("lookup credential: %w", err)
	}
	return e, true, nil
}

// All returns the redacted entries of every stored credential in insertion
// order. The secret column is never selected.
func (s *Store) All() ([]Entry, error) {
	rows, err := s.db.Query(`SELECT id, name, created_at FROM credentials ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list credentials: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Name, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan credential: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
