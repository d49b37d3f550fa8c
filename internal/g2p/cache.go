package g2p

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Cache persists generated pronunciations in SQLite. Entries are keyed
// by word, language, and schema version, so a schema change invalidates
// previously cached results instead of silently reusing them.
type Cache struct {
	db *sql.DB
}

const cacheDDL = `
CREATE TABLE IF NOT EXISTS pronunciations (
	word           TEXT    NOT NULL,
	lang           TEXT    NOT NULL,
	schema_version TEXT    NOT NULL,
	rank           INTEGER NOT NULL,
	ipa            TEXT    NOT NULL,
	confidence     REAL    NOT NULL,
	PRIMARY KEY (word, lang, schema_version, rank)
)`

// OpenCache opens or creates the cache database at path.
func OpenCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open g2p cache: %w", err)
	}
	if _, err := db.Exec(cacheDDL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init g2p cache: %w", err)
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the cached pronunciations for a key, and whether any were
// found.
func (c *Cache) Get(ctx context.Context, word, lang, schemaVersion string) ([]Pronunciation, bool, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT ipa, confidence FROM pronunciations
		 WHERE word = ? AND lang = ? AND schema_version = ?
		 ORDER BY rank`,
		word, lang, schemaVersion)
	if err != nil {
		return nil, false, fmt.Errorf("query g2p cache: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Pronunciation
	for rows.Next() {
		var p Pronunciation
		if err := rows.Scan(&p.IPA, &p.Confidence); err != nil {
			return nil, false, fmt.Errorf("scan g2p cache row: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("read g2p cache: %w", err)
	}
	return out, len(out) > 0, nil
}

// Put stores pronunciations for a key, replacing any previous entry.
func (c *Cache) Put(ctx context.Context, word, lang, schemaVersion string, prons []Pronunciation) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin g2p cache tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM pronunciations WHERE word = ? AND lang = ? AND schema_version = ?`,
		word, lang, schemaVersion); err != nil {
		return fmt.Errorf("clear g2p cache entry: %w", err)
	}
	for rank, p := range prons {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO pronunciations (word, lang, schema_version, rank, ipa, confidence)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			word, lang, schemaVersion, rank, p.IPA, p.Confidence); err != nil {
			return fmt.Errorf("insert g2p cache entry: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit g2p cache tx: %w", err)
	}
	return nil
}
