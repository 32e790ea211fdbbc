// Package storage provides a SQLite word database that can back the word pool.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// It holds input data only; no game state is ever written.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the word list.
type Store struct {
	db *sql.DB
}

// WordEntry represents a single stored word.
type WordEntry struct {
	ID        int64
	Word      string
	Length    int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS words (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			word TEXT NOT NULL UNIQUE,
			length INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_words_length ON words(length);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// AddWords inserts words in one transaction, skipping ones already stored.
// Words are lower-cased and trimmed; blanks are ignored.
// Returns the number of newly inserted words.
func (s *Store) AddWords(words []string) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	stmt, err := tx.Prepare("INSERT OR IGNORE INTO words (word, length) VALUES (?, ?)")
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		res, err := stmt.Exec(w, len([]rune(w)))
		if err != nil {
			return 0, fmt.Errorf("storage: cannot insert %q: %w", w, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit words: %w", err)
	}
	return inserted, nil
}

// Words returns all stored words in insertion order.
func (s *Store) Words() ([]string, error) {
	rows, err := s.db.Query("SELECT word FROM words ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query words: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		words = append(words, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return words, nil
}

// Entries returns stored words with metadata, longest first.
func (s *Store) Entries(limit int) ([]WordEntry, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.Query(
		`SELECT id, word, length, created_at
		 FROM words
		 ORDER BY length DESC, word
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query words: %w", err)
	}
	defer rows.Close()

	var entries []WordEntry
	for rows.Next() {
		var e WordEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Word, &e.Length, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// CountByLength returns how many words are stored for each length.
func (s *Store) CountByLength() (map[int]int, error) {
	rows, err := s.db.Query("SELECT length, COUNT(*) FROM words GROUP BY length")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count words: %w", err)
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var length, n int
		if err := rows.Scan(&length, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan count row: %w", err)
		}
		counts[length] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return counts, nil
}

// ClearWords deletes every stored word.
func (s *Store) ClearWords() error {
	if _, err := s.db.Exec("DELETE FROM words"); err != nil {
		return fmt.Errorf("storage: cannot clear words: %w", err)
	}
	return nil
}
