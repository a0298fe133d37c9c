package corpus

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"

	"StockScope/internal/model"
)

// SQLiteStore persists the corpus snapshot to a SQLite database.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the snapshot database and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] corpus snapshot store opened: %s", dbPath)
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS descriptions (
		ticker      TEXT PRIMARY KEY,
		description TEXT NOT NULL
	)`)
	return err
}

// Load reads the stored snapshot. Any read failure is treated as "no cached
// corpus" and logged, never surfaced as an error.
func (s *SQLiteStore) Load() model.DescriptionCorpus {
	s.mu.Lock()
	defer s.mu.Unlock()

	corpus := model.DescriptionCorpus{}
	rows, err := s.db.Query(`SELECT ticker, description FROM descriptions`)
	if err != nil {
		log.Printf("[WARN] load corpus snapshot: %v", err)
		return corpus
	}
	defer rows.Close()

	for rows.Next() {
		var ticker, description string
		if err := rows.Scan(&ticker, &description); err != nil {
			log.Printf("[WARN] scan corpus snapshot row: %v", err)
			return model.DescriptionCorpus{}
		}
		corpus[ticker] = description
	}
	if err := rows.Err(); err != nil {
		log.Printf("[WARN] read corpus snapshot: %v", err)
		return model.DescriptionCorpus{}
	}
	return corpus
}

// Save replaces the stored snapshot with the given corpus in one transaction.
func (s *SQLiteStore) Save(corpus model.DescriptionCorpus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin snapshot tx: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM descriptions`); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear snapshot: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO descriptions (ticker, description) VALUES (?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare snapshot insert: %w", err)
	}
	defer stmt.Close()

	for ticker, description := range corpus {
		if _, err := stmt.Exec(ticker, description); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert snapshot row %s: %w", ticker, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
