package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/luca-patrignani/bluff-analysis/ledger"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS survey_blocks (
	block_index INTEGER PRIMARY KEY,
	created_at  INTEGER NOT NULL,
	prev_hash   TEXT    NOT NULL,
	hash        TEXT    NOT NULL UNIQUE,
	report      TEXT    NOT NULL,
	metadata    TEXT    NOT NULL
);`

type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) a sqlite database at path. Use
// ":memory:" for a throwaway database.
func OpenSQLite(ctx context.Context, path string) (Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("empty sqlite database path")
	}
	if path != ":memory:" {
		parent := filepath.Dir(path)
		if parent != "" && parent != "." {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return nil, err
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return nil, errors.Join(fmt.Errorf("create schema: %w", err), db.Close())
	}
	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) SaveBlock(ctx context.Context, b ledger.Block) error {
	r, err := toRow(b)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO survey_blocks(block_index, created_at, prev_hash, hash, report, metadata)
		VALUES (?, ?, ?, ?, ?, ?)
	`, r.Index, r.Timestamp, r.PrevHash, r.Hash, string(r.Report), string(r.Metadata))
	if err != nil {
		return fmt.Errorf("insert block %d: %w", b.Index, err)
	}
	return nil
}

func (s *sqliteStore) ListBlocks(ctx context.Context) ([]ledger.Block, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT block_index, created_at, prev_hash, hash, report, metadata
		  FROM survey_blocks
		 ORDER BY block_index
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blocks []ledger.Block
	for rows.Next() {
		var r row
		var report, meta string
		if err := rows.Scan(&r.Index, &r.Timestamp, &r.PrevHash, &r.Hash, &report, &meta); err != nil {
			return nil, err
		}
		r.Report, r.Metadata = []byte(report), []byte(meta)
		b, err := r.block()
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, rows.Err()
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
