package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/luca-patrignani/bluff-analysis/ledger"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS survey_blocks (
	block_index INTEGER PRIMARY KEY,
	created_at  BIGINT  NOT NULL,
	prev_hash   TEXT    NOT NULL,
	hash        TEXT    NOT NULL UNIQUE,
	report      JSONB   NOT NULL,
	metadata    JSONB   NOT NULL
);`

type postgresStore struct {
	pool *pgxpool.Pool
}

// OpenPostgres connects to postgres with a pgx pool and prepares the schema.
func OpenPostgres(ctx context.Context, dsn string) (Store, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("empty postgres connection string")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &postgresStore{pool: pool}, nil
}

func (s *postgresStore) SaveBlock(ctx context.Context, b ledger.Block) error {
	r, err := toRow(b)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO survey_blocks(block_index, created_at, prev_hash, hash, report, metadata)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, r.Index, r.Timestamp, r.PrevHash, r.Hash, string(r.Report), string(r.Metadata))
	if err != nil {
		return fmt.Errorf("insert block %d: %w", b.Index, err)
	}
	return nil
}

func (s *postgresStore) ListBlocks(ctx context.Context) ([]ledger.Block, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT block_index, created_at, prev_hash, hash, report::text, metadata::text
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

func (s *postgresStore) Close() error {
	s.pool.Close()
	return nil
}
