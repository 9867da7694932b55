// Package store persists the survey ledger.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/luca-patrignani/bluff-analysis/ledger"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Store saves and reloads ledger blocks.
type Store interface {
	SaveBlock(ctx context.Context, b ledger.Block) error
	// ListBlocks returns every stored block ordered by index.
	ListBlocks(ctx context.Context) ([]ledger.Block, error)
	Close() error
}

// Options selects a backend. DSN is a file path for sqlite and a connection
// string for postgres.
type Options struct {
	Driver string
	DSN    string
}

// Open connects to the configured backend and prepares its schema.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch NormalizeDriver(opts.Driver) {
	case DriverMemory:
		return NewMemory(), nil
	case DriverSQLite:
		return OpenSQLite(ctx, opts.DSN)
	case DriverPostgres:
		return OpenPostgres(ctx, opts.DSN)
	default:
		return nil, fmt.Errorf("invalid store driver %q (supported: %s, %s, %s)",
			opts.Driver, DriverMemory, DriverSQLite, DriverPostgres)
	}
}

// NormalizeDriver maps a driver name or one of its aliases ("mem",
// "sqlite3", "pg", "postgresql") to DriverMemory, DriverSQLite or
// DriverPostgres. Unknown names are returned lower-cased.
func NormalizeDriver(raw string) string {
	switch d := strings.ToLower(strings.TrimSpace(raw)); d {
	case "", "mem":
		return DriverMemory
	case "sqlite3":
		return DriverSQLite
	case "postgresql", "pg":
		return DriverPostgres
	default:
		return d
	}
}

// LoadChain reads every block from s and rebuilds a verified chain. An empty
// store gets a fresh genesis block, which is saved.
func LoadChain(ctx context.Context, s Store) (*ledger.Blockchain, error) {
	blocks, err := s.ListBlocks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list blocks: %w", err)
	}
	bc, err := ledger.Load(blocks)
	if err != nil {
		return nil, fmt.Errorf("stored ledger: %w", err)
	}
	if len(blocks) == 0 {
		if err := s.SaveBlock(ctx, bc.GetLatest()); err != nil {
			return nil, fmt.Errorf("save genesis: %w", err)
		}
	}
	return bc, nil
}

// row is the column layout shared by the SQL backends.
type row struct {
	Index     int
	Timestamp int64
	PrevHash  string
	Hash      string
	Report    []byte
	Metadata  []byte
}

func toRow(b ledger.Block) (row, error) {
	report, err := json.Marshal(b.Report)
	if err != nil {
		return row{}, fmt.Errorf("encode report: %w", err)
	}
	meta, err := json.Marshal(b.Metadata)
	if err != nil {
		return row{}, fmt.Errorf("encode metadata: %w", err)
	}
	return row{b.Index, b.Timestamp, b.PrevHash, b.Hash, report, meta}, nil
}

func (r row) block() (ledger.Block, error) {
	b := ledger.Block{Index: r.Index, Timestamp: r.Timestamp, PrevHash: r.PrevHash, Hash: r.Hash}
	if err := json.Unmarshal(r.Report, &b.Report); err != nil {
		return ledger.Block{}, fmt.Errorf("decode report of block %d: %w", r.Index, err)
	}
	if err := json.Unmarshal(r.Metadata, &b.Metadata); err != nil {
		return ledger.Block{}, fmt.Errorf("decode metadata of block %d: %w", r.Index, err)
	}
	return b, nil
}
