package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/luca-patrignani/bluff-analysis/ledger"
)

type memoryStore struct {
	mu     sync.RWMutex
	blocks []ledger.Block
}

// NewMemory returns a Store that keeps blocks in process memory.
func NewMemory() Store {
	return &memoryStore{}
}

func (m *memoryStore) SaveBlock(_ context.Context, b ledger.Block) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.blocks {
		if existing.Index == b.Index {
			return fmt.Errorf("block %d already stored", b.Index)
		}
	}
	m.blocks = append(m.blocks, b)
	slices.SortFunc(m.blocks, func(a, b ledger.Block) int { return a.Index - b.Index })
	return nil
}

func (m *memoryStore) ListBlocks(context.Context) ([]ledger.Block, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.blocks), nil
}

func (m *memoryStore) Close() error { return nil }
