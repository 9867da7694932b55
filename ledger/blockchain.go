package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/luca-patrignani/bluff-analysis/analysis"
)

const genesisPrevHash = "0"

type Blockchain struct {
	mu     sync.RWMutex
	blocks []Block
	now    func() time.Time
}

// NewBlockchain creates a new blockchain with an initialized genesis block.
// The genesis block has index 0, previous hash "0" and an empty report.
func NewBlockchain() *Blockchain {
	bc := &Blockchain{now: time.Now}
	genesis := Block{
		Index:     0,
		Timestamp: bc.now().Unix(),
		PrevHash:  genesisPrevHash,
		Metadata:  Metadata{Source: "genesis"},
	}
	genesis.Hash = calculateHash(genesis)
	bc.blocks = append(bc.blocks, genesis)
	return bc
}

// Load rebuilds a blockchain from stored blocks and verifies it.
func Load(blocks []Block) (*Blockchain, error) {
	if len(blocks) == 0 {
		return NewBlockchain(), nil
	}
	bc := &Blockchain{blocks: slices.Clone(blocks), now: time.Now}
	if err := bc.Verify(); err != nil {
		return nil, err
	}
	return bc, nil
}

// Append records a report as a new block and returns it. The extra parameter
// can optionally contain additional metadata.
func (bc *Blockchain) Append(report analysis.Report, source string, extra ...map[string]string) (Block, error) {
	block := bc.Next(report, source, extra...)
	if err := bc.Commit(block); err != nil {
		return Block{}, err
	}
	return block, nil
}

// Next builds and hashes the block that would follow the latest one without
// adding it. Callers persist it first and then Commit it.
func (bc *Blockchain) Next(report analysis.Report, source string, extra ...map[string]string) Block {
	bc.mu.RLock()
	latest := bc.blocks[len(bc.blocks)-1]
	bc.mu.RUnlock()

	var extraMsg map[string]string
	if len(extra) > 0 {
		extraMsg = extra[0]
	}
	block := Block{
		Index:     latest.Index + 1,
		Timestamp: bc.now().Unix(),
		PrevHash:  latest.Hash,
		Report:    report,
		Metadata: Metadata{
			Source: source,
			Extra:  extraMsg,
		},
	}
	block.Hash = calculateHash(block)
	return block
}

// Commit appends a block built by Next. It fails if the block does not link
// to the current latest block.
func (bc *Blockchain) Commit(block Block) error {
	bc.mu.Lock()
	defer bc.mu.Unlock()
	if err := validateBlock(block, bc.blocks[len(bc.blocks)-1]); err != nil {
		return fmt.Errorf("invalid block: %w", err)
	}
	bc.blocks = append(bc.blocks, block)
	return nil
}

// GetLatest returns the most recently added block in the blockchain.
func (bc *Blockchain) GetLatest() Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	return bc.blocks[len(bc.blocks)-1]
}

// GetByIndex retrieves a block by its index in the chain. Returns an error if the index
// is out of range.
func (bc *Blockchain) GetByIndex(index int) (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if index < 0 || index >= len(bc.blocks) {
		return Block{}, fmt.Errorf("index %d out of range", index)
	}
	return bc.blocks[index], nil
}

// Blocks returns a copy of the chain, genesis first.
func (bc *Blockchain) Blocks() []Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	return slices.Clone(bc.blocks)
}

// Len returns the number of blocks including genesis.
func (bc *Blockchain) Len() int {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	return len(bc.blocks)
}

// Verify validates the integrity of the entire blockchain by checking the genesis block
// and verifying each subsequent block's hash, index continuity, and previous hash linkage.
func (bc *Blockchain) Verify() error {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.blocks) == 0 {
		return fmt.Errorf("empty blockchain")
	}
	genesis := bc.blocks[0]
	if genesis.Index != 0 || genesis.PrevHash != genesisPrevHash || genesis.Hash != calculateHash(genesis) {
		return fmt.Errorf("invalid genesis block")
	}
	for i := 1; i < len(bc.blocks); i++ {
		if err := validateBlock(bc.blocks[i], bc.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}
	return nil
}

// validateBlock verifies that a block is valid relative to the previous block. It checks
// index continuity, previous hash linkage and current hash validity.
func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}
	expectedHash := calculateHash(current)
	if current.Hash != expectedHash {
		return fmt.Errorf("invalid hash: expected %s, got %s", expectedHash, current.Hash)
	}
	return nil
}

// calculateHash computes the SHA256 hash of a block based on its index, timestamp, previous
// hash, report and metadata. The report and metadata are JSON marshaled before hashing.
func calculateHash(block Block) string {
	reportBytes, _ := json.Marshal(block.Report)
	metaBytes, _ := json.Marshal(block.Metadata)

	data := fmt.Sprintf("%d%d%s%s%s",
		block.Index,
		block.Timestamp,
		block.PrevHash,
		string(reportBytes),
		string(metaBytes),
	)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
