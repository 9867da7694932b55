// Package ledger implements an append-only, hash chained record of survey
// reports.
//
// # Core Components
//
// Blockchain: An append-only log of survey reports with SHA-256 hash
// chaining for tamper detection.
//
// Block: A single report together with its index, timestamp and the hash of
// the previous block.
//
// # Security Properties
//
// The chain provides:
//   - Immutability: Once recorded, blocks are only handed out by value
//   - Verifiability: Anyone can verify the integrity of the entire chain
//   - Tamper detection: Any modification breaks the hash chain
//
// # Usage
//
// Create a chain with NewBlockchain, or rebuild a stored one with Load, then
// Append reports as surveys complete. Verify can be called at any time.
package ledger
