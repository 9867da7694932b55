package ledger

import "github.com/luca-patrignani/bluff-analysis/analysis"

// Block is one recorded survey.
type Block struct {
	Index     int             `json:"index"`
	Timestamp int64           `json:"timestamp"`
	PrevHash  string          `json:"prev_hash"`
	Hash      string          `json:"hash"`
	Report    analysis.Report `json:"report"`
	Metadata  Metadata        `json:"metadata"`
}

type Metadata struct {
	Source string            `json:"source"`
	Extra  map[string]string `json:"extra,omitempty"`
}
