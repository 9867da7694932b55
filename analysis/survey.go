// Package analysis runs bluff-candidate scans over many sampled flops.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/luca-patrignani/bluff-analysis/domain/bluff"
	"github.com/luca-patrignani/bluff-analysis/domain/deck"
	"github.com/luca-patrignani/bluff-analysis/domain/poker"
)

// ErrNoLiveHands is returned when dead cards remove every hand of the range.
var ErrNoLiveHands = errors.New("every hand in the range holds a dead card")

// MaxFlops is the number of distinct flops in a 52 card deck.
const MaxFlops = 52 * 51 * 50 / 6

// FlopResult lists the candidates found on one flop.
type FlopResult struct {
	Board      string   `json:"board"`
	Candidates []string `json:"candidates"`
}

// ClassCount is how often a starting-hand class was a candidate.
type ClassCount struct {
	Class string `json:"class"`
	Count int    `json:"count"`
}

// Report summarises a survey.
type Report struct {
	Seed       string       `json:"seed,omitempty"`
	Range      string       `json:"range,omitempty"`
	Dead       string       `json:"dead,omitempty"`
	Boards     int          `json:"boards"`
	Candidates int          `json:"candidates"`
	Flops      []FlopResult `json:"flops"`
	Classes    []ClassCount `json:"classes"`
}

// Average returns the mean number of candidates per flop.
func (r Report) Average() float64 {
	if r.Boards == 0 {
		return 0
	}
	return float64(r.Candidates) / float64(r.Boards)
}

// Survey deals boards distinct flops from d and scans each of them for bluff
// candidates among hands (the whole universe when hands is empty). Dead cards
// are removed from the deck, and hole cards holding one are not scanned.
func Survey(ctx context.Context, d *deck.Deck, boards int, hands []poker.HoleCards, dead ...poker.Card) (Report, error) {
	if len(dead) > 0 {
		if err := poker.CheckDistinct(dead...); err != nil {
			return Report{}, fmt.Errorf("dead cards: %w", err)
		}
		d.Exclude(dead...)
		live, err := liveHands(hands, dead)
		if err != nil {
			return Report{}, err
		}
		hands = live
	}
	n := d.Len()
	if limit := n * (n - 1) * (n - 2) / 6; boards <= 0 || boards > limit {
		return Report{}, fmt.Errorf("boards must be between 1 and %d, got %d", limit, boards)
	}
	seen := make(map[[3]int]bool, boards)
	counts := make(map[string]int)
	report := Report{Boards: boards}
	for len(report.Flops) < boards {
		if err := ctx.Err(); err != nil {
			return Report{}, fmt.Errorf("survey interrupted after %d flops: %w", len(report.Flops), err)
		}
		d.Shuffle()
		flop, err := d.DrawFlop()
		if err != nil {
			return Report{}, err
		}
		key := flopKey(flop)
		if seen[key] {
			continue
		}
		seen[key] = true

		found, err := bluff.Collect(flop, hands)
		if err != nil {
			return Report{}, fmt.Errorf("scan %s: %w", flop, err)
		}
		fr := FlopResult{Board: flop.String(), Candidates: make([]string, len(found))}
		for i, hc := range found {
			fr.Candidates[i] = hc.Label()
			counts[hc.Class()]++
		}
		report.Candidates += len(found)
		report.Flops = append(report.Flops, fr)
	}
	report.Classes = sortedCounts(counts)
	return report, nil
}

// liveHands drops the hole cards sharing a card with dead.
func liveHands(hands []poker.HoleCards, dead []poker.Card) ([]poker.HoleCards, error) {
	if len(hands) == 0 {
		hands = poker.Universe()
	}
	live := make([]poker.HoleCards, 0, len(hands))
	for _, hc := range hands {
		if !slices.Contains(dead, hc[0]) && !slices.Contains(dead, hc[1]) {
			live = append(live, hc)
		}
	}
	if len(live) == 0 {
		return nil, ErrNoLiveHands
	}
	return live, nil
}

// flopKey identifies a flop independently of card order.
func flopKey(b poker.Board) [3]int {
	k := [3]int{poker.CardToInt(b[0]), poker.CardToInt(b[1]), poker.CardToInt(b[2])}
	slices.Sort(k[:])
	return k
}

func sortedCounts(counts map[string]int) []ClassCount {
	out := make([]ClassCount, 0, len(counts))
	for class, n := range counts {
		out = append(out, ClassCount{Class: class, Count: n})
	}
	slices.SortFunc(out, func(a, b ClassCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Class, b.Class)
	})
	return out
}
