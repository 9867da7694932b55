package bluff

import (
	"errors"
	"iter"
	"slices"

	"github.com/luca-patrignani/bluff-analysis/domain/poker"
)

// Verdict breaks the classification of a hand down into its parts.
type Verdict struct {
	Hole      poker.HoleCards `json:"-"`
	Board     poker.Board     `json:"-"`
	OnePair   bool            `json:"one_pair"`
	TwoPair   bool            `json:"two_pair_or_better"`
	Flush3    bool            `json:"three_flush"`
	Straight3 bool            `json:"three_straight"`
	Candidate bool            `json:"candidate"`
}

// Evaluate computes every property of the hand.
func Evaluate(h poker.Hand) Verdict {
	return Verdict{
		Hole:      h.Hole(),
		Board:     h.Board(),
		OnePair:   h.IsOnePair(true),
		TwoPair:   h.IsTwoPairOrBetter(),
		Flush3:    h.Is3Flush(2),
		Straight3: h.Is3Straight(2),
		Candidate: IsCandidate(h),
	}
}

// IsCandidate reports whether a validated hand is a bluff candidate.
func IsCandidate(h poker.Hand) bool {
	return !h.IsOnePair(true) &&
		!h.IsTwoPairOrBetter() &&
		h.Is3Flush(2) &&
		h.Is3Straight(2)
}

// IsBluffCandidate reports whether hole cards are a bluff candidate on the
// flop. It returns an error matching poker.ErrConflictingCards if the hole
// cards share a card with the board.
func IsBluffCandidate(hole poker.HoleCards, board poker.Board) (bool, error) {
	h, err := poker.NewHand(hole, board)
	if err != nil {
		return false, err
	}
	return IsCandidate(h), nil
}

// Candidates returns the hole cards from hands that are bluff candidates on
// board, in input order. A nil hands scans the whole universe.
//
// Hole cards sharing a card with the board are skipped. Any other failure is
// yielded with a zero HoleCards and ends the sequence.
func Candidates(board poker.Board, hands iter.Seq[poker.HoleCards]) iter.Seq2[poker.HoleCards, error] {
	if hands == nil {
		hands = poker.AllHoleCards()
	}
	return func(yield func(poker.HoleCards, error) bool) {
		for hole := range hands {
			h, err := poker.NewHand(hole, board)
			if errors.Is(err, poker.ErrConflictingCards) {
				continue
			}
			if err != nil {
				yield(poker.HoleCards{}, err)
				return
			}
			if IsCandidate(h) && !yield(hole, nil) {
				return
			}
		}
	}
}

// CandidatesIn is Candidates over a slice. An empty slice scans the whole
// universe.
func CandidatesIn(board poker.Board, hands []poker.HoleCards) iter.Seq2[poker.HoleCards, error] {
	if len(hands) == 0 {
		return Candidates(board, nil)
	}
	return Candidates(board, slices.Values(hands))
}

// Collect drains CandidatesIn into a slice.
func Collect(board poker.Board, hands []poker.HoleCards) ([]poker.HoleCards, error) {
	var out []poker.HoleCards
	for hole, err := range CandidatesIn(board, hands) {
		if err != nil {
			return nil, err
		}
		out = append(out, hole)
	}
	return out, nil
}
