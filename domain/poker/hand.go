package poker

import (
	"fmt"
	"strings"
)

// HoleCards are a player's two private cards.
type HoleCards [2]Card

// Board is the flop: the first three community cards.
type Board [3]Card

// Hand is a validated combination of hole cards and flop. The five cards
// are pairwise distinct; the only way to build one is NewHand.
type Hand struct {
	hole  HoleCards
	board Board
}

// CheckDistinct returns a *ConflictingCardsError if any card occurs more
// than once among cards, and an error wrapping ErrInvalidCard if any of
// them is not a real card.
func CheckDistinct(cards ...Card) error {
	var seen [53]bool
	var dups []Card
	for _, c := range cards {
		if !c.Valid() {
			return fmt.Errorf("%w: %v", ErrInvalidCard, c)
		}
		i := CardToInt(c)
		if seen[i] {
			dups = append(dups, c)
			continue
		}
		seen[i] = true
	}
	if len(dups) > 0 {
		return &ConflictingCardsError{Duplicates: dups}
	}
	return nil
}

// NewHand combines hole cards and board into a Hand. It fails with
// ErrConflictingCards if any card is shared between or within them.
func NewHand(hole HoleCards, board Board) (Hand, error) {
	if err := CheckDistinct(hole[0], hole[1], board[0], board[1], board[2]); err != nil {
		return Hand{}, err
	}
	return Hand{hole: hole, board: board}, nil
}

// MustHand parses hole cards and board and panics if they do not form a
// valid hand.
func MustHand(hole, board string) Hand {
	h, err := NewHand(MustHoleCards(hole), MustBoard(board))
	if err != nil {
		panic(err)
	}
	return h
}

// Hole returns the hole cards of the hand.
func (h Hand) Hole() HoleCards { return h.hole }

// Board returns the flop of the hand.
func (h Hand) Board() Board { return h.board }

// Cards returns the five cards, hole cards first.
func (h Hand) Cards() [5]Card {
	return [5]Card{h.hole[0], h.hole[1], h.board[0], h.board[1], h.board[2]}
}

func (h Hand) String() string {
	return h.hole.String() + " | " + h.board.String()
}

// ParseHoleCards parses exactly two distinct cards, e.g. "Qd Jd" or "QdJd".
func ParseHoleCards(s string) (HoleCards, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return HoleCards{}, err
	}
	if len(cards) != 2 {
		return HoleCards{}, fmt.Errorf("hole cards need 2 cards, got %d in %q", len(cards), s)
	}
	hc := HoleCards{cards[0], cards[1]}
	if err := CheckDistinct(hc[:]...); err != nil {
		return HoleCards{}, err
	}
	return hc, nil
}

// MustHoleCards is like ParseHoleCards but panics on error.
func MustHoleCards(s string) HoleCards {
	hc, err := ParseHoleCards(s)
	if err != nil {
		panic(err)
	}
	return hc
}

// ParseBoard parses exactly three distinct cards, e.g. "Kc 2d 2h".
func ParseBoard(s string) (Board, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return Board{}, err
	}
	if len(cards) != 3 {
		return Board{}, fmt.Errorf("flop needs 3 cards, got %d in %q", len(cards), s)
	}
	b := Board{cards[0], cards[1], cards[2]}
	if err := CheckDistinct(b[:]...); err != nil {
		return Board{}, err
	}
	return b, nil
}

// MustBoard is like ParseBoard but panics on error.
func MustBoard(s string) Board {
	b, err := ParseBoard(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Canonical returns the hole cards with the higher card first.
func (hc HoleCards) Canonical() HoleCards {
	if less(hc[1], hc[0]) {
		return HoleCards{hc[1], hc[0]}
	}
	return hc
}

// Label returns the canonical label of the combination, e.g. "Kc2d".
func (hc HoleCards) Label() string {
	c := hc.Canonical()
	return c[0].String() + c[1].String()
}

func (hc HoleCards) String() string {
	return hc[0].String() + " " + hc[1].String()
}

// Suited reports whether both cards share a suit.
func (hc HoleCards) Suited() bool {
	return hc[0].suit == hc[1].suit
}

// Pair reports whether both cards share a rank.
func (hc HoleCards) Pair() bool {
	return hc[0].rank == hc[1].rank
}

// Class returns the starting-hand class of the combination: "AA", "AKs"
// or "AKo".
func (hc HoleCards) Class() string {
	c := hc.Canonical()
	hi, lo := string(rankLetters[c[0].rank]), string(rankLetters[c[1].rank])
	switch {
	case hc.Pair():
		return hi + lo
	case hc.Suited():
		return hi + lo + "s"
	default:
		return hi + lo + "o"
	}
}

func (b Board) String() string {
	names := make([]string, len(b))
	for i, c := range b {
		names[i] = c.String()
	}
	return strings.Join(names, " ")
}
