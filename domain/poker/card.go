package poker

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// Card suit constants (0-3)
const (
	Club    = 0 // ♣ (black)
	Diamond = 1 // ♦ (red)
	Heart   = 2 // ♥ (red)
	Spade   = 3 // ♠ (black)
)

// Card rank constants for face cards and ace
const (
	Jack  = 11 // J
	Queen = 12 // Q
	King  = 13 // K
	Ace   = 1  // A (low in straights, high in value)
)

const (
	suitLetters = "cdhs"
	rankLetters = "?A23456789TJQK"
)

// Card represents a playing card with suit and rank.
// The zero Card is not a valid card.
type Card struct {
	suit uint8 // 0-3: clubs, diamonds, hearts, spades
	rank uint8 // 1-13: ace through king
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: 0-3 (Club, Diamond, Heart, Spade)
//   - rank: 1-13 (Ace=1, 2-10=face value, Jack=11, Queen=12, King=13)
//
// Returns the Card or an error wrapping ErrInvalidCard if suit or rank is invalid.
func NewCard(suit uint8, rank uint8) (Card, error) {
	if suit > 3 || rank == 0 || rank > 13 {
		return Card{}, fmt.Errorf("%w: suit %d, rank %d", ErrInvalidCard, suit, rank)
	}
	return Card{suit: suit, rank: rank}, nil
}

// MustCard is like ParseCard but panics on malformed input.
// It is meant for tables and tests.
func MustCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCard parses a card written as rank followed by suit, e.g. "As", "Td"
// or "10h". Letters are case-insensitive.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	suit := strings.IndexByte(suitLetters, lower(s[len(s)-1]))
	if suit < 0 {
		return Card{}, fmt.Errorf("%w: unknown suit in %q", ErrInvalidCard, s)
	}
	var rank int
	switch r := strings.ToUpper(s[:len(s)-1]); r {
	case "10":
		rank = 10
	default:
		if len(r) != 1 {
			return Card{}, fmt.Errorf("%w: unknown rank in %q", ErrInvalidCard, s)
		}
		rank = strings.IndexByte(rankLetters, r[0])
		if rank < 1 {
			return Card{}, fmt.Errorf("%w: unknown rank in %q", ErrInvalidCard, s)
		}
	}
	return NewCard(uint8(suit), uint8(rank))
}

// ParseCards parses a whitespace or comma separated list of cards. Cards
// may also be written back to back, as in "QdJd".
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
	var cards []Card
	for _, f := range fields {
		for len(f) > 0 {
			n := cardTokenLen(f)
			c, err := ParseCard(f[:n])
			if err != nil {
				return nil, err
			}
			cards = append(cards, c)
			f = f[n:]
		}
	}
	return cards, nil
}

// cardTokenLen returns the length of the first card token in s.
func cardTokenLen(s string) int {
	if strings.HasPrefix(s, "10") && len(s) >= 3 {
		return 3
	}
	if len(s) < 2 {
		return len(s)
	}
	return 2
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}

// Suit returns the suit value of the Card (0-3: clubs, diamonds, hearts, spades).
func (c Card) Suit() uint8 {
	return c.suit
}

// Rank returns the rank value of the Card (1-13: ace through king).
func (c Card) Rank() uint8 {
	return c.rank
}

// HighRank returns the rank with the ace counted high (2-14).
func (c Card) HighRank() int {
	if c.rank == Ace {
		return 14
	}
	return int(c.rank)
}

// Valid reports whether c is a real card.
func (c Card) Valid() bool {
	return c.suit <= 3 && c.rank >= 1 && c.rank <= 13
}

// String returns the two letter form of the card, e.g. "Kc" or "Td".
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return string([]byte{rankLetters[c.rank], suitLetters[c.suit]})
}

// Pretty returns a coloured representation of the Card using suit symbols
// (♣, ♦, ♥, ♠), suitable for terminal output.
func (c Card) Pretty() string {
	var suit string
	switch c.suit {
	case Club:
		suit = pterm.Black("♣")
	case Diamond:
		suit = pterm.LightRed("♦")
	case Heart:
		suit = pterm.LightRed("♥")
	case Spade:
		suit = pterm.Black("♠")
	default:
		suit = "?"
	}
	if !c.Valid() {
		return "▓"
	}
	return string(rankLetters[c.rank]) + suit
}

// IntToCard converts a raw card number (1-52) to a Card. Card numbers map to suits in order
// (clubs, diamonds, hearts, spades) with ranks 1-13 within each suit.
func IntToCard(rawCard int) (Card, error) {
	if rawCard > 52 || rawCard < 1 {
		return Card{}, fmt.Errorf("%w: raw value %d", ErrInvalidCard, rawCard)
	}
	suit := uint8((rawCard - 1) / 13)
	rank := uint8((rawCard-1)%13 + 1)
	return NewCard(suit, rank)
}

// CardToInt converts a Card to its integer representation (1-52).
// This is the inverse operation of IntToCard.
func CardToInt(card Card) int {
	return int(card.Suit())*13 + int(card.Rank())
}

// less orders cards by descending high rank, then by suit.
func less(a, b Card) bool {
	if a.HighRank() != b.HighRank() {
		return a.HighRank() > b.HighRank()
	}
	return a.suit < b.suit
}
