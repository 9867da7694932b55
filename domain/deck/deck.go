package deck

import (
	"crypto/cipher"
	"errors"
	"fmt"

	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/xof/blake2xb"

	"github.com/luca-patrignani/bluff-analysis/domain/poker"
)

// ErrExhausted is returned when more cards are requested than remain.
var ErrExhausted = errors.New("deck exhausted")

var suite suites.Suite = suites.MustFind("Ed25519")

// Deck is a 52 card deck shuffled from a kyber random stream.
type Deck struct {
	cards  []poker.Card
	next   int
	stream cipher.Stream
}

// New returns an ordered deck drawing its randomness from stream. A nil
// stream uses the suite's cryptographic random stream.
func New(stream cipher.Stream) *Deck {
	if stream == nil {
		stream = suite.RandomStream()
	}
	cards := make([]poker.Card, 0, 52)
	for i := 1; i <= 52; i++ {
		c, _ := poker.IntToCard(i)
		cards = append(cards, c)
	}
	return &Deck{cards: cards, stream: stream}
}

// NewSeeded returns a deck whose shuffles are fully determined by seed.
func NewSeeded(seed []byte) *Deck {
	return New(blake2xb.New(seed))
}

// Len returns the number of undrawn cards.
func (d *Deck) Len() int {
	return len(d.cards) - d.next
}

// Exclude removes dead cards from the deck. Cards that are not in the deck
// are ignored.
func (d *Deck) Exclude(dead ...poker.Card) {
	kept := d.cards[:0]
	for _, c := range d.cards {
		if !contains(dead, c) {
			kept = append(kept, c)
		}
	}
	d.cards = kept
	if d.next > len(d.cards) {
		d.next = len(d.cards)
	}
}

// Draw deals n cards from the top of the deck.
func (d *Deck) Draw(n int) ([]poker.Card, error) {
	if n > d.Len() {
		return nil, fmt.Errorf("%w: want %d cards, %d left", ErrExhausted, n, d.Len())
	}
	out := make([]poker.Card, n)
	copy(out, d.cards[d.next:d.next+n])
	d.next += n
	return out, nil
}

// DrawFlop deals three cards as a flop.
func (d *Deck) DrawFlop() (poker.Board, error) {
	cards, err := d.Draw(3)
	if err != nil {
		return poker.Board{}, err
	}
	return poker.Board(cards), nil
}

func contains(cards []poker.Card, c poker.Card) bool {
	for _, x := range cards {
		if x == c {
			return true
		}
	}
	return false
}
