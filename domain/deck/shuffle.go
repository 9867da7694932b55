package deck

import (
	"math/big"

	"go.dedis.ch/kyber/v4/util/random"
)

// Shuffle puts every card back and reorders the deck with a Fisher-Yates
// shuffle driven by the deck's random stream.
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		j := int(random.Int(big.NewInt(int64(i+1)), d.stream).Int64())
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}
