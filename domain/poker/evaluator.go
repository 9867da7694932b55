package poker

import (
	"fmt"

	ph "github.com/paulhankin/poker"
)

// Score bands of the library evaluator. Eval5 scores grow with hand
// strength, so every hand at least as strong as the weakest hand of a
// category scores at or above that hand.
var (
	onePairFloor = mustScore("2c 2d 3h 4s 5c")
	twoPairFloor = mustScore("3c 3d 2h 2s 4c")
)

// toLib converts a Card to the evaluator's card type.
func toLib(c Card) (ph.Card, error) {
	card, err := ph.MakeCard(ph.Suit(c.suit), ph.Rank(c.rank))
	if err != nil {
		return card, fmt.Errorf("convert card %v: %w", c, err)
	}
	return card, nil
}

func libCards(cards []Card) ([]ph.Card, error) {
	out := make([]ph.Card, len(cards))
	for i, c := range cards {
		lc, err := toLib(c)
		if err != nil {
			return nil, err
		}
		out[i] = lc
	}
	return out, nil
}

func eval5(cards [5]Card) (int16, error) {
	var five [5]ph.Card
	for i, c := range cards {
		lc, err := toLib(c)
		if err != nil {
			return 0, err
		}
		five[i] = lc
	}
	return ph.Eval5(&five), nil
}

func mustScore(s string) int16 {
	cards, err := ParseCards(s)
	if err != nil || len(cards) != 5 {
		panic(fmt.Sprintf("bad reference hand %q", s))
	}
	score, err := eval5([5]Card(cards))
	if err != nil {
		panic(err)
	}
	return score
}

// Score returns the evaluator score of the five card hand. Higher scores
// are stronger hands.
func (h Hand) Score() int16 {
	// NewHand only admits valid cards, so conversion cannot fail.
	score, _ := eval5(h.Cards())
	return score
}

// Describe returns a human readable name of the made hand, such as
// "pair of twos".
func (h Hand) Describe() (string, error) {
	five := h.Cards()
	cards, err := libCards(five[:])
	if err != nil {
		return "", err
	}
	return ph.Describe(cards)
}
