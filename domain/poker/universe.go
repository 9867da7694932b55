package poker

import (
	"iter"
	"slices"
	"sync"
)

// UniverseSize is the number of distinct two card combinations.
const UniverseSize = 52 * 51 / 2

type universe struct {
	order   []HoleCards
	byLabel map[string]HoleCards
	classes map[string][]HoleCards
}

// canonicalUniverse is built on first use and never modified afterwards.
var canonicalUniverse = sync.OnceValue(func() *universe {
	deck := orderedDeck()
	u := &universe{
		order:   make([]HoleCards, 0, UniverseSize),
		byLabel: make(map[string]HoleCards, UniverseSize),
		classes: make(map[string][]HoleCards, 169),
	}
	for i := range deck {
		for j := i + 1; j < len(deck); j++ {
			hc := HoleCards{deck[i], deck[j]}
			u.order = append(u.order, hc)
			u.byLabel[hc.Label()] = hc
			u.classes[hc.Class()] = append(u.classes[hc.Class()], hc)
		}
	}
	return u
})

// orderedDeck returns the 52 cards from aces down to deuces, clubs first
// within a rank.
func orderedDeck() []Card {
	deck := make([]Card, 0, 52)
	for hr := 14; hr >= 2; hr-- {
		rank := uint8(hr)
		if hr == 14 {
			rank = Ace
		}
		for suit := uint8(Club); suit <= Spade; suit++ {
			deck = append(deck, Card{suit: suit, rank: rank})
		}
	}
	return deck
}

// Universe returns every two card combination in canonical order, sorted
// by first card and then second card, aces first and clubs before diamonds
// within a rank. The returned slice is a copy.
func Universe() []HoleCards {
	return slices.Clone(canonicalUniverse().order)
}

// AllHoleCards iterates over the universe in canonical order.
func AllHoleCards() iter.Seq[HoleCards] {
	return func(yield func(HoleCards) bool) {
		for _, hc := range canonicalUniverse().order {
			if !yield(hc) {
				return
			}
		}
	}
}

// LookupHoleCards returns the universe entry for a canonical label such as
// "Kc2d". Labels in either card order are accepted.
func LookupHoleCards(label string) (HoleCards, bool) {
	hc, err := ParseHoleCards(label)
	if err != nil {
		return HoleCards{}, false
	}
	hc, ok := canonicalUniverse().byLabel[hc.Label()]
	return hc, ok
}

// ClassCombos returns the combinations of a starting-hand class such as
// "AKs", "AKo", "AK" or "77", in canonical order.
func ClassCombos(class string) ([]HoleCards, bool) {
	u := canonicalUniverse()
	if combos, ok := u.classes[class]; ok {
		return slices.Clone(combos), true
	}
	if len(class) == 2 && class[0] != class[1] {
		suited, ok1 := u.classes[class+"s"]
		offsuit, ok2 := u.classes[class+"o"]
		if !ok1 || !ok2 {
			return nil, false
		}
		combos := append(slices.Clone(suited), offsuit...)
		slices.SortFunc(combos, compareCanonical)
		return combos, true
	}
	return nil, false
}

// compareCanonical orders hole cards as they appear in the universe.
func compareCanonical(a, b HoleCards) int {
	ac, bc := a.Canonical(), b.Canonical()
	for i := range ac {
		if ac[i] == bc[i] {
			continue
		}
		if less(ac[i], bc[i]) {
			return -1
		}
		return 1
	}
	return 0
}
