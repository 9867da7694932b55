package poker

// rankMask returns a bit set of the ranks present in cards, indexed by high
// rank (2-14). Aces also set bit 1 so that A-2-3-4-5 forms a window.
func rankMask(cards ...Card) uint16 {
	var m uint16
	for _, c := range cards {
		m |= 1 << c.HighRank()
		if c.rank == Ace {
			m |= 1 << 1
		}
	}
	return m
}

func popcount(m uint16) int {
	n := 0
	for ; m != 0; m &= m - 1 {
		n++
	}
	return n
}

// IsOnePair reports whether the hand is exactly one pair. With excludeBoard
// set, a pair formed only by two board cards does not count: one of the hole
// cards must be part of the pair.
func (h Hand) IsOnePair(excludeBoard bool) bool {
	score := h.Score()
	if score < onePairFloor || score >= twoPairFloor {
		return false
	}
	if !excludeBoard {
		return true
	}
	var counts [14]int
	for _, c := range h.Cards() {
		counts[c.rank]++
	}
	for _, c := range h.hole {
		if counts[c.rank] >= 2 {
			return true
		}
	}
	return false
}

// IsTwoPairOrBetter reports whether the five cards make two pair or any
// stronger hand.
func (h Hand) IsTwoPairOrBetter() bool {
	return h.Score() >= twoPairFloor
}

// IsNFlush reports whether exactly n of the five cards share a suit with at
// least required of the hole cards among them.
func (h Hand) IsNFlush(n, required int) bool {
	var total, hole [4]int
	for _, c := range h.Cards() {
		total[c.suit]++
	}
	for _, c := range h.hole {
		hole[c.suit]++
	}
	for s := range total {
		if total[s] == n && hole[s] >= required {
			return true
		}
	}
	return false
}

// IsNStraight reports whether some five-rank straight window, from A-5 up to
// T-A, holds exactly n distinct ranks of the hand with at least required
// distinct hole card ranks among them. Gapped draws qualify: 9-8 on J-2-3
// counts as a three card straight through the 7-J window.
func (h Hand) IsNStraight(n, required int) bool {
	five := h.Cards()
	all := rankMask(five[:]...)
	hole := rankMask(h.hole[:]...)
	for low := 1; low <= 10; low++ {
		window := uint16(0x1f) << low
		if popcount(all&window) != n {
			continue
		}
		if popcount(hole&window) >= required {
			return true
		}
	}
	return false
}

// Is3Flush reports a three card flush draw using at least required hole cards.
func (h Hand) Is3Flush(required int) bool { return h.IsNFlush(3, required) }

// Is3Straight reports a three card straight draw using at least required hole
// cards.
func (h Hand) Is3Straight(required int) bool { return h.IsNStraight(3, required) }
