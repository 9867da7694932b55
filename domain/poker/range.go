package poker

import (
	"fmt"
	"slices"
	"strings"
)

// ParseRange parses a comma or space separated list of starting-hand
// classes ("AA", "AKs", "AKo", "AK") and explicit combinations ("QdJd").
// The result holds each combination once, in canonical order.
func ParseRange(s string) ([]HoleCards, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty range")
	}
	seen := make(map[HoleCards]bool)
	var out []HoleCards
	add := func(hc HoleCards) {
		hc = hc.Canonical()
		if !seen[hc] {
			seen[hc] = true
			out = append(out, hc)
		}
	}
	for _, tok := range tokens {
		if combos, ok := ClassCombos(normalizeClass(tok)); ok {
			for _, hc := range combos {
				add(hc)
			}
			continue
		}
		hc, err := ParseHoleCards(tok)
		if err != nil {
			return nil, fmt.Errorf("range token %q: %w", tok, err)
		}
		add(hc)
	}
	slices.SortFunc(out, compareCanonical)
	return out, nil
}

// normalizeClass upper-cases the ranks of a class label and lower-cases its
// suitedness marker, so "aks" reads as "AKs".
func normalizeClass(tok string) string {
	if len(tok) < 2 || len(tok) > 3 {
		return tok
	}
	b := []byte(strings.ToUpper(tok))
	if len(b) == 3 {
		b[2] = lower(b[2])
	}
	return string(b)
}
