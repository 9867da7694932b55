// Package bluff finds hole cards that make good bluffing candidates on a flop.
//
// A candidate has no made hand of its own (no pair involving a hole card and
// nothing better than one pair overall) but holds backdoor potential: three
// to a flush and three to a straight, each using both hole cards.
//
// IsBluffCandidate classifies a single hand. Candidates scans a set of hole
// cards, by default the whole universe, and lazily yields the candidates in
// input order, skipping any combination that shares a card with the flop.
package bluff
