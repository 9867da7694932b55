// Package poker implements the card model and the hand-property checks used
// for post-flop hand analysis in Texas Hold'em.
//
// # Core Types
//
// Card: A playing card with suit and rank.
//
// HoleCards: A player's two private cards.
//
// Board: The three card flop.
//
// Hand: Hole cards plus flop, validated so that all five cards are distinct.
// NewHand is the only constructor and fails with ErrConflictingCards when a
// card is supplied twice.
//
// # Hand Properties
//
// A Hand answers pair questions (IsOnePair, IsTwoPairOrBetter) using the
// five card evaluator from github.com/paulhankin/poker, and draw questions
// (IsNFlush, IsNStraight) by counting suits and straight windows.
//
// # Universe
//
// Universe, AllHoleCards and LookupHoleCards expose the 1326 two card
// combinations in a fixed canonical order. The table is built once and is
// safe for concurrent readers. ParseRange selects subsets of it by
// starting-hand class or explicit combination.
package poker
