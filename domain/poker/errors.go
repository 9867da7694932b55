package poker

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidCard is returned for cards outside the 52 card deck,
	// including the zero Card.
	ErrInvalidCard = errors.New("invalid card")

	// ErrConflictingCards is returned when the same card appears more than
	// once across a set of hole cards and board cards.
	ErrConflictingCards = errors.New("conflicting cards")
)

// ConflictingCardsError reports which cards were supplied more than once.
// It matches ErrConflictingCards with errors.Is.
type ConflictingCardsError struct {
	Duplicates []Card
}

func (e *ConflictingCardsError) Error() string {
	names := make([]string, len(e.Duplicates))
	for i, c := range e.Duplicates {
		names[i] = c.String()
	}
	return fmt.Sprintf("%s: %s", ErrConflictingCards, strings.Join(names, " "))
}

func (e *ConflictingCardsError) Is(target error) bool {
	return target == ErrConflictingCards
}
