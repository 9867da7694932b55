package poker

import (
	"errors"
	"testing"
)

func TestNewHandConflictingCards(t *testing.T) {
	_, err := NewHand(MustHoleCards("Kc 2d"), MustBoard("Kc 2d 2h"))
	if !errors.Is(err, ErrConflictingCards) {
		t.Fatalf("expected ErrConflictingCards, got %v", err)
	}
	var conflict *ConflictingCardsError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected *ConflictingCardsError, got %T", err)
	}
	if len(conflict.Duplicates) != 2 {
		t.Fatalf("expected 2 duplicates, got %v", conflict.Duplicates)
	}
}

func TestNewHandSingleSharedCard(t *testing.T) {
	_, err := NewHand(MustHoleCards("Ah 2d"), MustBoard("Kc 2d 7h"))
	if !errors.Is(err, ErrConflictingCards) {
		t.Fatalf("expected ErrConflictingCards, got %v", err)
	}
}

func TestNewHandInvalidCard(t *testing.T) {
	_, err := NewHand(HoleCards{MustCard("Ah"), {}}, MustBoard("Kc 2d 7h"))
	if !errors.Is(err, ErrInvalidCard) {
		t.Fatalf("expected ErrInvalidCard, got %v", err)
	}
	if errors.Is(err, ErrConflictingCards) {
		t.Fatal("an invalid card is not a conflict")
	}
}

func TestParseHoleCardsAndBoard(t *testing.T) {
	if _, err := ParseHoleCards("Qd"); err == nil {
		t.Fatal("expected error for a single card")
	}
	if _, err := ParseHoleCards("Qd Qd"); !errors.Is(err, ErrConflictingCards) {
		t.Fatalf("expected ErrConflictingCards, got %v", err)
	}
	if _, err := ParseBoard("Kc 2d"); err == nil {
		t.Fatal("expected error for a two card flop")
	}
	if _, err := ParseBoard("Kc 2d 2d"); !errors.Is(err, ErrConflictingCards) {
		t.Fatalf("expected ErrConflictingCards, got %v", err)
	}
	b, err := ParseBoard("Kc2d2h")
	if err != nil {
		t.Fatal(err)
	}
	if b.String() != "Kc 2d 2h" {
		t.Fatalf("unexpected board %s", b)
	}
}

func TestHoleCardsLabelAndClass(t *testing.T) {
	cases := []struct {
		hole  string
		label string
		class string
	}{
		{"2d Kc", "Kc2d", "K2o"},
		{"Jd Qd", "QdJd", "QJs"},
		{"Ah Ac", "AcAh", "AA"},
		{"Th 9h", "Th9h", "T9s"},
	}
	for _, c := range cases {
		hc := MustHoleCards(c.hole)
		if hc.Label() != c.label {
			t.Fatalf("%s: expected label %s, got %s", c.hole, c.label, hc.Label())
		}
		if hc.Class() != c.class {
			t.Fatalf("%s: expected class %s, got %s", c.hole, c.class, hc.Class())
		}
	}
}

func TestHandDescribe(t *testing.T) {
	h := MustHand("Ah Ac", "Ks Qd 2c")
	desc, err := h.Describe()
	if err != nil {
		t.Fatal(err)
	}
	if desc == "" {
		t.Fatal("expected a description")
	}
}
