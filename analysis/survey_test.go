package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/luca-patrignani/bluff-analysis/domain/bluff"
	"github.com/luca-patrignani/bluff-analysis/domain/deck"
	"github.com/luca-patrignani/bluff-analysis/domain/poker"
)

func TestSurveyCountsMatchScanner(t *testing.T) {
	report, err := Survey(context.Background(), deck.NewSeeded([]byte("survey")), 5, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Flops) != 5 || report.Boards != 5 {
		t.Fatalf("expected 5 flops, got %d", len(report.Flops))
	}
	total := 0
	for _, fr := range report.Flops {
		board, err := poker.ParseBoard(fr.Board)
		if err != nil {
			t.Fatal(err)
		}
		found, err := bluff.Collect(board, nil)
		if err != nil {
			t.Fatal(err)
		}
		if len(found) != len(fr.Candidates) {
			t.Fatalf("%s: report has %d candidates, scanner %d", fr.Board, len(fr.Candidates), len(found))
		}
		total += len(found)
	}
	if total != report.Candidates {
		t.Fatalf("expected %d candidates in total, got %d", total, report.Candidates)
	}
	sum := 0
	for i, cc := range report.Classes {
		sum += cc.Count
		if i > 0 && cc.Count > report.Classes[i-1].Count {
			t.Fatal("classes are not sorted by count")
		}
	}
	if sum != report.Candidates {
		t.Fatalf("class counts add up to %d, expected %d", sum, report.Candidates)
	}
}

func TestSurveyDistinctFlops(t *testing.T) {
	report, err := Survey(context.Background(), deck.NewSeeded([]byte("distinct")), 40, []poker.HoleCards{poker.MustHoleCards("8s 7s")})
	if err != nil {
		t.Fatal(err)
	}
	seen := map[[3]int]bool{}
	for _, fr := range report.Flops {
		key := flopKey(poker.MustBoard(fr.Board))
		if seen[key] {
			t.Fatalf("flop %s dealt twice", fr.Board)
		}
		seen[key] = true
		for _, c := range fr.Candidates {
			if c != "8s7s" {
				t.Fatalf("candidate %s is outside the range", c)
			}
		}
	}
}

func TestSurveySeededIsReproducible(t *testing.T) {
	a, err := Survey(context.Background(), deck.NewSeeded([]byte("repro")), 3, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Survey(context.Background(), deck.NewSeeded([]byte("repro")), 3, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Flops {
		if a.Flops[i].Board != b.Flops[i].Board {
			t.Fatalf("flop %d differs: %s vs %s", i, a.Flops[i].Board, b.Flops[i].Board)
		}
	}
}

func TestSurveyRejectsBadBoardCount(t *testing.T) {
	if _, err := Survey(context.Background(), deck.New(nil), 0, nil); err == nil {
		t.Fatal("expected error for zero boards")
	}
	if _, err := Survey(context.Background(), deck.New(nil), MaxFlops+1, nil); err == nil {
		t.Fatal("expected error for too many boards")
	}
}

func TestSurveyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Survey(ctx, deck.New(nil), 10, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSurveyDeadCards(t *testing.T) {
	dead := []poker.Card{poker.MustCard("Ah"), poker.MustCard("Kh")}
	report, err := Survey(context.Background(), deck.NewSeeded([]byte("dead")), 20, nil, dead...)
	if err != nil {
		t.Fatal(err)
	}
	for _, fr := range report.Flops {
		board, err := poker.ParseBoard(fr.Board)
		if err != nil {
			t.Fatal(err)
		}
		for _, c := range board {
			if c == dead[0] || c == dead[1] {
				t.Fatalf("dead card %s dealt on %s", c, fr.Board)
			}
		}
		for _, label := range fr.Candidates {
			hc, ok := poker.LookupHoleCards(label)
			if !ok {
				t.Fatalf("unknown label %s", label)
			}
			for _, c := range hc {
				if c == dead[0] || c == dead[1] {
					t.Fatalf("candidate %s holds a dead card", label)
				}
			}
		}
	}
}

func TestSurveyDeadCardsErrors(t *testing.T) {
	ah := poker.MustCard("Ah")
	if _, err := Survey(context.Background(), deck.New(nil), 1, nil, ah, ah); !errors.Is(err, poker.ErrConflictingCards) {
		t.Fatalf("expected ErrConflictingCards for repeated dead cards, got %v", err)
	}
	scope := []poker.HoleCards{poker.MustHoleCards("Ah Ac")}
	if _, err := Survey(context.Background(), deck.New(nil), 1, scope, ah); !errors.Is(err, ErrNoLiveHands) {
		t.Fatal("expected an error when every hand holds a dead card")
	}
	// 50 cards left give 19600 distinct flops.
	if _, err := Survey(context.Background(), deck.New(nil), 19601, nil, ah, poker.MustCard("Kh")); err == nil {
		t.Fatal("expected an error for more flops than the live deck holds")
	}
}
