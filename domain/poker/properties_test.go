package poker

import "testing"

func TestIsOnePair(t *testing.T) {
	cases := []struct {
		hole, board  string
		excludeBoard bool
		want         bool
	}{
		{"Ah Ac", "Ks Qd 2c", true, true},
		{"Kd 7c", "Kc 2d 5h", true, true},
		{"Qd Jd", "Kc 2d 2h", true, false},
		{"Qd Jd", "Kc 2d 2h", false, true},
		{"Qd Jd", "Kc 8d 3h", false, false},
		{"2c 7d", "2d 2h Kc", false, false},
		{"Kd 2c", "Kc 2d 5h", false, false},
	}
	for _, c := range cases {
		h := MustHand(c.hole, c.board)
		if got := h.IsOnePair(c.excludeBoard); got != c.want {
			t.Fatalf("%s excludeBoard=%v: expected %v, got %v", h, c.excludeBoard, c.want, got)
		}
	}
}

func TestIsTwoPairOrBetter(t *testing.T) {
	cases := []struct {
		hole, board string
		want        bool
	}{
		{"Kd 2c", "Kc 2d 5h", true},
		{"2c 7d", "2d 2h Kc", true},
		{"9c 8d", "7h 6s 5c", true},
		{"Ah 9h", "2h 5h Kh", true},
		{"Ah Ac", "Ks Qd 2c", false},
		{"Qd Jd", "Kc 2d 2h", false},
		{"Qd Jd", "Kc 8d 3h", false},
	}
	for _, c := range cases {
		h := MustHand(c.hole, c.board)
		if got := h.IsTwoPairOrBetter(); got != c.want {
			t.Fatalf("%s: expected %v, got %v", h, c.want, got)
		}
	}
}

func TestIsNFlush(t *testing.T) {
	cases := []struct {
		hole, board string
		n, required int
		want        bool
	}{
		{"8s 7s", "9c 4s 3d", 3, 2, true},
		{"8s 7d", "9s 4s 3d", 3, 2, false},
		{"8s 7d", "9s 4s 3d", 3, 1, true},
		{"8s 7s", "9s 4s 3d", 3, 2, false},
		{"8s 7s", "9s 4s 3d", 4, 2, true},
		{"Qd Jd", "Kc 2d 2h", 3, 2, true},
	}
	for _, c := range cases {
		h := MustHand(c.hole, c.board)
		if got := h.IsNFlush(c.n, c.required); got != c.want {
			t.Fatalf("%s n=%d required=%d: expected %v, got %v", h, c.n, c.required, c.want, got)
		}
	}
}

func TestIsNStraight(t *testing.T) {
	cases := []struct {
		hole, board string
		n, required int
		want        bool
	}{
		{"8s 7s", "9c 4s 3d", 3, 2, true},
		{"Kc Jc", "Qc 8d 3h", 3, 2, true},
		{"Ah 2c", "3d 9h Ks", 3, 2, true},
		{"Ah Kc", "Qd 7h 2s", 3, 2, true},
		{"9s 2c", "Td 4h Kc", 3, 2, false},
		{"Jc 2d", "5h 8s Kc", 3, 2, false},
		{"Jc 2d", "5h 8s Kc", 3, 1, false},
		{"9c 8d", "Jh 2s 3c", 3, 2, true},
		{"9c 8d", "Jh 2s 3c", 3, 1, true},
	}
	for _, c := range cases {
		h := MustHand(c.hole, c.board)
		if got := h.IsNStraight(c.n, c.required); got != c.want {
			t.Fatalf("%s n=%d required=%d: expected %v, got %v", h, c.n, c.required, c.want, got)
		}
	}
}

func TestPropertiesOrderInvariant(t *testing.T) {
	a := MustHand("Qd Jd", "Kc 2d 2h")
	b := MustHand("Jd Qd", "2h Kc 2d")
	if a.IsOnePair(true) != b.IsOnePair(true) ||
		a.IsTwoPairOrBetter() != b.IsTwoPairOrBetter() ||
		a.Is3Flush(2) != b.Is3Flush(2) ||
		a.Is3Straight(2) != b.Is3Straight(2) {
		t.Fatal("properties depend on card order")
	}
	if a.Score() != b.Score() {
		t.Fatalf("scores differ: %d vs %d", a.Score(), b.Score())
	}
}
