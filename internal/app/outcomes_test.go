package app

import (
	"math/rand"
	"testing"

	"kickoff/internal/domain"
)

func TestRandResolverDeterministicPerSeed(t *testing.T) {
	a := NewRandResolver(rand.New(rand.NewSource(42)))
	b := NewRandResolver(rand.New(rand.NewSource(42)))

	for i := 0; i < 100; i++ {
		if a.RefSees() != b.RefSees() {
			t.Fatalf("draw %d: same seed diverged on RefSees", i)
		}
		if a.KeeperChoice() != b.KeeperChoice() {
			t.Fatalf("draw %d: same seed diverged on KeeperChoice", i)
		}
	}
}

func TestRandResolverKeeperChoiceCoversAllSides(t *testing.T) {
	r := NewRandResolver(rand.New(rand.NewSource(7)))

	seen := map[domain.Side]int{}
	for i := 0; i < 300; i++ {
		side := r.KeeperChoice()
		if !domain.ValidSide(side) {
			t.Fatalf("draw %d: invalid side %q", i, side)
		}
		seen[side]++
	}
	for _, side := range domain.Sides {
		if seen[side] == 0 {
			t.Errorf("side %q never drawn in 300 attempts", side)
		}
	}
}

func TestRandResolverRefSeesBothOutcomes(t *testing.T) {
	r := NewRandResolver(rand.New(rand.NewSource(7)))

	var yes, no int
	for i := 0; i < 300; i++ {
		if r.RefSees() {
			yes++
		} else {
			no++
		}
	}
	if yes == 0 || no == 0 {
		t.Fatalf("draws degenerate: yes=%d no=%d", yes, no)
	}
	// p=0.6 should flag more fouls than it misses over 300 draws.
	if yes <= no {
		t.Errorf("yes=%d no=%d, expected seen fouls to dominate", yes, no)
	}
}

func TestNewRandResolverNilSource(t *testing.T) {
	r := NewRandResolver(nil)
	if !domain.ValidSide(r.KeeperChoice()) {
		t.Fatal("nil-seeded resolver returned invalid side")
	}
}
