package domain

import "testing"

func TestClampHealth(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{name: "within bounds", in: 55, want: 55},
		{name: "lower bound", in: 0, want: 0},
		{name: "upper bound", in: 100, want: 100},
		{name: "below zero", in: -10, want: 0},
		{name: "far below zero", in: -1000, want: 0},
		{name: "above max", in: 101, want: 100},
		{name: "far above max", in: 5000, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampHealth(tt.in); got != tt.want {
				t.Errorf("ClampHealth(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestApplyHealthDeltaStaysInBounds(t *testing.T) {
	tests := []struct {
		name   string
		health int
		delta  int
		want   int
	}{
		{name: "normal damage", health: 100, delta: -10, want: 90},
		{name: "normal heal", health: 50, delta: 25, want: 75},
		{name: "clamped at zero", health: 5, delta: -10, want: 0},
		{name: "clamped at max", health: 95, delta: 20, want: 100},
		{name: "zero delta", health: 40, delta: 0, want: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Match{Health: tt.health}
			got := m.ApplyHealthDelta(tt.delta)
			if got != tt.want {
				t.Errorf("ApplyHealthDelta(%d) = %d, want %d", tt.delta, got, tt.want)
			}
			if m.Health != tt.want {
				t.Errorf("Health = %d, want %d", m.Health, tt.want)
			}
		})
	}
}

func TestApplyHealthDeltaIdempotentAtBounds(t *testing.T) {
	m := &Match{Health: 3}
	m.ApplyHealthDelta(-10)
	for i := 0; i < 5; i++ {
		if got := m.ApplyHealthDelta(-10); got != 0 {
			t.Fatalf("repeat %d: health = %d, want 0", i, got)
		}
	}

	m.Health = 98
	m.ApplyHealthDelta(10)
	for i := 0; i < 5; i++ {
		if got := m.ApplyHealthDelta(10); got != MaxHealth {
			t.Fatalf("repeat %d: health = %d, want %d", i, got, MaxHealth)
		}
	}
}

func TestValidSide(t *testing.T) {
	for _, s := range Sides {
		if !ValidSide(s) {
			t.Errorf("ValidSide(%q) = false, want true", s)
		}
	}
	for _, s := range []Side{"", "up", "LEFT", "center"} {
		if ValidSide(s) {
			t.Errorf("ValidSide(%q) = true, want false", s)
		}
	}
}

func TestEnded(t *testing.T) {
	for _, tt := range []struct {
		phase Phase
		want  bool
	}{
		{PhaseInPlay, false},
		{PhaseShootout, false},
		{PhaseEnded, true},
	} {
		m := &Match{Phase: tt.phase}
		if got := m.Ended(); got != tt.want {
			t.Errorf("Ended() in %q = %v, want %v", tt.phase, got, tt.want)
		}
	}
}
