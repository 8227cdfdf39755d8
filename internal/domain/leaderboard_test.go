package domain

import (
	"fmt"
	"testing"
)

func TestAppendBoundedKeepsWindow(t *testing.T) {
	const capacity = 50

	var entries []Entry
	for i := 0; i < capacity+1; i++ {
		entries = AppendBounded(entries, Entry{Name: fmt.Sprintf("p%d", i)}, capacity)
	}

	if len(entries) != capacity {
		t.Fatalf("len = %d, want %d", len(entries), capacity)
	}
	// The single oldest entry is evicted; relative order is preserved.
	for i, e := range entries {
		if want := fmt.Sprintf("p%d", i+1); e.Name != want {
			t.Fatalf("entries[%d].Name = %q, want %q", i, e.Name, want)
		}
	}
}

func TestAppendBoundedUnderCapacity(t *testing.T) {
	var entries []Entry
	for i := 0; i < 10; i++ {
		entries = AppendBounded(entries, Entry{Name: fmt.Sprintf("p%d", i)}, 50)
	}
	if len(entries) != 10 {
		t.Fatalf("len = %d, want 10", len(entries))
	}
	if entries[0].Name != "p0" || entries[9].Name != "p9" {
		t.Errorf("window = %q..%q, want p0..p9", entries[0].Name, entries[9].Name)
	}
}

func TestAppendBoundedNoCapacity(t *testing.T) {
	var entries []Entry
	for i := 0; i < 60; i++ {
		entries = AppendBounded(entries, Entry{}, 0)
	}
	if len(entries) != 60 {
		t.Fatalf("len = %d, want 60 with bound disabled", len(entries))
	}
}
