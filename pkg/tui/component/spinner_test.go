// ABOUTME: Tests for the status line spinner

package component

import "testing"

func TestSpinner_Cycles(t *testing.T) {
	t.Parallel()

	s := NewSpinner()
	first := s.Frame()
	seen := map[string]bool{first: true}
	for range len(defaultFrames) - 1 {
		s.Tick()
		seen[s.Frame()] = true
	}
	if len(seen) != len(defaultFrames) {
		t.Errorf("saw %d distinct frames, want %d", len(seen), len(defaultFrames))
	}
	s.Tick()
	if s.Frame() != first {
		t.Errorf("Frame() = %q after full cycle, want %q", s.Frame(), first)
	}

	s.Tick()
	s.Reset()
	if s.Frame() != first {
		t.Errorf("Frame() = %q after Reset, want %q", s.Frame(), first)
	}
}
