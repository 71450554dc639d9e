package core

import "testing"

func TestColorOperations(t *testing.T) {
	t.Run("adding colors", func(t *testing.T) {
		got := NewColor(0.9, 0.6, 0.75).Add(NewColor(0.7, 0.1, 0.25))
		if !got.Equal(NewColor(1.6, 0.7, 1.0)) {
			t.Errorf("got %v, want (1.6, 0.7, 1.0)", got)
		}
	})

	t.Run("subtracting colors", func(t *testing.T) {
		got := NewColor(0.9, 0.6, 0.75).Sub(NewColor(0.7, 0.1, 0.25))
		if !got.Equal(NewColor(0.2, 0.5, 0.5)) {
			t.Errorf("got %v, want (0.2, 0.5, 0.5)", got)
		}
	})

	t.Run("scaling a color", func(t *testing.T) {
		got := NewColor(0.2, 0.3, 0.4).Multiply(2)
		if !got.Equal(NewColor(0.4, 0.6, 0.8)) {
			t.Errorf("got %v, want (0.4, 0.6, 0.8)", got)
		}
	})

	t.Run("blending colors", func(t *testing.T) {
		got := NewColor(1, 0.2, 0.4).Blend(NewColor(0.9, 1, 0.1))
		if !got.Equal(NewColor(0.9, 0.2, 0.04)) {
			t.Errorf("got %v, want (0.9, 0.2, 0.04)", got)
		}
	})
}
