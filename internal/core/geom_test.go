package core

import "testing"

func TestBoxFaces(t *testing.T) {
	b := NewBox(Vec3{X: 2, Y: 1}, 0.5)

	if b.Left() != 1.5 {
		t.Errorf("Left() = %v, expected 1.5", b.Left())
	}
	if b.Right() != 2.5 {
		t.Errorf("Right() = %v, expected 2.5", b.Right())
	}
	if b.Bottom() != 0.5 {
		t.Errorf("Bottom() = %v, expected 0.5", b.Bottom())
	}
	if b.Top() != 1.5 {
		t.Errorf("Top() = %v, expected 1.5", b.Top())
	}
}

func TestBoxSpans(t *testing.T) {
	b := NewBox(Vec3{}, 0.5)

	tests := []struct {
		name     string
		v        float64
		expected bool
	}{
		{"center", 0, true},
		{"inside near edge", 0.49, true},
		{"on positive edge (exclusive)", 0.5, false},
		{"on negative edge (exclusive)", -0.5, false},
		{"outside", 3, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.SpansX(tc.v); got != tc.expected {
				t.Errorf("SpansX(%v) = %v, expected %v", tc.v, got, tc.expected)
			}
			if got := b.SpansY(tc.v); got != tc.expected {
				t.Errorf("SpansY(%v) = %v, expected %v", tc.v, got, tc.expected)
			}
		})
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
}
