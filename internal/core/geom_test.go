package core

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlapping", Box{0, 0, 60, 80}, Box{50, 70, 35, 50}, true},
		{"touching right edge", Box{0, 0, 60, 80}, Box{60, 0, 35, 50}, false},
		{"touching bottom edge", Box{0, 0, 60, 80}, Box{10, 80, 35, 50}, false},
		{"fractional overlap", Box{0, 0, 60, 80}, Box{59.9, 79.9, 10, 10}, true},
		{"far apart", Box{0, 0, 10, 10}, Box{100, 100, 10, 10}, false},
		{"contained", Box{0, 0, 100, 100}, Box{10, 10, 5, 5}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := Box{X: 100, Y: 20, W: 60, H: 80}

	if b.Right() != 160 {
		t.Errorf("Right() = %f, expected 160", b.Right())
	}
	if b.Bottom() != 100 {
		t.Errorf("Bottom() = %f, expected 100", b.Bottom())
	}
	cx, cy := b.Center()
	if cx != 130 || cy != 60 {
		t.Errorf("Center() = (%f, %f), expected (130, 60)", cx, cy)
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}
