package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "single pixel overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

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

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 20, 10)

	got := r.Inset(2, 1, 3, 1)
	want := NewRect(1, 2, 18, 5)
	if got != want {
		t.Errorf("Inset() = %+v, expected %+v", got, want)
	}

	// Over-inset collapses to an empty rect instead of going negative
	collapsed := r.Inset(8, 0, 8, 0)
	if collapsed.H != 0 || !collapsed.Empty() {
		t.Errorf("Inset() should collapse to empty, got %+v", collapsed)
	}
}

func TestRectMoveTo(t *testing.T) {
	r := NewRect(1, 2, 3, 4).MoveTo(7, 8)
	if r.X != 7 || r.Y != 8 || r.W != 3 || r.H != 4 {
		t.Errorf("MoveTo() = %+v", r)
	}
}

func TestColorBlend(t *testing.T) {
	fg := RGB(200, 100, 0)
	bg := RGB(0, 0, 0)

	if got := fg.Blend(bg, 1); got != fg {
		t.Errorf("Blend(alpha=1) = %v, expected %v", got, fg)
	}
	if got := fg.Blend(bg, 0); got != bg {
		t.Errorf("Blend(alpha=0) = %v, expected %v", got, bg)
	}
	if got := fg.Blend(bg, 0.5); got != RGB(100, 50, 0) {
		t.Errorf("Blend(alpha=0.5) = %v", got)
	}
}

func TestColorBrighterDarker(t *testing.T) {
	c := RGB(100, 181, 246)

	b := c.Brighter()
	if b.R <= c.R || b.G <= c.G || b.B < c.B {
		t.Errorf("Brighter() = %v should not be darker than %v", b, c)
	}
	if b.B != 255 {
		t.Errorf("Brighter() should saturate at 255, got %d", b.B)
	}

	d := c.Darker()
	if d.R >= c.R || d.G >= c.G || d.B >= c.B {
		t.Errorf("Darker() = %v should be darker than %v", d, c)
	}

	if got := RGB(100, 200, 250).Darker(); got != RGB(70, 140, 175) {
		t.Errorf("Darker() = %v, expected %v", got, RGB(70, 140, 175))
	}

	if ColorBlack.Brighter() == ColorBlack {
		t.Error("black should brighten")
	}
	if got := RGB(1, 2, 3).Hex(); got != "#010203" {
		t.Errorf("Hex() = %q", got)
	}
}

