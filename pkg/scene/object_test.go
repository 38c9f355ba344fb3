package scene

import "testing"

func TestHit(t *testing.T) {
	s := NewSphere()
	xs := func(ts ...float64) []Intersection {
		out := make([]Intersection, len(ts))
		for i, v := range ts {
			out[i] = Intersection{T: v, Object: s}
		}
		return out
	}

	tests := []struct {
		name     string
		xs       []Intersection
		expected float64
		ok       bool
	}{
		{"all positive", xs(1, 2), 1, true},
		{"some negative", xs(-1, 1), 1, true},
		{"all negative", xs(-2, -1), 0, false},
		{"empty", nil, 0, false},
		{"unsorted", xs(5, 7, -3, 2), 2, true},
		{"zero counts as a hit", xs(-1, 0, 3), 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hit, ok := Hit(tc.xs)
			if ok != tc.ok {
				t.Fatalf("Hit ok = %v, want %v", ok, tc.ok)
			}
			if ok && hit.T != tc.expected {
				t.Errorf("Hit T = %v, want %v", hit.T, tc.expected)
			}
		})
	}
}
