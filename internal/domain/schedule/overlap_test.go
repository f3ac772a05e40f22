package schedule

import "testing"

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                           string
		startA, endA, startB, endB     string
		want                           bool
	}{
		{"strict overlap", "09:00", "11:00", "10:00", "12:00", true},
		{"containment", "09:00", "17:00", "10:00", "11:00", true},
		{"identical", "09:00", "12:00", "09:00", "12:00", true},
		{"back-to-back", "09:00", "10:00", "10:00", "11:00", false},
		{"disjoint", "09:00", "10:00", "14:00", "15:00", false},
		{"one minute shared", "09:00", "10:01", "10:00", "11:00", true},
		{"zero-width never overlaps", "10:00", "10:00", "09:00", "11:00", false},
		{"zero-width pair", "10:00", "10:00", "10:00", "10:00", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Overlaps(c.startA, c.endA, c.startB, c.endB); got != c.want {
				t.Errorf("Overlaps(%s, %s, %s, %s) = %v, want %v",
					c.startA, c.endA, c.startB, c.endB, got, c.want)
			}
			// The relation is symmetric in the two intervals.
			if got := Overlaps(c.startB, c.endB, c.startA, c.endA); got != c.want {
				t.Errorf("Overlaps is not symmetric for %s-%s vs %s-%s",
					c.startA, c.endA, c.startB, c.endB)
			}
		})
	}
}
