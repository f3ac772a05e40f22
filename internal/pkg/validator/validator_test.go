package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	valid := []string{"00:00", "09:00", "13:45", "23:59"}
	invalid := []string{"24:00", "9:00", "12:60", "12:5", "12-30", "", "noon"}
	for _, s := range valid {
		if !IsValidTimeOfDay(s) {
			t.Errorf("IsValidTimeOfDay(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidTimeOfDay(s) {
			t.Errorf("IsValidTimeOfDay(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-06-01"); !ok {
		t.Error("IsValidDate(2025-06-01) = false, want true")
	}
	for _, s := range []string{"2025-13-01", "01-06-2025", "2025/06/01", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestLatitudeLongitudeRanges(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	if !IsValidLatitude(nil) || !IsValidLongitude(nil) {
		t.Error("nil coordinates must be valid")
	}
	if !IsValidLatitude(f(90)) || !IsValidLatitude(f(-90)) {
		t.Error("latitude bounds must be inclusive")
	}
	if IsValidLatitude(f(90.1)) || IsValidLatitude(f(-90.1)) {
		t.Error("latitude outside [-90, 90] must be invalid")
	}
	if !IsValidLongitude(f(180)) || IsValidLongitude(f(180.1)) {
		t.Error("longitude bound check failed")
	}
}
