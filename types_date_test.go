package garbanzo

import (
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := NewDate(2025, 7, 31)
	d2 := NewDate(2025, 7, 31)
	if d1.time() != d2.time() {
		// time.Time values are usually not comparable (the timezone is a
		// pointer); this checks the property holds for canonical dates.
		t.Errorf("invalid time() function: same day gives two different times")
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  Date
		err   bool
	}{
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{" 2024-02-29 ", NewDate(2024, time.February, 29), false},
		{"2024-03-05T08:30:00Z", NewDate(2024, time.March, 5), false},
		{"invalid-date", Date{}, true},
		{"", Date{}, true},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.input)
		if tt.err {
			if err == nil {
				t.Errorf("ParseDate(%q) want error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestDate_StartOf(t *testing.T) {
	on := NewDate(2024, time.February, 14) // a Wednesday
	tests := []struct {
		period Period
		want   Date
	}{
		{Daily, on},
		{Weekly, NewDate(2024, time.February, 12)}, // the preceding Monday
		{Monthly, NewDate(2024, time.February, 1)},
		{Quarterly, NewDate(2024, time.January, 1)},
		{Yearly, NewDate(2024, time.January, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.period.String(), func(t *testing.T) {
			if got := on.StartOf(tt.period); got != tt.want {
				t.Errorf("StartOf(%v) = %v, want %v", tt.period, got, tt.want)
			}
		})
	}
}

func TestDate_StartOf_anchors(t *testing.T) {
	tests := []struct {
		name   string
		on     Date
		period Period
		want   Date
	}{
		{"sunday belongs to the week started the previous monday", NewDate(2024, time.March, 10), Weekly, NewDate(2024, time.March, 4)},
		{"monday starts its own week", NewDate(2024, time.March, 4), Weekly, NewDate(2024, time.March, 4)},
		{"last day of quarter", NewDate(2024, time.June, 30), Quarterly, NewDate(2024, time.April, 1)},
		{"fourth quarter", NewDate(2024, time.November, 2), Quarterly, NewDate(2024, time.October, 1)},
		{"new year's eve", NewDate(2023, time.December, 31), Yearly, NewDate(2023, time.January, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.on.StartOf(tt.period); got != tt.want {
				t.Errorf("StartOf(%v) = %v, want %v", tt.period, got, tt.want)
			}
		})
	}
}

func TestDate_EndOf(t *testing.T) {
	on := NewDate(2024, time.February, 14)
	tests := []struct {
		period Period
		want   Date
	}{
		{Daily, on},
		{Weekly, NewDate(2024, time.February, 18)},
		{Monthly, NewDate(2024, time.February, 29)}, // leap year
		{Quarterly, NewDate(2024, time.March, 31)},
		{Yearly, NewDate(2024, time.December, 31)},
	}
	for _, tt := range tests {
		t.Run(tt.period.String(), func(t *testing.T) {
			if got := on.EndOf(tt.period); got != tt.want {
				t.Errorf("EndOf(%v) = %v, want %v", tt.period, got, tt.want)
			}
		})
	}
}

func TestDate_JSON(t *testing.T) {
	d := MustParse("2024-01-15")
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2024-01-15"` {
		t.Errorf("MarshalJSON = %s, want %q", b, "2024-01-15")
	}
	var back Date
	if err := back.UnmarshalJSON(b); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}
