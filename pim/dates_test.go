package pim

import (
	"encoding/json"
	"testing"
)

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2024, true},
		{2023, false},
		{2000, true},
		{1900, false},
		{2100, false},
		{2400, true},
	}

	for _, tt := range tests {
		if got := IsLeapYear(tt.year); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name        string
		year, month int
		want        int
	}{
		{name: "january", year: 2026, month: 1, want: 31},
		{name: "february common", year: 2023, month: 2, want: 28},
		{name: "february leap", year: 2024, month: 2, want: 29},
		{name: "february century", year: 1900, month: 2, want: 28},
		{name: "april", year: 2026, month: 4, want: 30},
		{name: "december", year: 2026, month: 12, want: 31},
		{name: "invalid month", year: 2026, month: 13, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DaysInMonth(tt.year, tt.month); got != tt.want {
				t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestFirstWeekday(t *testing.T) {
	// Monday = 0 .. Sunday = 6.
	tests := []struct {
		name        string
		year, month int
		want        int
	}{
		{name: "jan 2024 starts monday", year: 2024, month: 1, want: 0},
		{name: "aug 2026 starts saturday", year: 2026, month: 8, want: 5},
		{name: "jul 2023 starts saturday", year: 2023, month: 7, want: 5},
		{name: "jan 2000 starts saturday", year: 2000, month: 1, want: 5},
		{name: "mar 2026 starts sunday", year: 2026, month: 3, want: 6},
		{name: "jun 2026 starts monday", year: 2026, month: 6, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FirstWeekday(tt.year, tt.month); got != tt.want {
				t.Errorf("FirstWeekday(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestDateCompare(t *testing.T) {
	a := Date{2026, 8, 26}
	if a.Compare(Date{2026, 8, 26}) != 0 {
		t.Error("equal dates should compare to 0")
	}
	if a.Compare(Date{2026, 9, 1}) >= 0 {
		t.Error("earlier date should compare negative")
	}
	if a.Compare(Date{2025, 12, 31}) <= 0 {
		t.Error("later date should compare positive")
	}
}

func TestDateJSON(t *testing.T) {
	got, err := json.Marshal(Date{2026, 8, 26})
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "[2026,8,26]" {
		t.Errorf("wanted [2026,8,26], got %s", got)
	}

	var d Date
	if err := json.Unmarshal([]byte("[2024,2,29]"), &d); err != nil {
		t.Fatal(err)
	}
	if d != (Date{2024, 2, 29}) {
		t.Errorf("wanted {2024 2 29}, got %v", d)
	}
}
