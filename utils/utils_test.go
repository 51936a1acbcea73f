package utils

import "testing"

func TestIso8601FromUnixSeconds(t *testing.T) {
	tests := []struct {
		name     string
		input    int64
		expected string
	}{
		{
			name:     "epoch",
			input:    0,
			expected: "1970-01-01T00:00:00Z",
		},
		{
			name:     "specific timestamp",
			input:    1696320000, // 2023-10-03 08:00:00 UTC
			expected: "2023-10-03T08:00:00Z",
		},
		{
			name:     "negative timestamp",
			input:    -86400,
			expected: "1969-12-31T00:00:00Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Iso8601FromUnixSeconds(tt.input)
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestIso8601Duration(t *testing.T) {
	tests := []struct {
		name     string
		seconds  int64
		expected string
	}{
		{"zero", 0, "PT0S"},
		{"seconds only", 45, "PT45S"},
		{"minutes and seconds", 330, "PT5M30S"},
		{"minutes only", 300, "PT5M"},
		{"hours minutes seconds", 7545, "PT2H5M45S"},
		{"hours only", 10800, "PT3H"},
		{"negative", -90, "-PT1M30S"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Iso8601Duration(tt.seconds); result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestPresentableDistance(t *testing.T) {
	tests := []struct {
		name     string
		meters   float64
		expected string
	}{
		{"zero", 0, "0 m"},
		{"meters rounded", 499.6, "500 m"},
		{"exactly one km", 1000, "1.00 km"},
		{"kilometers", 12346, "12.35 km"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := PresentableDistance(tt.meters); result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestPresentableMiles(t *testing.T) {
	tests := []struct {
		meters   float64
		expected string
	}{
		{0, "0.0 miles"},
		{1500, "0.9 miles"},
		{1607.73, "1.0 mile"},
		{1609.344, "1.0 mile"},
		{1700, "1.1 miles"},
		{10000, "6.2 miles"},
	}
	for _, tt := range tests {
		if result := PresentableMiles(tt.meters); result != tt.expected {
			t.Errorf("PresentableMiles(%v): expected %s, got %s", tt.meters, tt.expected, result)
		}
	}
}
