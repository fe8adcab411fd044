package valueobject

import "testing"

func ptr(v float64) *float64 { return &v }

func TestClassifyUnit(t *testing.T) {
	tests := []struct {
		unit     string
		expected UnitKind
	}{
		{unit: "R$", expected: UnitKindCurrency},
		{unit: "BRL mil", expected: UnitKindCurrency},
		{unit: "%", expected: UnitKindPercent},
		{unit: "dias", expected: UnitKindCount},
		{unit: "un", expected: UnitKindCount},
		{unit: "kg", expected: UnitKindNumber},
		{unit: "", expected: UnitKindNumber},
	}

	for _, tt := range tests {
		t.Run(tt.unit, func(t *testing.T) {
			if got := ClassifyUnit(tt.unit); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestFormatSmart(t *testing.T) {
	tests := []struct {
		name     string
		value    *float64
		unit     string
		expected string
	}{
		{name: "nil value", value: nil, unit: "R$", expected: "-"},
		{name: "zero value", value: ptr(0), unit: "%", expected: "-"},
		{name: "currency", value: ptr(12345.5), unit: "R$", expected: "R$ 12.345,50"},
		{name: "percent", value: ptr(87.5), unit: "%", expected: "87,5%"},
		{name: "count", value: ptr(12.5), unit: "dias", expected: "12,5"},
		{name: "generic number", value: ptr(0.125), unit: "kg", expected: "0,125"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSmart(tt.value, tt.unit); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestSafeDateDisplay(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "empty", raw: "", expected: "-"},
		{name: "brazilian date", raw: "15/03/2025", expected: "15/03"},
		{name: "iso date", raw: "2025-03-15", expected: "mar. de 25"},
		{name: "iso december", raw: "2024-12-01", expected: "dez. de 24"},
		{name: "unparseable", raw: "amanhã", expected: "amanhã"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeDateDisplay(tt.raw); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	for _, raw := range []string{"2025-02-10", "10/02/2025", "2025-02-10T00:00:00Z"} {
		got, err := ParseDate(raw)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", raw, err)
		}
		if got.Year() != 2025 || got.Month() != 2 || got.Day() != 10 {
			t.Errorf("unexpected date for %q: %v", raw, got)
		}
	}

	if _, err := ParseDate("10-02-2025"); err == nil {
		t.Error("expected error for unsupported layout")
	}
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		attainment float64
		expected   AttainmentBand
	}{
		{attainment: 0, expected: BandBelow},
		{attainment: 59.9, expected: BandBelow},
		{attainment: 60, expected: BandPartial},
		{attainment: 99.9, expected: BandPartial},
		{attainment: 100, expected: BandAchieved},
		{attainment: 120, expected: BandExceeded},
	}

	for _, tt := range tests {
		if got := BandFor(tt.attainment); got != tt.expected {
			t.Errorf("attainment %v: expected %s, got %s", tt.attainment, tt.expected, got)
		}
	}
}
