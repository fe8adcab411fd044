package valueobject

import "testing"

func TestCleanNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "empty", input: "", expected: 0},
		{name: "blank", input: "   ", expected: 0},
		{name: "brazilian thousands and decimal", input: "1.234,56", expected: 1234.56},
		{name: "comma decimal", input: "0,75", expected: 0.75},
		{name: "currency with thousands dot", input: "R$ 1.500", expected: 1500},
		{name: "percent sign", input: "85%", expected: 85},
		{name: "dot decimal", input: "12.50", expected: 12.5},
		{name: "single dot decimal", input: "1.5", expected: 1.5},
		{name: "multiple thousands groups", input: "1.234.567", expected: 1234567},
		{name: "negative comma decimal", input: "-12,5", expected: -12.5},
		{name: "letters only", input: "abc", expected: 0},
		{name: "double minus", input: "--5", expected: 0},
		{name: "trailing garbage after number", input: "12-3", expected: 12},
		{name: "plain integer", input: "42", expected: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanNumber(tt.input)
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestCleanNonNegative(t *testing.T) {
	if got := CleanNonNegative("-10"); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
	if got := CleanNonNegative("30"); got != 30 {
		t.Errorf("expected 30, got %v", got)
	}
}

func TestNormalizeText(t *testing.T) {
	if got := NormalizeText("  Financeiro "); got != "financeiro" {
		t.Errorf("expected financeiro, got %q", got)
	}
	if !SameText("Comercial", " comercial") {
		t.Error("expected texts to match after normalization")
	}
}
