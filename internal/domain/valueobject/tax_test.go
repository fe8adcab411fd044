package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCalculatePLRNet(t *testing.T) {
	tests := []struct {
		name        string
		gross       string
		expectedTax string
	}{
		{name: "zero", gross: "0", expectedTax: "0"},
		{name: "exempt upper bound", gross: "7640.80", expectedTax: "0"},
		{name: "just above exempt bound", gross: "7640.81", expectedTax: "0.00075"},
		{name: "second bracket upper bound", gross: "9922.28", expectedTax: "171.111"},
		{name: "third bracket", gross: "10000", expectedTax: "182.77"},
		{name: "fourth bracket", gross: "15000", expectedTax: "1070.24"},
		{name: "top bracket", gross: "20000", expectedTax: "2376.22"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gross := decimal.RequireFromString(tt.gross)
			result := CalculatePLRNet(gross)

			expectedTax := decimal.RequireFromString(tt.expectedTax)
			if !result.Tax.Equal(expectedTax) {
				t.Errorf("expected tax %s, got %s", expectedTax, result.Tax)
			}
			if !result.Net.Equal(gross.Sub(result.Tax)) {
				t.Errorf("expected net %s, got %s", gross.Sub(result.Tax), result.Net)
			}
		})
	}
}

func TestCalculatePLRNet_TopBracketExample(t *testing.T) {
	result := CalculatePLRNet(decimal.NewFromInt(20000))

	if !result.Net.Equal(decimal.RequireFromString("17623.78")) {
		t.Errorf("expected net 17623.78, got %s", result.Net)
	}
}

func TestCalculatePLRNet_NeverNegative(t *testing.T) {
	for _, gross := range []string{"0", "100", "7640.80", "7640.81", "9922.29", "13167.01", "16380.39"} {
		result := CalculatePLRNet(decimal.RequireFromString(gross))
		if result.Tax.IsNegative() {
			t.Errorf("gross %s: tax must not be negative, got %s", gross, result.Tax)
		}
	}
}

func TestPLRTaxTable(t *testing.T) {
	table := PLRTaxTable()
	if len(table) != 5 {
		t.Fatalf("expected 5 brackets, got %d", len(table))
	}
	if table[4].UpperBound != nil {
		t.Error("expected top bracket to be unbounded")
	}
}
