// Package valueobject contains domain value objects for the goal tracking system.
package valueobject

import "github.com/shopspring/decimal"

// taxBracket is one row of the PLR withholding table. A gross amount up to
// and including UpperBound is taxed at Rate minus Deduction.
type taxBracket struct {
	UpperBound decimal.Decimal
	Rate       decimal.Decimal
	Deduction  decimal.Decimal
}

// plrTaxTable is the exclusive PLR withholding table. The last bracket has
// no upper bound.
var plrTaxTable = []taxBracket{
	{UpperBound: decimal.RequireFromString("7640.80"), Rate: decimal.Zero, Deduction: decimal.Zero},
	{UpperBound: decimal.RequireFromString("9922.28"), Rate: decimal.RequireFromString("0.075"), Deduction: decimal.RequireFromString("573.06")},
	{UpperBound: decimal.RequireFromString("13167.00"), Rate: decimal.RequireFromString("0.15"), Deduction: decimal.RequireFromString("1317.23")},
	{UpperBound: decimal.RequireFromString("16380.38"), Rate: decimal.RequireFromString("0.225"), Deduction: decimal.RequireFromString("2304.76")},
}

var topBracket = taxBracket{
	Rate:      decimal.RequireFromString("0.275"),
	Deduction: decimal.RequireFromString("3123.78"),
}

// TaxBreakdown is the result of applying the PLR table to a gross amount.
type TaxBreakdown struct {
	Gross decimal.Decimal
	Tax   decimal.Decimal
	Net   decimal.Decimal
}

// CalculatePLRNet applies the progressive PLR table to gross. Tax is never
// negative and Net is always Gross minus Tax.
func CalculatePLRNet(gross decimal.Decimal) TaxBreakdown {
	bracket := topBracket
	for _, b := range plrTaxTable {
		if gross.LessThanOrEqual(b.UpperBound) {
			bracket = b
			break
		}
	}

	tax := gross.Mul(bracket.Rate).Sub(bracket.Deduction)
	if tax.IsNegative() {
		tax = decimal.Zero
	}

	return TaxBreakdown{
		Gross: gross,
		Tax:   tax,
		Net:   gross.Sub(tax),
	}
}

// TaxBracketInfo describes a bracket for presentation.
type TaxBracketInfo struct {
	UpperBound *decimal.Decimal
	Rate       decimal.Decimal
	Deduction  decimal.Decimal
}

// PLRTaxTable returns the withholding table, lowest bracket first.
func PLRTaxTable() []TaxBracketInfo {
	table := make([]TaxBracketInfo, 0, len(plrTaxTable)+1)
	for _, b := range plrTaxTable {
		upper := b.UpperBound
		table = append(table, TaxBracketInfo{UpperBound: &upper, Rate: b.Rate, Deduction: b.Deduction})
	}
	return append(table, TaxBracketInfo{Rate: topBracket.Rate, Deduction: topBracket.Deduction})
}
