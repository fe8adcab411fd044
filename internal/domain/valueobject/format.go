// Package valueobject contains domain value objects for the goal tracking system.
package valueobject

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// UnitKind classifies the free-text unit of a goal so the right formatter can be picked.
type UnitKind string

const (
	UnitKindCurrency UnitKind = "currency"
	UnitKindPercent  UnitKind = "percent"
	UnitKindCount    UnitKind = "count"
	UnitKindNumber   UnitKind = "number"
)

// ClassifyUnit maps a unit label to its kind by substring matching:
// "R$"/"BRL" is currency, "%" is percent, "dia"/"un" is a count and anything
// else is a plain number.
func ClassifyUnit(unit string) UnitKind {
	u := strings.ToLower(unit)
	switch {
	case strings.Contains(u, "r$") || strings.Contains(u, "brl"):
		return UnitKindCurrency
	case strings.Contains(u, "%"):
		return UnitKindPercent
	case strings.Contains(u, "dia") || strings.Contains(u, "un"):
		return UnitKindCount
	default:
		return UnitKindNumber
	}
}

// emptyDisplay is shown for absent values.
const emptyDisplay = "-"

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatCurrency formats an amount in Brazilian reais, e.g. "R$ 1.234,50".
func FormatCurrency(value float64) string {
	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}
	return sign + "R$ " + ptBR.Sprint(number.Decimal(value, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatPercent formats a percentage with at most one fraction digit, e.g. "87,5%".
func FormatPercent(value float64) string {
	return ptBR.Sprint(number.Decimal(value, number.MaxFractionDigits(1))) + "%"
}

// FormatNumber formats a plain number with pt-BR separators, e.g. "1.234,567".
func FormatNumber(value float64) string {
	return ptBR.Sprint(number.Decimal(value, number.MaxFractionDigits(3)))
}

// FormatSmart formats a result according to its unit. Absent and zero
// results are shown as "-".
func FormatSmart(value *float64, unit string) string {
	if value == nil || *value == 0 {
		return emptyDisplay
	}

	switch ClassifyUnit(unit) {
	case UnitKindCurrency:
		return FormatCurrency(*value)
	case UnitKindPercent:
		return FormatPercent(*value)
	default:
		return FormatNumber(*value)
	}
}

var brazilianDate = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

var monthAbbreviations = [...]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}

// SafeDateDisplay renders a reference date as a short label ("mar. de 25").
// Dates already in dd/mm/yyyy form are shortened to dd/mm and anything that
// cannot be parsed is returned unchanged.
func SafeDateDisplay(raw string) string {
	if raw == "" {
		return emptyDisplay
	}
	if brazilianDate.MatchString(raw) {
		return raw[:5]
	}

	date, err := ParseDate(raw)
	if err != nil {
		return raw
	}
	return fmt.Sprintf("%s. de %02d", monthAbbreviations[date.Month()-1], date.Year()%100)
}

// ParseDate parses the date formats accepted for reference dates and hire
// dates: ISO (2006-01-02), RFC 3339 and Brazilian dd/mm/yyyy.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	layouts := []string{"2006-01-02", time.RFC3339, "02/01/2006"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}

// AttainmentBand is the rung an attainment percentage falls in.
type AttainmentBand string

const (
	BandBelow    AttainmentBand = "below"
	BandPartial  AttainmentBand = "partial"
	BandAchieved AttainmentBand = "achieved"
	BandExceeded AttainmentBand = "exceeded"
)

// BandFor returns the rung band for an attainment percentage (60/100/120 thresholds).
func BandFor(attainment float64) AttainmentBand {
	switch {
	case attainment >= 120:
		return BandExceeded
	case attainment >= 100:
		return BandAchieved
	case attainment >= 60:
		return BandPartial
	default:
		return BandBelow
	}
}
