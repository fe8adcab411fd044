package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/goal-tracker/backend/internal/domain/valueobject"
)

func newTaxCmd() *cobra.Command {
	var showTable bool

	cmd := &cobra.Command{
		Use:   "tax [gross]",
		Short: "Apply the PLR withholding table to a gross amount",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				printTaxTable(out)
				return nil
			}

			if err := runTax(out, args[0]); err != nil {
				return err
			}
			if showTable {
				fmt.Fprintln(out)
				printTaxTable(out)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showTable, "table", false, "also print the withholding table")

	return cmd
}

func runTax(out io.Writer, raw string) error {
	gross := valueobject.CleanNumber(raw)
	if gross < 0 {
		return errors.New("gross amount must not be negative")
	}

	breakdown := valueobject.CalculatePLRNet(decimal.NewFromFloat(gross).Round(2))
	fmt.Fprintf(out, "Gross: %s\n", valueobject.FormatCurrency(breakdown.Gross.InexactFloat64()))
	fmt.Fprintf(out, "Tax:   %s\n", valueobject.FormatCurrency(breakdown.Tax.InexactFloat64()))
	fmt.Fprintf(out, "Net:   %s\n", valueobject.FormatCurrency(breakdown.Net.InexactFloat64()))
	return nil
}

func printTaxTable(out io.Writer) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "UP TO\tRATE\tDEDUCTION")
	for _, b := range valueobject.PLRTaxTable() {
		upper := "above"
		if b.UpperBound != nil {
			upper = valueobject.FormatCurrency(b.UpperBound.InexactFloat64())
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			upper,
			valueobject.FormatPercent(b.Rate.Mul(decimal.NewFromInt(100)).InexactFloat64()),
			valueobject.FormatCurrency(b.Deduction.InexactFloat64()),
		)
	}
	_ = w.Flush()
}
