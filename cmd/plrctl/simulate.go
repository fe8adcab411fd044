package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/goal-tracker/backend/internal/domain/scoring"
	"github.com/goal-tracker/backend/internal/domain/valueobject"
)

type simulateOptions struct {
	salary     string
	level      string
	multiplier float64
	company    float64
	area       float64
	individual float64
	hireDate   string
}

func newSimulateCmd(root *rootOptions) *cobra.Command {
	opts := &simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Estimate a bonus from scores and salary",
		Example: `  plrctl simulate --salary "R$ 5.000,00" --level analista --company 80 --area 80
  plrctl simulate --salary 7000 --multiplier 4 --company 95 --area 70 --hire-date 2025-03-10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := root.policy()
			if err != nil {
				return err
			}
			return runSimulate(cmd.OutOrStdout(), opts, policy)
		},
	}

	cmd.Flags().StringVar(&opts.salary, "salary", "", "monthly salary, e.g. 5000 or \"R$ 5.000,00\"")
	cmd.Flags().StringVar(&opts.level, "level", "", "level key from the policy (defaults to the first level)")
	cmd.Flags().Float64Var(&opts.multiplier, "multiplier", 0, "salary multiple, overrides --level")
	cmd.Flags().Float64Var(&opts.company, "company", 0, "company score (0-120)")
	cmd.Flags().Float64Var(&opts.area, "area", 0, "area score (0-100)")
	cmd.Flags().Float64Var(&opts.individual, "individual", 100, "individual score (0-100)")
	cmd.Flags().StringVar(&opts.hireDate, "hire-date", "", "hire date, YYYY-MM-DD or DD/MM/YYYY")
	_ = cmd.MarkFlagRequired("salary")

	return cmd
}

func runSimulate(out io.Writer, opts *simulateOptions, policy valueobject.BonusPolicy) error {
	salary := valueobject.CleanNumber(opts.salary)
	if salary < 0 {
		return errors.New("salary must not be negative")
	}
	if opts.company < 0 || opts.area < 0 || opts.individual < 0 {
		return errors.New("scores must not be negative")
	}

	multiplier, label, err := resolveMultiplier(opts, policy)
	if err != nil {
		return err
	}

	input := scoring.SimulationInput{
		CompanyScore:    opts.company,
		AreaScore:       opts.area,
		IndividualScore: opts.individual,
		Salary:          decimal.NewFromFloat(salary),
		LevelMultiplier: multiplier,
	}
	if opts.hireDate != "" {
		hire, err := valueobject.ParseDate(opts.hireDate)
		if err != nil {
			return fmt.Errorf("invalid hire date %q: %w", opts.hireDate, err)
		}
		input.HireDate = &hire
	}

	result := scoring.Simulate(input, policy)

	fmt.Fprintf(out, "Level:          %s (x%s)\n", label, valueobject.FormatNumber(multiplier))
	fmt.Fprintf(out, "Weighted score: %s\n", valueobject.FormatPercent(result.WeightedScore.Mul(decimal.NewFromInt(100)).InexactFloat64()))
	if !result.Eligible {
		fmt.Fprintf(out, "Not eligible:   %s\n", result.IneligibilityReason)
	} else if result.DaysWorked > 0 {
		fmt.Fprintf(out, "Days worked:    %d\n", result.DaysWorked)
	}
	fmt.Fprintf(out, "Gross:          %s\n", valueobject.FormatCurrency(result.Gross.InexactFloat64()))
	fmt.Fprintf(out, "Tax:            %s\n", valueobject.FormatCurrency(result.Tax.InexactFloat64()))
	fmt.Fprintf(out, "Net:            %s\n", valueobject.FormatCurrency(result.Net.InexactFloat64()))
	return nil
}

func resolveMultiplier(opts *simulateOptions, policy valueobject.BonusPolicy) (float64, string, error) {
	if opts.multiplier != 0 {
		if opts.multiplier < 0 {
			return 0, "", errors.New("multiplier must be positive")
		}
		return opts.multiplier, "custom", nil
	}

	if len(policy.Levels) == 0 {
		return 0, "", errors.New("the policy defines no levels, use --multiplier")
	}

	level := opts.level
	if level == "" {
		level = policy.Levels[0].Key
	}
	for _, l := range policy.Levels {
		if valueobject.SameText(l.Key, level) {
			return l.Multiplier, l.Label, nil
		}
	}
	return 0, "", fmt.Errorf("unknown level %q", opts.level)
}
