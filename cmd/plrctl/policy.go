package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goal-tracker/backend/internal/domain/valueobject"
)

// policyView is the YAML layout accepted by --policy.
type policyView struct {
	Weights struct {
		Company    float64 `yaml:"company"`
		Area       float64 `yaml:"area"`
		Individual float64 `yaml:"individual"`
	} `yaml:"weights"`
	ReferenceYear    int                           `yaml:"reference_year"`
	Cutoff           string                        `yaml:"eligibility_cutoff"`
	ExtraGoalKeyword string                        `yaml:"extra_goal_keyword"`
	ExtraPoints      float64                       `yaml:"extra_points"`
	Levels           []valueobject.LevelMultiplier `yaml:"levels"`
}

func newPolicyCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "policy",
		Short: "Print the effective bonus policy as YAML",
		Long:  "Print the effective bonus policy. The output can be edited and passed back with --policy.",
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := root.policy()
			if err != nil {
				return err
			}
			return printPolicy(cmd.OutOrStdout(), policy)
		},
	}
}

func printPolicy(out io.Writer, policy valueobject.BonusPolicy) error {
	var view policyView
	view.Weights.Company = policy.CompanyWeight
	view.Weights.Area = policy.AreaWeight
	view.Weights.Individual = policy.IndividualWeight
	view.ReferenceYear = policy.ReferenceYear
	view.Cutoff = policy.Cutoff.Format("2006-01-02")
	view.ExtraGoalKeyword = policy.ExtraGoalKeyword
	view.ExtraPoints = policy.ExtraPoints
	view.Levels = policy.Levels

	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(view); err != nil {
		return fmt.Errorf("failed to encode policy: %w", err)
	}
	return encoder.Close()
}
