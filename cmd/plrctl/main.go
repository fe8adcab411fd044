// Command plrctl runs the bonus simulator and the PLR tax table from the
// terminal, without a running API.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goal-tracker/backend/internal/domain/valueobject"
)

// Version info set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
)

type rootOptions struct {
	policyFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "plrctl",
		Short:         "Profit-sharing (PLR) calculator",
		Long:          "plrctl estimates bonuses and withholding tax with the same rules the API applies.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.policyFile, "policy", os.Getenv("BONUS_POLICY_FILE"), "YAML bonus policy file (defaults to the built-in policy)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newSimulateCmd(opts))
	cmd.AddCommand(newTaxCmd())
	cmd.AddCommand(newPolicyCmd(opts))
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "plrctl %s (commit: %s)\n", Version, Commit)
		},
	}
}

// policy returns the policy selected by --policy.
func (o *rootOptions) policy() (valueobject.BonusPolicy, error) {
	if o.policyFile == "" {
		return valueobject.DefaultBonusPolicy(), nil
	}
	return valueobject.LoadBonusPolicy(o.policyFile)
}

func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(newRootCmd()))
}
