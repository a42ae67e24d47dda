package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/knightmoves/internal/driver"
)

func newCheckCmd(g *globalFlags) *cobra.Command {
	var scenarios string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the scenario suite and verify every path",
		Long: `Run each scenario through the distance and path searches and verify that the
path starts and ends correctly, uses only knight moves, and has the minimum
length. Exits non-zero when any scenario fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			if scenarios == "" {
				scenarios = cfg.Scenarios
			}
			suite := driver.DefaultScenarios()
			if scenarios != "" {
				if suite, err = driver.LoadScenarios(scenarios); err != nil {
					return err
				}
			}
			if sum := driver.Run(cmd.OutOrStdout(), suite); !sum.OK() {
				return ErrChecksFailed
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&scenarios, "scenarios", "s", "", "YAML scenario file (default: built-in suite)")

	return cmd
}
