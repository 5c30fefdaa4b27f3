package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"profiles/internal/profile"
)

func featuresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "features",
		Short: "List available add-ons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, a := range profile.AddOns() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-6s %q +$%d\n", a.Name(), a.Suffix(), a.Increment())
			}
			return nil
		},
	}
}
