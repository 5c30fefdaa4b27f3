package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"profiles/internal/domain"
)

// compose <feature>...: wrap a basic profile with the named add-ons.
func composeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "compose <feature>...",
		Short:   "Print a profile built from the named add-ons, innermost first",
		Example: "  profiles compose photo story live",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := make([]domain.FeatureName, len(args))
			for i, a := range args {
				names[i] = domain.FeatureName(a)
			}
			line, err := appCtx.Summary.Compose(names...)
			if err != nil {
				appCtx.Log.Warn("compose failed", "features", args, "err", err)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}
}
