package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"profiles/internal/app"
)

var appCtx *app.App

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "profiles",
		Short:        "Show user profiles built from stacked add-ons",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: slog.LevelWarn,
			}))
			appCtx = app.New(app.Config{Logger: log})
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, line := range appCtx.Summary.Demo() {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	root.AddCommand(composeCmd(), featuresCmd())
	return root
}
