package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/bootstrap"
)

func newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the sync service until interrupted",
		Long: `Run starts the job queue and schedules the periodic syncs configured by the
resolved settings. Jobs left running by a previous process are resumed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				return bootstrap.RunUntilInterrupt(ctx, app)
			})
		},
	}
}
