package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/bootstrap"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
)

var errWatchClosed = errors.New("job updates stopped before the job finished")

func newSyncCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Start a sync job",
		Long: `Start a reference or bulk data sync. A live job of the same kind is
cancelled and replaced.`,
	}

	cmd.AddCommand(
		newSyncJobCommand("reference", "Sync datasets and nomenclatures", domain.FamilyReferenceSync),
		newSyncJobCommand("data", "Upload pending inputs then sync taxa", domain.FamilyBulkSync),
	)
	return cmd
}

func newSyncJobCommand(use, short string, family domain.JobFamily) *cobra.Command {
	var detach bool

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				if detach {
					rec, err := startJob(ctx, app, family)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", rec.ID, rec.Family, rec.Status)
					return nil
				}
				return runJob(ctx, app, family, cmd.OutOrStdout())
			})
		},
	}

	cmd.Flags().BoolVar(&detach, "detach", false, "enqueue the job and return; a running service picks it up")
	return cmd
}

func startJob(ctx context.Context, app *bootstrap.App, family domain.JobFamily) (domain.JobRecord, error) {
	if family == domain.FamilyBulkSync {
		return app.Scheduler.StartDataSync(ctx)
	}
	return app.Scheduler.StartSync(ctx)
}

// runJob runs one job in this process and prints its transitions until it
// reaches a terminal status.
func runJob(ctx context.Context, app *bootstrap.App, family domain.JobFamily, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return err
	}
	defer app.Stop()

	updates, unsubscribe := app.Scheduler.Watch(ctx, family)
	defer unsubscribe()

	rec, err := startJob(ctx, app, family)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return errWatchClosed
			}
			if update.ID != rec.ID {
				continue
			}

			fmt.Fprintf(out, "%s %s attempt=%d\n", update.Family, update.Status, update.Attempt)
			if !update.Status.IsTerminal() {
				continue
			}
			if update.Status != domain.JobStatusSucceeded {
				return jobError(update)
			}
			return nil
		}
	}
}

func jobError(rec domain.JobRecord) error {
	if rec.Error != nil {
		return fmt.Errorf("job %s %s: %s", rec.ID, rec.Status, *rec.Error)
	}
	return fmt.Errorf("job %s %s", rec.ID, rec.Status)
}
