package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/bootstrap"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/duration"
)

const defaultHistoryLimit = 10

func newStatusCommand() *cobra.Command {
	var (
		family string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the sync job history",
		RunE: func(cmd *cobra.Command, args []string) error {
			families := domain.Families()
			if family != "" {
				families = []domain.JobFamily{domain.JobFamily(family)}
			}

			return withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				var records []domain.JobRecord
				for _, f := range families {
					history, err := app.Scheduler.History(ctx, f, limit)
					if err != nil {
						return err
					}
					records = append(records, history...)
				}

				renderJobs(cmd.OutOrStdout(), records, time.Now())
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&family, "family", "", "only show REFERENCE_SYNC or BULK_SYNC jobs")
	cmd.Flags().IntVar(&limit, "limit", defaultHistoryLimit, "records per family, 0 for all")
	return cmd
}

func renderJobs(out io.Writer, records []domain.JobRecord, now time.Time) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Family", "Status", "Attempt", "Created", "Age", "Error"})

	for _, rec := range records {
		errMsg := ""
		if rec.Error != nil {
			errMsg = *rec.Error
		}
		t.AppendRow(table.Row{
			rec.ID,
			rec.Family,
			rec.Status,
			rec.Attempt,
			rec.CreatedAt.Local().Format(time.DateTime),
			duration.Format(now.Sub(rec.CreatedAt).Truncate(time.Second)),
			errMsg,
		})
	}

	t.AppendFooter(table.Row{"", "", "", "", "", "Total", fmt.Sprint(len(records))})
	t.Render()
}
