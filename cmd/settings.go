package cmd

import (
	"context"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/bootstrap"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/duration"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/usecase"
)

func newSettingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect the sync settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "resolve",
		Short: "Resolve the settings from the server, falling back to the local copy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				res := usecase.Execute(ctx, app.UseCases.ResolveSettings, app.Config.Service.PackageName)
				if f, isFailure := res.Failure(); isFailure {
					return failed("resolve settings", f)
				}
				s, _ := res.Value()

				t := table.NewWriter()
				t.SetOutputMirror(cmd.OutOrStdout())
				t.SetStyle(table.StyleLight)
				t.AppendHeader(table.Row{"Setting", "Value"})
				t.AppendRows([]table.Row{
					{"GeoNature URL", s.GeoNatureBaseURL},
					{"TaxHub URL", s.TaxHubBaseURL},
					{"Page size", s.PageSize},
					{"Sync periodicity", duration.Format(s.SyncPeriodicity)},
					{"Essential data sync periodicity", duration.Format(s.EssentialPeriodicity)},
				})
				t.Render()
				return nil
			})
		},
	})

	return cmd
}
