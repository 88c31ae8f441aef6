package cmd

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/bootstrap"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/usecase"
)

func newPackagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "packages",
		Short: "Compare and install packages from the server manifest",
	}

	cmd.AddCommand(newPackagesCheckCommand(), newPackagesInstallCommand())
	return cmd
}

func newPackagesCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [package...]",
		Short: "List packages with a newer version on the server",
		Long: `Check compares the server manifest with the installed packages. With no
arguments the configured packages are checked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				names := args
				if len(names) == 0 {
					names = app.Config.Remote.AvailablePackages
				}

				res := usecase.Execute(ctx, app.UseCases.CheckPackageUpdates, names)
				if f, isFailure := res.Failure(); isFailure {
					return failed("check packages", f)
				}
				updates, _ := res.Value()

				t := table.NewWriter()
				t.SetOutputMirror(cmd.OutOrStdout())
				t.SetStyle(table.StyleLight)
				t.AppendHeader(table.Row{"Package", "Installed", "Available", "Update"})
				for _, u := range updates {
					installed := "-"
					if u.Local.VersionCode > 0 {
						installed = fmt.Sprintf("%s (%d)", u.Local.VersionName, u.Local.VersionCode)
					}
					t.AppendRow(table.Row{
						u.Remote.PackageName,
						installed,
						fmt.Sprintf("%s (%d)", u.Remote.VersionName, u.Remote.VersionCode),
						u.Available,
					})
				}
				t.Render()
				return nil
			})
		},
	}
}

func newPackagesInstallCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "install <package>",
		Short: "Record the server version of a package as installed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				res := usecase.Execute(ctx, app.UseCases.InstallPackage, args[0])
				if f, isFailure := res.Failure(); isFailure {
					return failed("install package", f)
				}
				pkg, _ := res.Value()

				fmt.Fprintf(cmd.OutOrStdout(), "installed %s %s (%d)\n", pkg.PackageName, pkg.VersionName, pkg.VersionCode)
				return nil
			})
		},
	}
}
