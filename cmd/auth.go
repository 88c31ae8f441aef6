package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/bootstrap"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/usecase"
)

func newAuthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the GeoNature session",
	}

	cmd.AddCommand(newAuthLoginCommand(), newAuthStatusCommand())
	return cmd
}

func newAuthLoginCommand() *cobra.Command {
	var params usecase.LoginParams

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the configured GeoNature server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				res := usecase.Execute(ctx, app.UseCases.Login, params)
				if f, isFailure := res.Failure(); isFailure {
					return failed("login", f)
				}
				session, _ := res.Value()

				fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s until %s\n",
					session.Login, session.ExpiresAt.Local().Format(time.DateTime))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&params.Login, "login", "", "user login")
	cmd.Flags().StringVar(&params.Password, "password", "", "user password")
	cmd.Flags().Int64Var(&params.ApplicationID, "app-id", 0, "GeoNature application id")
	_ = cmd.MarkFlagRequired("login")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newAuthStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				res := usecase.Execute(ctx, app.UseCases.GetAuthLogin, usecase.None{})
				if f, isFailure := res.Failure(); isFailure {
					return failed("auth status", f)
				}
				session, _ := res.Value()

				fmt.Fprintf(cmd.OutOrStdout(), "%s (user %d), expires %s\n",
					session.Login, session.UserID, session.ExpiresAt.Local().Format(time.DateTime))
				return nil
			})
		},
	}
}
