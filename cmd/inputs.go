package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/bootstrap"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/usecase"
)

func newInputsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inputs",
		Short: "Manage field inputs waiting for upload",
	}

	cmd.AddCommand(newInputsImportCommand(), newInputsQueueCommand(), newInputsPendingCommand())
	return cmd
}

func newInputsImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Store an input read from a JSON file as a draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			var input domain.Input
			if err := json.Unmarshal(data, &input); err != nil {
				return fmt.Errorf("parse input %s: %w", args[0], err)
			}

			return withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				res := usecase.Execute(ctx, app.UseCases.SaveInput, input)
				if f, isFailure := res.Failure(); isFailure {
					return failed("import input", f)
				}
				saved, _ := res.Value()

				fmt.Fprintf(cmd.OutOrStdout(), "input %d saved as %s\n", saved.ID, saved.Status)
				return nil
			})
		},
	}
}

func newInputsQueueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "queue <id>",
		Short: "Mark a draft input as ready for upload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid input id %q: %w", args[0], err)
			}

			return withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				res := usecase.Execute(ctx, app.UseCases.QueueInput, id)
				if f, isFailure := res.Failure(); isFailure {
					return failed("queue input", f)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "input %d queued\n", id)
				return nil
			})
		},
	}
}

func newInputsPendingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List the inputs the next data sync uploads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				res := usecase.Execute(ctx, app.UseCases.GetInputsToSync, usecase.None{})
				if f, isFailure := res.Failure(); isFailure {
					return failed("list inputs", f)
				}
				inputs, _ := res.Value()

				t := table.NewWriter()
				t.SetOutputMirror(cmd.OutOrStdout())
				t.SetStyle(table.StyleLight)
				t.AppendHeader(table.Row{"ID", "Module", "Date", "Taxa"})
				for _, in := range inputs {
					t.AppendRow(table.Row{in.ID, in.Module, in.Date.Local().Format(time.DateOnly), len(in.Taxa)})
				}
				t.Render()
				return nil
			})
		},
	}
}
