package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/noah-isme/aps-console/internal/calendar"
	"github.com/noah-isme/aps-console/internal/confirm"
	"github.com/noah-isme/aps-console/internal/models"
	"github.com/noah-isme/aps-console/internal/session"
	"github.com/noah-isme/aps-console/pkg/apsclient"
)

func uploadCommand(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "upload FILE",
		Short: "Upload a sales plan (.xlsx or .xls) and optionally generate a schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			ctrl, err := app.controller(app.dialog(yes), "")
			if err != nil {
				return err
			}
			defer ctrl.Close()

			ctrl.OpenUploadModal()
			if err := ctrl.SelectFile(filepath.Base(args[0]), data); err != nil {
				return err
			}
			return app.finish(ctrl.Upload(commandContext(cmd)))
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "generate a schedule without asking")
	return cmd
}

func generateCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate a schedule from the uploaded sales plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl, err := app.controller(confirm.AlwaysNo, "")
			if err != nil {
				return err
			}
			defer ctrl.Close()
			if err := ctrl.Generate(commandContext(cmd)); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "%d batches scheduled\n", ctrl.Adapter().Widget().Len())
			return app.finish(nil)
		},
	}
}

func exportCommand(app *App) *cobra.Command {
	var format, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download the schedule export",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := apsclient.ParseExportFormat(format)
			if err != nil {
				return err
			}
			ctrl, err := app.controller(confirm.AlwaysNo, out)
			if err != nil {
				return err
			}
			defer ctrl.Close()
			saved, err := ctrl.Export(commandContext(cmd), f)
			if err != nil {
				return err
			}
			fmt.Fprintln(app.Out, saved.Path)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", string(apsclient.ExportExcel), "excel or csv")
	cmd.Flags().StringVar(&out, "out", ".", "directory to write the file to")
	return cmd
}

func printCommand(app *App) *cobra.Command {
	var format, out string
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Render the schedule as a printable PDF or CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := session.ParsePrintFormat(format)
			if err != nil {
				return err
			}
			ctrl, err := app.controller(confirm.AlwaysNo, out)
			if err != nil {
				return err
			}
			defer ctrl.Close()
			ctx := commandContext(cmd)
			if err := ctrl.Reload(ctx); err != nil {
				return err
			}
			saved, err := ctrl.Print(ctx, f)
			if err != nil {
				return err
			}
			fmt.Fprintln(app.Out, saved.Path)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", string(session.PrintPDF), "pdf or csv")
	cmd.Flags().StringVar(&out, "out", ".", "directory to write the file to")
	return cmd
}

func batchCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Move or delete a scheduled batch",
	}
	cmd.AddCommand(batchMoveCommand(app), batchDeleteCommand(app))
	return cmd
}

func batchMoveCommand(app *App) *cobra.Command {
	var start, end, equipment string
	cmd := &cobra.Command{
		Use:   "move ID",
		Short: "Reschedule a batch or move it to another equipment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var changes calendar.Changes
			if start != "" {
				ts, err := models.ParseTimestamp(start)
				if err != nil {
					return fmt.Errorf("--start: %w", err)
				}
				changes.Start = &ts.Time
			}
			if end != "" {
				ts, err := models.ParseTimestamp(end)
				if err != nil {
					return fmt.Errorf("--end: %w", err)
				}
				changes.End = &ts.Time
			}
			if equipment != "" {
				changes.CalendarID = &equipment
			}
			if changes.Start == nil && changes.End == nil && changes.CalendarID == nil {
				return fmt.Errorf("one of --start, --end or --equipment is required")
			}

			ctrl, err := app.controller(confirm.AlwaysNo, "")
			if err != nil {
				return err
			}
			defer ctrl.Close()
			ctx := commandContext(cmd)
			if err := ctrl.Reload(ctx); err != nil {
				return err
			}
			return app.finish(ctrl.MoveEvent(ctx, args[0], changes))
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "new start time (RFC 3339 or 2006-01-02T15:04)")
	cmd.Flags().StringVar(&end, "end", "", "new end time (RFC 3339 or 2006-01-02T15:04)")
	cmd.Flags().StringVar(&equipment, "equipment", "", "target equipment ID")
	return cmd
}

func batchDeleteCommand(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a batch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := app.controller(app.dialog(yes), "")
			if err != nil {
				return err
			}
			defer ctrl.Close()
			ctx := commandContext(cmd)
			if err := ctrl.Reload(ctx); err != nil {
				return err
			}
			if err := ctrl.ClickEvent(ctx, args[0], 0, 0); err != nil {
				return err
			}
			return app.finish(ctrl.DeleteSelected(ctx))
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking")
	return cmd
}
