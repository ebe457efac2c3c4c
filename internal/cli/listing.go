package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"

	"github.com/noah-isme/aps-console/internal/calendar"
	"github.com/noah-isme/aps-console/internal/models"
)

const timeLayout = "2006-01-02 15:04"

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func scheduleCommand(app *App) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "List scheduled batches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			schedule, err := app.client.GetSchedule(commandContext(cmd))
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(app.Out, schedule)
			}
			loc := app.cfg.Calendar.Location()
			tw := tabwriter.NewWriter(app.Out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tEQUIPMENT\tPRODUCT\tPROCESS\tLOT\tSTART\tEND")
			for _, b := range schedule.Batches {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					b.ID, calendar.EquipmentName(b.EquipmentID), b.ProductName, b.ProcessName, b.LotNumber,
					b.StartTime.In(loc).Format(timeLayout), b.EndTime.In(loc).Format(timeLayout))
			}
			stats := calendar.ComputeStatistics(schedule.Batches)
			fmt.Fprintf(tw, "\n%d batches, %d products\n", stats.TotalBatches, stats.TotalProducts)
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw schedule as JSON")
	return cmd
}

func equipmentCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "equipment",
		Short: "List equipment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := app.client.GetEquipment(commandContext(cmd))
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(app.Out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tTYPE")
			for _, eq := range list {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", eq.ID, eq.Name, eq.Type)
			}
			return tw.Flush()
		},
	}
}

func productsCommand(app *App) *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products, optionally filtered by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := app.client.GetProducts(commandContext(cmd))
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(app.Out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tCOLOR")
			for _, p := range filterProducts(list, search) {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", p.ID, p.Name, calendar.ProductColor(p.ID))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "case-insensitive name filter")
	return cmd
}

func filterProducts(list []models.Product, query string) []models.Product {
	if query == "" {
		return list
	}
	fold := cases.Fold()
	needle := fold.String(query)
	out := make([]models.Product, 0, len(list))
	for _, p := range list {
		if strings.Contains(fold.String(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}

func processesCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "processes",
		Short: "List manufacturing processes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := app.client.GetProcesses(commandContext(cmd))
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(app.Out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME")
			for _, p := range list {
				fmt.Fprintf(tw, "%s\t%s\n", p.ID, p.Name)
			}
			return tw.Flush()
		},
	}
}
