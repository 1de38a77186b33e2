package main

import (
	"fmt"
	"os"

	"campsync/adapters/gsheets"
	"campsync/adapters/report"
	"campsync/app"
	"campsync/domain/campaign"
	"campsync/internal"
	"campsync/internal/config"
	"campsync/internal/errors"
	"campsync/ports"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Load environment variables from .env file; absence is fine
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:           "campsync",
		Short:         "Push aggregated call-center campaign metrics into the shared scoreboard sheet",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newRunCmd(),
		newPreviewCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newPreviewCmd() *cobra.Command {
	var modeStr string

	cmd := &cobra.Command{
		Use:   "preview [report-file]",
		Short: "Aggregate a report and print the per-campaign summary without touching the sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := campaign.ParseMode(modeStr)
			if err != nil {
				return errors.InvalidInput(err.Error())
			}
			rows, dropped, err := aggregateReport(args[0], mode)
			if err != nil {
				return err
			}
			printSummary(mode, rows, dropped)
			return nil
		},
	}

	cmd.Flags().StringVar(&modeStr, "mode", string(campaign.ModeCTC), `Report schema: "ctc" or "log"`)
	return cmd
}

func newRunCmd() *cobra.Command {
	var modeStr string
	var sheetName string
	var day int
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run [report-file]",
		Short: "Aggregate a report and write the metrics into the scoreboard sheet",
		Long: `Aggregate an uploaded call-center report and write one row of metrics per
campaign into the scoreboard worksheet, in the columns belonging to the
selected weekday. Campaigns absent from the sheet are retried under their
alternate names from the settings worksheet.

Example: campsync run ctc_report.csv --sheet "Week 34" --day 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := campaign.ParseMode(modeStr)
			if err != nil {
				return errors.InvalidInput(err.Error())
			}
			if day < 1 || day > 5 {
				return errors.InvalidInput("--day must be between 1 and 5")
			}

			cfg := config.Load()
			if err := cfg.ValidateForRun(); err != nil {
				return err
			}

			rows, dropped, err := aggregateReport(args[0], mode)
			if err != nil {
				return err
			}
			printSummary(mode, rows, dropped)
			if len(rows) == 0 {
				fmt.Println("Nothing to update.")
				return nil
			}

			store, err := gsheets.New(cmd.Context(), gsheets.Config{
				SpreadsheetID:   cfg.Sheets.SpreadsheetID,
				CredentialsJSON: cfg.Sheets.CredentialsJSON,
				CredentialsFile: cfg.Sheets.CredentialsFile,
				SettingsSheet:   cfg.Sheets.SettingsSheet,
			})
			if err != nil {
				return err
			}

			svc := app.NewUpdateService(store, internal.DefaultLogger)
			result, err := svc.Run(cmd.Context(), app.RunRequest{
				SheetName: sheetName,
				Mode:      mode,
				DayIndex:  day - 1,
				Rows:      rows,
				DryRun:    dryRun,
			})
			if err != nil {
				return err
			}

			printOutcomes(result, day, dryRun)
			return nil
		},
	}

	cmd.Flags().StringVar(&sheetName, "sheet", "", "Scoreboard worksheet name (required)")
	cmd.Flags().StringVar(&modeStr, "mode", string(campaign.ModeCTC), `Report schema: "ctc" or "log"`)
	cmd.Flags().IntVar(&day, "day", 1, "Day of the week (1-5) selecting the header occurrence to update")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Resolve columns and rows but skip the writes")
	_ = cmd.MarkFlagRequired("sheet")

	return cmd
}

func aggregateReport(path string, mode campaign.Mode) ([]campaign.MetricRow, int, error) {
	var reader ports.ReportReader = report.NewReader(path)

	switch mode {
	case campaign.ModeLog:
		records, dropped, err := reader.ReadLog()
		if err != nil {
			return nil, 0, err
		}
		summaries := campaign.AggregateLog(records)
		rows := make([]campaign.MetricRow, 0, len(summaries))
		for _, s := range summaries {
			rows = append(rows, s.MetricRow())
		}
		return rows, dropped, nil
	default:
		records, dropped, err := reader.ReadCTC()
		if err != nil {
			return nil, 0, err
		}
		summaries := campaign.AggregateCTC(records)
		rows := make([]campaign.MetricRow, 0, len(summaries))
		for _, s := range summaries {
			rows = append(rows, s.MetricRow())
		}
		return rows, dropped, nil
	}
}

func printSummary(mode campaign.Mode, rows []campaign.MetricRow, dropped int) {
	fmt.Printf("Aggregated summary: %d campaigns", len(rows))
	if dropped > 0 {
		fmt.Printf(" (%d incomplete report rows dropped)", dropped)
	}
	fmt.Println()

	labels := mode.MetricLabels()
	header := "Camp"
	for _, label := range labels {
		header += " | " + label
	}
	fmt.Println(header)

	for _, row := range rows {
		line := row.Camp
		for _, label := range labels {
			line += " | " + formatValue(row.Values[label])
		}
		fmt.Println(line)
	}
}

func printOutcomes(result *app.RunResult, day int, dryRun bool) {
	fmt.Println()
	for _, outcome := range result.Outcomes {
		switch outcome.Status {
		case app.OutcomeUpdated:
			fmt.Printf("Updated %s on day %d (sheet row %d)\n", outcome.Camp, day, outcome.Row)
		case app.OutcomeUpdatedViaAlias:
			fmt.Printf("Updated %s on day %d (sheet row %d, via alternate name %q)\n",
				outcome.Camp, day, outcome.Row, outcome.Alias)
		case app.OutcomeNotFound:
			fmt.Printf("Warning: campaign %q and its alternatives not found in the sheet\n", outcome.Camp)
		}
	}
	if dryRun {
		fmt.Printf("\nDry run %s complete: %d campaigns matched, %d unmatched, no cells written\n",
			result.RunID, len(result.Outcomes)-result.NotFound, result.NotFound)
		return
	}
	fmt.Printf("\nRun %s complete: %d cells written, %d campaigns unmatched\n",
		result.RunID, result.CellsWritten, result.NotFound)
}

func formatValue(value interface{}) string {
	switch v := value.(type) {
	case float64:
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprint(v)
	}
}
