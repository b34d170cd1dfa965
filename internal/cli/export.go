package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/stint/internal/logbook"
	"github.com/faizmokh/stint/internal/output"
)

func newExportCommand(ctx context.Context, a *app) *cobra.Command {
	var (
		dateFlag   string
		formatFlag string
		outputFlag string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export one day's rows and totals to CSV or Excel.",
		Long: `Export the rows and hour totals of a reference day.

Output format can be selected explicitly via --format or inferred from the --output extension.`,
		Example: `
  # Export today to CSV
  stint export --output ./today.csv

  # Export a past day to Excel
  stint export --date 2025-11-02 --output ./2025-11-02.xlsx
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := formatFlag
			if strings.TrimSpace(format) == "" {
				format = output.DetectFormat(outputFlag)
			}
			writer, err := output.WriterForFormat(format)
			if err != nil {
				return err
			}

			ref, _, err := resolveReference(a.clock(), dateFlag)
			if err != nil {
				return err
			}

			lines, err := logbook.NewReader(a.manager).Lines(ctx)
			if err != nil {
				return err
			}

			report := output.Report{
				Date:    ref,
				Stats:   logbook.ComputeDayStatistics(lines, a.lunchMinutes(), ref),
				Entries: logbook.DayEntries(lines, ref),
			}
			if err := writer.Write(outputFlag, report); err != nil {
				return err
			}

			a.logger(cmd).Info("Export completed. Rows: %d, Format: %s, File: %s", len(report.Entries), format, outputFlag)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Reference date in YYYY-MM-DD (default: today)")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Output format: csv|xlsx (optional, inferred from output extension)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file path")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
