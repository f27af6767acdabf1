package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/luna/internal/calendar"
	"github.com/terraincognita07/luna/internal/config"
	"github.com/terraincognita07/luna/internal/services"
)

func newStatsCommand(cfg *config.Config) *cobra.Command {
	var rawDate string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print cycle statistics and predictions",
		RunE: func(cmd *cobra.Command, args []string) error {
			today := calendar.Today(cfg.Location)
			if rawDate != "" {
				parsed, err := calendar.Parse(rawDate)
				if err != nil {
					return err
				}
				today = parsed
			}

			set, err := openServiceSet(cfg)
			if err != nil {
				return err
			}
			defer set.Close()

			stats, err := set.stats.CycleStats(today)
			if err != nil {
				return fmt.Errorf("load stats: %w", err)
			}
			if asJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(stats)
			}
			return writeStats(cmd.OutOrStdout(), today, stats)
		},
	}
	cmd.Flags().StringVar(&rawDate, "date", "", "Reference day as YYYY-MM-DD (default: today)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the statistics as JSON")
	return cmd
}

func writeStats(out io.Writer, today calendar.Date, stats services.CycleStats) error {
	writer := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(writer, "Reference day:\t%s\n", today)
	if stats.CurrentCycleDay > 0 {
		fmt.Fprintf(writer, "Cycle day:\t%d\n", stats.CurrentCycleDay)
	} else {
		fmt.Fprintf(writer, "Cycle day:\t-\n")
	}
	fmt.Fprintf(writer, "Average cycle length:\t%d days\n", stats.AverageCycleLength)
	fmt.Fprintf(writer, "Regularity:\t%s\n", stats.Regularity.Label())
	if stats.NextPeriod != nil {
		fmt.Fprintf(writer, "Next period:\t%s (%d%% confidence, in %d days)\n", stats.NextPeriod.Date, stats.NextPeriod.ConfidencePercent, *stats.DaysUntilNextPeriod)
	} else {
		fmt.Fprintf(writer, "Next period:\tlog a period to get predictions\n")
	}
	if stats.NextOvulation != nil {
		fmt.Fprintf(writer, "Next ovulation:\t%s (%d%% confidence)\n", stats.NextOvulation.Date, stats.NextOvulation.ConfidencePercent)
	}
	fmt.Fprintf(writer, "Insight:\t%s\n", stats.Insight.Message)
	return writer.Flush()
}
