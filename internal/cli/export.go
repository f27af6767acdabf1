package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/luna/internal/config"
)

func newExportCommand(cfg *config.Config) *cobra.Command {
	var format string
	var kind string
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all tracking data as JSON or CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(strings.TrimSpace(format))
			if format != "json" && format != "csv" {
				return fmt.Errorf("unsupported format %q (want json or csv)", format)
			}

			set, err := openServiceSet(cfg)
			if err != nil {
				return err
			}
			defer set.Close()

			out := cmd.OutOrStdout()
			if outPath != "" {
				file, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer file.Close()
				out = file
			}

			if format == "json" {
				return exportJSON(out, set)
			}
			switch strings.ToLower(strings.TrimSpace(kind)) {
			case "days":
				return set.export.WriteDaysCSV(out)
			case "periods":
				return set.export.WritePeriodsCSV(out)
			default:
				return fmt.Errorf("unsupported csv kind %q (want days or periods)", kind)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Export format: json or csv")
	cmd.Flags().StringVar(&kind, "kind", "days", "CSV table: days or periods")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to this file instead of stdout")
	return cmd
}

func exportJSON(out io.Writer, set *serviceSet) error {
	snapshot, err := set.export.Snapshot()
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(snapshot)
}
