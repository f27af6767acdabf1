package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/luna/internal/config"
)

var errClearAborted = errors.New("clear aborted")

func newClearCommand(cfg *config.Config) *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every period, day log and setting",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				ok, err := confirmClear(cmd.InOrStdin(), cmd.OutOrStdout())
				if err != nil {
					return err
				}
				if !ok {
					return errClearAborted
				}
			}

			set, err := openServiceSet(cfg)
			if err != nil {
				return err
			}
			defer set.Close()

			if err := set.data.ClearAll(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All tracking data deleted.")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&confirmed, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func confirmClear(in io.Reader, out io.Writer) (bool, error) {
	fmt.Fprint(out, "This permanently deletes all periods, symptoms, moods and settings. Type 'yes' to continue: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	return strings.EqualFold(strings.TrimSpace(line), "yes"), nil
}
