package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	portssvc "github.com/SscSPs/finstatements/internal/core/ports/services"
	"github.com/SscSPs/finstatements/internal/spreadsheet"
)

func newSeedCommand() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the default chart of accounts, or one from a workbook, into an empty store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(false)
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context(), cfg, logger, true)
			if err != nil {
				return err
			}
			defer a.Close()

			return runSeed(cmd.Context(), cmd.OutOrStdout(), a.services.Account, from)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "import the chart from this .xlsx file instead of the default chart")

	return cmd
}

func runSeed(ctx context.Context, out io.Writer, accounts portssvc.AccountWriterSvc, from string) error {
	var (
		n   int
		err error
	)
	if from == "" {
		n, err = accounts.SeedDefaultChart(ctx)
	} else {
		var f *os.File
		f, err = os.Open(from)
		if err != nil {
			return fmt.Errorf("opening %s: %w", from, err)
		}
		defer f.Close()

		chart, readErr := spreadsheet.ReadAccounts(f)
		if readErr != nil {
			return readErr
		}
		n, err = accounts.ImportAccounts(ctx, chart)
	}
	if err != nil {
		return err
	}

	if n == 0 {
		printWarn(out, "Chart of accounts already exists, nothing written")
		return nil
	}
	printSuccess(out, fmt.Sprintf("Wrote %d accounts", n))
	return nil
}
