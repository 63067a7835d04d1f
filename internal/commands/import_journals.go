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

func newImportJournalsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import-journals <file.xlsx>",
		Short: "Post journal entries from a workbook",
		Long: "Rows are grouped into entries by their entry number. Lines whose account code\n" +
			"is not in the chart are skipped; entries that do not validate are reported and not posted.",
		Args: cobra.ExactArgs(1),
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
			if err := a.seedIfConfigured(cmd.Context()); err != nil {
				return err
			}

			return runImportJournals(cmd.Context(), cmd.OutOrStdout(), a.services.Journal, args[0])
		},
	}
}

func runImportJournals(ctx context.Context, out io.Writer, journals portssvc.JournalWriterSvc, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	candidates, err := spreadsheet.ReadJournals(f)
	if err != nil {
		return err
	}
	printInfof(out, "Read %d entries from %s", len(candidates), path)

	res, err := journals.ImportJournalEntries(ctx, candidates)
	if res != nil {
		for _, s := range res.SkippedLines {
			printWarn(out, fmt.Sprintf("entry %d: skipped line for unknown account code %q", s.EntryNumber, s.AccountCode))
		}
		for _, r := range res.Rejected {
			printWarn(out, fmt.Sprintf("entry %d: %s", r.EntryNumber, r.Reason))
		}
	}
	if err != nil {
		return err
	}

	printSuccess(out, fmt.Sprintf("Imported %d of %d entries", res.Imported, len(candidates)))
	return nil
}
