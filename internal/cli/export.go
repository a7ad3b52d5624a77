package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"go-order-tracker/internal/report"
	"go-order-tracker/pkg/export"

	"github.com/spf13/cobra"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	From string
	To   string
	File string
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write orders to an xlsx workbook",
		Long: `Export orders, optionally limited to an inclusive date range, to a
spreadsheet with the same columns as the download in the web UI.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.From, "from", "", "first day to include (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.To, "to", "", "last day to include (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.File, "file", "", "file name (default orders_<today>.xlsx)")

	return cmd
}

func runExport(rootOpts *RootOptions, opts *ExportOptions, cmd *cobra.Command) error {
	r, err := report.ParseDateRange(opts.From, opts.To)
	if err != nil {
		return err
	}

	env, err := rootOpts.open()
	if err != nil {
		return err
	}
	defer env.Close()

	summary, err := env.Orders.Summary(cmd.Context(), r)
	if err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}

	buf, err := export.OrdersWorkbook(summary)
	if err != nil {
		return err
	}

	name := opts.File
	if name == "" {
		name = export.FileName(rootOpts.now())
	}
	path := filepath.Join(rootOpts.OutDir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "exported %d orders to %s\n", summary.Totals.Count, path)
	return nil
}
