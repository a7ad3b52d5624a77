package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go-order-tracker/internal/service"

	"github.com/spf13/cobra"
)

// NewBackupCommand creates the backup command.
func NewBackupCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "backup",
		Short:        "Write a JSON snapshot of all products and orders",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := rootOpts.open()
			if err != nil {
				return err
			}
			defer env.Close()

			backup, err := env.Backup.Snapshot(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to create backup: %w", err)
			}

			b, err := json.MarshalIndent(backup, "", "  ")
			if err != nil {
				return err
			}

			path := filepath.Join(rootOpts.OutDir, service.BackupFileName(rootOpts.now()))
			if err := os.WriteFile(path, b, 0o644); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "backup written to %s (%d products, %d orders)\n",
				path, len(backup.Data.Products), len(backup.Data.Orders))
			return nil
		},
	}
}
