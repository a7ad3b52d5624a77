// Package cli implements the tracker admin command line.
package cli

import (
	"time"

	"go-order-tracker/internal/event"
	"go-order-tracker/internal/repository"
	"go-order-tracker/internal/service"
	"go-order-tracker/pkg/config"
	"go-order-tracker/pkg/database"
	"go-order-tracker/pkg/logger"

	"github.com/spf13/cobra"
)

// Env is what the data commands operate on.
type Env struct {
	Orders service.OrderService
	Backup service.BackupService
	Close  func() error
}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	OutDir string

	open func() (*Env, error)
	now  func() time.Time
}

// NewRootCommand creates the root command for the tracker CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{open: openEnv, now: time.Now})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tracker",
		Short: "Order tracker admin tools",
		Long:  "Backup, export and credential helpers for the order tracker service.",
	}

	// Global flags
	cmd.PersistentFlags().StringVarP(&opts.OutDir, "out", "o", ".", "directory written files go to")

	cmd.AddCommand(NewBackupCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewHashPasswordCommand())

	return cmd
}

// openEnv wires the services against the configured database. Events are
// discarded: the CLI only reads.
func openEnv() (*Env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if _, err := logger.Init(cfg.Log.Level, cfg.App.Env, "tracker-cli"); err != nil {
		return nil, err
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	productRepo := repository.NewProductRepo(db)
	orderRepo := repository.NewOrderRepo(db)

	return &Env{
		Orders: service.NewOrderService(orderRepo, productRepo, event.Discard{}),
		Backup: service.NewBackupService(productRepo, orderRepo),
		Close:  sqlDB.Close,
	}, nil
}
