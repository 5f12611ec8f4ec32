package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/farellandr/gigbook/internal/catalog"
	"github.com/farellandr/gigbook/internal/migrations"
	"github.com/farellandr/gigbook/internal/server"
	"github.com/spf13/cobra"
)

func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Migrate the database and serve the site",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			applied, err := migrations.NewMigrator(a.store.DB()).Migrate(ctx)
			if err != nil {
				a.log.Error("migration failed: %v", err)
				return err
			}
			if applied > 0 {
				a.log.Info("applied %d migrations", applied)
			}

			srv := server.New(a.cfg.Server, server.Dependencies{
				Store:   a.store,
				Catalog: catalog.NewService(a.store, nil),
				Logger:  a.log.Named("http"),
			})
			if err := srv.Run(ctx); err != nil {
				a.log.Error("server stopped: %v", err)
				return err
			}

			a.log.Info("server stopped")
			return nil
		},
	}

	return cmd
}
