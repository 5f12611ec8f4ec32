package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/farellandr/gigbook/internal/migrations"
	"github.com/spf13/cobra"
)

func NewMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply every pending migration",
			RunE: withMigrator(func(cmd *cobra.Command, m *migrations.Migrator) error {
				applied, err := m.Migrate(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migrations\n", applied)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the last applied migration",
			RunE: withMigrator(func(cmd *cobra.Command, m *migrations.Migrator) error {
				status, err := m.Rollback(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Rolled back %d: %s\n", status.Version, status.Description)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and whether they are applied",
			RunE: withMigrator(func(cmd *cobra.Command, m *migrations.Migrator) error {
				statuses, err := m.Status(cmd.Context())
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "VERSION\tAPPLIED\tDESCRIPTION")
				for _, s := range statuses {
					fmt.Fprintf(w, "%d\t%t\t%s\n", s.Version, s.Applied, s.Description)
				}
				return w.Flush()
			}),
		},
	)

	return cmd
}

func withMigrator(run func(cmd *cobra.Command, m *migrations.Migrator) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		return run(cmd, migrations.NewMigrator(a.store.DB()))
	}
}
