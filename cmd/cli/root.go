package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type VersionInfo struct {
	Version string
	Commit  string
}

var versionInfo VersionInfo

// flagKeys maps persistent flags onto their configuration keys, so a flag
// given on the command line wins over config.yaml and GIGBOOK_* variables.
var flagKeys = map[string]string{
	"log-level":   "log.level",
	"plain-logs":  "log.no_color",
	"db-driver":   "database.driver",
	"db-path":     "database.path",
	"listen-port": "server.port",
}

func NewRootCommand(info VersionInfo) *cobra.Command {
	var path string
	versionInfo = info

	cmd := &cobra.Command{
		Use:   "gigbook",
		Short: "Book shows between venues and artists",
		Long: `gigbook runs a small booking site. Venues and artists register
themselves, and shows pair one artist with one venue at a start time.
Use "gigbook migrate up" once, then "gigbook serve".`,
		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := bindFlags(cmd.Flags()); err != nil {
				return err
			}
			return initConfig(path)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&path, "config", "", "booking site config file (searched in ., ./config, /etc/gigbook, ~/.gigbook)")
	flags.String("log-level", "info", "minimum level of request and query logs: debug, info, warn or error")
	flags.Bool("plain-logs", false, "write log levels without ANSI colors, e.g. when piping to a file")
	flags.String("db-driver", "", "database holding venues, artists and shows: sqlite, postgres or mysql")
	flags.String("db-path", "", "SQLite file used when the driver is sqlite")
	flags.String("listen-port", "", "HTTP port the booking pages are served on")

	cmd.Version = fmt.Sprintf("%s (%s)", info.Version, info.Commit)

	return cmd
}

// bindFlags only binds flags the user actually set, leaving defaults to
// config.Load.
func bindFlags(flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		if err := viper.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind --%s: %w", name, err)
		}
	}
	return nil
}

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the gigbook release and commit",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gigbook %s (%s)\n", versionInfo.Version, versionInfo.Commit)
		},
	}
}
