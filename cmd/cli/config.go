package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/farellandr/gigbook/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var configPaths = []string{".", "./config", "/etc/gigbook", "$HOME/.gigbook"}

func initConfig(path string) error {
	envFiles := []string{".env", ".env.local"}
	for _, envFile := range envFiles {
		// missing files are fine
		_ = godotenv.Load(envFile)
	}

	if path != "" {
		viper.SetConfigFile(path)
		configDir := filepath.Dir(path)
		for _, envFile := range envFiles {
			_ = godotenv.Load(filepath.Join(configDir, envFile))
		}
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		for _, configPath := range configPaths {
			viper.AddConfigPath(configPath)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management utilities",
	}

	cmd.AddCommand(newConfigGenerateCommand())

	return cmd
}

func newConfigGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the default configuration as config.yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			outputDir, _ := cmd.Flags().GetString("output")
			overwrite, _ := cmd.Flags().GetBool("overwrite")

			filename, written, err := writeDefaultConfig(outputDir, overwrite)
			if err != nil {
				return err
			}
			if !written {
				fmt.Fprintf(cmd.OutOrStdout(), "Skipping %s (file exists, use --overwrite to replace)\n", filename)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Generated %s\n", filename)
			return nil
		},
	}

	cmd.Flags().String("output", ".", "output directory for the configuration file")
	cmd.Flags().Bool("overwrite", false, "overwrite an existing file")

	return cmd
}

func writeDefaultConfig(outputDir string, overwrite bool) (string, bool, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", false, fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(outputDir, "config.yaml")
	if _, err := os.Stat(filename); err == nil && !overwrite {
		return filename, false, nil
	}

	data, err := yaml.Marshal(config.GetDefault())
	if err != nil {
		return "", false, fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", false, fmt.Errorf("failed to write config file %s: %w", filename, err)
	}
	return filename, true, nil
}
