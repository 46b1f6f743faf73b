package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/countrylist/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates $COUNTRYLIST_HOME/config.yaml (default ~/.countrylist/config.yaml)
with default values.`,
		Example: `  # Create configuration
  countrylist config init

  # Create configuration, overwriting existing
  countrylist config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return initGlobalConfig(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

// initGlobalConfig writes the default configuration to the global config path.
func initGlobalConfig(cmd *cobra.Command, force bool) error {
	path, err := config.GlobalConfigPath()
	if err != nil {
		return err
	}
	cfg := config.Default()
	cfg.SetConfigPath(path)

	// Check if config already exists and force isn't set
	if !force {
		if _, statErr := os.Stat(cfg.ConfigPath()); statErr == nil {
			return errors.New("configuration file already exists, use --force to overwrite")
		} else if !os.IsNotExist(statErr) {
			return fmt.Errorf("cannot access config path %s: %w", cfg.ConfigPath(), statErr)
		}
	}

	if err = cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized at %s\n", cfg.ConfigPath())
	return nil
}

// NewConfigShowCmd creates the config show command, which prints the
// effective configuration as YAML.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long:  "Prints the configuration after the config file, --config overlay, environment and flags are applied.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := yaml.Marshal(config.GetGlobalConfig())
			if err != nil {
				return fmt.Errorf("marshalling configuration: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
