package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/countrylist/internal/config"
	"github.com/rshade/countrylist/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the countrylist CLI. Without
// a subcommand it opens the interactive browser when attached to a terminal
// and prints the first page otherwise.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithTerminal(ver, isTerminal(os.Stdin) && isTerminal(os.Stdout))
}

// NewRootCmdWithTerminal creates the root command with explicit terminal
// detection for testability.
func NewRootCmdWithTerminal(ver string, interactive bool) *cobra.Command {
	var logResult *logging.LogPathResult

	browse := NewBrowseCmd()
	list := NewListCmd()

	cmd := &cobra.Command{
		Use:     "countrylist",
		Short:   "Browse the countries of the world",
		Long:    "countrylist: fetch every country once, then filter, sort and page through them",
		Version: ver,
		Example: rootCmdExample,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				return browse.RunE(cmd, args)
			}
			return list.RunE(cmd, args)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "overlay configuration file merged on top of the global config")
	cmd.PersistentFlags().String("endpoint", "", "country data endpoint (overrides config and env)")
	cmd.PersistentFlags().Int("timeout", 0, "load timeout in seconds (0 = use config default)")

	cmd.AddCommand(browse, list, NewServeCmd(), newConfigCmd())

	return cmd
}

// loadConfig builds the effective configuration from the global file, the
// optional --config overlay, the environment and the persistent flags.
// Invalid file values are already replaced by defaults in config.New, so a
// validation error here comes from a flag.
func loadConfig(cmd *cobra.Command) error {
	overlay, _ := cmd.Flags().GetString("config")
	cfg := config.NewWithOverlay(overlay)

	if endpoint, _ := cmd.Flags().GetString("endpoint"); endpoint != "" {
		cfg.Source.Endpoint = endpoint
	}
	timeout, _ := cmd.Flags().GetInt("timeout")
	if timeout < 0 {
		return fmt.Errorf("timeout must be >= 0, got %d", timeout)
	}
	if timeout > 0 {
		cfg.Source.TimeoutSeconds = timeout
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	config.SetGlobalConfig(cfg)

	level := cfg.Logging.Level
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = "debug"
	}
	config.SetLogLevel(level)
	return nil
}

const rootCmdExample = `  # Browse interactively (default in a terminal)
  countrylist

  # Print page 2, Z to A, without Oceania
  countrylist list --page 2 --sort desc --exclude oceania

  # Print the first page as JSON with pagination metadata
  countrylist list --output json

  # Serve the list to a browser
  countrylist serve --addr :8080

  # Initialize configuration
  countrylist config init`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd())
	return cmd
}
