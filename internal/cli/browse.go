package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/countrylist/internal/config"
	"github.com/rshade/countrylist/internal/country"
	"github.com/rshade/countrylist/internal/tui"
)

// NewBrowseCmd creates the browse command, which opens the interactive list.
func NewBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse countries interactively",
		Long: `Opens a full-screen list of countries. Keys: a hides small countries,
o hides Oceania, s flips the name sort, ←/→ (or h/l) change page, home/end jump
to the first/last page, digits followed by enter jump to a page, q quits.`,
		Args: cobra.NoArgs,
		RunE: runBrowse,
	}
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	// Log lines would tear the alternate screen, so they only go to a file.
	if !loggingToFile(ctx) {
		ctx = zerolog.Nop().WithContext(ctx)
	}

	cfg := config.GetGlobalConfig()
	loader := country.NewLoader(cfg.Source.Endpoint, cfg.Timeout())

	model := tui.NewListModel(ctx, loader.Load)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(tui.ListModel); ok {
		logger.Debug().Ctx(cmd.Context()).Str("status", m.Status().String()).Msg("browser closed")
	}
	return nil
}
