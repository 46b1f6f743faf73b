package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/countrylist/internal/cli/pagination"
	"github.com/rshade/countrylist/internal/config"
	"github.com/rshade/countrylist/internal/country"
	"github.com/rshade/countrylist/internal/view"
)

// NewListCmd creates the list command, which loads once and prints one page.
func NewListCmd() *cobra.Command {
	params := pagination.NewPaginationParams()
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of countries",
		Long: `Loads the country list once, applies the filters and sort order, and prints
one page of ten countries. Pages past the end are clamped to the last page.`,
		Example: `  # First page, A to Z
  countrylist list

  # Third page without small countries
  countrylist list --page 3 --exclude small

  # Z to A without Oceania or small countries, as NDJSON
  countrylist list --sort desc --exclude small,oceania --output ndjson`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, *params, output)
		},
	}

	params.AddFlags(cmd)
	cmd.Flags().StringVar(&output, "output", "", "output format: table, json or ndjson (default from config)")

	return cmd
}

func runList(cmd *cobra.Command, params pagination.PaginationParams, output string) error {
	state, err := params.ToState()
	if err != nil {
		return err
	}

	format := config.GetOutputFormat(output)
	if !config.IsValidOutputFormat(format) {
		return fmt.Errorf("unsupported output format %q: use table, json or ndjson", format)
	}

	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()
	loader := country.NewLoader(cfg.Source.Endpoint, cfg.Timeout())

	records, err := loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading countries: %w", err)
	}

	state = view.Clamp(records, state)
	result := view.Reduce(records, state)
	logger.Debug().Ctx(ctx).
		Int("total", result.Total).
		Int("page", result.Page).
		Int("page_count", result.PageCount).
		Msg("list reduced")

	return RenderList(cmd.OutOrStdout(), format, state, result)
}
