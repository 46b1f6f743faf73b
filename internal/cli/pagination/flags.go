package pagination

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/countrylist/internal/view"
)

// Flag defaults.
const (
	DefaultPage      = 1
	MinPage          = 1
	DefaultSortOrder = view.SortOrderAsc
)

// Common validation errors.
var (
	ErrInvalidPage      = errors.New("page must be >= 1")
	ErrInvalidSortOrder = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidFilter    = errors.New("unknown filter: use 'small' or 'oceania'")
)

// PaginationParams holds the list command's view flags.
//
//nolint:revive // PaginationParams is the canonical name for this exported type.
type PaginationParams struct {
	// Page is the 1-based page number.
	Page int

	// Sort is the name sort direction: "asc" or "desc".
	Sort string

	// Exclude names the filters to switch on ("small", "oceania").
	Exclude []string
}

// NewPaginationParams creates a PaginationParams with default values.
func NewPaginationParams() *PaginationParams {
	return &PaginationParams{
		Page: DefaultPage,
		Sort: DefaultSortOrder,
	}
}

// AddFlags registers --page, --sort and --exclude on cmd.
func (p *PaginationParams) AddFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&p.Page, "page", DefaultPage, "1-based page to show (clamped to the last page)")
	cmd.Flags().StringVar(&p.Sort, "sort", DefaultSortOrder, "Sort by name: asc or desc")
	cmd.Flags().StringSliceVar(&p.Exclude, "exclude", nil,
		"Filters to apply: small (area <= 65,300 km²), oceania")
}

// Validate checks the flag values (value receiver).
func (p PaginationParams) Validate() error {
	if p.Page < MinPage {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, p.Page)
	}
	if _, ok := view.ParseSortOrder(p.Sort); !ok {
		return fmt.Errorf("%w: got %q", ErrInvalidSortOrder, p.Sort)
	}
	if _, err := ParseExclude(p.Exclude); err != nil {
		return err
	}
	return nil
}

// ParseExclude converts filter keys to a FilterSet. Each value may itself be
// a comma-separated list. Blank entries are ignored.
func ParseExclude(values []string) (view.FilterSet, error) {
	var ids []view.FilterID
	for _, value := range values {
		for _, key := range strings.Split(value, ",") {
			if strings.TrimSpace(key) == "" {
				continue
			}
			id, ok := view.ParseFilterID(key)
			if !ok {
				return 0, fmt.Errorf("%w: got %q", ErrInvalidFilter, key)
			}
			ids = append(ids, id)
		}
	}
	return view.NewFilterSet(ids...), nil
}

// ToState validates p and returns the equivalent view state. The page is
// not clamped here.
func (p PaginationParams) ToState() (view.State, error) {
	if err := p.Validate(); err != nil {
		return view.State{}, err
	}
	order, _ := view.ParseSortOrder(p.Sort)
	filters, _ := ParseExclude(p.Exclude)
	return view.State{Sort: order, Filters: filters, Page: p.Page}, nil
}
