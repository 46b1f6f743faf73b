package pagination

import (
	"github.com/rshade/countrylist/internal/view"
)

// PaginationMeta contains metadata about a reduced page.
//
//nolint:revive // PaginationMeta is the canonical name for this exported type.
type PaginationMeta struct {
	CurrentPage int      `json:"current_page" yaml:"current_page"`
	PageSize    int      `json:"page_size"    yaml:"page_size"`
	TotalPages  int      `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int      `json:"total_items"  yaml:"total_items"`
	HasPrevious bool     `json:"has_previous" yaml:"has_previous"`
	HasNext     bool     `json:"has_next"     yaml:"has_next"`
	Sort        string   `json:"sort"         yaml:"sort"`
	Filters     []string `json:"filters"      yaml:"filters"`
}

// NewPaginationMeta describes result, the reduction of state.
func NewPaginationMeta(state view.State, result view.Result) PaginationMeta {
	return PaginationMeta{
		CurrentPage: result.Page,
		PageSize:    view.PageSize,
		TotalPages:  result.PageCount,
		TotalItems:  result.Total,
		HasPrevious: result.HasPrevious(),
		HasNext:     result.HasNext(),
		Sort:        state.Sort.String(),
		Filters:     state.Filters.Keys(),
	}
}
