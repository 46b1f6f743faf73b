package view

import (
	"sort"

	"github.com/rshade/countrylist/internal/country"
)

// SortByName sorts records in place by Name. The sort is stable in both
// directions: records with equal names keep their relative order.
func SortByName(records []country.Record, order SortOrder) {
	sort.SliceStable(records, func(i, j int) bool {
		// Swapping the operands keeps stability for descending order.
		if order == Descending {
			i, j = j, i
		}
		return records[i].Name < records[j].Name
	})
}
