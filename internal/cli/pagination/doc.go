// Package pagination turns list command flags into a view.State and
// describes the resulting page for machine-readable output.
//
//   - PaginationParams: --page, --sort and --exclude parsing and validation
//   - PaginationMeta: page metadata emitted alongside JSON results
//
// Out-of-range pages are not an error; they are clamped by the view reducer
// the same way the interactive browser clamps them.
package pagination
