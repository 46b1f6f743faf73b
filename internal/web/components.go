package web

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Page texts.
const (
	LoadingMessage = "Loading..."
	ErrorMessage   = "Sorry, an error occurred. Please refresh the page."
	EmptyMessage   = "No countries match the current filters."
)

// loadingRefreshSeconds is how often the loading page reloads itself.
const loadingRefreshSeconds = 1

const pageStyle = `body{font-family:system-ui,sans-serif;margin:2rem;color:#1e1e1e}
nav{margin:1rem 0;display:flex;flex-wrap:wrap;gap:.4rem}
.control{padding:.25rem .6rem;border:1px solid #7c3aed;border-radius:4px;color:#7c3aed;text-decoration:none;background:#fff}
.control.active{background:#7c3aed;color:#fff}
button.control:disabled{border-color:#c8c8c8;color:#9a9a9a}
table{border-collapse:collapse;min-width:32rem}
th,td{text-align:left;padding:.3rem .8rem;border-bottom:1px solid #e8e8e8}
td.area{text-align:right}
.status{color:#6c6c6c}`

// Layout wraps body in the HTML document. head is rendered inside <head>.
func Layout(title string, head, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>%s</title><style>%s</style>`,
			templ.EscapeString(title), pageStyle); err != nil {
			return err
		}
		if head != nil {
			if err := head.Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</head><body><main>`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

// LoadingPage is shown while the load is pending. It refreshes itself.
func LoadingPage() templ.Component {
	head := templ.Raw(fmt.Sprintf(`<meta http-equiv="refresh" content="%d">`, loadingRefreshSeconds))
	body := templ.Raw(`<p class="status" role="status">` + templ.EscapeString(LoadingMessage) + `</p>`)
	return Layout("Countries", head, body)
}

// ErrorPage is shown once the load has failed. It renders no controls.
func ErrorPage() templ.Component {
	body := templ.Raw(`<p class="error" role="alert">` + templ.EscapeString(ErrorMessage) + `</p>`)
	return Layout("Countries", nil, body)
}

// ListPage renders the interactive list.
func ListPage(data ListPageData) templ.Component {
	return Layout("Countries", nil, listBody(data))
}

func listBody(data ListPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		heading := fmt.Sprintf(`<h1>Countries <span class="status">%d of %d</span></h1>`, data.Total, data.All)
		if err := writeStrings(w, heading); err != nil {
			return err
		}
		if err := ToggleNav(data.Toggles).Render(ctx, w); err != nil {
			return err
		}
		if len(data.Rows) == 0 {
			if err := writeStrings(w, `<p class="empty">`, templ.EscapeString(EmptyMessage), `</p>`); err != nil {
				return err
			}
		} else if err := CountryTable(data.Rows).Render(ctx, w); err != nil {
			return err
		}
		return Pager(data).Render(ctx, w)
	})
}

// ToggleNav renders the filter and sort toggles.
func ToggleNav(links []Link) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeStrings(w, `<nav class="toggles">`); err != nil {
			return err
		}
		for _, l := range links {
			if err := LinkControl(l).Render(ctx, w); err != nil {
				return err
			}
		}
		return writeStrings(w, `</nav>`)
	})
}

// CountryTable renders one page of rows.
func CountryTable(rows []Row) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeStrings(w,
			`<table><thead><tr><th>Name</th><th>Area (km²)</th><th>Region</th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, r := range rows {
			if err := CountryRow(r).Render(ctx, w); err != nil {
				return err
			}
		}
		return writeStrings(w, `</tbody></table>`)
	})
}

// CountryRow renders a single country.
func CountryRow(r Row) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return writeStrings(w,
			`<tr><td>`, templ.EscapeString(r.Name),
			`</td><td class="area">`, templ.EscapeString(r.Area),
			`</td><td>`, templ.EscapeString(r.Region),
			`</td></tr>`)
	})
}

// Pager renders previous, numbered and next page controls.
func Pager(data ListPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeStrings(w, `<nav class="pager">`); err != nil {
			return err
		}
		links := make([]Link, 0, len(data.Pages)+2)
		links = append(links, data.Previous)
		links = append(links, data.Pages...)
		links = append(links, data.Next)
		for _, l := range links {
			if err := LinkControl(l).Render(ctx, w); err != nil {
				return err
			}
		}
		status := fmt.Sprintf(`<span class="status">Page %d of %d</span>`, data.Page, max(1, data.PageCount))
		return writeStrings(w, status, `</nav>`)
	})
}

// LinkControl renders an enabled control as a link and a disabled one as a
// disabled button.
func LinkControl(l Link) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		class := "control"
		if l.Active {
			class += " active"
		}
		label := templ.EscapeString(l.Label)
		if l.Disabled {
			return writeStrings(w, `<button class="`, class, `" disabled>`, label, `</button>`)
		}
		return writeStrings(w, `<a class="`, class, `" href="`, templ.EscapeString(l.Href), `">`, label, `</a>`)
	})
}

func writeStrings(w io.Writer, parts ...string) error {
	for _, part := range parts {
		if _, err := io.WriteString(w, part); err != nil {
			return err
		}
	}
	return nil
}
