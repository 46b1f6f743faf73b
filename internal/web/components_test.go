package web

import (
	"bytes"
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestLinkControl(t *testing.T) {
	tests := []struct {
		name string
		link Link
		want string
	}{
		{"enabled", Link{Label: "Next", Href: "/?page=2"}, `<a class="control" href="/?page=2">Next</a>`},
		{"active", Link{Label: "Hide Oceania", Href: "/", Active: true}, `<a class="control active" href="/">Hide Oceania</a>`},
		{"disabled", Link{Label: "Previous", Disabled: true}, `<button class="control" disabled>Previous</button>`},
		{"escaped", Link{Label: "<b>", Href: "/?a=1&b=2"}, `<a class="control" href="/?a=1&amp;b=2">&lt;b&gt;</a>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderString(t, LinkControl(tt.link)))
		})
	}
}

func TestCountryTable(t *testing.T) {
	got := renderString(t, CountryTable([]Row{
		{Name: "Chile", Area: "756,102", Region: "Americas"},
		{Name: "Côte d'Ivoire", Area: "322,463", Region: "Africa"},
	}))

	assert.Contains(t, got, `<tr><td>Chile</td><td class="area">756,102</td><td>Americas</td></tr>`)
	assert.Contains(t, got, `Côte d&#39;Ivoire`)
	assert.Equal(t, 1, bytes.Count([]byte(got), []byte("<tbody>")))
}

func TestPager(t *testing.T) {
	got := renderString(t, Pager(ListPageData{
		Previous:  Link{Label: "Previous", Disabled: true},
		Pages:     []Link{{Label: "1", Active: true, Disabled: true}, {Label: "2", Href: "/?page=2"}},
		Next:      Link{Label: "Next", Href: "/?page=2"},
		Page:      1,
		PageCount: 2,
	}))

	assert.Equal(t, `<nav class="pager">`+
		`<button class="control" disabled>Previous</button>`+
		`<button class="control active" disabled>1</button>`+
		`<a class="control" href="/?page=2">2</a>`+
		`<a class="control" href="/?page=2">Next</a>`+
		`<span class="status">Page 1 of 2</span></nav>`, got)
}
