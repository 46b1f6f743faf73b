package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/countrylist/internal/cli"
	"github.com/rshade/countrylist/internal/country"
	"github.com/rshade/countrylist/internal/view"
)

func TestRenderList_Table(t *testing.T) {
	records := []country.Record{
		{Name: "Russia", Region: "Europe", Area: 17098242},
		{Name: "Tuvalu", Region: "Oceania", Area: 26},
		{Name: "Monaco", Region: "Europe", Area: 2.02},
	}
	state := view.State{Sort: view.Descending, Filters: view.NewFilterSet(view.ExcludeOceania), Page: 1}

	var buf bytes.Buffer
	require.NoError(t, cli.RenderList(&buf, "table", state, view.Reduce(records, state)))

	out := buf.String()
	assert.Contains(t, out, "17,098,242")
	assert.Contains(t, out, "2.02")
	assert.NotContains(t, out, "Tuvalu")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Russia")), bytes.Index(buf.Bytes(), []byte("Monaco")))
	assert.Contains(t, out, "Page 1 of 1 (2 countries, sort desc, filters oceania)")
}

func TestRenderList_EmptyTable(t *testing.T) {
	state := view.State{Filters: view.NewFilterSet(view.ExcludeSmall), Page: 1}
	records := []country.Record{{Name: "Nauru", Region: "Oceania", Area: 21}}

	var buf bytes.Buffer
	require.NoError(t, cli.RenderList(&buf, "table", state, view.Reduce(records, state)))

	assert.Equal(t, "No countries match the current filters.\n", buf.String())
}

func TestRenderList_EmptyJSON(t *testing.T) {
	state := view.Initial()

	var buf bytes.Buffer
	require.NoError(t, cli.RenderList(&buf, "json", state, view.Reduce(nil, state)))

	assert.Contains(t, buf.String(), `"records": []`)
	assert.Contains(t, buf.String(), `"total_pages": 0`)
}

func TestRenderList_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := cli.RenderList(&buf, "yaml", view.Initial(), view.Result{Page: 1})
	require.Error(t, err)
}

func TestRoot_Version(t *testing.T) {
	setupCLITest(t)

	output, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, output, "test")
}
