package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/countrylist/internal/view"
)

// emptyMessage is shown in place of the table when nothing passes the filters.
const emptyMessage = "No countries match the current filters."

// View renders the current screen (Bubble Tea interface).
func (m ListModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateError:
		return ErrorStyle.Render(ErrorMessage) + "\n"
	case ViewStateLoading:
		return m.loading.View() + "\n"
	case ViewStateList:
		return m.renderListView()
	default:
		return ""
	}
}

func (m ListModel) renderListView() string {
	controls := view.BuildControls(m.view, m.result)

	sections := []string{
		m.renderTitle(),
		m.renderToggles(controls),
	}

	if m.result.Empty() {
		sections = append(sections, EmptyStyle.Render(emptyMessage))
	} else {
		sections = append(sections, m.table.View())
	}

	sections = append(sections, m.renderPager(controls), m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m ListModel) renderTitle() string {
	count := TitleCountStyle.Render(fmt.Sprintf("%d of %d", m.result.Total, len(m.records)))
	return TitleStyle.Render("Countries") + TitleStyle.Render(count)
}

// renderToggles renders the filter and sort toggles with their key hints.
func (m ListModel) renderToggles(c view.Controls) string {
	hints := []string{m.keys.ToggleSmall.Help().Key, m.keys.ToggleOceania.Help().Key}

	parts := make([]string, 0, len(c.Filters)+1)
	for i, f := range c.Filters {
		parts = append(parts, KeyHintStyle.Render(hints[i])+" "+renderControl(f))
	}
	parts = append(parts, KeyHintStyle.Render(m.keys.ToggleSort.Help().Key)+" "+renderControl(c.Sort))
	return strings.Join(parts, "  ")
}

// renderPager renders Previous, the page buttons and Next, followed by the
// page indicator or the page number being typed.
func (m ListModel) renderPager(c view.Controls) string {
	parts := make([]string, 0, len(c.Pages)+2) //nolint:mnd // Previous and Next.
	parts = append(parts, renderControl(c.Previous))
	for _, p := range c.Pages {
		parts = append(parts, renderControl(p))
	}
	parts = append(parts, renderControl(c.Next))

	status := LabelStyle.Render(fmt.Sprintf("Page %d of %d", m.result.Page, max(1, m.result.PageCount)))
	if m.pageInput != "" {
		status = LabelStyle.Render("Go to page: ") + KeyHintStyle.Render(m.pageInput+"_")
	}
	return strings.Join(parts, " ") + "  " + status
}

func renderControl(c view.Control) string {
	switch {
	case c.Active:
		return ActiveControlStyle.Render(c.Label)
	case c.Disabled:
		return DisabledControlStyle.Render(c.Label)
	default:
		return ControlStyle.Render(c.Label)
	}
}
