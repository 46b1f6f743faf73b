package web

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/rshade/countrylist/internal/cli/pagination"
	"github.com/rshade/countrylist/internal/country"
	"github.com/rshade/countrylist/internal/logging"
	"github.com/rshade/countrylist/internal/view"
)

// CountriesResponse is the body of GET /api/countries.
type CountriesResponse struct {
	Status     string                     `json:"status"`
	Records    []country.Record           `json:"records,omitempty"`
	Pagination *pagination.PaginationMeta `json:"pagination,omitempty"`
}

// StatusResponse is the body of GET /healthz.
type StatusResponse struct {
	Status  string `json:"status"`
	Records int    `json:"records"`
}

func render(c echo.Context, status int, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return component.Render(c.Request().Context(), c.Response().Writer)
}

// IndexHandler renders the browser page for the state in the query string.
func (s *Server) IndexHandler(c echo.Context) error {
	status, records := s.store.Snapshot()

	switch status {
	case country.StatusLoaded:
		state := view.Clamp(records, StateFromQuery(c.QueryParams()))
		s.metrics.observeRender(status.String())
		return render(c, http.StatusOK, ListPage(NewListPageData(records, state)))
	case country.StatusFailed:
		// A plain reload of the root page is the only way out of Failed.
		if len(c.QueryParams()) == 0 && s.store.Restart() {
			logging.FromContext(c.Request().Context()).Info().Msg("load restarted by page refresh")
			s.metrics.observeRender(country.StatusPending.String())
			return render(c, http.StatusOK, LoadingPage())
		}
		s.metrics.observeRender(status.String())
		return render(c, http.StatusServiceUnavailable, ErrorPage())
	default:
		s.metrics.observeRender(status.String())
		return render(c, http.StatusOK, LoadingPage())
	}
}

// CountriesHandler returns one page of records as JSON.
func (s *Server) CountriesHandler(c echo.Context) error {
	status, records := s.store.Snapshot()
	if status != country.StatusLoaded {
		return c.JSON(http.StatusServiceUnavailable, CountriesResponse{Status: status.String()})
	}

	state := view.Clamp(records, StateFromQuery(c.QueryParams()))
	result := view.Reduce(records, state)
	meta := pagination.NewPaginationMeta(state, result)
	return c.JSON(http.StatusOK, CountriesResponse{
		Status:     status.String(),
		Records:    result.Records,
		Pagination: &meta,
	})
}

// HealthHandler reports the load status. It always answers 200 so a failed
// load does not take the process out of rotation.
func (s *Server) HealthHandler(c echo.Context) error {
	status, records := s.store.Snapshot()
	return c.JSON(http.StatusOK, StatusResponse{Status: status.String(), Records: len(records)})
}
