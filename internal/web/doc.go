// Package web serves the country list in a browser.
//
// A Store owns the single load for the process. Handlers derive the visible
// page per request from the immutable record set and the view state encoded
// in the query string, so requests never share mutable view state. Pages are
// templ components; /api/countries, /healthz and /metrics expose the same
// data for machines.
package web
