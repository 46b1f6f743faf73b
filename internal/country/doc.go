// Package country defines the country record and loads the record set from
// the remote country-data API.
package country
