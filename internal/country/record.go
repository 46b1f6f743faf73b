package country

import (
	"errors"
	"fmt"
)

// Record is one country as returned by the API. Records are never mutated
// after a load.
type Record struct {
	Name   string  `json:"name"   yaml:"name"`
	Region string  `json:"region" yaml:"region"`
	Area   float64 `json:"area"   yaml:"area"`
}

// rawRecord mirrors the wire format; area is optional on the wire.
type rawRecord struct {
	Name   string   `json:"name"`
	Region string   `json:"region"`
	Area   *float64 `json:"area"`
}

var (
	errEmptyName    = errors.New("record has empty name")
	errNegativeArea = errors.New("record has negative area")
)

func (r rawRecord) toRecord(index int) (Record, error) {
	if r.Name == "" {
		return Record{}, fmt.Errorf("element %d: %w", index, errEmptyName)
	}
	area := 0.0
	if r.Area != nil {
		area = *r.Area
	}
	if area < 0 {
		return Record{}, fmt.Errorf("element %d (%s): %w", index, r.Name, errNegativeArea)
	}
	return Record{Name: r.Name, Region: r.Region, Area: area}, nil
}
