package view

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//nolint:gochecknoglobals // Printers are safe for concurrent use once built.
var areaPrinter = message.NewPrinter(language.English)

// FormatArea renders an area with thousands separators, dropping a zero
// fractional part: 17098242 -> "17,098,242", 0.44 -> "0.44".
func FormatArea(area float64) string {
	if area == float64(int64(area)) {
		return areaPrinter.Sprintf("%d", int64(area))
	}
	return areaPrinter.Sprintf("%.2f", area)
}
