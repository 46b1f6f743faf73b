// Package view derives what the country listing displays.
//
// A State holds the user-chosen parameters (sort order, active filters,
// requested page). Reduce turns the full record set and a State into a
// Result: the visible page, the page count, and the clamped page number.
// Intents change exactly one State field; Apply then restores the page
// invariant so that 1 <= Page <= max(1, PageCount) always holds.
//
// Everything here is pure. Inputs are never mutated.
package view
