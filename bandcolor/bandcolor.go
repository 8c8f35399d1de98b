// Package bandcolor provides functionality to work with resistor color bands.
// Each color represents a digit used to determine the resistance of a resistor,
// either as a significant figure or as a power-of-ten multiplier.
// The package allows listing every band color and parsing color names into colors.
package bandcolor

import (
	"fmt"
	"strings"
)

// MinBands is the smallest number of bands a resistor can be read from.
const MinBands = 3

// Color is a resistor band color.
type Color int

// The standard resistor band colors.
const (
	Black Color = iota
	Brown
	Red
	Orange
	Yellow
	Green
	Blue
	Violet
	Grey
	White
)

// colors defines the standard list of band colors in ascending order of their digit values.
var colors = []Color{Black, Brown, Red, Orange, Yellow, Green, Blue, Violet, Grey, White}

// names holds the lowercase name of each color.
var names = map[Color]string{
	Black:  "black",
	Brown:  "brown",
	Red:    "red",
	Orange: "orange",
	Yellow: "yellow",
	Green:  "green",
	Blue:   "blue",
	Violet: "violet",
	Grey:   "grey",
	White:  "white",
}

// digits maps each color to the digit it encodes. The digit doubles as the
// exponent when the color sits on a multiplier band.
var digits = map[Color]uint64{
	Black:  0,
	Brown:  1,
	Red:    2,
	Orange: 3,
	Yellow: 4,
	Green:  5,
	Blue:   6,
	Violet: 7,
	Grey:   8,
	White:  9,
}

// colorsByName is a precomputed map for efficient lookups of colors by name.
var colorsByName = func() map[string]Color {
	m := make(map[string]Color, len(names))
	for c, name := range names {
		m[name] = c
	}
	return m
}()

// UnknownColorError is returned when a name does not match any band color.
type UnknownColorError struct {
	Input string // Input is the name as it was given, before trimming.
}

func (e *UnknownColorError) Error() string {
	return fmt.Sprintf("could not find band color for %q", e.Input)
}

// InsufficientBandsError is returned when fewer than MinBands bands are provided.
type InsufficientBandsError struct {
	Count int // Count is the number of bands received.
}

func (e *InsufficientBandsError) Error() string {
	return fmt.Sprintf("insufficient bands provided: %d or more required, %d provided", MinBands, e.Count)
}

// Colors returns the list of all band colors in order of their digit values.
func Colors() []Color {
	out := make([]Color, len(colors))
	copy(out, colors)
	return out
}

// Valid reports whether c is one of the standard band colors.
func (c Color) Valid() bool {
	_, ok := digits[c]
	return ok
}

// Digit returns the digit encoded by c.
// It panics if c is not a valid color.
func (c Color) Digit() uint64 {
	d, ok := digits[c]
	if !ok {
		panic(fmt.Sprintf("bandcolor: invalid color %d", int(c)))
	}
	return d
}

// String returns the lowercase name of c, or "unknown" for invalid colors.
func (c Color) String() string {
	if name, ok := names[c]; ok {
		return name
	}
	return "unknown"
}

// Parse returns the color with the given name. Surrounding whitespace is
// ignored and the match is case-insensitive.
//
// Example:
//
//	c, _ := Parse(" Brown ") // returns Brown
//	_, err := Parse("gold")  // returns an *UnknownColorError
func Parse(name string) (Color, error) {
	if c, ok := colorsByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c, nil
	}
	return 0, &UnknownColorError{Input: name}
}

// ParseAll converts color names into colors, keeping their order.
// It fails if fewer than MinBands names are given or if any name is unknown,
// in which case the first unknown name is reported and no colors are returned.
func ParseAll(names []string) ([]Color, error) {
	if len(names) < MinBands {
		return nil, &InsufficientBandsError{Count: len(names)}
	}

	bands := make([]Color, 0, len(names))
	for _, name := range names {
		c, err := Parse(name)
		if err != nil {
			return nil, err
		}
		bands = append(bands, c)
	}
	return bands, nil
}
