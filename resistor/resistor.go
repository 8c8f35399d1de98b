// Package resistor decodes the resistance of 3 to 6 band resistors from their color bands.
//
// A resistor is built either from a space-separated list of color names or directly
// from band colors. Bands are read left to right: the first two (3 and 4 band
// resistors) or three (5 and 6 band resistors) bands are significant figures and
// the next one is the power-of-ten multiplier. Tolerance and temperature
// coefficient bands are accepted but not decoded.
//
// Example:
//
//	r, err := resistor.Parse("brown black red")
//	if err != nil {
//		return err
//	}
//	r.Value() // returns 1000
package resistor

import (
	"fmt"
	"strings"

	"resistor-color/bandcolor"
)

// MaxBands is the largest number of bands a resistor can be read from.
const MaxBands = 6

// TooManyBandsError is returned when more than MaxBands bands are provided.
type TooManyBandsError struct {
	Count int // Count is the number of bands received.
}

func (e *TooManyBandsError) Error() string {
	return fmt.Sprintf("too many bands provided: at most %d allowed, %d provided", MaxBands, e.Count)
}

// Resistor holds the color bands of a resistor in reading order.
type Resistor struct {
	bands []bandcolor.Color
}

// Parse builds a Resistor from color names separated by single spaces, such as
// "brown black red". Only surrounding whitespace is trimmed, so repeated spaces
// between names produce empty names that fail to parse.
func Parse(s string) (*Resistor, error) {
	bands, err := bandcolor.ParseAll(strings.Split(strings.TrimSpace(s), " "))
	if err != nil {
		return nil, err
	}
	if len(bands) > MaxBands {
		return nil, &TooManyBandsError{Count: len(bands)}
	}
	return &Resistor{bands: bands}, nil
}

// WithBands builds a Resistor from the given band colors.
// It fails if fewer than bandcolor.MinBands or more than MaxBands are given.
func WithBands(bands []bandcolor.Color) (*Resistor, error) {
	if len(bands) < bandcolor.MinBands {
		return nil, &bandcolor.InsufficientBandsError{Count: len(bands)}
	}
	if len(bands) > MaxBands {
		return nil, &TooManyBandsError{Count: len(bands)}
	}
	for _, b := range bands {
		if !b.Valid() {
			return nil, &bandcolor.UnknownColorError{Input: b.String()}
		}
	}

	owned := make([]bandcolor.Color, len(bands))
	copy(owned, bands)
	return &Resistor{bands: owned}, nil
}

// Bands returns a copy of the resistor's bands in reading order.
func (r *Resistor) Bands() []bandcolor.Color {
	out := make([]bandcolor.Color, len(r.bands))
	copy(out, r.bands)
	return out
}

// Value returns the resistance in ohms.
// It panics if the resistor does not have between 3 and 6 bands, which cannot
// happen for a Resistor built with Parse or WithBands.
func (r *Resistor) Value() uint64 {
	var significant, exponent uint64
	switch len(r.bands) {
	case 3, 4:
		significant = r.bands[0].Digit()*10 + r.bands[1].Digit()
		exponent = r.bands[2].Digit()
	case 5, 6:
		significant = r.bands[0].Digit()*100 + r.bands[1].Digit()*10 + r.bands[2].Digit()
		exponent = r.bands[3].Digit()
	default:
		panic(fmt.Sprintf("resistor: cannot decode %d bands", len(r.bands)))
	}

	value := significant
	for i := uint64(0); i < exponent; i++ {
		value *= 10
	}
	return value
}

// String returns the band colors separated by spaces, in a form accepted by Parse.
func (r *Resistor) String() string {
	names := make([]string, len(r.bands))
	for i, b := range r.bands {
		names[i] = b.String()
	}
	return strings.Join(names, " ")
}
