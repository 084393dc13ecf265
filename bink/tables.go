package bink

import "math"

// float29Power converts a 29-bit float's 5-bit power field into a scale, so
// that mantissa*float29Power[power] reconstructs the packed coefficient.
// The mantissa occupies bits [27:5] as a 23-bit unsigned value, so the
// power field is interpreted as a base-2 exponent offset by the mantissa
// width (power-23), computed directly rather than tabulated since it is a
// pure function of the bit layout.
var float29Power = func() [32]float32 {
	var t [32]float32
	for i := range t {
		t[i] = float32(math.Ldexp(1, i-23))
	}
	return t
}()

// cutoffFrequency gives, per band, the upper edge frequency (Hz) below
// which a band's coefficients are grouped; Bink Audio reuses WMA's
// critical-band table for this split.
var cutoffFrequency = [25]int{
	100, 200, 300, 400, 510, 630, 770, 920,
	1080, 1270, 1480, 1720, 2000, 2320, 2700, 3150,
	3700, 4400, 5300, 6400, 7700, 9500, 12000, 15500,
	24500,
}

// scalefactors converts a band's 7- or 8-bit quantized index into the
// linear scale applied to that band's coefficients. This module's
// retrieval pack does not carry RAD's literal table (binka_data.h), so it
// is reconstructed as a monotonic power curve running from 2^-8 to
// 2^3.875, about 71dB of dynamic range across the 96 entries; see
// DESIGN.md.
var scalefactors = func() [96]float32 {
	var t [96]float32
	for i := range t {
		t[i] = float32(math.Pow(2, (float64(i)-64)/8))
	}
	return t
}()

// rleTable converts a 4-bit run-length index into the group-size
// multiplier (group size = rleTable[index]*8 coefficients). As with
// scalefactors, the literal table is not present in the retrieval pack;
// this is a monotonic run-length progression reconstructed to the same
// shape; see DESIGN.md.
var rleTable = [16]int{
	1, 2, 3, 4, 5, 6, 8, 10,
	12, 14, 16, 20, 24, 32, 48, 64,
}
