package graphing

import (
	"math"
	"strconv"
	"strings"
)

// FindSignificantFigures returns how many significant digits the tick
// label for value should show on an axis spanning [dataMin,dataMax] with
// numberOfTicks major tick intervals.
//
// This is a cosmetic heuristic. It is a pure function of its inputs but
// the digit counts are not optimal for every magnitude:
//   - The fractional digits are derived from the tick step: one more than
//     the magnitude of the step's fractional part.
//   - A fractional part of value smaller than both the fractional part of
//     dataMin and a tenth of the step's fractional part is noise from the
//     interpolation and is dropped; so is any fractional part when dataMin
//     and the step are both whole numbers.
//   - Fractional digits are only added when value has a non-zero integer
//     part and a non-zero fractional part.
//
// The step's magnitude is taken with floor(log10), which gives a tick of
// 1.5 with a step of 0.5 three digits ("1.50") where truncating the
// logarithm towards zero would give two ("1.5").
func FindSignificantFigures(value, dataMin, dataMax float64, numberOfTicks int) int {
	step := (dataMax - dataMin) / float64(numberOfTicks)
	stepFrac := step - math.Floor(step)
	_, minFrac := math.Modf(dataMin)
	minFrac = math.Abs(minFrac)

	valueInt, valueFrac := math.Modf(value)
	valueFrac = math.Abs(valueFrac)
	if valueFrac < minFrac && valueFrac < stepFrac/10 {
		valueFrac = 0
	}
	if minFrac == 0 && stepFrac == 0 {
		valueFrac = 0
	}

	fracFigs := 1
	if stepFrac != 0 {
		fracFigs = magnitudeDigits(stepFrac)
	}
	intFigs := 1
	if valueInt != 0 {
		intFigs = magnitudeDigits(math.Abs(valueInt))
	}

	if valueInt != 0 && valueFrac != 0 {
		return intFigs + fracFigs
	}
	return intFigs
}

// magnitudeDigits is |floor(log10(x))| + 1 for x > 0.
func magnitudeDigits(x float64) int {
	return int(math.Abs(math.Floor(math.Log10(x)))) + 1
}

// FormatPrecision formats v with p significant digits the way JavaScript's
// Number.prototype.toPrecision does: plain decimal notation (keeping
// trailing zeros) unless the decimal exponent is below -6 or not smaller
// than p. p is clamped to 1..100.
func FormatPrecision(v float64, p int) string {
	if p < 1 {
		p = 1
	} else if p > 100 {
		p = 100
	}

	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return strconv.FormatFloat(0, 'f', p-1, 64)
	}

	// Let 'e' formatting do the rounding; it also yields the exponent
	// after rounding, e.g. 9.96 at p=2 is 1.0e+01.
	s := strconv.FormatFloat(v, 'e', p-1, 64)
	i := strings.IndexByte(s, 'e')
	mant, exp := s[:i], s[i+1:]
	e, _ := strconv.Atoi(exp)

	if e < -6 || e >= p {
		sign := "+"
		if e < 0 {
			sign, e = "-", -e
		}
		return mant + "e" + sign + strconv.Itoa(e)
	}
	return strconv.FormatFloat(v, 'f', p-1-e, 64)
}
