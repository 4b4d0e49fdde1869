package graphing

import (
	"errors"

	"github.com/vdobler/graphing/data"
)

var (
	// ErrInvalidAxisExtent is returned when the combined data bounds of
	// an axis have no extent, so no linear mapping from them exists.
	ErrInvalidAxisExtent = errors.New("graphing: invalid axis extent")

	// ErrInconsistentDataSet is returned when a data set's declared
	// bounds do not cover its data.
	ErrInconsistentDataSet = data.ErrInconsistent

	// ErrNoData is returned when drawing needs data but none is registered.
	ErrNoData = errors.New("graphing: no data sets registered")

	ErrUnknownDataSet    = errors.New("graphing: unknown data set")
	ErrAxisNotConfigured = errors.New("graphing: axis not configured")
	ErrInvalidTicks      = errors.New("graphing: invalid tick configuration")
	ErrInvalidBounds     = errors.New("graphing: invalid chart bounds")
)
