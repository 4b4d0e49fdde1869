// Package data contains the data set type a chart plots.
package data

import (
	"errors"
	"fmt"

	"github.com/vdobler/graphing/vec"
	"gonum.org/v1/plot/plotter"
)

// ErrInconsistent is returned when the declared Min and Max of a DataSet
// do not bound its data or the declared point count is wrong.
var ErrInconsistent = errors.New("data: inconsistent data set")

// DataSet is one series of data points.
//
// Min and Max are supplied by the caller and are trusted by the chart
// for scaling unless validation is enabled. Only the first
// NumberOfDatapoints elements of Datum are plotted.
type DataSet struct {
	Datum              []vec.Vector2
	Min, Max           vec.Vector2
	NumberOfDatapoints int
}

var _ plotter.XYer = DataSet{}

// FromXYer copies xys into a new DataSet with Min and Max set to the
// actual range of the points. Points with NaN or infinite coordinates
// are rejected.
func FromXYer(xys plotter.XYer) (DataSet, error) {
	cpy, err := plotter.CopyXYs(xys)
	if err != nil {
		return DataSet{}, fmt.Errorf("%w: %v", ErrInconsistent, err)
	}
	if len(cpy) == 0 {
		return DataSet{}, fmt.Errorf("%w: no data points", ErrInconsistent)
	}

	ds := DataSet{
		Datum:              make([]vec.Vector2, len(cpy)),
		NumberOfDatapoints: len(cpy),
	}
	for i, p := range cpy {
		ds.Datum[i] = vec.Vector2{X: p.X, Y: p.Y}
	}
	xmin, xmax, ymin, ymax := plotter.XYRange(cpy)
	ds.Min = vec.Vector2{X: xmin, Y: ymin}
	ds.Max = vec.Vector2{X: xmax, Y: ymax}
	return ds, nil
}

// Len returns NumberOfDatapoints.
func (d DataSet) Len() int { return d.NumberOfDatapoints }

// XY returns the i'th data point.
func (d DataSet) XY(i int) (x, y float64) { return d.Datum[i].X, d.Datum[i].Y }

// Points returns the plotted part of Datum.
func (d DataSet) Points() []vec.Vector2 { return d.Datum[:d.NumberOfDatapoints] }

// ValidateCount checks that NumberOfDatapoints lies in 1..len(Datum), so
// Points can be sliced.
func (d DataSet) ValidateCount() error {
	if d.NumberOfDatapoints < 1 || d.NumberOfDatapoints > len(d.Datum) {
		return fmt.Errorf("%w: NumberOfDatapoints=%d with %d points",
			ErrInconsistent, d.NumberOfDatapoints, len(d.Datum))
	}
	return nil
}

// Validate checks that d is self-consistent: the point count lies in
// 1..len(Datum), Min and Max are ordered finite numbers and every plotted
// point lies inside [Min,Max].
func (d DataSet) Validate() error {
	if err := d.ValidateCount(); err != nil {
		return err
	}
	if !d.Min.IsFinite() || !d.Max.IsFinite() {
		return fmt.Errorf("%w: Min=%v Max=%v", ErrInconsistent, d.Min, d.Max)
	}
	if d.Min.X > d.Max.X || d.Min.Y > d.Max.Y {
		return fmt.Errorf("%w: Min %v exceeds Max %v", ErrInconsistent, d.Min, d.Max)
	}
	for i, p := range d.Points() {
		if !(p.X >= d.Min.X && p.X <= d.Max.X && p.Y >= d.Min.Y && p.Y <= d.Max.Y) {
			return fmt.Errorf("%w: point %d %v outside [%v,%v]",
				ErrInconsistent, i, p, d.Min, d.Max)
		}
	}
	return nil
}
