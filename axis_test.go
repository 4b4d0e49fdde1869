package graphing

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vdobler/graphing/vec"
)

func TestSetAxis(t *testing.T) {
	c, _ := newTestChart(t)
	if err := c.SetXAxis("Time", "s", Ticks{NumberMajorTicks: 4, NumberMinorTicksPerMajorTick: 5}); err != nil {
		t.Fatal(err)
	}
	if err := c.SetYAxis("Speed", "m/s", Ticks{NumberMajorTicks: 4, NumberMinorTicksPerMajorTick: 2}); err != nil {
		t.Fatal(err)
	}

	x, y := c.XAxis, c.YAxis
	if x.Ticks.TickSize != DefaultTickSize || y.Ticks.TickSize != DefaultTickSize {
		t.Errorf("tick sizes %v and %v, want default", x.Ticks.TickSize, y.Ticks.TickSize)
	}
	if x.Unit.Text != "(s)" || y.Unit.Text != "(m/s)" {
		t.Errorf("units %q and %q", x.Unit.Text, y.Unit.Text)
	}
	if want := vec.V(4*charWidth, 24); x.Title.Dimensions != want {
		t.Errorf("x title dimensions %v, want %v", x.Title.Dimensions, want)
	}

	for _, tc := range []struct {
		name      string
		got, want vec.Vector2
	}{
		{"x title", x.TitleOffset, vec.V(238, 8)},
		{"x unit", x.UnitOffset, vec.V(241, -10)},
		{"y title", y.TitleOffset, vec.V(50, 105)},
		{"y unit", y.UnitOffset, vec.V(70, 105)},
	} {
		if !near(tc.got, tc.want) {
			t.Errorf("%s offset %v, want %v", tc.name, tc.got, tc.want)
		}
	}
}

func TestSetAxisKeepsTickSize(t *testing.T) {
	c, _ := newTestChart(t)
	size := TickSize{Major: 7, Minor: 3}
	if err := c.SetXAxis("", "", Ticks{NumberMajorTicks: 1, TickSize: size}); err != nil {
		t.Fatal(err)
	}
	if c.XAxis.Ticks.TickSize != size {
		t.Errorf("tick size %v, want %v", c.XAxis.Ticks.TickSize, size)
	}
	if c.XAxis.Title != (Label{}) || c.XAxis.Unit != (Label{}) {
		t.Errorf("empty title and unit measured: %+v %+v", c.XAxis.Title, c.XAxis.Unit)
	}
}

func TestSetAxisInvalid(t *testing.T) {
	for _, ticks := range []Ticks{
		{NumberMajorTicks: 0},
		{NumberMajorTicks: -2},
		{NumberMajorTicks: 3, NumberMinorTicksPerMajorTick: -1},
	} {
		c, _ := newTestChart(t)
		if err := c.SetYAxis("a", "b", ticks); !errors.Is(err, ErrInvalidTicks) {
			t.Errorf("%+v: got %v, want ErrInvalidTicks", ticks, err)
		}
		if c.YAxis.configured() {
			t.Errorf("%+v: axis configured", ticks)
		}
	}
}

func countMarks(l AxisLayout) (major, minor int) {
	for _, m := range l.Marks {
		if m.Major {
			major++
		} else {
			minor++
		}
	}
	return major, minor
}

func TestLayoutAxisTickCount(t *testing.T) {
	c, _ := newTestChart(t)
	xAxis, yAxis := c.axisLines()
	for _, tc := range []struct{ n, m, minor int }{
		{4, 5, 16},
		{4, 2, 4},
		{4, 1, 0},
		{4, 0, 0},
		{1, 3, 2},
		{7, 10, 63},
	} {
		t.Run(fmt.Sprintf("%d/%d", tc.n, tc.m), func(t *testing.T) {
			a := &AxisSpec{orient: horizontal{}, Ticks: Ticks{
				NumberMajorTicks: tc.n, NumberMinorTicksPerMajorTick: tc.m, TickSize: DefaultTickSize}}
			l := c.layoutAxis(a, xAxis, yAxis, Interval{0, 2})
			major, minor := countMarks(l)
			if major != tc.n+1 || minor != tc.minor {
				t.Errorf("got %d major and %d minor marks, want %d and %d",
					major, minor, tc.n+1, tc.minor)
			}
			if len(l.Labels) != tc.n+1 {
				t.Errorf("got %d labels, want %d", len(l.Labels), tc.n+1)
			}
		})
	}
}

func TestLayoutAxisValues(t *testing.T) {
	c, _ := newTestChart(t)
	xAxis, yAxis := c.axisLines()
	a := &AxisSpec{orient: vertical{}, Ticks: Ticks{NumberMajorTicks: 4, TickSize: DefaultTickSize}}
	bounds := Interval{-0.3, 1.7}
	l := c.layoutAxis(a, yAxis, xAxis, bounds)
	for k, label := range l.Labels {
		want := bounds.Min + float64(k)*(bounds.Max-bounds.Min)/4
		if k == 4 {
			want = bounds.Max
		}
		if !equal64(label.Value, want) {
			t.Errorf("label %d value %g, want %g", k, label.Value, want)
		}
	}
	if l.Labels[0].Value != bounds.Min || l.Labels[4].Value != bounds.Max {
		t.Errorf("end labels %g and %g not exact", l.Labels[0].Value, l.Labels[4].Value)
	}
}

func TestLayoutAxisHorizontal(t *testing.T) {
	c, _ := newTestChart(t)
	xAxis, yAxis := c.axisLines()
	a := &AxisSpec{orient: horizontal{}, Ticks: Ticks{
		NumberMajorTicks: 4, NumberMinorTicksPerMajorTick: 5, TickSize: DefaultTickSize}}
	l := c.layoutAxis(a, xAxis, yAxis, Interval{0, 2})

	// The second major tick follows the first and its four minor ticks.
	m := l.Marks[5]
	if !m.Major || m.Start != vec.V(175, 60) || m.End != vec.V(175, 50) {
		t.Errorf("second major mark %+v", m)
	}
	if mi := l.Marks[1]; mi.Major || !near(mi.Start, vec.V(115, 60)) || !near(mi.End, vec.V(115, 55)) {
		t.Errorf("first minor mark %+v", mi)
	}

	texts := []string{"0", "0.5", "1", "1.50", "2"}
	for k, label := range l.Labels {
		if label.Text != texts[k] {
			t.Errorf("label %d is %q, want %q", k, label.Text, texts[k])
		}
	}
	// Centred below the tick: 10 below the tick's end.
	if got := l.Labels[1].At; !near(got, vec.V(175-1.5*charWidth, 40)) {
		t.Errorf("label 1 at %v", got)
	}
}

func TestLayoutAxisVertical(t *testing.T) {
	c, _ := newTestChart(t)
	xAxis, yAxis := c.axisLines()
	a := &AxisSpec{orient: vertical{}, Ticks: Ticks{
		NumberMajorTicks: 4, NumberMinorTicksPerMajorTick: 2, TickSize: DefaultTickSize}}
	l := c.layoutAxis(a, yAxis, xAxis, Interval{0, 4})

	m := l.Marks[2]
	if !m.Major || m.Start != vec.V(100, 105) || m.End != vec.V(90, 105) {
		t.Errorf("second major mark %+v", m)
	}
	for k, label := range l.Labels {
		if want := fmt.Sprint(k); label.Text != want {
			t.Errorf("label %d is %q, want %q", k, label.Text, want)
		}
	}
	// Right aligned left of the tick, vertically centred on it.
	if got := l.Labels[1].At; !near(got, vec.V(80-charWidth, 100)) {
		t.Errorf("label 1 at %v", got)
	}
}

func TestAnchorUndoesRotation(t *testing.T) {
	for _, o := range []orientation{horizontal{}, vertical{}} {
		for _, p := range []vec.Vector2{{X: 0, Y: 0}, {X: 50, Y: 135}, {X: -3, Y: 7.5}} {
			got := o.anchor(p).Rotate(-o.frameRotation())
			if !near(got, p) {
				t.Errorf("%s: anchor %v lands at %v", o.kind(), p, got)
			}
		}
	}
}

func TestOrientationBounds(t *testing.T) {
	g := newGraphData()
	g.DataSets = []Entry{{DataSet: set(vec.V(-1, 3), vec.V(2, 8))}}
	g.fold()
	if got := (horizontal{}).bounds(&g); got != (Interval{-1, 2}) {
		t.Errorf("horizontal bounds %v", got)
	}
	if got := (vertical{}).bounds(&g); got != (Interval{3, 8}) {
		t.Errorf("vertical bounds %v", got)
	}
}
