package chart

import (
	"math"

	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
)

// PlotSpec describes the fixed drawable area the client renders into. The
// coordinate space matches the client's viewBox, so the geometry computed
// here can be used verbatim for both drawing and hit-testing.
type PlotSpec struct {
	Width         float64
	Height        float64
	PaddingTop    float64
	PaddingRight  float64
	PaddingBottom float64
	PaddingLeft   float64

	// TooltipFlipY is the y threshold near the top of the chart; a focus
	// point above it shows its tooltip below the point instead of above.
	TooltipFlipY float64
}

// DefaultPlotSpec mirrors the client's 400×240 viewBox.
func DefaultPlotSpec() PlotSpec {
	return PlotSpec{
		Width:         400,
		Height:        240,
		PaddingTop:    20,
		PaddingRight:  60,
		PaddingBottom: 40,
		PaddingLeft:   10,
		TooltipFlipY:  110,
	}
}

// DrawableWidth is the horizontal extent available for data points.
func (p PlotSpec) DrawableWidth() float64 {
	return p.Width - p.PaddingLeft - p.PaddingRight
}

// DrawableHeight is the vertical extent available for data points.
func (p PlotSpec) DrawableHeight() float64 {
	return p.Height - p.PaddingTop - p.PaddingBottom
}

// Point is a screen coordinate of one series point.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Geometry is the full coordinate mapping of a series.
type Geometry struct {
	Points []Point `json:"points"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Build maps a history series to screen coordinates: x by linear
// interpolation of the index across the drawable width, y by linear
// interpolation between the series min and max across the drawable height,
// inverted so a higher rate sits higher on screen. A flat series (max ==
// min) uses range 1 to avoid dividing by zero.
//
// Series shorter than domain.MinChartPoints have no geometry; ok is false.
func Build(series []domain.HistoryPoint, spec PlotSpec) (Geometry, bool) {
	if len(series) < domain.MinChartPoints {
		return Geometry{}, false
	}

	min, max := series[0].Rate, series[0].Rate
	for _, p := range series[1:] {
		if p.Rate < min {
			min = p.Rate
		}
		if p.Rate > max {
			max = p.Rate
		}
	}

	rng := max - min
	if rng == 0 {
		rng = 1
	}

	points := make([]Point, len(series))
	for i, p := range series {
		points[i] = Point{
			X: spec.PaddingLeft + float64(i)/float64(len(series)-1)*spec.DrawableWidth(),
			Y: spec.Height - spec.PaddingBottom - (p.Rate-min)/rng*spec.DrawableHeight(),
		}
	}

	return Geometry{Points: points, Min: min, Max: max}, true
}

// NearestIndex maps a pointer x position (in the chart's coordinate space)
// to the nearest series index. The position is clamped to the drawable
// x-range first, so the exact left edge yields 0 and the exact right edge
// yields n-1. ok is false when n is too small for a chart.
func NearestIndex(x float64, n int, spec PlotSpec) (int, bool) {
	if n < domain.MinChartPoints {
		return 0, false
	}

	relX := x - spec.PaddingLeft
	if relX < 0 {
		relX = 0
	}
	if w := spec.DrawableWidth(); relX > w {
		relX = w
	}

	return int(math.Round(relX / spec.DrawableWidth() * float64(n-1))), true
}

// Placement tells the client which way to offset a tooltip so it stays
// on-screen near the chart edges.
type Placement struct {
	// ShowBelow flips the tooltip under the focus point when the point is
	// near the top of the chart.
	ShowBelow bool `json:"showBelow"`

	// AlignLeft flips the tooltip to the left of the focus point when the
	// point is past the horizontal midpoint.
	AlignLeft bool `json:"alignLeft"`
}

// TooltipPlacement computes the flip directions for a focus point.
func TooltipPlacement(focus Point, spec PlotSpec) Placement {
	return Placement{
		ShowBelow: focus.Y < spec.TooltipFlipY,
		AlignLeft: focus.X > spec.Width/2,
	}
}
