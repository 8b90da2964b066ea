package dto

import (
	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
	"github.com/ConversorDuo/currency_converter_app/internal/utils/chart"
)

// HistoryPointResponse is one (date, rate) sample of the series.
type HistoryPointResponse struct {
	Date string  `json:"date"`
	Rate float64 `json:"rate"`
}

// ChartPointResponse is a plotted pixel coordinate.
type ChartPointResponse struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// HistoryResponse defines the series plus its plotted geometry. Drawable is
// false when the series has too few points to chart.
type HistoryResponse struct {
	Points   []HistoryPointResponse `json:"points"`
	Chart    []ChartPointResponse   `json:"chart"`
	Min      float64                `json:"min"`
	Max      float64                `json:"max"`
	Drawable bool                   `json:"drawable"`
	Loading  bool                   `json:"loading"`
}

// HoverResponse defines the focused sample for a pointer position.
type HoverResponse struct {
	Index     int                `json:"index"`
	Date      string             `json:"date"`
	Rate      float64            `json:"rate"`
	Focus     ChartPointResponse `json:"focus"`
	ShowBelow bool               `json:"showBelow"`
	AlignLeft bool               `json:"alignLeft"`
}

const historyDateLayout = "2006-01-02"

// ToHistoryResponse converts the series and its geometry to the response DTO.
func ToHistoryResponse(series []domain.HistoryPoint, geo chart.Geometry, drawable, loading bool) HistoryResponse {
	points := make([]HistoryPointResponse, len(series))
	for i, p := range series {
		points[i] = HistoryPointResponse{Date: p.Date.Format(historyDateLayout), Rate: p.Rate}
	}

	plotted := make([]ChartPointResponse, len(geo.Points))
	for i, p := range geo.Points {
		plotted[i] = ChartPointResponse{X: p.X, Y: p.Y}
	}

	return HistoryResponse{
		Points:   points,
		Chart:    plotted,
		Min:      geo.Min,
		Max:      geo.Max,
		Drawable: drawable,
		Loading:  loading,
	}
}

// ToHoverResponse converts a hit-test result to the response DTO.
func ToHoverResponse(index int, sample domain.HistoryPoint, focus chart.Point, placement chart.Placement) HoverResponse {
	return HoverResponse{
		Index:     index,
		Date:      sample.Date.Format(historyDateLayout),
		Rate:      sample.Rate,
		Focus:     ChartPointResponse{X: focus.X, Y: focus.Y},
		ShowBelow: placement.ShowBelow,
		AlignLeft: placement.AlignLeft,
	}
}
