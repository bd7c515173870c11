package services

import (
	"errors"
	"fmt"
	"slices"

	"github/itish2003/smartcity/models"
)

const (
	ChartAQI    = "aqi"
	ChartEnergy = "energy"

	dashboardBackground = "#1e293b"
	dashboardText       = "white"
)

// ErrUnknownChart is returned for chart names other than aqi and energy.
var ErrUnknownChart = errors.New("unknown chart")

// Weekly sample readings shown on the dashboard. Never modified.
var (
	aqiReadings    = []float64{50, 60, 70, 80, 65, 55, 75}
	energyReadings = []float64{300, 320, 310, 290, 330, 340, 325}
)

// DashboardService builds the dashboard's fixed line charts.
type DashboardService interface {
	AQIChart() *models.Figure
	EnergyChart() *models.Figure
	Chart(name string) (*models.Figure, error)
	ChartNames() []string
}

type dashboardServiceImpl struct{}

// NewDashboardService returns the service behind the Dashboard tab.
func NewDashboardService() DashboardService {
	return &dashboardServiceImpl{}
}

func (d *dashboardServiceImpl) AQIChart() *models.Figure {
	return &models.Figure{
		ID:         ChartAQI,
		Title:      "AQI Over Time",
		XLabel:     "Days",
		YLabel:     "AQI",
		Background: dashboardBackground,
		TextColor:  dashboardText,
		Series: models.Series{
			Name:      "AQI",
			Values:    slices.Clone(aqiReadings),
			Color:     "#00c853",
			Marker:    "circle",
			LineWidth: 2,
		},
	}
}

func (d *dashboardServiceImpl) EnergyChart() *models.Figure {
	return &models.Figure{
		ID:         ChartEnergy,
		Title:      "Energy Usage (MW)",
		XLabel:     "Days",
		YLabel:     "MW",
		Background: dashboardBackground,
		TextColor:  dashboardText,
		Series: models.Series{
			Name:      "Energy",
			Values:    slices.Clone(energyReadings),
			Color:     "orange",
			Marker:    "rect",
			LineWidth: 2,
		},
	}
}

// Chart looks a figure up by its ID.
func (d *dashboardServiceImpl) Chart(name string) (*models.Figure, error) {
	switch name {
	case ChartAQI:
		return d.AQIChart(), nil
	case ChartEnergy:
		return d.EnergyChart(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownChart, name)
	}
}

func (d *dashboardServiceImpl) ChartNames() []string {
	return []string{ChartAQI, ChartEnergy}
}
