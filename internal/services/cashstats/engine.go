package cashstats

import (
	"fmt"
	"math"

	"pos-analytics-backend/internal/models"
)

// Difference classes assigned to a closure from the sign of its variance.
const (
	StatusExact    = "exact"
	StatusSurplus  = "surplus"
	StatusShortage = "shortage"
)

// Display colors used by the dashboard for the performance distribution.
const (
	colorExact    = "#10B981"
	colorSurplus  = "#3B82F6"
	colorShortage = "#EF4444"
)

// TimeNotAvailable is returned for the average opening/closing time when no
// closure carried a usable pair of timestamps.
const TimeNotAvailable = "N/A"

const differencesChartSize = 10

// ChartPoint is one entry of the differences time series.
type ChartPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// DistributionBucket is one slice of the exact/surplus/shortage breakdown.
type DistributionBucket struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// Statistics aggregates a set of cash closures for the dashboard.
type Statistics struct {
	TotalClosures           int     `json:"total_closures"`
	AverageDifference       float64 `json:"average_difference"`
	EffectivenessRate       int     `json:"effectiveness_rate"`
	AverageSales            float64 `json:"average_sales"`
	TotalShortages          float64 `json:"total_shortages"`
	TotalSurplus            float64 `json:"total_surplus"`
	NetBalance              float64 `json:"net_balance"`
	ExactClosures           int     `json:"exact_closures"`
	ClosuresWithDifferences int     `json:"closures_with_differences"`
	MaxDifference           float64 `json:"max_difference"`
	AverageOpeningTime      string  `json:"average_opening_time"`
	AverageClosingTime      string  `json:"average_closing_time"`
	AverageOperationTime    float64 `json:"average_operation_time"`
	InvalidTimeEntries      int     `json:"invalid_time_entries"`

	DifferencesChart        []ChartPoint         `json:"differences_chart"`
	PerformanceDistribution []DistributionBucket `json:"performance_distribution"`
}

// Classify returns the difference class for a signed variance.
func Classify(difference float64) string {
	switch {
	case difference == 0:
		return StatusExact
	case difference < 0:
		return StatusShortage
	default:
		return StatusSurplus
	}
}

// ComputeStatistics aggregates the given closures into dashboard statistics.
// Pure and deterministic for a given input order; the chart keeps input
// order, no canonical sort is applied. A nil slice is an empty collection.
func ComputeStatistics(closures []models.CashClosure) Statistics {
	if len(closures) == 0 {
		return Statistics{
			AverageOpeningTime:      TimeNotAvailable,
			AverageClosingTime:      TimeNotAvailable,
			DifferencesChart:        []ChartPoint{},
			PerformanceDistribution: []DistributionBucket{},
		}
	}

	var (
		exact, surplus, shortage     int
		totalShortages, totalSurplus float64
		sumDifference, sumSales      float64
		maxDifference                float64

		openingMinutes, closingMinutes float64
		operationHours                 float64
		validTimes                     int
	)

	for _, c := range closures {
		switch Classify(c.Difference) {
		case StatusExact:
			exact++
		case StatusShortage:
			shortage++
			totalShortages += -c.Difference
		case StatusSurplus:
			surplus++
			totalSurplus += c.Difference
		}

		sumDifference += c.Difference
		sumSales += safeAmount(c.TotalSales)
		if abs := math.Abs(c.Difference); abs > maxDifference {
			maxDifference = abs
		}

		// A closure only feeds the time-of-day statistics when both
		// timestamps are present; it still counts toward every total above.
		if c.OpenedAt == nil || c.ClosedAt == nil {
			continue
		}
		validTimes++
		openingMinutes += float64(c.OpenedAt.Hour()*60 + c.OpenedAt.Minute())
		closingMinutes += float64(c.ClosedAt.Hour()*60 + c.ClosedAt.Minute())
		if h := c.ClosedAt.Sub(*c.OpenedAt).Hours(); h > 0 && h < 24 {
			operationHours += h
		}
	}

	total := len(closures)
	stats := Statistics{
		TotalClosures:           total,
		AverageDifference:       sumDifference / float64(total),
		EffectivenessRate:       int(math.Round(float64(exact) / float64(total) * 100)),
		AverageSales:            sumSales / float64(total),
		TotalShortages:          totalShortages,
		TotalSurplus:            totalSurplus,
		NetBalance:              totalSurplus - totalShortages,
		ExactClosures:           exact,
		ClosuresWithDifferences: surplus + shortage,
		MaxDifference:           maxDifference,
		InvalidTimeEntries:      total - validTimes,
	}

	if validTimes == 0 {
		stats.AverageOpeningTime = TimeNotAvailable
		stats.AverageClosingTime = TimeNotAvailable
	} else {
		stats.AverageOpeningTime = formatMinuteOfDay(openingMinutes / float64(validTimes))
		stats.AverageClosingTime = formatMinuteOfDay(closingMinutes / float64(validTimes))
		stats.AverageOperationTime = operationHours / float64(validTimes)
	}

	start := 0
	if total > differencesChartSize {
		start = total - differencesChartSize
	}
	stats.DifferencesChart = make([]ChartPoint, 0, total-start)
	for _, c := range closures[start:] {
		stats.DifferencesChart = append(stats.DifferencesChart, ChartPoint{
			Name:  "Cierre " + c.ID.String(),
			Value: c.Difference,
		})
	}

	stats.PerformanceDistribution = []DistributionBucket{
		{Name: "Exactos", Value: exact, Color: colorExact},
		{Name: "Sobrantes", Value: surplus, Color: colorSurplus},
		{Name: "Faltantes", Value: shortage, Color: colorShortage},
	}

	return stats
}

// formatMinuteOfDay renders an average minute-of-day as zero-padded HH:MM.
func formatMinuteOfDay(avg float64) string {
	hh := int(avg / 60)
	mm := int(math.Round(math.Mod(avg, 60)))
	return fmt.Sprintf("%02d:%02d", hh, mm)
}

// safeAmount keeps a NaN coming from upstream data out of the accumulators.
func safeAmount(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
