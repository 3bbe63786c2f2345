package cashstats_test

import (
	"testing"
	"time"

	"pos-analytics-backend/internal/models"
	"pos-analytics-backend/internal/services/cashstats"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(day, hour, minute int) *time.Time {
	t := time.Date(2024, 1, day, hour, minute, 0, 0, time.UTC)
	return &t
}

func closure(difference, totalSales float64) models.CashClosure {
	return models.CashClosure{
		ID:         uuid.New(),
		Difference: difference,
		TotalSales: totalSales,
	}
}

func TestComputeStatistics_EmptyInput(t *testing.T) {
	stats := cashstats.ComputeStatistics(nil)

	assert.Equal(t, 0, stats.TotalClosures)
	assert.Equal(t, float64(0), stats.AverageDifference)
	assert.Equal(t, 0, stats.EffectivenessRate)
	assert.Equal(t, float64(0), stats.AverageSales)
	assert.Equal(t, float64(0), stats.TotalShortages)
	assert.Equal(t, float64(0), stats.TotalSurplus)
	assert.Equal(t, float64(0), stats.NetBalance)
	assert.Equal(t, float64(0), stats.MaxDifference)
	assert.Equal(t, float64(0), stats.AverageOperationTime)
	assert.Equal(t, cashstats.TimeNotAvailable, stats.AverageOpeningTime)
	assert.Equal(t, cashstats.TimeNotAvailable, stats.AverageClosingTime)
	assert.Empty(t, stats.DifferencesChart)
	assert.Empty(t, stats.PerformanceDistribution)
}

func TestComputeStatistics_Classification(t *testing.T) {
	closures := []models.CashClosure{
		closure(0, 100),
		closure(10.5, 200),
		closure(-4.25, 300),
		closure(-1.75, 400),
		closure(0, 500),
	}

	stats := cashstats.ComputeStatistics(closures)

	assert.Equal(t, 5, stats.TotalClosures)
	assert.Equal(t, 2, stats.ExactClosures)
	assert.Equal(t, 3, stats.ClosuresWithDifferences)
	assert.Equal(t, 10.5, stats.TotalSurplus)
	assert.Equal(t, 6.0, stats.TotalShortages)
	assert.Equal(t, 4.5, stats.NetBalance)
	assert.Equal(t, 10.5, stats.MaxDifference)
	assert.InDelta(t, 0.9, stats.AverageDifference, 1e-9)
	assert.InDelta(t, 300, stats.AverageSales, 1e-9)
	assert.Equal(t, 40, stats.EffectivenessRate)
}

func TestComputeStatistics_EffectivenessRounding(t *testing.T) {
	tests := []struct {
		name        string
		differences []float64
		want        int
	}{
		{name: "one exact of three rounds down", differences: []float64{0, 1, -1}, want: 33},
		{name: "two exact of three rounds up", differences: []float64{0, 0, 1}, want: 67},
		{name: "all exact", differences: []float64{0, 0}, want: 100},
		{name: "none exact", differences: []float64{1, -1}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var closures []models.CashClosure
			for _, d := range tt.differences {
				closures = append(closures, closure(d, 0))
			}
			stats := cashstats.ComputeStatistics(closures)
			assert.Equal(t, tt.want, stats.EffectivenessRate)
		})
	}
}

func TestComputeStatistics_ClassificationCompleteness(t *testing.T) {
	closures := []models.CashClosure{
		closure(0, 0), closure(3, 0), closure(-2, 0), closure(0.01, 0), closure(-0.01, 0),
	}

	stats := cashstats.ComputeStatistics(closures)

	require.Len(t, stats.PerformanceDistribution, 3)
	sum := 0
	for _, bucket := range stats.PerformanceDistribution {
		sum += bucket.Value
		assert.NotEmpty(t, bucket.Color)
	}
	assert.Equal(t, stats.TotalClosures, sum)
	assert.Equal(t, "Exactos", stats.PerformanceDistribution[0].Name)
	assert.Equal(t, "Sobrantes", stats.PerformanceDistribution[1].Name)
	assert.Equal(t, "Faltantes", stats.PerformanceDistribution[2].Name)
	assert.Equal(t, 1, stats.PerformanceDistribution[0].Value)
	assert.Equal(t, 2, stats.PerformanceDistribution[1].Value)
	assert.Equal(t, 2, stats.PerformanceDistribution[2].Value)
	assert.GreaterOrEqual(t, stats.TotalShortages, float64(0))
	assert.GreaterOrEqual(t, stats.TotalSurplus, float64(0))
}

func TestComputeStatistics_TimeAverages(t *testing.T) {
	c1 := closure(0, 100)
	c1.OpenedAt, c1.ClosedAt = ts(1, 8, 0), ts(1, 16, 0)

	c2 := closure(5, 200)
	c2.OpenedAt, c2.ClosedAt = ts(2, 9, 0), ts(2, 17, 30)

	// Missing opening timestamp: excluded from time statistics only.
	c3 := closure(-5, 300)
	c3.ClosedAt = ts(3, 10, 0)

	stats := cashstats.ComputeStatistics([]models.CashClosure{c1, c2, c3})

	assert.Equal(t, 3, stats.TotalClosures)
	assert.InDelta(t, 200, stats.AverageSales, 1e-9)
	assert.InDelta(t, 0, stats.AverageDifference, 1e-9)

	assert.Equal(t, "08:30", stats.AverageOpeningTime)
	assert.Equal(t, "16:45", stats.AverageClosingTime)
	assert.InDelta(t, 8.25, stats.AverageOperationTime, 1e-9)
	assert.Equal(t, 1, stats.InvalidTimeEntries)
}

func TestComputeStatistics_TimeAveragesAllInvalid(t *testing.T) {
	stats := cashstats.ComputeStatistics([]models.CashClosure{
		closure(0, 50),
		closure(2, 70),
	})

	assert.Equal(t, cashstats.TimeNotAvailable, stats.AverageOpeningTime)
	assert.Equal(t, cashstats.TimeNotAvailable, stats.AverageClosingTime)
	assert.Equal(t, float64(0), stats.AverageOperationTime)
	assert.Equal(t, 2, stats.InvalidTimeEntries)
}

func TestComputeStatistics_OperationHoursSanityBound(t *testing.T) {
	c1 := closure(0, 0)
	c1.OpenedAt, c1.ClosedAt = ts(1, 8, 0), ts(1, 16, 0) // 8h

	// 30 hour span: stays in the opening/closing averages but adds nothing
	// to the operation-hours sum.
	c2 := closure(0, 0)
	c2.OpenedAt, c2.ClosedAt = ts(1, 8, 0), ts(2, 14, 0)

	stats := cashstats.ComputeStatistics([]models.CashClosure{c1, c2})

	assert.Equal(t, "08:00", stats.AverageOpeningTime)
	assert.Equal(t, "15:00", stats.AverageClosingTime)
	assert.InDelta(t, 4.0, stats.AverageOperationTime, 1e-9)
	assert.Equal(t, 0, stats.InvalidTimeEntries)
}

func TestComputeStatistics_NegativeSpanExcluded(t *testing.T) {
	c := closure(0, 0)
	c.OpenedAt, c.ClosedAt = ts(1, 16, 0), ts(1, 8, 0)

	stats := cashstats.ComputeStatistics([]models.CashClosure{c})

	assert.Equal(t, "16:00", stats.AverageOpeningTime)
	assert.Equal(t, "08:00", stats.AverageClosingTime)
	assert.Equal(t, float64(0), stats.AverageOperationTime)
}

func TestComputeStatistics_DifferencesChartKeepsLastTenInOrder(t *testing.T) {
	var closures []models.CashClosure
	for i := 0; i < 12; i++ {
		closures = append(closures, closure(float64(i), 0))
	}

	stats := cashstats.ComputeStatistics(closures)

	require.Len(t, stats.DifferencesChart, 10)
	for i, point := range stats.DifferencesChart {
		source := closures[i+2]
		assert.Equal(t, "Cierre "+source.ID.String(), point.Name)
		assert.Equal(t, source.Difference, point.Value)
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, cashstats.StatusExact, cashstats.Classify(0))
	assert.Equal(t, cashstats.StatusSurplus, cashstats.Classify(0.01))
	assert.Equal(t, cashstats.StatusShortage, cashstats.Classify(-0.01))
}
