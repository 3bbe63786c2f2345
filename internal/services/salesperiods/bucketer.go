package salesperiods

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Bucket labels as shown on the dashboard. The hour ranges in the labels do
// not match the classification boundaries below; the mismatch ships as-is
// because production reports depend on the current rankings.
const (
	PeriodMorning   = "Mañana (8-12)"
	PeriodAfternoon = "Tarde (12-18)"
	PeriodEvening   = "Noche (18-22)"
)

// SaleRecord is a sale as received from the API, before any validation.
// Total may be a decimal string, an integer string, or garbage; CreatedAt
// is expected to parse to a date-time but may not.
type SaleRecord struct {
	Total     string `json:"total"`
	CreatedAt string `json:"created_at"`
}

// PeriodTotal is the accumulated amount for one bucket.
type PeriodTotal struct {
	Period string  `json:"period"`
	Amount float64 `json:"amount"`
}

// Summary wraps the ranked buckets with data-quality counters so callers
// can surface a warning without changing the aggregate numbers.
type Summary struct {
	Periods        []PeriodTotal `json:"periods"`
	TotalAmount    float64       `json:"total_amount"`
	SkippedRecords int           `json:"skipped_records"`
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// classify maps an hour/minute pair to a bucket. The rules are evaluated in
// exactly this order, first match wins. Do not reorder or simplify: the
// boundaries are knowingly inconsistent with the labels (12:00 lands in
// Noche, 12:01 in Mañana) and dashboards depend on the current behavior.
func classify(hour, minute int) (string, bool) {
	switch {
	case (hour == 22 && minute >= 1) || hour >= 23 || hour <= 11 || (hour == 12 && minute == 0):
		return PeriodEvening, true
	case (hour == 12 && minute >= 1) || (hour >= 1 && hour <= 6):
		return PeriodMorning, true
	case hour >= 7 && hour <= 11:
		return PeriodMorning, true
	case (hour >= 12 && hour <= 17) || (hour == 18 && minute == 0):
		return PeriodAfternoon, true
	case hour >= 18 && hour <= 22 && !(hour == 22 && minute >= 1):
		return PeriodEvening, true
	}
	return "", false
}

// BucketAndRank assigns each sale to a time-of-day bucket and returns the
// three bucket totals sorted descending by amount. Ties keep the fixed
// Mañana/Tarde/Noche declaration order. Sales whose timestamp does not
// parse contribute to no bucket; malformed totals contribute zero.
func BucketAndRank(sales []SaleRecord) []PeriodTotal {
	totals := map[string]float64{}
	for _, s := range sales {
		ts, ok := parseTimestamp(s.CreatedAt)
		if !ok {
			continue
		}
		period, ok := classify(ts.Hour(), ts.Minute())
		if !ok {
			continue
		}
		totals[period] += ParseAmount(s.Total)
	}

	ranked := []PeriodTotal{
		{Period: PeriodMorning, Amount: totals[PeriodMorning]},
		{Period: PeriodAfternoon, Amount: totals[PeriodAfternoon]},
		{Period: PeriodEvening, Amount: totals[PeriodEvening]},
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Amount > ranked[j].Amount
	})
	return ranked
}

// Summarize runs BucketAndRank and additionally reports the overall amount
// across all sales (bucketed or not) and how many records were skipped for
// an unparseable timestamp.
func Summarize(sales []SaleRecord) Summary {
	sum := Summary{Periods: BucketAndRank(sales)}
	for _, s := range sales {
		sum.TotalAmount += ParseAmount(s.Total)
		if _, ok := parseTimestamp(s.CreatedAt); !ok {
			sum.SkippedRecords++
		}
	}
	return sum
}

// ParseAmount parses a monetary amount, degrading malformed input to zero
// so one bad record cannot poison an aggregate.
func ParseAmount(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) {
		return 0
	}
	return v
}

func parseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
