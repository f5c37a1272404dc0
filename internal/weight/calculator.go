package weight

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/ZaneLittle/SwoleExperience-sub000/internal/telemetry/metrics"
	"github.com/ZaneLittle/SwoleExperience-sub000/internal/telemetry/tracing"
)

const (
	ShortWindowDays = 3
	LongWindowDays  = 7
)

type Calculator struct {
	kv             KeyValueStorage
	loc            *time.Location
	metricsManager *metrics.Manager
}

func NewCalculator(kv KeyValueStorage, loc *time.Location, metricsManager *metrics.Manager) *Calculator {
	if loc == nil {
		loc = time.Local
	}
	return &Calculator{
		kv:             kv,
		loc:            loc,
		metricsManager: metricsManager,
	}
}

// CalculateAverages computes the daily and rolling averages for the whole
// measurement history and replaces the stored averages with them.
// It is all-or-nothing: on any failure it logs, stores nothing and
// returns an empty list.
func (c *Calculator) CalculateAverages(ctx context.Context, measurements []Measurement) []DailyAverage {
	ctx, span := tracing.GlobalTracer.Start(ctx, "calculator.weight.calculateAverages")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("measurements", len(measurements)))

	start := time.Now()
	averages, err := ComputeDailyAverages(measurements, c.loc)
	if err != nil {
		log.Errorf("calculate averages: %s", err)
		c.observe("failed", start)
		return []DailyAverage{}
	}

	if err = writeAverages(ctx, c.kv, averages); err != nil {
		log.Errorf("calculate averages, persist: %s", err)
		c.observe("failed", start)
		return []DailyAverage{}
	}

	span.SetAttributes(attribute.Int("days", len(averages)))
	c.observe("ok", start)
	return averages
}

func (c *Calculator) observe(result string, start time.Time) {
	if c.metricsManager == nil {
		return
	}
	c.metricsManager.CounterAverageCalculations.WithLabelValues(result).Inc()
	c.metricsManager.HistCalculationDuration.Observe(time.Since(start).Seconds())
}

// ComputeDailyAverages groups measurements by calendar day in loc and
// returns one DailyAverage per day with data, oldest first.
// A single NaN/Inf value or zero timestamp fails the whole computation.
func ComputeDailyAverages(measurements []Measurement, loc *time.Location) ([]DailyAverage, error) {
	if loc == nil {
		loc = time.Local
	}

	day2values := make(map[string][]float64)
	for _, m := range measurements {
		if !m.valid() {
			return nil, fmt.Errorf("%w: id [%s], value [%f], timestamp [%s]", ErrInvalidMeasurement, m.ID, m.Value, m.Timestamp)
		}
		key := dayKey(m.Timestamp, loc)
		day2values[key] = append(day2values[key], m.Value)
	}

	dailyMeans := make(map[string]float64, len(day2values))
	for key, values := range day2values {
		mean, err := stats.Mean(values)
		if err != nil {
			return nil, fmt.Errorf("mean of day %s: %w", key, err)
		}
		dailyMeans[key] = mean
	}

	keys := make([]string, 0, len(dailyMeans))
	for key := range dailyMeans {
		keys = append(keys, key)
	}
	// YYYY-MM-DD keys sort chronologically
	sort.Strings(keys)

	averages := make([]DailyAverage, 0, len(keys))
	for _, key := range keys {
		day, err := time.ParseInLocation(dayKeyLayout, key, loc)
		if err != nil {
			return nil, fmt.Errorf("parse day key %s: %w", key, err)
		}
		averages = append(averages, DailyAverage{
			Date:            day,
			Average:         dailyMeans[key],
			ThreeDayAverage: rollingAverage(day, ShortWindowDays, dailyMeans, loc),
			SevenDayAverage: rollingAverage(day, LongWindowDays, dailyMeans, loc),
		})
	}

	return averages, nil
}

// rollingAverage is the mean of the daily means found in the windowDays
// calendar days ending on day. Days without data are skipped, and nil is
// returned when fewer than MinDaysRequired days have data.
func rollingAverage(day time.Time, windowDays int, dailyMeans map[string]float64, loc *time.Location) *float64 {
	values := make([]float64, 0, windowDays)
	for i := 0; i < windowDays; i++ {
		key := time.Date(day.Year(), day.Month(), day.Day()-i, 0, 0, 0, 0, loc).Format(dayKeyLayout)
		if mean, ok := dailyMeans[key]; ok {
			values = append(values, mean)
		}
	}

	if len(values) < MinDaysRequired(windowDays) {
		return nil
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return nil
	}
	return float64Ptr(mean)
}

// MinDaysRequired returns how many days of a window must have data
// for its rolling average to be reported.
func MinDaysRequired(windowDays int) int {
	if windowDays == ShortWindowDays {
		return 2
	}
	return max(3, int(math.Floor(float64(windowDays)*0.6)))
}
