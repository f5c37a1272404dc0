package weight

import (
	"errors"
	"math"
	"time"
)

var (
	ErrInvalidMeasurement  = errors.New("invalid measurement")
	ErrMeasurementNotFound = errors.New("measurement not found")
)

// Measurement is a single weight reading, as logged by the user.
type Measurement struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

func (m Measurement) valid() bool {
	if m.Timestamp.IsZero() {
		return false
	}
	return !math.IsNaN(m.Value) && !math.IsInf(m.Value, 0)
}

// DailyAverage holds the mean of one calendar day and the trailing
// rolling averages ending on that day. Nil rolling averages mean
// there was not enough history in the window.
type DailyAverage struct {
	Date            time.Time `json:"date"`
	Average         float64   `json:"average"`
	ThreeDayAverage *float64  `json:"threeDayAverage"`
	SevenDayAverage *float64  `json:"sevenDayAverage"`
}

// DailyStat is the min/max/mean band of a single day, used for charting.
type DailyStat struct {
	Date    time.Time `json:"date"`
	DateStr string    `json:"dateStr"`
	Min     float64   `json:"min"`
	Max     float64   `json:"max"`
	Avg     float64   `json:"avg"`
}

type TrendStats struct {
	CurrentValue      float64 `json:"currentValue"`
	ShortWindowChange float64 `json:"shortWindowChange"`
	LongWindowChange  float64 `json:"longWindowChange"`
}

type YDomain struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ChartStatistics is everything the weight chart needs, derived from
// raw measurements and the persisted daily averages.
type ChartStatistics struct {
	DailyStats    []DailyStat    `json:"dailyStats"`
	AverageSeries []DailyAverage `json:"averageSeries"`
	YDomain       YDomain        `json:"yDomain"`
	Trend         TrendStats     `json:"trend"`
}

// dayStart returns the midnight of the calendar day of t, in loc.
func dayStart(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// dayKey formats t as an unambiguous YYYY-MM-DD key in loc, so repeated
// lookups of the same day never drift across time zones.
func dayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dayKeyLayout)
}

const dayKeyLayout = "2006-01-02"

func float64Ptr(f float64) *float64 {
	return &f
}
