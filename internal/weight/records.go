package weight

import (
	"time"
)

// MeasurementRecord is the stored shape of a Measurement.
type MeasurementRecord struct {
	ID       string  `json:"id"`
	DateTime string  `json:"dateTime"`
	Weight   float64 `json:"weight"`
}

// AverageRecord is the stored shape of a DailyAverage.
type AverageRecord struct {
	DateTime        string   `json:"dateTime"`
	Average         float64  `json:"average"`
	ThreeDayAverage *float64 `json:"threeDayAverage"`
	SevenDayAverage *float64 `json:"sevenDayAverage"`
}

var epoch = time.Unix(0, 0)

// formatDateTime keeps nanoseconds, so stored timestamps round-trip exactly.
func formatDateTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// parseDateTime never fails: empty or unparseable values become the Unix epoch.
func parseDateTime(s string, loc *time.Location) time.Time {
	if s == "" {
		return epoch.In(loc)
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		// plain dates are also accepted, interpreted as local midnight
		t, err = time.ParseInLocation(dayKeyLayout, s, loc)
		if err != nil {
			return epoch.In(loc)
		}
	}
	return t.In(loc)
}

func (m Measurement) ToData() MeasurementRecord {
	return MeasurementRecord{
		ID:       m.ID,
		DateTime: formatDateTime(m.Timestamp),
		Weight:   m.Value,
	}
}

func MeasurementFromData(r MeasurementRecord, loc *time.Location) Measurement {
	return Measurement{
		ID:        r.ID,
		Timestamp: parseDateTime(r.DateTime, loc),
		Value:     r.Weight,
	}
}

func (a DailyAverage) ToData() AverageRecord {
	return AverageRecord{
		DateTime:        formatDateTime(a.Date),
		Average:         a.Average,
		ThreeDayAverage: copyFloat64Ptr(a.ThreeDayAverage),
		SevenDayAverage: copyFloat64Ptr(a.SevenDayAverage),
	}
}

func AverageFromData(r AverageRecord, loc *time.Location) DailyAverage {
	return DailyAverage{
		Date:            parseDateTime(r.DateTime, loc),
		Average:         r.Average,
		ThreeDayAverage: copyFloat64Ptr(r.ThreeDayAverage),
		SevenDayAverage: copyFloat64Ptr(r.SevenDayAverage),
	}
}

func copyFloat64Ptr(f *float64) *float64 {
	if f == nil {
		return nil
	}
	return float64Ptr(*f)
}
