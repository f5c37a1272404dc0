package weight

import (
	"math"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
)

const (
	dateStrLayout = "Jan 2"
	// yDomainPadding is added below and above the data, in source units (e.g. kilos)
	yDomainPadding = 2
)

var emptyYDomain = YDomain{Min: 0, Max: 100}

// ComputeChartStatistics derives the chart data from the raw measurements
// and the stored daily averages (newest first, as returned by Store.GetAverages).
// It is a pure function: inputs are not modified and equal inputs
// always give equal outputs.
func ComputeChartStatistics(measurements []Measurement, averages []DailyAverage, loc *time.Location) ChartStatistics {
	if loc == nil {
		loc = time.Local
	}

	if len(measurements) == 0 {
		return ChartStatistics{
			DailyStats:    []DailyStat{},
			AverageSeries: []DailyAverage{},
			YDomain:       emptyYDomain,
			Trend:         TrendStats{},
		}
	}

	dailyStats := computeDailyStats(measurements, loc)
	averageSeries := sortedAscending(averages)

	return ChartStatistics{
		DailyStats:    dailyStats,
		AverageSeries: averageSeries,
		YDomain:       computeYDomain(dailyStats, averageSeries),
		Trend:         computeTrend(averages),
	}
}

// computeDailyStats returns the min/max/avg band of every day that has
// measurements, oldest first. Days without data are not emitted.
func computeDailyStats(measurements []Measurement, loc *time.Location) []DailyStat {
	day2values := make(map[string][]float64)
	for _, m := range measurements {
		key := dayKey(m.Timestamp, loc)
		day2values[key] = append(day2values[key], m.Value)
	}

	keys := make([]string, 0, len(day2values))
	for key := range day2values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	dailyStats := make([]DailyStat, 0, len(keys))
	for _, key := range keys {
		day, err := time.ParseInLocation(dayKeyLayout, key, loc)
		if err != nil {
			continue
		}
		values := day2values[key]
		// errors are only returned for empty input, and every bucket has at least one value
		minVal, _ := stats.Min(values)
		maxVal, _ := stats.Max(values)
		avgVal, _ := stats.Mean(values)
		dailyStats = append(dailyStats, DailyStat{
			Date:    day,
			DateStr: day.Format(dateStrLayout),
			Min:     minVal,
			Max:     maxVal,
			Avg:     avgVal,
		})
	}

	return dailyStats
}

// sortedAscending returns a copy of averages, oldest first.
func sortedAscending(averages []DailyAverage) []DailyAverage {
	sorted := make([]DailyAverage, len(averages))
	for i, a := range averages {
		sorted[i] = DailyAverage{
			Date:            a.Date,
			Average:         a.Average,
			ThreeDayAverage: copyFloat64Ptr(a.ThreeDayAverage),
			SevenDayAverage: copyFloat64Ptr(a.SevenDayAverage),
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

func computeYDomain(dailyStats []DailyStat, averages []DailyAverage) YDomain {
	values := make([]float64, 0, 3*len(dailyStats)+3*len(averages))
	add := func(v float64) {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			values = append(values, v)
		}
	}
	for _, s := range dailyStats {
		add(s.Min)
		add(s.Max)
		add(s.Avg)
	}
	for _, a := range averages {
		add(a.Average)
		if a.ThreeDayAverage != nil {
			add(*a.ThreeDayAverage)
		}
		if a.SevenDayAverage != nil {
			add(*a.SevenDayAverage)
		}
	}

	if len(values) == 0 {
		return emptyYDomain
	}

	minVal, _ := stats.Min(values)
	maxVal, _ := stats.Max(values)
	return YDomain{
		Min: math.Floor(minVal) - yDomainPadding,
		Max: math.Ceil(maxVal) + yDomainPadding,
	}
}

// computeTrend works on averages in their stored order, newest first.
func computeTrend(averages []DailyAverage) TrendStats {
	if len(averages) == 0 {
		return TrendStats{}
	}

	threeDay := func(a DailyAverage) *float64 { return a.ThreeDayAverage }
	sevenDay := func(a DailyAverage) *float64 { return a.SevenDayAverage }

	trend := TrendStats{
		CurrentValue:      averages[0].Average,
		ShortWindowChange: windowChange(averages, threeDay, ShortWindowDays),
		LongWindowChange:  windowChange(averages, sevenDay, LongWindowDays),
	}

	if i := firstWith(averages, sevenDay, 0); i >= 0 {
		trend.CurrentValue = *averages[i].SevenDayAverage
	} else if i := firstWith(averages, threeDay, 0); i >= 0 {
		trend.CurrentValue = *averages[i].ThreeDayAverage
	}

	return trend
}

// windowChange is the difference between the most recent rolling value of
// a series and the one before it. It is 0 unless there are at least
// minRecords averages and two records carrying that rolling value.
func windowChange(averages []DailyAverage, value func(DailyAverage) *float64, minRecords int) float64 {
	if len(averages) < minRecords {
		return 0
	}
	latest := firstWith(averages, value, 0)
	if latest < 0 {
		return 0
	}
	previous := firstWith(averages, value, latest+1)
	if previous < 0 {
		return 0
	}
	return *value(averages[latest]) - *value(averages[previous])
}

func firstWith(averages []DailyAverage, value func(DailyAverage) *float64, from int) int {
	for i := from; i < len(averages); i++ {
		if value(averages[i]) != nil {
			return i
		}
	}
	return -1
}
