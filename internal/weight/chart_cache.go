package weight

import (
	"encoding/binary"
	"encoding/json"
	"math"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/ZaneLittle/SwoleExperience-sub000/internal/telemetry/metrics"
)

const megabyte = 1024 * 1024

// ChartCache memoizes ComputeChartStatistics by the values of its inputs:
// equal measurements and averages hit the same entry, whatever slices hold them.
type ChartCache struct {
	cache          *freecache.Cache
	loc            *time.Location
	ttlSeconds     int
	metricsManager *metrics.Manager
}

func NewChartCache(cacheSizeMegabytes int, ttl time.Duration, loc *time.Location, metricsManager *metrics.Manager) *ChartCache {
	if loc == nil {
		loc = time.Local
	}
	return &ChartCache{
		cache:          freecache.NewCache(cacheSizeMegabytes * megabyte),
		loc:            loc,
		ttlSeconds:     int(ttl.Seconds()),
		metricsManager: metricsManager,
	}
}

func (c *ChartCache) ChartStatistics(measurements []Measurement, averages []DailyAverage) ChartStatistics {
	key := c.fingerprint(measurements, averages)

	if cached, err := c.cache.Get(key); err == nil {
		var chartStats ChartStatistics
		if err := json.Unmarshal(cached, &chartStats); err == nil {
			c.count("hit")
			return c.inLocation(chartStats)
		} else {
			log.Errorf("unmarshal cached chart statistics: %s", err)
		}
	}

	c.count("miss")
	chartStats := ComputeChartStatistics(measurements, averages, c.loc)

	// non-finite values cannot be encoded, such results are just not cached
	if encoded, err := json.Marshal(chartStats); err == nil {
		if err := c.cache.Set(key, encoded, c.ttlSeconds); err != nil {
			log.Warnf("cache chart statistics: %s", err)
		}
	} else {
		log.Debugf("chart statistics not cached: %s", err)
	}

	return chartStats
}

func (c *ChartCache) count(result string) {
	if c.metricsManager != nil {
		c.metricsManager.CounterChartCache.WithLabelValues(result).Inc()
	}
}

// fingerprint hashes every input value that affects the result.
func (c *ChartCache) fingerprint(measurements []Measurement, averages []DailyAverage) []byte {
	d := xxhash.New()
	buf := make([]byte, 8)
	writeUint := func(u uint64) {
		binary.LittleEndian.PutUint64(buf, u)
		_, _ = d.Write(buf)
	}
	writeFloatPtr := func(f *float64) {
		if f == nil {
			writeUint(0)
			return
		}
		writeUint(1)
		writeUint(math.Float64bits(*f))
	}

	_, _ = d.WriteString(c.loc.String())
	writeUint(uint64(len(measurements)))
	for _, m := range measurements {
		writeUint(uint64(len(m.ID)))
		_, _ = d.WriteString(m.ID)
		writeUint(uint64(m.Timestamp.UnixNano()))
		writeUint(math.Float64bits(m.Value))
	}
	writeUint(uint64(len(averages)))
	for _, a := range averages {
		writeUint(uint64(a.Date.UnixNano()))
		writeUint(math.Float64bits(a.Average))
		writeFloatPtr(a.ThreeDayAverage)
		writeFloatPtr(a.SevenDayAverage)
	}

	key := make([]byte, 8)
	binary.LittleEndian.PutUint64(key, d.Sum64())
	return key
}

// inLocation restores the cache location on decoded dates.
func (c *ChartCache) inLocation(chartStats ChartStatistics) ChartStatistics {
	for i := range chartStats.DailyStats {
		chartStats.DailyStats[i].Date = chartStats.DailyStats[i].Date.In(c.loc)
	}
	for i := range chartStats.AverageSeries {
		chartStats.AverageSeries[i].Date = chartStats.AverageSeries[i].Date.In(c.loc)
	}
	return chartStats
}
