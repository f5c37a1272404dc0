package weight

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const (
	WeightsKey  = "weights"
	AveragesKey = "weightAverages"

	// RetentionDays is how far back reads go from their start date.
	RetentionDays = 60
)

//go:generate mockgen -source=$GOFILE -destination=storage_mocks_test.go -package=weight_test

// KeyValueStorage is the device-like string store the weight log and
// the averages live in. Get returns storage.ErrNotFound for missing keys.
// Writes are full overwrites, last write wins.
type KeyValueStorage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

func writeAverages(ctx context.Context, kv KeyValueStorage, averages []DailyAverage) error {
	records := make([]AverageRecord, 0, len(averages))
	for _, a := range averages {
		records = append(records, a.ToData())
	}
	return writeJSON(ctx, kv, AveragesKey, records)
}

func writeWeights(ctx context.Context, kv KeyValueStorage, measurements []Measurement) error {
	records := make([]MeasurementRecord, 0, len(measurements))
	for _, m := range measurements {
		records = append(records, m.ToData())
	}
	return writeJSON(ctx, kv, WeightsKey, records)
}

func writeJSON(ctx context.Context, kv KeyValueStorage, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func readAverages(ctx context.Context, kv KeyValueStorage, loc *time.Location) ([]DailyAverage, error) {
	var records []AverageRecord
	if err := readJSON(ctx, kv, AveragesKey, &records); err != nil {
		return nil, err
	}
	averages := make([]DailyAverage, 0, len(records))
	for _, r := range records {
		averages = append(averages, AverageFromData(r, loc))
	}
	return averages, nil
}

func readWeights(ctx context.Context, kv KeyValueStorage, loc *time.Location) ([]Measurement, error) {
	var records []MeasurementRecord
	if err := readJSON(ctx, kv, WeightsKey, &records); err != nil {
		return nil, err
	}
	measurements := make([]Measurement, 0, len(records))
	for _, r := range records {
		measurements = append(measurements, MeasurementFromData(r, loc))
	}
	return measurements, nil
}

func readJSON(ctx context.Context, kv KeyValueStorage, key string, dest any) error {
	data, err := kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return nil
}
