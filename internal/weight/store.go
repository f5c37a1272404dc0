package weight

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/ZaneLittle/SwoleExperience-sub000/internal/storage"
	"github.com/ZaneLittle/SwoleExperience-sub000/internal/telemetry/metrics"
	"github.com/ZaneLittle/SwoleExperience-sub000/internal/telemetry/tracing"
)

// Store is the weight log and its derived averages, kept in a KeyValueStorage.
// Every mutation of the log rewrites the whole log and recalculates all averages.
// Concurrent mutations are not serialized: the last write wins.
type Store struct {
	kv         KeyValueStorage
	loc        *time.Location
	calculator *Calculator
	// ability to inject the clock and id generator (for unit testing)
	NowFunc   func() time.Time
	NewIDFunc func() string
}

func NewStore(kv KeyValueStorage, loc *time.Location, metricsManager *metrics.Manager) *Store {
	if loc == nil {
		loc = time.Local
	}
	return &Store{
		kv:         kv,
		loc:        loc,
		calculator: NewCalculator(kv, loc, metricsManager),
		NowFunc:    time.Now,
		NewIDFunc:  uuid.NewString,
	}
}

func (s *Store) Location() *time.Location {
	return s.loc
}

// GetWeights returns the measurements from the 60 days before startDate
// (now, when nil) onwards, newest first. Read failures yield an empty list.
func (s *Store) GetWeights(ctx context.Context, startDate *time.Time) []Measurement {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.weight.getWeights")
	defer span.End()

	measurements, err := readWeights(ctx, s.kv, s.loc)
	if err != nil {
		logReadErr("get weights", err)
		return []Measurement{}
	}

	cutoff := s.cutoff(startDate)
	filtered := make([]Measurement, 0, len(measurements))
	for _, m := range measurements {
		if !m.Timestamp.Before(cutoff) {
			filtered = append(filtered, m)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Timestamp.After(filtered[j].Timestamp)
	})

	span.SetAttributes(attribute.Int("weights", len(filtered)))
	return filtered
}

// GetAverages returns the stored daily averages from the 60 days before
// startDate (now, when nil) onwards, newest first. Read failures yield an empty list.
func (s *Store) GetAverages(ctx context.Context, startDate *time.Time) []DailyAverage {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.weight.getAverages")
	defer span.End()

	averages, err := readAverages(ctx, s.kv, s.loc)
	if err != nil {
		logReadErr("get averages", err)
		return []DailyAverage{}
	}

	cutoff := s.cutoff(startDate)
	filtered := make([]DailyAverage, 0, len(averages))
	for _, a := range averages {
		if !a.Date.Before(cutoff) {
			filtered = append(filtered, a)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})

	span.SetAttributes(attribute.Int("averages", len(filtered)))
	return filtered
}

func (s *Store) cutoff(startDate *time.Time) time.Time {
	start := s.NowFunc()
	if startDate != nil {
		start = *startDate
	}
	return start.AddDate(0, 0, -RetentionDays)
}

// AddWeight appends a measurement to the log and recalculates the averages.
func (s *Store) AddWeight(ctx context.Context, m Measurement) (_ *Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.weight.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if m.ID == "" {
		m.ID = s.NewIDFunc()
	}
	if m.Timestamp.IsZero() {
		m.Timestamp = s.NowFunc()
	}
	span.SetAttributes(attribute.String("weight.id", m.ID))

	measurements, err := s.allWeights(ctx)
	if err != nil {
		return nil, err
	}
	measurements = append(measurements, m)

	if err = s.saveAndRecalculate(ctx, measurements); err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateWeight replaces the measurement with the same ID and recalculates the averages.
func (s *Store) UpdateWeight(ctx context.Context, m Measurement) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.weight.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("weight.id", m.ID))

	measurements, err := s.allWeights(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range measurements {
		if measurements[i].ID == m.ID {
			measurements[i] = m
			found = true
			break
		}
	}
	if !found {
		return ErrMeasurementNotFound
	}

	return s.saveAndRecalculate(ctx, measurements)
}

// DeleteWeight removes the measurement with the given ID and recalculates the averages.
func (s *Store) DeleteWeight(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.weight.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("weight.id", id))

	measurements, err := s.allWeights(ctx)
	if err != nil {
		return err
	}

	kept := make([]Measurement, 0, len(measurements))
	for _, m := range measurements {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(measurements) {
		return ErrMeasurementNotFound
	}

	return s.saveAndRecalculate(ctx, kept)
}

// RecalculateAverages recomputes the averages from the full stored log.
func (s *Store) RecalculateAverages(ctx context.Context) ([]DailyAverage, error) {
	measurements, err := s.allWeights(ctx)
	if err != nil {
		return nil, err
	}
	return s.calculator.CalculateAverages(ctx, measurements), nil
}

// allWeights reads the whole, unfiltered log. A missing key is an empty log.
func (s *Store) allWeights(ctx context.Context) ([]Measurement, error) {
	measurements, err := readWeights(ctx, s.kv, s.loc)
	if errors.Is(err, storage.ErrNotFound) {
		return []Measurement{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read weights: %w", err)
	}
	return measurements, nil
}

func (s *Store) saveAndRecalculate(ctx context.Context, measurements []Measurement) error {
	if err := writeWeights(ctx, s.kv, measurements); err != nil {
		return fmt.Errorf("write weights: %w", err)
	}
	s.calculator.CalculateAverages(ctx, measurements)
	return nil
}

func logReadErr(op string, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		log.Debugf("%s: %s", op, err)
		return
	}
	log.Errorf("%s: %s", op, err)
}
