package weight

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/ZaneLittle/SwoleExperience-sub000/internal/telemetry/tracing"
	"github.com/ZaneLittle/SwoleExperience-sub000/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=weight_test

type weightStore interface {
	GetWeights(ctx context.Context, startDate *time.Time) []Measurement
	GetAverages(ctx context.Context, startDate *time.Time) []DailyAverage
	AddWeight(ctx context.Context, m Measurement) (*Measurement, error)
	UpdateWeight(ctx context.Context, m Measurement) error
	DeleteWeight(ctx context.Context, id string) error
	RecalculateAverages(ctx context.Context) ([]DailyAverage, error)
}

type chartStatisticsProvider interface {
	ChartStatistics(measurements []Measurement, averages []DailyAverage) ChartStatistics
}

type DeleteWeightResponse struct {
	DeletedID string `json:"deletedId"`
}

type UpdateWeightResponse struct {
	UpdatedID string `json:"updatedId"`
}

type Handler struct {
	store weightStore
	chart chartStatisticsProvider
	loc   *time.Location
}

func NewHandler(store weightStore, chart chartStatisticsProvider, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.Local
	}
	return &Handler{
		store: store,
		chart: chart,
		loc:   loc,
	}
}

// SetupRoutes registers the weight routes. The routes changing the log go on
// their own subrouter, wrapped by writeMiddlewares.
func (handler *Handler) SetupRoutes(router *mux.Router, writeMiddlewares ...mux.MiddlewareFunc) {
	router.HandleFunc("/weight", handler.HandleList).Methods("GET", "OPTIONS").Name("list-weights")
	router.HandleFunc("/weight/averages", handler.HandleAverages).Methods("GET", "OPTIONS").Name("list-averages")
	router.HandleFunc("/weight/chart", handler.HandleChart).Methods("GET", "OPTIONS").Name("weight-chart")

	writeRouter := router.NewRoute().Subrouter()
	writeRouter.Use(writeMiddlewares...)
	writeRouter.HandleFunc("/weight", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-weight")
	writeRouter.HandleFunc("/weight", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-weight")
	writeRouter.HandleFunc("/weight/averages/recalculate", handler.HandleRecalculate).Methods("POST", "OPTIONS").Name("recalculate-averages")
	writeRouter.HandleFunc("/weight/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-weight")
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weight.new")
	defer span.End()

	m, ok := handler.decodeMeasurement(w, r)
	if !ok {
		return
	}

	added, err := handler.store.AddWeight(ctx, m)
	if err != nil {
		log.Errorf("failed to add new weight [%f]: %s", m.Value, err)
		http.Error(w, "error, failed to add new weight", http.StatusInternalServerError)
		return
	}

	addedJson, err := json.Marshal(added.ToData())
	if err != nil {
		log.Errorf("failed to marshal new weight: %s", err)
		http.Error(w, "error, failed to add new weight", http.StatusInternalServerError)
		return
	}

	log.Debugf("new weight added: %s", addedJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weight.update")
	defer span.End()

	m, ok := handler.decodeMeasurement(w, r)
	if !ok {
		return
	}
	if m.ID == "" {
		http.Error(w, "error, weight id empty", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("weight.id", m.ID))

	if err := handler.store.UpdateWeight(ctx, m); err != nil {
		if errors.Is(err, ErrMeasurementNotFound) {
			http.Error(w, "weight not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update weight %s: %s", m.ID, err)
		http.Error(w, "weight not updated", http.StatusInternalServerError)
		return
	}

	updateRespJson, err := json.Marshal(UpdateWeightResponse{UpdatedID: m.ID})
	if err != nil {
		log.Errorf("failed to marshal update response: %s", err)
		http.Error(w, "failed to marshal update response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(updateRespJson))
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weight.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("weight.id", id))

	if err := handler.store.DeleteWeight(ctx, id); err != nil {
		if errors.Is(err, ErrMeasurementNotFound) {
			log.Debugf("weight %s not found", id)
			http.Error(w, "weight not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete weight %s: %s", id, err)
		http.Error(w, "weight not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteWeightResponse{DeletedID: id})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weight.list")
	defer span.End()

	startDate, ok := handler.startDate(w, r)
	if !ok {
		return
	}

	measurements := handler.store.GetWeights(ctx, startDate)
	records := make([]MeasurementRecord, 0, len(measurements))
	for _, m := range measurements {
		records = append(records, m.ToData())
	}

	handler.writeJSON(w, records, "weights")
}

func (handler *Handler) HandleAverages(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weight.averages")
	defer span.End()

	startDate, ok := handler.startDate(w, r)
	if !ok {
		return
	}

	handler.writeJSON(w, averageRecords(handler.store.GetAverages(ctx, startDate)), "averages")
}

func (handler *Handler) HandleRecalculate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weight.recalculate")
	defer span.End()

	averages, err := handler.store.RecalculateAverages(ctx)
	if err != nil {
		log.Errorf("failed to recalculate averages: %s", err)
		http.Error(w, "failed to recalculate averages", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, averageRecords(averages), "averages")
}

func (handler *Handler) HandleChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weight.chart")
	defer span.End()

	startDate, ok := handler.startDate(w, r)
	if !ok {
		return
	}

	measurements := handler.store.GetWeights(ctx, startDate)
	averages := handler.store.GetAverages(ctx, startDate)
	span.SetAttributes(
		attribute.Int("weights", len(measurements)),
		attribute.Int("averages", len(averages)),
	)

	handler.writeJSON(w, handler.chart.ChartStatistics(measurements, averages), "chart statistics")
}

func (handler *Handler) decodeMeasurement(w http.ResponseWriter, r *http.Request) (Measurement, bool) {
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return Measurement{}, false
	}

	var record MeasurementRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Tracef("weight, unmarshal json params: %s", err)
		http.Error(w, "invalid weight", http.StatusBadRequest)
		return Measurement{}, false
	}

	if record.Weight <= 0 {
		http.Error(w, "error, weight must be positive", http.StatusBadRequest)
		return Measurement{}, false
	}

	m := MeasurementFromData(record, handler.loc)
	if record.DateTime == "" {
		// the store stamps it with the current time
		m.Timestamp = time.Time{}
	}
	return m, true
}

// startDate parses the optional ?start=YYYY-MM-DD query param.
func (handler *Handler) startDate(w http.ResponseWriter, r *http.Request) (*time.Time, bool) {
	startStr := r.URL.Query().Get("start")
	if startStr == "" {
		return nil, true
	}

	start, err := time.ParseInLocation(dayKeyLayout, startStr, handler.loc)
	if err != nil {
		http.Error(w, "invalid start format (expected YYYY-MM-DD)", http.StatusBadRequest)
		return nil, false
	}
	return &start, true
}

func (handler *Handler) writeJSON(w http.ResponseWriter, v any, what string) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("failed to marshal %s: %s", what, err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(respJson))
}

func averageRecords(averages []DailyAverage) []AverageRecord {
	records := make([]AverageRecord, 0, len(averages))
	for _, a := range averages {
		records = append(records, a.ToData())
	}
	return records
}
