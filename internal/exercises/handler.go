package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/2beens/gymcoach/internal/middleware"
	"github.com/2beens/gymcoach/internal/telemetry/metrics"
	"github.com/2beens/gymcoach/internal/telemetry/tracing"
	"github.com/2beens/gymcoach/pkg"
	"github.com/2beens/gymcoach/pkg/recommend"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const defaultAlternativesLimit = 3

var recommendLimits = recommend.DefaultConfig()

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	Get(ctx context.Context, id string) (recommend.Exercise, error)
	Add(ctx context.Context, ex recommend.Exercise) error
	Update(ctx context.Context, ex recommend.Exercise) error
	Delete(ctx context.Context, id string) error
}

type recommender interface {
	Recommend(ctx context.Context, params recommend.RecommendParams) recommend.Result[[]recommend.Recommendation]
	Search(ctx context.Context, params recommend.SearchParams) recommend.Result[[]recommend.SearchResult]
	Facets(ctx context.Context) recommend.Result[recommend.FacetValues]
}

type facetsInvalidator interface {
	Invalidate(ctx context.Context) error
}

type AlternativesRequest struct {
	Limit                  *int     `json:"limit"`
	ScheduledExerciseIDs   []string `json:"scheduledExerciseIds"`
	ScheduledExerciseNames []string `json:"scheduledExerciseNames"`
}

type Handler struct {
	repo           exercisesRepo
	engine         recommender
	facets         facetsInvalidator
	metricsManager *metrics.Manager
}

func NewHandler(
	repo exercisesRepo,
	engine recommender,
	facets facetsInvalidator,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:           repo,
		engine:         engine,
		facets:         facets,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	searchRateLimitPerMin int,
	adminTokenHash string,
) {
	exercisesRouter := mainRouter.PathPrefix("/exercises").Subrouter()

	// registered before /{id} so "search" and "facets" are never taken for an exercise id
	publicRouter := exercisesRouter.NewRoute().Subrouter()
	publicRouter.HandleFunc("/search", handler.HandleSearch).Methods("GET", "OPTIONS").Name("exercises-search")
	publicRouter.HandleFunc("/facets", handler.HandleFacets).Methods("GET", "OPTIONS").Name("exercises-facets")
	publicRouter.HandleFunc("/{id}/alternatives", handler.HandleAlternatives).Methods("POST", "OPTIONS").Name("exercises-alternatives")
	publicRouter.HandleFunc("/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("exercises-get")
	publicRouter.Use(middleware.RateLimit(rateLimiter, "exercises", searchRateLimitPerMin, handler.metricsManager))

	adminRouter := exercisesRouter.NewRoute().Subrouter()
	adminRouter.HandleFunc("", handler.HandleAdd).Methods("POST", "OPTIONS").Name("exercises-add")
	adminRouter.HandleFunc("", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("exercises-update")
	adminRouter.HandleFunc("/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("exercises-delete")
	adminRouter.Use(middleware.AdminAuth(adminTokenHash))
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("exercise.id", id))

	ex, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("get exercise [%s]: %s", id, err)
		http.Error(w, "get exercise failed", http.StatusInternalServerError)
		return
	}

	exJson, err := json.Marshal(ex)
	if err != nil {
		log.Errorf("marshal exercise [%s]: %s", id, err)
		http.Error(w, "get exercise failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exJson, http.StatusOK)
}

func (handler *Handler) HandleAlternatives(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.alternatives")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		writeResult(w, recommend.Fail[[]recommend.Recommendation](recommend.ErrInvalidReference), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("exercise.id", id))

	var req AlternativesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Debugf("alternatives [%s], unmarshal json params: %s", id, err)
		writeResult(w, recommend.Fail[[]recommend.Recommendation](fmt.Errorf("invalid request body: %w", err)), http.StatusBadRequest)
		return
	}
	limit := defaultAlternativesLimit
	if req.Limit != nil {
		limit = *req.Limit
	}
	span.SetAttributes(attribute.Int("params.limit", limit))

	if err := recommendLimits.ValidateLimit(limit); err != nil {
		handler.countRecommendation("invalid")
		writeResult(w, recommend.Fail[[]recommend.Recommendation](err), http.StatusBadRequest)
		return
	}

	reference, err := handler.repo.Get(ctx, id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrExerciseNotFound) {
			status = http.StatusNotFound
		} else {
			log.Errorf("alternatives, get reference exercise [%s]: %s", id, err)
		}
		handler.countRecommendation("error")
		writeResult(w, recommend.Fail[[]recommend.Recommendation](err), status)
		return
	}

	res := handler.engine.Recommend(ctx, recommend.RecommendParams{
		Reference:              reference,
		Limit:                  limit,
		ScheduledExerciseIDs:   req.ScheduledExerciseIDs,
		ScheduledExerciseNames: req.ScheduledExerciseNames,
	})
	if !res.Success {
		if recommend.IsValidationError(res.Err()) {
			handler.countRecommendation("invalid")
			writeResult(w, res, http.StatusBadRequest)
			return
		}
		log.Errorf("alternatives [%s]: %s", id, res.Error)
		handler.countRecommendation("error")
		writeResult(w, res, http.StatusInternalServerError)
		return
	}

	handler.countRecommendation("ok")
	if handler.metricsManager != nil {
		handler.metricsManager.HistogramRecommendedCount.Observe(float64(len(res.Data)))
	}
	log.Tracef("alternatives [%s]: %d recommendations", id, len(res.Data))
	writeResult(w, res, http.StatusOK)
}

func (handler *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.search")
	defer span.End()

	query := r.URL.Query()
	params := recommend.SearchParams{
		Query: query.Get("q"),
		Filters: recommend.SearchFilters{
			TargetArea: query.Get("target_area"),
			Equipment:  query.Get("equipment"),
			Difficulty: query.Get("difficulty"),
		},
	}

	var err error
	if params.Limit, err = intQueryParam(query.Get("limit")); err != nil {
		handler.countSearch("invalid")
		writeResult(w, recommend.Fail[[]recommend.SearchResult](fmt.Errorf("invalid limit: %w", err)), http.StatusBadRequest)
		return
	}
	if params.Offset, err = intQueryParam(query.Get("offset")); err != nil {
		handler.countSearch("invalid")
		writeResult(w, recommend.Fail[[]recommend.SearchResult](fmt.Errorf("invalid offset: %w", err)), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("params.query", params.Query))

	res := handler.engine.Search(ctx, params)
	if !res.Success {
		if recommend.IsValidationError(res.Err()) {
			handler.countSearch("invalid")
			writeResult(w, res, http.StatusBadRequest)
			return
		}
		log.Errorf("search exercises [%s]: %s", params.Query, res.Error)
		handler.countSearch("error")
		writeResult(w, res, http.StatusInternalServerError)
		return
	}

	handler.countSearch("ok")
	writeResult(w, res, http.StatusOK)
}

func (handler *Handler) HandleFacets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.facets")
	defer span.End()

	res := handler.engine.Facets(ctx)
	if !res.Success {
		log.Errorf("list facets: %s", res.Error)
		writeResult(w, res, http.StatusInternalServerError)
		return
	}
	writeResult(w, res, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.add")
	defer span.End()

	ex, ok := decodeExercise(w, r)
	if !ok {
		return
	}

	if err := handler.repo.Add(ctx, ex); err != nil {
		if pkg.IsUniqueViolationError(err) {
			http.Error(w, "exercise already exists", http.StatusConflict)
			return
		}
		log.Errorf("add exercise [%s]: %s", ex.ID, err)
		http.Error(w, "add exercise failed", http.StatusInternalServerError)
		return
	}
	handler.invalidateFacets(ctx)

	exJson, err := json.Marshal(ex)
	if err != nil {
		log.Errorf("marshal added exercise [%s]: %s", ex.ID, err)
		w.WriteHeader(http.StatusCreated)
		return
	}

	log.Debugf("new exercise added: %s", ex.ID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exJson, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.update")
	defer span.End()

	ex, ok := decodeExercise(w, r)
	if !ok {
		return
	}

	if err := handler.repo.Update(ctx, ex); err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("update exercise [%s]: %s", ex.ID, err)
		http.Error(w, "update exercise failed", http.StatusInternalServerError)
		return
	}
	handler.invalidateFacets(ctx)

	log.Debugf("exercise updated: %s", ex.ID)
	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete exercise [%s]: %s", id, err)
		http.Error(w, "delete exercise failed", http.StatusInternalServerError)
		return
	}
	handler.invalidateFacets(ctx)

	log.Debugf("exercise deleted: %s", id)
	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) invalidateFacets(ctx context.Context) {
	if err := handler.facets.Invalidate(ctx); err != nil {
		log.Errorf("invalidate facets cache: %s", err)
	}
}

func (handler *Handler) countRecommendation(outcome string) {
	if handler.metricsManager != nil {
		handler.metricsManager.CounterRecommendations.WithLabelValues(outcome).Inc()
	}
}

func (handler *Handler) countSearch(outcome string) {
	if handler.metricsManager != nil {
		handler.metricsManager.CounterSearches.WithLabelValues(outcome).Inc()
	}
}

func decodeExercise(w http.ResponseWriter, r *http.Request) (recommend.Exercise, bool) {
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return recommend.Exercise{}, false
	}

	var ex recommend.Exercise
	if err := json.NewDecoder(r.Body).Decode(&ex); err != nil {
		log.Debugf("unmarshal exercise json: %s", err)
		http.Error(w, "invalid exercise json", http.StatusBadRequest)
		return recommend.Exercise{}, false
	}

	if err := ValidateExercise(&ex); err != nil {
		http.Error(w, fmt.Sprintf("error, %s", err), http.StatusBadRequest)
		return recommend.Exercise{}, false
	}

	return ex, true
}

// ValidateExercise trims the exercise fields in place and checks the ones a catalog record needs.
func ValidateExercise(ex *recommend.Exercise) error {
	ex.ID = strings.TrimSpace(ex.ID)
	ex.Name = strings.TrimSpace(ex.Name)
	ex.Equipment = strings.TrimSpace(ex.Equipment)
	ex.TargetArea = strings.TrimSpace(ex.TargetArea)
	ex.Difficulty = strings.TrimSpace(ex.Difficulty)

	if ex.ID == "" || ex.Name == "" {
		return errors.New("exercise id and name are required")
	}
	if len(ex.MainMuscles) == 0 || strings.TrimSpace(ex.MainMuscles[0]) == "" {
		return errors.New("at least one main muscle is required")
	}
	if ex.PopularityScore < 0 {
		return errors.New("popularity score must not be negative")
	}

	return nil
}

func intQueryParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func writeResult[T any](w http.ResponseWriter, res recommend.Result[T], status int) {
	resJson, err := json.Marshal(res)
	if err != nil {
		log.Errorf("marshal result: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resJson, status)
}
