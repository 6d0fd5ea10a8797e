package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/barkeep/cocktail-api/internal/pantry/domain"
	"github.com/barkeep/cocktail-api/internal/pantry/usecase/command"
	"github.com/barkeep/cocktail-api/internal/pantry/usecase/query"
	"github.com/barkeep/cocktail-api/pkg/logger"
	"github.com/barkeep/cocktail-api/pkg/validate"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// PantryHandler handles HTTP requests for pantry tracking using the CQRS
// pattern.
type PantryHandler struct {
	addHandler *command.AddPantryItemHandler

	listHandler   *query.ListPantryHandler
	searchHandler *query.SearchPantryHandler
}

var (
	metricsOnce    sync.Once
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
)

func registerMetrics() {
	metricsOnce.Do(func() {
		requestCounter = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pantry_service_requests_total",
				Help: "Total number of requests to the pantry service",
			},
			[]string{"method", "endpoint", "status"},
		)

		requestLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pantry_service_request_duration_seconds",
				Help:    "Duration of pantry service requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		)

		prometheus.MustRegister(requestCounter)
		prometheus.MustRegister(requestLatency)
	})
}

// NewPantryHandler creates a pantry handler with manual DI.
func NewPantryHandler(repo domain.PantryRepository) *PantryHandler {
	return NewPantryHandlerWithDI(
		command.NewAddPantryItemHandler(repo),
		query.NewListPantryHandler(repo),
		query.NewSearchPantryHandler(repo),
	)
}

// NewPantryHandlerWithDI creates a pantry handler from pre-built command and
// query handlers. Used by Wire.
func NewPantryHandlerWithDI(
	addHandler *command.AddPantryItemHandler,
	listHandler *query.ListPantryHandler,
	searchHandler *query.SearchPantryHandler,
) *PantryHandler {
	registerMetrics()
	return &PantryHandler{
		addHandler:    addHandler,
		listHandler:   listHandler,
		searchHandler: searchHandler,
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (h *PantryHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		requestLatency.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

// RegisterRoutes mounts the pantry routes. The search route must be
// registered before any parameterized sibling.
func (h *PantryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/pantry/search", h.metricsMiddleware("/api/pantry/search", h.SearchPantry)).Methods("GET")
	router.HandleFunc("/api/pantry", h.metricsMiddleware("/api/pantry", h.ListPantry)).Methods("GET")
	router.HandleFunc("/api/pantry", h.metricsMiddleware("/api/pantry", h.AddPantryItem)).Methods("POST")
}

type unitPreview struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type pantryItem struct {
	ID             uint         `json:"id"`
	IngredientName string       `json:"ingredientName"`
	Amount         *string      `json:"amount"`
	Unit           *unitPreview `json:"unit"`
	ExpiresAt      *time.Time   `json:"expiresAt"`
	CreatedAt      time.Time    `json:"createdAt"`
}

// shapePantryItem renders the wire shape: camelCase keys and the amount as a
// decimal string, never a float.
func shapePantryItem(item *domain.PantryItem) pantryItem {
	shaped := pantryItem{
		ID:             item.ID,
		IngredientName: item.IngredientName,
		ExpiresAt:      item.ExpiresAt,
		CreatedAt:      item.CreatedAt,
	}
	if item.Amount.Valid {
		s := item.Amount.Decimal.String()
		shaped.Amount = &s
	}
	if item.Unit != nil {
		shaped.Unit = &unitPreview{ID: item.Unit.ID, Name: item.Unit.Name}
	}
	return shaped
}

type listResponse struct {
	Total  int64        `json:"total"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
	Items  []pantryItem `json:"items"`
}

// parsePagination reads limit/offset with defaults, rejecting non-integers
// and out-of-range values, clamping limit to the page-size cap.
func parsePagination(values url.Values) (limit, offset int, detail map[string][]string) {
	limit, offset = defaultPageSize, 0
	if raw := values.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return 0, 0, map[string][]string{"limit": {"must be a positive integer"}}
		}
		limit = n
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if raw := values.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return 0, 0, map[string][]string{"offset": {"must be a non-negative integer"}}
		}
		offset = n
	}
	return limit, offset, nil
}

// ListPantry handles GET /api/pantry?userId=...&limit=20&offset=0
func (h *PantryHandler) ListPantry(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	userID := values.Get("userId")
	if _, err := uuid.Parse(userID); err != nil {
		respondValidation(w, map[string][]string{"userId": {"must be a valid UUID"}})
		return
	}
	limit, offset, detail := parsePagination(values)
	if detail != nil {
		respondValidation(w, detail)
		return
	}

	items, total, err := h.listHandler.Handle(r.Context(), query.ListPantryQuery{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Str("user_id", userID).Msg("Failed to list pantry")
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to list pantry"})
		return
	}

	respondJSON(w, http.StatusOK, listResponse{
		Total:  total,
		Limit:  limit,
		Offset: offset,
		Items:  shapeItems(items),
	})
}

type addPantryReq struct {
	UserID         string              `json:"userId" validate:"required,uuid"`
	IngredientName string              `json:"ingredientName" validate:"required,min=1"`
	Amount         decimal.NullDecimal `json:"amount"`
	UnitID         *uint               `json:"unitId"`
	ExpiresAt      *string             `json:"expiresAt"`
}

// AddPantryItem handles POST /api/pantry
func (h *PantryHandler) AddPantryItem(w http.ResponseWriter, r *http.Request) {
	var req addPantryReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidation(w, map[string][]string{"body": {err.Error()}})
		return
	}
	if req.UserID == "" {
		req.UserID = r.Header.Get("x-user-id")
	}
	if err := validate.Struct(&req); err != nil {
		respondValidation(w, validate.Detail(err))
		return
	}
	if req.Amount.Valid && req.Amount.Decimal.Sign() <= 0 {
		respondValidation(w, map[string][]string{"amount": {"must be greater than 0"}})
		return
	}
	expiresAt, ok := parseExpiry(req.ExpiresAt)
	if !ok {
		respondValidation(w, map[string][]string{"expiresAt": {"must be a valid date"}})
		return
	}

	item, err := h.addHandler.Handle(r.Context(), command.AddPantryItemCommand{
		UserID:         req.UserID,
		IngredientName: req.IngredientName,
		Amount:         req.Amount,
		UnitID:         req.UnitID,
		ExpiresAt:      expiresAt,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUnitNotFound) {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "unitId not found"})
			return
		}
		logger.WithContext(r.Context()).Error().Err(err).Str("user_id", req.UserID).Str("ingredient", req.IngredientName).
			Msg("Failed to add pantry item")
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to add pantry item"})
		return
	}

	respondJSON(w, http.StatusCreated, shapePantryItem(item))
}

type searchResponse struct {
	Q      string       `json:"q"`
	Total  int64        `json:"total"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
	Items  []pantryItem `json:"items"`
}

// SearchPantry handles GET /api/pantry/search?userId=...&q=...&limit=20&offset=0
func (h *PantryHandler) SearchPantry(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	userID := values.Get("userId")
	if userID == "" {
		userID = r.Header.Get("x-user-id")
	}
	if _, err := uuid.Parse(userID); err != nil {
		respondValidation(w, map[string][]string{"userId": {"must be a valid UUID"}})
		return
	}
	q := values.Get("q")
	if q == "" {
		respondValidation(w, map[string][]string{"q": {"is required"}})
		return
	}
	limit, offset, detail := parsePagination(values)
	if detail != nil {
		respondValidation(w, detail)
		return
	}

	items, total, err := h.searchHandler.Handle(r.Context(), query.SearchPantryQuery{
		UserID: userID,
		Query:  q,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Str("user_id", userID).Str("q", q).Msg("Failed to search pantry")
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to search pantry"})
		return
	}

	respondJSON(w, http.StatusOK, searchResponse{
		Q:      q,
		Total:  total,
		Limit:  limit,
		Offset: offset,
		Items:  shapeItems(items),
	})
}

func shapeItems(items []domain.PantryItem) []pantryItem {
	shaped := make([]pantryItem, 0, len(items))
	for i := range items {
		shaped = append(shaped, shapePantryItem(&items[i]))
	}
	return shaped
}

// parseExpiry accepts an RFC 3339 timestamp or a bare date.
func parseExpiry(raw *string) (*time.Time, bool) {
	if raw == nil || *raw == "" {
		return nil, true
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, *raw); err == nil {
			return &t, true
		}
	}
	return nil, false
}

type errorResponse struct {
	Error interface{} `json:"error"`
}

func respondValidation(w http.ResponseWriter, detail map[string][]string) {
	respondJSON(w, http.StatusBadRequest, errorResponse{Error: detail})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
