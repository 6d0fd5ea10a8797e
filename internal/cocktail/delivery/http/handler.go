package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/barkeep/cocktail-api/internal/cocktail/domain"
	"github.com/barkeep/cocktail-api/internal/cocktail/usecase/command"
	"github.com/barkeep/cocktail-api/internal/cocktail/usecase/query"
	"github.com/barkeep/cocktail-api/kafka"
	"github.com/barkeep/cocktail-api/pkg/logger"
	"github.com/barkeep/cocktail-api/pkg/validate"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// CocktailHandler handles HTTP requests for the cocktail catalog using the
// CQRS pattern.
type CocktailHandler struct {
	createHandler *command.CreateCocktailHandler
	deleteHandler *command.DeleteCocktailHandler

	getHandler    *query.GetCocktailHandler
	listHandler   *query.ListCocktailsHandler
	searchHandler *query.SearchCocktailsHandler

	repo      domain.CocktailRepository
	publisher *kafka.Publisher
}

var (
	metricsOnce    sync.Once
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	totalCocktails prometheus.Gauge
)

func registerMetrics() {
	metricsOnce.Do(func() {
		requestCounter = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cocktail_service_requests_total",
				Help: "Total number of requests to the cocktail service",
			},
			[]string{"method", "endpoint", "status"},
		)

		requestLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cocktail_service_request_duration_seconds",
				Help:    "Duration of cocktail service requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		)

		requestSummary = prometheus.NewSummaryVec(
			prometheus.SummaryOpts{
				Name: "cocktail_service_request_duration_summary",
				Help: "Summary of request durations with client-side quantiles",
				Objectives: map[float64]float64{
					0.5:  0.05,
					0.9:  0.01,
					0.95: 0.01,
					0.99: 0.001,
				},
				MaxAge: 10 * time.Minute,
			},
			[]string{"method", "endpoint"},
		)

		totalCocktails = prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "cocktail_service_total_cocktails",
				Help: "Total number of cocktails in the catalog",
			},
		)

		prometheus.MustRegister(requestCounter)
		prometheus.MustRegister(requestLatency)
		prometheus.MustRegister(requestSummary)
		prometheus.MustRegister(totalCocktails)
	})
}

// NewCocktailHandler creates a cocktail handler with manual DI.
func NewCocktailHandler(repo domain.CocktailRepository, publisher *kafka.Publisher) *CocktailHandler {
	return NewCocktailHandlerWithDI(
		command.NewCreateCocktailHandler(repo),
		command.NewDeleteCocktailHandler(repo),
		query.NewGetCocktailHandler(repo),
		query.NewListCocktailsHandler(repo),
		query.NewSearchCocktailsHandler(repo),
		repo,
		publisher,
	)
}

// NewCocktailHandlerWithDI creates a cocktail handler from pre-built
// command and query handlers. Used by Wire.
func NewCocktailHandlerWithDI(
	createHandler *command.CreateCocktailHandler,
	deleteHandler *command.DeleteCocktailHandler,
	getHandler *query.GetCocktailHandler,
	listHandler *query.ListCocktailsHandler,
	searchHandler *query.SearchCocktailsHandler,
	repo domain.CocktailRepository,
	publisher *kafka.Publisher,
) *CocktailHandler {
	registerMetrics()
	return &CocktailHandler{
		createHandler: createHandler,
		deleteHandler: deleteHandler,
		getHandler:    getHandler,
		listHandler:   listHandler,
		searchHandler: searchHandler,
		repo:          repo,
		publisher:     publisher,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics.
func (h *CocktailHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes mounts the cocktail routes. The search route must be
// registered before the {id} route so "search" never parses as an id.
func (h *CocktailHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/cocktails/search", h.metricsMiddleware("/api/cocktails/search", h.SearchCocktails)).Methods("GET")
	router.HandleFunc("/api/cocktails/add-cocktail", h.metricsMiddleware("/api/cocktails/add-cocktail", h.CreateCocktail)).Methods("POST")
	router.HandleFunc("/api/cocktails", h.metricsMiddleware("/api/cocktails", h.ListCocktails)).Methods("GET")
	router.HandleFunc("/api/cocktails/{id}", h.metricsMiddleware("/api/cocktails/{id}", h.GetCocktail)).Methods("GET")
	router.HandleFunc("/api/cocktails/{id}", h.metricsMiddleware("/api/cocktails/{id}", h.DeleteCocktail)).Methods("DELETE")
}

// RegisterHealthCheck mounts the /health endpoint backed by a DB ping.
func (h *CocktailHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "Database unavailable"})
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")
}

type listResponse struct {
	Items []domain.Cocktail `json:"items"`
	Total int64             `json:"total"`
	Skip  int               `json:"skip"`
	Take  int               `json:"take"`
}

// ListCocktails handles GET /api/cocktails?skip=0&take=20&with=basic|full
func (h *CocktailHandler) ListCocktails(w http.ResponseWriter, r *http.Request) {
	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	if skip < 0 {
		skip = 0
	}
	take, err := strconv.Atoi(r.URL.Query().Get("take"))
	if err != nil || take < 1 {
		take = defaultPageSize
	}
	if take > maxPageSize {
		take = maxPageSize
	}
	expand := domain.ExpandBasic
	if r.URL.Query().Get("with") == string(domain.ExpandFull) {
		expand = domain.ExpandFull
	}

	items, total, err := h.listHandler.Handle(r.Context(), query.ListCocktailsQuery{
		Skip:   skip,
		Take:   take,
		Expand: expand,
	})
	if err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to list cocktails")
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "There was an error while fetching cocktails"})
		return
	}
	if items == nil {
		items = []domain.Cocktail{}
	}

	respondJSON(w, http.StatusOK, listResponse{Items: items, Total: total, Skip: skip, Take: take})
}

type searchQueryReq struct {
	Q      string `json:"q" validate:"required,min=1"`
	Limit  int    `json:"limit" validate:"min=1"`
	Offset int    `json:"offset" validate:"min=0"`
}

// glassPreview keeps the snake_case image_url key of the glassware
// record, unlike the camelCase keys of the surrounding search item.
type glassPreview struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	ImageURL *string `json:"image_url"`
}

type ingredientPreview struct {
	ID     uint    `json:"id"`
	Name   string  `json:"name"`
	Amount *string `json:"amount"`
	Unit   *string `json:"unit"`
}

type searchItem struct {
	ID                 uint                `json:"id"`
	Name               string              `json:"name"`
	ImageURL           *string             `json:"imageUrl"`
	Description        *string             `json:"description"`
	IsAlcoholic        *bool               `json:"isAlcoholic"`
	Glass              *glassPreview       `json:"glass"`
	IngredientsPreview []ingredientPreview `json:"ingredientsPreview"`
}

type searchResponse struct {
	Q      string       `json:"q"`
	Total  int64        `json:"total"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
	Items  []searchItem `json:"items"`
}

// SearchCocktails handles GET /api/cocktails/search
func (h *CocktailHandler) SearchCocktails(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	req := searchQueryReq{Q: values.Get("q"), Limit: defaultPageSize}
	if raw := values.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondValidation(w, map[string][]string{"limit": {"must be an integer"}})
			return
		}
		req.Limit = n
	}
	if raw := values.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondValidation(w, map[string][]string{"offset": {"must be an integer"}})
			return
		}
		req.Offset = n
	}
	if err := validate.Struct(&req); err != nil {
		respondValidation(w, validate.Detail(err))
		return
	}
	if req.Limit > maxPageSize {
		req.Limit = maxPageSize
	}

	q := query.SearchCocktailsQuery{
		Query:  req.Q,
		Limit:  req.Limit,
		Offset: req.Offset,
	}

	if raw := values.Get("isAlcoholic"); raw != "" {
		if raw != "true" && raw != "false" {
			respondValidation(w, map[string][]string{"isAlcoholic": {"must be \"true\" or \"false\""}})
			return
		}
		b := raw == "true"
		q.IsAlcoholic = &b
	}
	for name, target := range map[string]**uint{
		"categoryId":  &q.CategoryID,
		"tagId":       &q.TagID,
		"glassTypeId": &q.GlassTypeID,
	} {
		raw := values.Get(name)
		if raw == "" {
			continue
		}
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondValidation(w, map[string][]string{name: {"must be an integer"}})
			return
		}
		id := uint(n)
		*target = &id
	}

	items, total, err := h.searchHandler.Handle(r.Context(), q)
	if err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Str("q", req.Q).Msg("Failed to search cocktails")
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "There was an error while searching for cocktails"})
		return
	}

	resp := searchResponse{
		Q:      req.Q,
		Total:  total,
		Limit:  req.Limit,
		Offset: req.Offset,
		Items:  make([]searchItem, 0, len(items)),
	}
	for i := range items {
		resp.Items = append(resp.Items, shapeSearchItem(&items[i]))
	}

	respondJSON(w, http.StatusOK, resp)
}

// shapeSearchItem builds the search preview: scalar summary, glass, and at
// most 6 ingredients with amounts rendered as decimal strings.
func shapeSearchItem(c *domain.Cocktail) searchItem {
	item := searchItem{
		ID:                 c.ID,
		Name:               c.Name,
		ImageURL:           c.ImageURL,
		Description:        c.Description,
		IsAlcoholic:        c.IsAlcoholic,
		IngredientsPreview: []ingredientPreview{},
	}
	if c.Glass != nil {
		item.Glass = &glassPreview{ID: c.Glass.ID, Name: c.Glass.Name, ImageURL: c.Glass.ImageURL}
	}

	ingredients := c.Ingredients
	if len(ingredients) > 6 {
		ingredients = ingredients[:6]
	}
	for _, ing := range ingredients {
		preview := ingredientPreview{ID: ing.ID, Name: ing.Name}
		if ing.Amount.Valid {
			s := ing.Amount.Decimal.String()
			preview.Amount = &s
		}
		if ing.Unit != nil {
			preview.Unit = &ing.Unit.Name
		}
		item.IngredientsPreview = append(item.IngredientsPreview, preview)
	}
	return item
}

// GetCocktail handles GET /api/cocktails/{id}
func (h *CocktailHandler) GetCocktail(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	cocktail, err := h.getHandler.Handle(r.Context(), query.GetCocktailQuery{ID: id})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, errorResponse{Error: "Cocktail not found"})
			return
		}
		logger.WithContext(r.Context()).Error().Err(err).Uint("id", id).Msg("Failed to fetch cocktail")
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "There was an error while fetching cocktail"})
		return
	}

	respondJSON(w, http.StatusOK, cocktail)
}

type ingredientReq struct {
	Name   string              `json:"name" validate:"required,min=1"`
	Amount decimal.NullDecimal `json:"amount"`
	UnitID *uint               `json:"unit_id"`
}

type instructionReq struct {
	StepNumber *int   `json:"step_number"`
	Text       string `json:"text" validate:"required,min=1"`
}

type cocktailCreateReq struct {
	Name               string   `json:"name" validate:"required,min=1"`
	ImageURL           *string  `json:"image_url" validate:"omitempty,url"`
	VideoURL           *string  `json:"video_url" validate:"omitempty,url"`
	Description        *string  `json:"description"`
	GlassTypeID        *uint    `json:"glass_type_id"`
	Method             *string  `json:"method"`
	Garnish            *string  `json:"garnish"`
	Difficulty         *string  `json:"difficulty"`
	PrepTime           *int     `json:"prep_time"`
	NutritionInfo      *string  `json:"nutrition_info"`
	IsAlcoholic        *bool    `json:"is_alcoholic"`
	Servings           *int     `json:"servings"`
	AlcoholPercentage  *float64 `json:"alcohol_percentage"`
	CaloriesPerServing *float64 `json:"calories_per_serving"`

	Ingredients  []ingredientReq  `json:"ingredients" validate:"dive"`
	Instructions []instructionReq `json:"instructions" validate:"dive"`

	AllergenIDs []uint `json:"allergen_ids"`
	CategoryIDs []uint `json:"category_ids"`
	TagIDs      []uint `json:"tag_ids"`
}

var cocktailCreateKeys = map[string]bool{
	"name": true, "image_url": true, "video_url": true, "description": true,
	"glass_type_id": true, "method": true, "garnish": true, "difficulty": true,
	"prep_time": true, "nutrition_info": true, "is_alcoholic": true,
	"servings": true, "alcohol_percentage": true, "calories_per_serving": true,
	"ingredients": true, "instructions": true,
	"allergen_ids": true, "category_ids": true, "tag_ids": true,
}

// decodeCocktailCreate rejects unrecognized top-level keys while staying
// lenient about extra keys inside nested objects.
func decodeCocktailCreate(r *http.Request, req *cocktailCreateReq) error {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return err
	}
	for key := range raw {
		if !cocktailCreateKeys[key] {
			return fmt.Errorf("unknown field %q", key)
		}
	}
	buf, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(buf, req)
}

// CreateCocktail handles POST /api/cocktails/add-cocktail
func (h *CocktailHandler) CreateCocktail(w http.ResponseWriter, r *http.Request) {
	var req cocktailCreateReq
	if err := decodeCocktailCreate(r, &req); err != nil {
		respondValidation(w, map[string][]string{"body": {err.Error()}})
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidation(w, validate.Detail(err))
		return
	}

	cmd := command.CreateCocktailCommand{
		Name:               req.Name,
		ImageURL:           req.ImageURL,
		VideoURL:           req.VideoURL,
		Description:        req.Description,
		GlassTypeID:        req.GlassTypeID,
		Method:             req.Method,
		Garnish:            req.Garnish,
		Difficulty:         req.Difficulty,
		PrepTime:           req.PrepTime,
		NutritionInfo:      req.NutritionInfo,
		IsAlcoholic:        req.IsAlcoholic,
		Servings:           req.Servings,
		AlcoholPercentage:  req.AlcoholPercentage,
		CaloriesPerServing: req.CaloriesPerServing,
		AllergenIDs:        req.AllergenIDs,
		CategoryIDs:        req.CategoryIDs,
		TagIDs:             req.TagIDs,
	}
	for _, ing := range req.Ingredients {
		cmd.Ingredients = append(cmd.Ingredients, command.IngredientInput{
			Name:   ing.Name,
			Amount: ing.Amount,
			UnitID: ing.UnitID,
		})
	}
	for _, ins := range req.Instructions {
		cmd.Instructions = append(cmd.Instructions, command.InstructionInput{
			StepNumber: ins.StepNumber,
			Text:       ins.Text,
		})
	}

	cocktail, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Str("name", req.Name).Msg("Failed to create cocktail")
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "There was an error while creating the cocktail"})
		return
	}

	if err := h.publisher.PublishCocktailCreated(r.Context(), kafka.CocktailCreatedEvent{
		CocktailID:  cocktail.ID,
		Name:        cocktail.Name,
		IsAlcoholic: cocktail.IsAlcoholic,
	}); err != nil {
		logger.WithContext(r.Context()).Warn().Err(err).Uint("id", cocktail.ID).Msg("Failed to publish cocktail.created event")
	}

	h.updateCocktailsMetric(r)

	respondJSON(w, http.StatusCreated, cocktail)
}

// DeleteCocktail handles DELETE /api/cocktails/{id}
func (h *CocktailHandler) DeleteCocktail(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteCocktailCommand{ID: id}); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, errorResponse{Error: "Cocktail not found"})
			return
		}
		logger.WithContext(r.Context()).Error().Err(err).Uint("id", id).Msg("Failed to delete cocktail")
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "There was an error while deleting cocktail"})
		return
	}

	if err := h.publisher.PublishCocktailDeleted(r.Context(), kafka.CocktailDeletedEvent{
		CocktailID: id,
	}); err != nil {
		logger.WithContext(r.Context()).Warn().Err(err).Uint("id", id).Msg("Failed to publish cocktail.deleted event")
	}

	h.updateCocktailsMetric(r)

	w.WriteHeader(http.StatusNoContent)
}

func (h *CocktailHandler) updateCocktailsMetric(r *http.Request) {
	count, err := h.repo.Count(r.Context())
	if err == nil {
		totalCocktails.Set(float64(count))
	}
}

type errorResponse struct {
	Error interface{} `json:"error"`
}

// parseIDParam parses an integer path parameter, responding 400 on failure.
func parseIDParam(w http.ResponseWriter, r *http.Request, name string) (uint, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

func respondValidation(w http.ResponseWriter, detail map[string][]string) {
	respondJSON(w, http.StatusBadRequest, errorResponse{Error: detail})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
