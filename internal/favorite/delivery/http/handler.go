package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	cocktail "github.com/barkeep/cocktail-api/internal/cocktail/domain"
	"github.com/barkeep/cocktail-api/internal/favorite/domain"
	"github.com/barkeep/cocktail-api/internal/favorite/usecase/command"
	"github.com/barkeep/cocktail-api/internal/favorite/usecase/query"
	"github.com/barkeep/cocktail-api/kafka"
	"github.com/barkeep/cocktail-api/pkg/logger"
	"github.com/barkeep/cocktail-api/pkg/validate"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// FavoriteHandler handles HTTP requests for user favorites using the CQRS
// pattern.
type FavoriteHandler struct {
	addHandler    *command.AddFavoriteHandler
	removeHandler *command.RemoveFavoriteHandler
	toggleHandler *command.ToggleFavoriteHandler

	listHandler  *query.ListFavoritesHandler
	countHandler *query.CountFavoritesHandler

	publisher *kafka.Publisher
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
				Name: "favorite_service_requests_total",
				Help: "Total number of requests to the favorite service",
			},
			[]string{"method", "endpoint", "status"},
		)

		requestLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "favorite_service_request_duration_seconds",
				Help:    "Duration of favorite service requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		)

		prometheus.MustRegister(requestCounter)
		prometheus.MustRegister(requestLatency)
	})
}

// NewFavoriteHandler creates a favorite handler with manual DI.
func NewFavoriteHandler(repo domain.FavoriteRepository, publisher *kafka.Publisher) *FavoriteHandler {
	return NewFavoriteHandlerWithDI(
		command.NewAddFavoriteHandler(repo),
		command.NewRemoveFavoriteHandler(repo),
		command.NewToggleFavoriteHandler(repo),
		query.NewListFavoritesHandler(repo),
		query.NewCountFavoritesHandler(repo),
		publisher,
	)
}

// NewFavoriteHandlerWithDI creates a favorite handler from pre-built
// command and query handlers. Used by Wire.
func NewFavoriteHandlerWithDI(
	addHandler *command.AddFavoriteHandler,
	removeHandler *command.RemoveFavoriteHandler,
	toggleHandler *command.ToggleFavoriteHandler,
	listHandler *query.ListFavoritesHandler,
	countHandler *query.CountFavoritesHandler,
	publisher *kafka.Publisher,
) *FavoriteHandler {
	registerMetrics()
	return &FavoriteHandler{
		addHandler:    addHandler,
		removeHandler: removeHandler,
		toggleHandler: toggleHandler,
		listHandler:   listHandler,
		countHandler:  countHandler,
		publisher:     publisher,
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

func (h *FavoriteHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		requestLatency.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

// RegisterRoutes mounts the favorite routes on the given router. The router
// may already carry auth middleware; the handlers do not care.
func (h *FavoriteHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/favorites/toggle", h.metricsMiddleware("/api/favorites/toggle", h.ToggleFavorite)).Methods("POST")
	router.HandleFunc("/api/favorites/count/{cocktailId}", h.metricsMiddleware("/api/favorites/count/{cocktailId}", h.CountFavorites)).Methods("GET")
	router.HandleFunc("/api/favorites", h.metricsMiddleware("/api/favorites", h.AddFavorite)).Methods("POST")
	router.HandleFunc("/api/favorites", h.metricsMiddleware("/api/favorites", h.RemoveFavorite)).Methods("DELETE")
	router.HandleFunc("/api/favorites", h.metricsMiddleware("/api/favorites", h.ListFavorites)).Methods("GET")
}

type favoriteReq struct {
	UserID     string `json:"user_id" validate:"omitempty,uuid"`
	CocktailID uint   `json:"cocktail_id" validate:"required,min=1"`
}

// resolveUserID picks the user id from the parsed value, falling back to the
// x-user-id header, and checks it is a UUID.
func resolveUserID(r *http.Request, fromRequest string) (string, bool) {
	userID := fromRequest
	if userID == "" {
		userID = r.Header.Get("x-user-id")
	}
	if _, err := uuid.Parse(userID); err != nil {
		return "", false
	}
	return userID, true
}

// AddFavorite handles POST /api/favorites
func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeFavoriteReq(w, r)
	if !ok {
		return
	}

	favorite, err := h.addHandler.Handle(r.Context(), command.AddFavoriteCommand{
		UserID:     req.UserID,
		CocktailID: req.CocktailID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			respondJSON(w, http.StatusConflict, errorResponse{Error: "Already favorited"})
		case errors.Is(err, domain.ErrCocktailNotFound):
			respondJSON(w, http.StatusNotFound, errorResponse{Error: "Cocktail not found"})
		default:
			logger.WithContext(r.Context()).Error().Err(err).Str("user_id", req.UserID).Uint("cocktail_id", req.CocktailID).
				Msg("Failed to add favorite")
			respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "There was an error while adding favorite"})
		}
		return
	}

	h.publishChange(r, req.UserID, req.CocktailID, command.StatusAdded)

	respondJSON(w, http.StatusCreated, favorite)
}

// RemoveFavorite handles DELETE /api/favorites
func (h *FavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeFavoriteReq(w, r)
	if !ok {
		return
	}

	err := h.removeHandler.Handle(r.Context(), command.RemoveFavoriteCommand{
		UserID:     req.UserID,
		CocktailID: req.CocktailID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, errorResponse{Error: "Favorite not found"})
			return
		}
		logger.WithContext(r.Context()).Error().Err(err).Str("user_id", req.UserID).Uint("cocktail_id", req.CocktailID).
			Msg("Failed to remove favorite")
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "There was an error while removing favorite"})
		return
	}

	h.publishChange(r, req.UserID, req.CocktailID, command.StatusRemoved)

	w.WriteHeader(http.StatusNoContent)
}

// ToggleFavorite handles POST /api/favorites/toggle
func (h *FavoriteHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeFavoriteReq(w, r)
	if !ok {
		return
	}

	status, err := h.toggleHandler.Handle(r.Context(), command.ToggleFavoriteCommand{
		UserID:     req.UserID,
		CocktailID: req.CocktailID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			respondJSON(w, http.StatusConflict, errorResponse{Error: "Already favorited"})
		case errors.Is(err, domain.ErrCocktailNotFound):
			respondJSON(w, http.StatusNotFound, errorResponse{Error: "Cocktail not found"})
		default:
			logger.WithContext(r.Context()).Error().Err(err).Str("user_id", req.UserID).Uint("cocktail_id", req.CocktailID).
				Msg("Failed to toggle favorite")
			respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "There was an error while toggling favorite"})
		}
		return
	}

	h.publishChange(r, req.UserID, req.CocktailID, status)

	respondJSON(w, http.StatusOK, map[string]string{"status": status})
}

type listResponse struct {
	Items []domain.Favorite `json:"items"`
	Total int64             `json:"total"`
	Skip  int               `json:"skip"`
	Take  int               `json:"take"`
}

// ListFavorites handles GET /api/favorites?user_id=...&skip=0&take=20&with=basic|full
func (h *FavoriteHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	userID, ok := resolveUserID(r, values.Get("user_id"))
	if !ok {
		respondValidation(w, map[string][]string{"user_id": {"must be a valid UUID"}})
		return
	}

	skip := 0
	if raw := values.Get("skip"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondValidation(w, map[string][]string{"skip": {"must be a non-negative integer"}})
			return
		}
		skip = n
	}
	take := defaultPageSize
	if raw := values.Get("take"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondValidation(w, map[string][]string{"take": {"must be a positive integer"}})
			return
		}
		take = n
	}
	if take > maxPageSize {
		take = maxPageSize
	}

	expand := cocktail.ExpandBasic
	switch values.Get("with") {
	case "", string(cocktail.ExpandBasic):
	case string(cocktail.ExpandFull):
		expand = cocktail.ExpandFull
	default:
		respondValidation(w, map[string][]string{"with": {"must be one of \"basic\" or \"full\""}})
		return
	}

	items, total, err := h.listHandler.Handle(r.Context(), query.ListFavoritesQuery{
		UserID: userID,
		Skip:   skip,
		Take:   take,
		Expand: expand,
	})
	if err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Str("user_id", userID).Msg("Failed to list favorites")
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "There was an error while fetching favorites"})
		return
	}
	if items == nil {
		items = []domain.Favorite{}
	}

	respondJSON(w, http.StatusOK, listResponse{Items: items, Total: total, Skip: skip, Take: take})
}

type countResponse struct {
	CocktailID uint  `json:"cocktail_id"`
	Count      int64 `json:"count"`
}

// CountFavorites handles GET /api/favorites/count/{cocktailId}
func (h *FavoriteHandler) CountFavorites(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["cocktailId"]
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid id"})
		return
	}

	count, err := h.countHandler.Handle(r.Context(), query.CountFavoritesQuery{CocktailID: uint(id)})
	if err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Uint64("cocktail_id", id).Msg("Failed to count favorites")
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "There was an error while counting favorites"})
		return
	}

	respondJSON(w, http.StatusOK, countResponse{CocktailID: uint(id), Count: count})
}

// decodeFavoriteReq parses and validates the shared add/remove/toggle body,
// resolving the user id with the header fallback.
func (h *FavoriteHandler) decodeFavoriteReq(w http.ResponseWriter, r *http.Request) (favoriteReq, bool) {
	var req favoriteReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidation(w, map[string][]string{"body": {err.Error()}})
		return req, false
	}
	if err := validate.Struct(&req); err != nil {
		respondValidation(w, validate.Detail(err))
		return req, false
	}
	userID, ok := resolveUserID(r, req.UserID)
	if !ok {
		respondValidation(w, map[string][]string{"user_id": {"must be a valid UUID"}})
		return req, false
	}
	req.UserID = userID
	return req, true
}

func (h *FavoriteHandler) publishChange(r *http.Request, userID string, cocktailID uint, status string) {
	err := h.publisher.PublishFavoriteChanged(r.Context(), kafka.FavoriteChangedEvent{
		UserID:     userID,
		CocktailID: cocktailID,
		Status:     status,
	})
	if err != nil {
		logger.WithContext(r.Context()).Warn().Err(err).Str("user_id", userID).Uint("cocktail_id", cocktailID).
			Msg("Failed to publish favorite.changed event")
	}
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
