package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/barkeep/cocktail-api/docs"
	"github.com/barkeep/cocktail-api/internal/cocktail"
	cocktailDelivery "github.com/barkeep/cocktail-api/internal/cocktail/delivery/http"
	cocktailDomain "github.com/barkeep/cocktail-api/internal/cocktail/domain"
	"github.com/barkeep/cocktail-api/internal/config"
	"github.com/barkeep/cocktail-api/internal/favorite"
	favoriteDomain "github.com/barkeep/cocktail-api/internal/favorite/domain"
	"github.com/barkeep/cocktail-api/internal/pantry"
	pantryDomain "github.com/barkeep/cocktail-api/internal/pantry/domain"
	"github.com/barkeep/cocktail-api/kafka"
	"github.com/barkeep/cocktail-api/pkg/auth"
	"github.com/barkeep/cocktail-api/pkg/database"
	"github.com/barkeep/cocktail-api/pkg/logger"
	"github.com/barkeep/cocktail-api/pkg/tracing"
)

const serviceName = "cocktail-api"

const landingPage = `<!DOCTYPE html>
<html>
<head><title>Cocktail Catalog API</title></head>
<body>
<h1>Cocktail Catalog API</h1>
<p>Interactive documentation lives at <a href="/api-docs/">/api-docs</a>.</p>
</body>
</html>
`

func main() {
	cfg, err := config.New()
	if err != nil {
		logger.Init(serviceName, true)
		logger.Logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(serviceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Msg("Starting cocktail service")

	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to initialize tracer, continuing without tracing")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Warn().Err(err).Msg("Failed to shut down tracer")
			}
		}()
	}

	db, err := database.NewGormConnection(cfg.Database())
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// A separate plain connection backs the health check so the probe stays
	// independent of the ORM pool.
	pingDB, err := database.NewPostgresConnection(cfg.Database())
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pingDB.Close()

	// Run migrations. Lookup tables are seeded externally; routes only
	// connect to them.
	if err := db.AutoMigrate(
		&cocktailDomain.GlassType{},
		&cocktailDomain.Unit{},
		&cocktailDomain.Allergen{},
		&cocktailDomain.Category{},
		&cocktailDomain.Tag{},
		&cocktailDomain.Cocktail{},
		&cocktailDomain.Ingredient{},
		&cocktailDomain.Instruction{},
		&cocktailDomain.Comment{},
		&favoriteDomain.Favorite{},
		&pantryDomain.PantryItem{},
	); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	var publisher *kafka.Publisher
	if cfg.KafkaBrokers != "" {
		brokers := strings.Split(cfg.KafkaBrokers, ",")
		publisher, err = kafka.NewPublisher(brokers)
		if err != nil {
			logger.Logger.Fatal().Err(err).Strs("brokers", brokers).Msg("Failed to connect to Kafka")
		}
		defer publisher.Close()
		logger.Logger.Info().Strs("brokers", brokers).Msg("Kafka publisher initialized")
	} else {
		logger.Logger.Info().Msg("KAFKA_BROKERS not set, event publishing disabled")
	}

	cocktailHandler, err := cocktail.InitializeHTTPHandler(db, publisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize cocktail handler")
	}
	favoriteHandler, err := favorite.InitializeHTTPHandler(db, publisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize favorite handler")
	}
	pantryHandler, err := pantry.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize pantry handler")
	}

	router := mux.NewRouter()

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(landingPage))
	}).Methods("GET")

	cocktailHandler.RegisterRoutes(router)
	cocktailHandler.RegisterHealthCheck(router, pingDB)

	if cfg.AuthEnabled {
		protected := router.NewRoute().Subrouter()
		protected.Use(auth.Middleware(cfg.AuthSecret))
		favoriteHandler.RegisterRoutes(protected)
		pantryHandler.RegisterRoutes(protected)
		logger.Logger.Info().Msg("Bearer-token gate mounted on favorites and pantry routes")
	} else {
		favoriteHandler.RegisterRoutes(router)
		pantryHandler.RegisterRoutes(router)
	}

	router.Handle("/metrics", promhttp.Handler())

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}
	router.Path("/api-docs").Handler(http.RedirectHandler("/api-docs/", http.StatusMovedPermanently))
	cocktailDelivery.RegisterSwaggerDocs(router, httpSwagger.Handler(
		httpSwagger.URL("/api-docs/doc.json"),
	))

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:    cfg.Host + ":" + cfg.Port,
		Handler: otelhttp.NewHandler(c.Handler(router), "http.server"),
	}

	go func() {
		logger.Logger.Info().
			Str("addr", server.Addr).
			Str("metrics_endpoint", "/metrics").
			Str("docs_endpoint", "/api-docs/").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server shutdown failed")
	}
}
