package main

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	healthHandler "github.com/schwarztim/CSC425/internal/api/handlers/health"
	"github.com/schwarztim/CSC425/internal/api/middleware"
	"github.com/schwarztim/CSC425/internal/config"
	"github.com/schwarztim/CSC425/internal/integrations/bookingservice"
	"github.com/schwarztim/CSC425/internal/web/assets"
	createBookingHandler "github.com/schwarztim/CSC425/internal/web/handlers/create_booking"
	getAvailableSlotsHandler "github.com/schwarztim/CSC425/internal/web/handlers/get_available_slots"
	getTimesHandler "github.com/schwarztim/CSC425/internal/web/handlers/get_times"
	indexHandler "github.com/schwarztim/CSC425/internal/web/handlers/index"
	"github.com/schwarztim/CSC425/pkg/logger"
	"github.com/schwarztim/CSC425/pkg/metrics"
)

func main() {
	// .env не обязателен, переменные окружения могут приходить извне
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg, err := config.Load("config.frontend.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting booking frontend...")
	log.Info("Backend URL: %s", cfg.Backend.URL)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем клиент backend-сервиса
	backendClient := bookingservice.NewClient(
		cfg.Backend.URL,
		time.Duration(cfg.Backend.Timeout)*time.Second,
		log,
	)

	// Инициализируем handlers
	health := healthHandler.NewHandler()
	index, err := indexHandler.NewHandler(log)
	if err != nil {
		log.Fatal("Failed to initialize index handler: %v", err)
	}
	getTimes := getTimesHandler.NewHandler(backendClient, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(backendClient, log)
	createBooking := createBookingHandler.NewHandler(backendClient, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health и статика без rate limit
	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)
	r.HandleFunc("/", index.Handle).Methods(http.MethodGet)

	staticFS, err := fs.Sub(assets.Static, "static")
	if err != nil {
		log.Fatal("Failed to mount static assets: %v", err)
	}
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// API-маршруты под лимитом запросов
	api := r.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		api.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, metricsCollector, log))
		log.Info("Rate limit enabled: %d requests/minute per client", cfg.RateLimit.RequestsPerMinute)
	}

	api.HandleFunc("/times", getTimes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/book", createBooking.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
