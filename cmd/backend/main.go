package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/schwarztim/CSC425/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/schwarztim/CSC425/internal/api/handlers/get_available_slots"
	getTimesHandler "github.com/schwarztim/CSC425/internal/api/handlers/get_times"
	healthHandler "github.com/schwarztim/CSC425/internal/api/handlers/health"
	"github.com/schwarztim/CSC425/internal/api/middleware"
	"github.com/schwarztim/CSC425/internal/config"
	bookingRepo "github.com/schwarztim/CSC425/internal/infra/storage/booking"
	bookingsService "github.com/schwarztim/CSC425/internal/service/bookings"
	createBookingUC "github.com/schwarztim/CSC425/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/schwarztim/CSC425/internal/usecase/get_available_slots"
	"github.com/schwarztim/CSC425/pkg/dbmetrics"
	"github.com/schwarztim/CSC425/pkg/logger"
	"github.com/schwarztim/CSC425/pkg/metrics"
	"github.com/schwarztim/CSC425/pkg/txmanager"
)

func main() {
	// .env не обязателен, переменные окружения могут приходить извне
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg, err := config.Load("config.backend.toml")
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

	log.Info("Starting booking backend...")

	// Без строки подключения процесс не стартует
	if err := cfg.Database.Validate(); err != nil {
		log.Fatal("Configuration error: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (pool: max_open=%d, max_idle=%d)",
		cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		txMgr             *txmanager.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = txmanager.NewFromSQLDB(db)
	}

	// Инициализируем сервисы и use cases
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, txMgr, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingRepository, log)

	// Инициализируем handlers
	health := healthHandler.NewHandler()
	getTimes := getTimesHandler.NewHandler(bookingSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID())

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)
	r.HandleFunc("/times", getTimes.Handle).Methods(http.MethodGet)
	r.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	r.HandleFunc("/book", createBooking.Handle).Methods(http.MethodPost)

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

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
