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

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/CleanClick-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/CleanClick-BookingService/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/m04kA/CleanClick-BookingService/internal/api/handlers/get_availability"
	getBookingsHandler "github.com/m04kA/CleanClick-BookingService/internal/api/handlers/get_bookings"
	getCleanerHandler "github.com/m04kA/CleanClick-BookingService/internal/api/handlers/get_cleaner"
	getCleanersHandler "github.com/m04kA/CleanClick-BookingService/internal/api/handlers/get_cleaners"
	getOpenDaysHandler "github.com/m04kA/CleanClick-BookingService/internal/api/handlers/get_open_days"
	getQuoteHandler "github.com/m04kA/CleanClick-BookingService/internal/api/handlers/get_quote"
	updateCleanerHandler "github.com/m04kA/CleanClick-BookingService/internal/api/handlers/update_cleaner"
	"github.com/m04kA/CleanClick-BookingService/internal/api/middleware"
	"github.com/m04kA/CleanClick-BookingService/internal/config"
	"github.com/m04kA/CleanClick-BookingService/internal/domain"
	cleanerCache "github.com/m04kA/CleanClick-BookingService/internal/infra/cache/cleaner"
	bookingRepo "github.com/m04kA/CleanClick-BookingService/internal/infra/storage/booking"
	cleanerRepo "github.com/m04kA/CleanClick-BookingService/internal/infra/storage/cleaner"
	"github.com/m04kA/CleanClick-BookingService/internal/infra/storage/jsonfile"
	"github.com/m04kA/CleanClick-BookingService/internal/integrations/identity"
	bookingsService "github.com/m04kA/CleanClick-BookingService/internal/service/bookings"
	cleanersService "github.com/m04kA/CleanClick-BookingService/internal/service/cleaners"
	createBookingUC "github.com/m04kA/CleanClick-BookingService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/CleanClick-BookingService/internal/usecase/get_availability"
	getQuoteUC "github.com/m04kA/CleanClick-BookingService/internal/usecase/get_quote"
	"github.com/m04kA/CleanClick-BookingService/migrations"
	"github.com/m04kA/CleanClick-BookingService/pkg/dbmetrics"
	"github.com/m04kA/CleanClick-BookingService/pkg/logger"
	"github.com/m04kA/CleanClick-BookingService/pkg/metrics"
	"github.com/m04kA/CleanClick-BookingService/pkg/txmanager"
)

// BookingRepository реализуется репозиторием Postgres и представлением файлового хранилища
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
}

// TxManager реализуется pkg/txmanager и файловым хранилищем
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type storage struct {
	bookings  BookingRepository
	cleaners  cleanerCache.Repository
	txManager TxManager
	close     func() error
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting CleanClick-BookingService...")
	log.Info("Configuration loaded from config.toml (storage=%s, timezone=%s)",
		cfg.Storage.Driver, cfg.Booking.Location())

	// Метрики (опционально)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище
	store, err := openStorage(cfg, metricsCollector, stopMetricsCh, log)
	if err != nil {
		log.Fatal("Failed to open storage: %v", err)
	}
	defer store.close()

	// Кеш профилей в Redis (опционально)
	cleaners := store.cleaners
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Addr,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis ping failed, cache will fall through to storage: %v", err)
		}
		cancel()

		cleaners = cleanerCache.New(cleaners, redisClient, time.Duration(cfg.Redis.TTL)*time.Second, log)
		log.Info("Cleaner profile cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
	}

	// Identity провайдер
	identityClient := identity.NewClient(
		cfg.Identity.URL,
		cfg.Identity.ServiceKey,
		time.Duration(cfg.Identity.Timeout)*time.Second,
		log,
	)
	verifier := identity.NewVerifier(cfg.Identity.JWTSecret)
	if cfg.Identity.URL == "" {
		log.Warn("identity.url is not set: unknown cleaners will not be provisioned")
	}
	if cfg.Identity.JWTSecret == "" {
		log.Warn("identity.jwt_secret is not set: protected routes will reject every request")
	}

	clock := &createBookingUC.RealTimeProvider{Location: cfg.Booking.Location()}

	// Сервисы
	bookingSvc := bookingsService.NewService(store.bookings, store.txManager, log)
	cleanerSvc := cleanersService.NewService(cleaners, identityClient, clock, log)

	// Use cases
	var bookingMetrics createBookingUC.Metrics
	if metricsCollector != nil {
		bookingMetrics = metricsCollector
	}
	createBookingUseCase := createBookingUC.NewUseCase(
		store.bookings,
		cleaners,
		store.txManager,
		bookingMetrics,
		clock,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(store.bookings, cleaners, clock, log)
	getQuoteUseCase := getQuoteUC.NewUseCase(cleaners, log)

	// Хендлеры
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getQuote := getQuoteHandler.NewHandler(getQuoteUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getCleaners := getCleanersHandler.NewHandler(cleanerSvc, log)
	getCleaner := getCleanerHandler.NewHandler(cleanerSvc, log)
	getOpenDays := getOpenDaysHandler.NewHandler(cleanerSvc, log)
	updateCleaner := updateCleanerHandler.NewHandler(cleanerSvc, log)

	// Роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// ПУБЛИЧНЫЕ РОУТЫ
	// ============================================================

	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/quote", getQuote.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cleaners", getCleaners.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cleaners/{id}", getCleaner.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cleaners/{id}/days", getOpenDays.Handle).Methods(http.MethodGet)

	// Заявки клиентов ограничиваются по IP
	limiter := middleware.NewRateLimiter(cfg.Booking.RateLimitPerMinute, cfg.Booking.RateLimitBurst)
	if err := limiter.TrustProxies(cfg.Booking.TrustedProxies); err != nil {
		log.Fatal("Invalid trusted proxies: %v", err)
	}
	api.Handle("/bookings", limiter.Middleware(log)(http.HandlerFunc(createBooking.Handle))).Methods(http.MethodPost)

	// ============================================================
	// ЗАЩИЩЕННЫЕ РОУТЫ (bearer токен клинера)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(verifier, log))

	protected.HandleFunc("/cleaners/{id}", updateCleaner.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	close(stopMetricsCh)

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

// openStorage подключает настроенное хранилище: Postgres (с миграциями на старте) или JSON файл
func openStorage(cfg *config.Config, m *metrics.Metrics, stopCh <-chan struct{}, log *logger.Logger) (*storage, error) {
	if cfg.Storage.Driver == config.StorageDriverFile {
		store, err := jsonfile.Open(cfg.Storage.FilePath)
		if err != nil {
			return nil, err
		}
		log.Info("Using JSON file storage at %s", cfg.Storage.FilePath)

		return &storage{
			bookings:  store.Bookings(),
			cleaners:  store,
			txManager: store,
			close:     func() error { return nil },
		}, nil
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if err := migrations.Apply(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	log.Info("Database schema is up to date")

	var wrapped *dbmetrics.DB
	if m != nil {
		wrapped = dbmetrics.WrapWithDefault(db, m, stopCh)
		log.Info("Database metrics collection started")
	} else {
		wrapped = dbmetrics.Wrap(db, nil)
	}

	return &storage{
		bookings:  bookingRepo.NewRepository(wrapped),
		cleaners:  cleanerRepo.NewRepository(wrapped),
		txManager: txmanager.NewTransactionManager(wrapped),
		close:     db.Close,
	}, nil
}
