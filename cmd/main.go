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
	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"

	applyPromoHandler "github.com/m04kA/SMC-StorefrontService/internal/api/handlers/apply_promo"
	getCheckoutHandler "github.com/m04kA/SMC-StorefrontService/internal/api/handlers/get_checkout"
	getConfirmationHandler "github.com/m04kA/SMC-StorefrontService/internal/api/handlers/get_confirmation"
	getExperienceHandler "github.com/m04kA/SMC-StorefrontService/internal/api/handlers/get_experience"
	healthHandler "github.com/m04kA/SMC-StorefrontService/internal/api/handlers/health"
	listExperiencesHandler "github.com/m04kA/SMC-StorefrontService/internal/api/handlers/list_experiences"
	selectSlotHandler "github.com/m04kA/SMC-StorefrontService/internal/api/handlers/select_slot"
	submitBookingHandler "github.com/m04kA/SMC-StorefrontService/internal/api/handlers/submit_booking"
	updateCheckoutHandler "github.com/m04kA/SMC-StorefrontService/internal/api/handlers/update_checkout"
	"github.com/m04kA/SMC-StorefrontService/internal/api/middleware"
	"github.com/m04kA/SMC-StorefrontService/internal/config"
	sessionStorage "github.com/m04kA/SMC-StorefrontService/internal/infra/storage/session"
	"github.com/m04kA/SMC-StorefrontService/internal/integrations/experienceapi"
	purgeSessions "github.com/m04kA/SMC-StorefrontService/internal/jobs/purge_sessions"
	"github.com/m04kA/SMC-StorefrontService/internal/service/checkout"
	bookingFlowUC "github.com/m04kA/SMC-StorefrontService/internal/usecase/booking_flow"
	browseCatalogUC "github.com/m04kA/SMC-StorefrontService/internal/usecase/browse_catalog"
	"github.com/m04kA/SMC-StorefrontService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StorefrontService/pkg/logger"
	"github.com/m04kA/SMC-StorefrontService/pkg/metrics"
)

// recoveryLogger адаптер логгера для gorilla/handlers.RecoveryHandler
type recoveryLogger struct {
	log *logger.Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.log.Error("Recovered from panic: %s", fmt.Sprint(v...))
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting SMC-StorefrontService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	ttl := time.Duration(cfg.Session.TTLMinutes) * time.Minute

	// Хранилище сессий
	var (
		store        sessionStorage.Store
		purger       purgeSessions.Purger
		healthChecks = map[string]healthHandler.Check{}
	)

	switch cfg.Session.Backend {
	case config.SessionBackendPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		var repo *sessionStorage.Repository
		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
			log.Info("Database metrics collection started")
			repo = sessionStorage.NewRepository(wrappedDB)
		} else {
			repo = sessionStorage.NewRepository(db)
		}
		store, purger = repo, repo
		healthChecks["sessions"] = db.PingContext

	case config.SessionBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()

		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

		// Записи в Redis истекают по TTL, отдельная очистка не нужна
		store = sessionStorage.NewRedisStore(client, ttl)
		healthChecks["sessions"] = func(ctx context.Context) error { return client.Ping(ctx).Err() }

	default:
		memory := sessionStorage.NewMemoryStore()
		store, purger = memory, memory
		log.Info("Using in-memory session store")
	}
	records := sessionStorage.NewRecords(store)

	// Клиент удаленного API
	apiClient := experienceapi.NewClient(
		cfg.ExperienceAPI.BaseURL,
		time.Duration(cfg.ExperienceAPI.Timeout)*time.Second,
		log,
	)
	if cfg.Metrics.Enabled {
		apiClient = apiClient.WithObserver(metricsCollector)
	}
	log.Info("Experience API client initialized (url=%s, timeout=%ds)",
		cfg.ExperienceAPI.BaseURL, cfg.ExperienceAPI.Timeout)

	forms := checkout.NewFormRegistry()
	promoLimiter := middleware.NewRateLimiter(cfg.RateLimit.PromoPerMinute, cfg.RateLimit.PromoBurst)

	// Инициализируем use cases
	browseCatalogUseCase := browseCatalogUC.NewUseCase(apiClient, log)
	bookingFlowUseCase := bookingFlowUC.NewUseCase(records, apiClient, forms, log)

	// Инициализируем handlers
	listExperiences := listExperiencesHandler.NewHandler(browseCatalogUseCase, log)
	getExperience := getExperienceHandler.NewHandler(browseCatalogUseCase, log)
	selectSlot := selectSlotHandler.NewHandler(bookingFlowUseCase, log)
	getCheckout := getCheckoutHandler.NewHandler(bookingFlowUseCase, log)
	updateCheckout := updateCheckoutHandler.NewHandler(bookingFlowUseCase, log)
	applyPromo := applyPromoHandler.NewHandler(bookingFlowUseCase, log)
	submitBooking := submitBookingHandler.NewHandler(bookingFlowUseCase, log)
	getConfirmation := getConfirmationHandler.NewHandler(bookingFlowUseCase, log)
	health := healthHandler.NewHandler(healthChecks, log)

	// Очистка брошенных сессий
	var observer purgeSessions.Observer
	if cfg.Metrics.Enabled {
		observer = metricsCollector
	}
	purgeJob := purgeSessions.NewJob(purger, ttl, observer, log).
		WithEvicter("forms", forms).
		WithEvicter("rate_limiters", promoLimiter)

	scheduler := cron.New()
	if _, err := purgeSessions.Schedule(scheduler, cfg.Session.PurgeSchedule, purgeJob); err != nil {
		log.Fatal("Failed to schedule session purge: %v", err)
	}
	scheduler.Start()
	log.Info("Session purge scheduled (%s, ttl=%dm)", cfg.Session.PurgeSchedule, cfg.Session.TTLMinutes)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// CATALOG (без сессии)
	// ============================================================

	api.HandleFunc("/experiences", listExperiences.Handle).Methods(http.MethodGet)
	api.HandleFunc("/experiences/{experienceId}", getExperience.Handle).Methods(http.MethodGet)

	// ============================================================
	// BOOKING FLOW (требуют сессию: cookie или X-Session-ID)
	// ============================================================

	flow := api.PathPrefix("").Subrouter()
	flow.Use(middleware.Session(cfg.Session.CookieName, cfg.Session.SecureCookie))

	// Выбор слота -> оформление
	flow.HandleFunc("/experiences/{experienceId}/select", selectSlot.Handle).Methods(http.MethodPost)

	// Оформление
	flow.HandleFunc("/checkout", getCheckout.Handle).Methods(http.MethodGet)
	flow.HandleFunc("/checkout", updateCheckout.Handle).Methods(http.MethodPatch)
	flow.HandleFunc("/checkout", submitBooking.Handle).Methods(http.MethodPost)

	// Проверка промокода с ограничением частоты на сессию
	flow.Handle("/checkout/promo", promoLimiter.Middleware(http.HandlerFunc(applyPromo.Handle))).
		Methods(http.MethodPost)

	// Подтверждение (читается один раз)
	flow.HandleFunc("/confirmation", getConfirmation.Handle).Methods(http.MethodGet)

	// CORS и восстановление после паники
	corsOptions := []gorillaHandlers.CORSOption{
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", middleware.HeaderSessionID}),
		gorillaHandlers.ExposedHeaders([]string{middleware.HeaderSessionID, "Location"}),
	}
	if cfg.CORS.AllowCredentials {
		corsOptions = append(corsOptions, gorillaHandlers.AllowCredentials())
	}
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsOptions = append(corsOptions, gorillaHandlers.AllowedOrigins(cfg.CORS.AllowedOrigins))
	}
	handler := gorillaHandlers.RecoveryHandler(
		gorillaHandlers.RecoveryLogger(recoveryLogger{log: log}),
	)(gorillaHandlers.CORS(corsOptions...)(r))

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Дожидаемся текущей очистки и останавливаем планировщик
	<-scheduler.Stop().Done()

	// Останавливаем сбор метрик connection pool
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
