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
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	cancelPaymentHandler "github.com/m04kA/SMC-FieldBookingService/internal/api/handlers/cancel_payment"
	closeFlowHandler "github.com/m04kA/SMC-FieldBookingService/internal/api/handlers/close_flow"
	confirmPaymentHandler "github.com/m04kA/SMC-FieldBookingService/internal/api/handlers/confirm_payment"
	dismissFlowHandler "github.com/m04kA/SMC-FieldBookingService/internal/api/handlers/dismiss_flow"
	getFlowHandler "github.com/m04kA/SMC-FieldBookingService/internal/api/handlers/get_flow"
	getPaymentAccountHandler "github.com/m04kA/SMC-FieldBookingService/internal/api/handlers/get_payment_account"
	getSuggestionsHandler "github.com/m04kA/SMC-FieldBookingService/internal/api/handlers/get_suggestions"
	getUserBookingsHandler "github.com/m04kA/SMC-FieldBookingService/internal/api/handlers/get_user_bookings"
	openFlowHandler "github.com/m04kA/SMC-FieldBookingService/internal/api/handlers/open_flow"
	submitBookingHandler "github.com/m04kA/SMC-FieldBookingService/internal/api/handlers/submit_booking"
	updateDraftHandler "github.com/m04kA/SMC-FieldBookingService/internal/api/handlers/update_draft"
	"github.com/m04kA/SMC-FieldBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-FieldBookingService/internal/config"
	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	"github.com/m04kA/SMC-FieldBookingService/internal/infra/cache"
	historyRepo "github.com/m04kA/SMC-FieldBookingService/internal/infra/storage/history"
	"github.com/m04kA/SMC-FieldBookingService/internal/integrations/community"
	fieldServiceClient "github.com/m04kA/SMC-FieldBookingService/internal/integrations/fieldservice"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/bankaccounts"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/bookingflows"
	bookingsService "github.com/m04kA/SMC-FieldBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/flow"
	confirmPaymentUC "github.com/m04kA/SMC-FieldBookingService/internal/usecase/confirm_payment"
	openFlowUC "github.com/m04kA/SMC-FieldBookingService/internal/usecase/open_flow"
	submitBookingUC "github.com/m04kA/SMC-FieldBookingService/internal/usecase/submit_booking"
	suggestWeekdaysUC "github.com/m04kA/SMC-FieldBookingService/internal/usecase/suggest_weekdays"
	"github.com/m04kA/SMC-FieldBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FieldBookingService/pkg/logger"
	"github.com/m04kA/SMC-FieldBookingService/pkg/metrics"
)

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

	log.Info("Starting SMC-FieldBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены).
	// nil *metrics.Metrics безопасен: все методы ничего не делают.
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
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
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Репозиторий истории (с метриками или без)
	var historyRepository *historyRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
		historyRepository = historyRepo.NewRepository(wrappedDB)
	} else {
		historyRepository = historyRepo.NewRepository(db)
	}

	// Redis: кэш расписаний и банковских счетов.
	// Недоступный Redis не критичен, ошибки кэша только логируются.
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 2*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Warn("Redis is not reachable at %s, cache will miss: %v", cfg.Redis.Addr, err)
	} else {
		log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
	}
	pingCancel()

	redisCache := cache.NewRedisCache(
		redisClient,
		time.Duration(cfg.Redis.ScheduleTTL)*time.Second,
		time.Duration(cfg.Redis.BankAccountTTL)*time.Second,
	)

	// Kafka: посты в сообщество (если включены)
	var communityPublisher confirmPaymentUC.CommunityPublisher
	if cfg.Kafka.Enabled {
		publisher := community.NewPublisher(
			community.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.CommunityTopic),
			time.Duration(cfg.Kafka.WriteTimeout)*time.Second,
			log,
		)
		defer func() {
			if err := publisher.Close(); err != nil {
				log.Error("Failed to close kafka writer: %v", err)
			}
		}()
		communityPublisher = publisher
		log.Info("Community publisher enabled (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.CommunityTopic)
	}

	// Инициализируем интеграционных клиентов
	fieldClient := fieldServiceClient.NewClient(
		cfg.FieldService.URL,
		time.Duration(cfg.FieldService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (FieldService=%s timeout=%ds)",
		cfg.FieldService.URL, cfg.FieldService.Timeout)

	// Реестр потоков бронирования
	registry := flow.NewRegistry(cfg.Booking.MaxOpenFlows, metricsCollector.SetActiveFlows)

	machineOpts := []flow.Option{
		flow.WithLockDuration(cfg.Booking.PaymentLockDuration()),
		flow.WithLockExpiryHandler(func(flowID string, lock domain.PaymentLock) {
			// Бронирование на сервере остается в статусе pending
			log.Warn("Payment lock expired: flow=%s, expired_at=%s", flowID, lock.ExpiresAt.Format(time.RFC3339))
			metricsCollector.IncLockExpiration()
		}),
	}

	// Вытеснение брошенных потоков
	stopEvictionCh := make(chan struct{})
	go registry.RunEviction(stopEvictionCh, domain.FlowEvictionInterval, cfg.Booking.FlowIdleTTL(), func(ids []string) {
		log.Info("Evicted %d idle booking flows: %v", len(ids), ids)
	})
	log.Info("Idle flow eviction started (ttl=%s)", cfg.Booking.FlowIdleTTL())

	// Инициализируем сервисы
	accountSvc := bankaccounts.NewService(redisCache, fieldClient, log)
	flowSvc := bookingflows.NewService(registry, accountSvc, log)
	bookingSvc := bookingsService.NewService(historyRepository, log)

	// Инициализируем use cases
	openFlowUseCase := openFlowUC.NewUseCase(registry, log, machineOpts...)
	suggestWeekdaysUseCase := suggestWeekdaysUC.NewUseCase(registry, fieldClient, metricsCollector, log)
	submitBookingUseCase := submitBookingUC.NewUseCase(registry, fieldClient, redisCache, metricsCollector, log)
	confirmPaymentUseCase := confirmPaymentUC.NewUseCase(registry, historyRepository, communityPublisher, metricsCollector, log)

	// Инициализируем handlers
	openFlow := openFlowHandler.NewHandler(openFlowUseCase, log)
	getFlow := getFlowHandler.NewHandler(flowSvc, log)
	updateDraft := updateDraftHandler.NewHandler(flowSvc, log)
	closeFlow := closeFlowHandler.NewHandler(flowSvc, log)
	dismissFlow := dismissFlowHandler.NewHandler(flowSvc, log)
	getSuggestions := getSuggestionsHandler.NewHandler(suggestWeekdaysUseCase, log)
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)
	cancelPayment := cancelPaymentHandler.NewHandler(flowSvc, log)
	confirmPayment := confirmPaymentHandler.NewHandler(confirmPaymentUseCase, log)
	getPaymentAccount := getPaymentAccountHandler.NewHandler(flowSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Поток бронирования ---
	protected.HandleFunc("/flows", openFlow.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/flows/{flowId}", getFlow.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/flows/{flowId}", closeFlow.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/flows/{flowId}/draft", updateDraft.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/flows/{flowId}/dismiss", dismissFlow.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/flows/{flowId}/suggestions", getSuggestions.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/flows/{flowId}/submit", submitBooking.Handle).Methods(http.MethodPost)

	// --- Оплата ---
	protected.HandleFunc("/flows/{flowId}/cancel", cancelPayment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/flows/{flowId}/confirm-payment", confirmPayment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/flows/{flowId}/payment-account", getPaymentAccount.Handle).Methods(http.MethodGet)

	// --- История бронирований пользователя ---
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)
	close(stopEvictionCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Open booking flows at shutdown: %d", registry.Len())
	log.Info("Server stopped gracefully")
}
