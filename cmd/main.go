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
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	bookingDraftHandler "github.com/m04kA/BarberShop-BookingService/internal/api/handlers/booking_draft"
	createAppointmentHandler "github.com/m04kA/BarberShop-BookingService/internal/api/handlers/create_appointment"
	getAvailableTimesHandler "github.com/m04kA/BarberShop-BookingService/internal/api/handlers/get_available_times"
	getBarbersHandler "github.com/m04kA/BarberShop-BookingService/internal/api/handlers/get_barbers"
	getDailyAgendaHandler "github.com/m04kA/BarberShop-BookingService/internal/api/handlers/get_daily_agenda"
	getServicesHandler "github.com/m04kA/BarberShop-BookingService/internal/api/handlers/get_services"
	updateAppointmentStatusHandler "github.com/m04kA/BarberShop-BookingService/internal/api/handlers/update_appointment_status"
	"github.com/m04kA/BarberShop-BookingService/internal/api/middleware"
	"github.com/m04kA/BarberShop-BookingService/internal/config"
	"github.com/m04kA/BarberShop-BookingService/internal/domain"
	"github.com/m04kA/BarberShop-BookingService/internal/infra/events"
	appointmentRepo "github.com/m04kA/BarberShop-BookingService/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/BarberShop-BookingService/internal/infra/storage/catalog"
	draftStorage "github.com/m04kA/BarberShop-BookingService/internal/infra/storage/draft"
	authServiceClient "github.com/m04kA/BarberShop-BookingService/internal/integrations/authservice"
	appointmentsService "github.com/m04kA/BarberShop-BookingService/internal/service/appointments"
	catalogService "github.com/m04kA/BarberShop-BookingService/internal/service/catalog"
	draftsService "github.com/m04kA/BarberShop-BookingService/internal/service/drafts"
	commitReservationUC "github.com/m04kA/BarberShop-BookingService/internal/usecase/commit_reservation"
	getAvailableTimesUC "github.com/m04kA/BarberShop-BookingService/internal/usecase/get_available_times"
	"github.com/m04kA/BarberShop-BookingService/pkg/dbmetrics"
	"github.com/m04kA/BarberShop-BookingService/pkg/logger"
	"github.com/m04kA/BarberShop-BookingService/pkg/metrics"
	"github.com/m04kA/BarberShop-BookingService/pkg/types"
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

	log.Info("Starting BarberShop-BookingService...")
	log.Info("Configuration loaded from config.toml")

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
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Репозитории (с метриками или без)
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	}
	catalogRepository := catalogRepo.NewRepository(executor)
	appointmentRepository := appointmentRepo.NewRepository(executor)

	// Хранилище черновиков: redis или память процесса
	var draftStore draftsService.DraftStore
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancelPing()
		if err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Address, err)
		}

		draftStore = draftStorage.NewRedisStore(redisClient, cfg.Drafts.TTL.Duration, cfg.Drafts.SubmitLatchTTL.Duration)
		log.Info("Draft store: redis at %s (ttl=%s)", cfg.Redis.Address, cfg.Drafts.TTL.Duration)
	} else {
		draftStore = draftStorage.NewMemoryStore(cfg.Drafts.TTL.Duration, cfg.Drafts.SubmitLatchTTL.Duration)
		log.Warn("Draft store: in-memory, drafts are lost on restart (ttl=%s)", cfg.Drafts.TTL.Duration)
	}

	// Публикация событий для уведомлений
	type EventPublisher interface {
		Publish(ctx context.Context, eventType string, appointment *domain.Appointment) error
		Close() error
	}
	var publisher EventPublisher = events.NoopPublisher{}
	if cfg.Kafka.Enabled {
		publisher = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.WriteTimeout.Duration)
		log.Info("Kafka publisher enabled (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error("Failed to close event publisher: %v", err)
		}
	}()

	// Инициализируем интеграционных клиентов
	authClient := authServiceClient.NewClient(
		cfg.AuthService.URL,
		time.Duration(cfg.AuthService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (AuthService=%s timeout=%ds)",
		cfg.AuthService.URL, cfg.AuthService.Timeout)

	// Инициализируем сервисы и use cases
	catalogSvc := catalogService.NewService(catalogRepository, metricsCollector, log)

	commitReservationUseCase := commitReservationUC.NewUseCase(
		appointmentRepository,
		publisher,
		metricsCollector,
		log,
	)

	draftsSvc := draftsService.NewService(
		draftStore,
		catalogSvc,
		commitReservationUseCase,
		log,
	)

	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		publisher,
		metricsCollector,
		log,
		cfg.Booking.StrictTransitions,
	)
	if cfg.Booking.StrictTransitions {
		log.Info("Strict status transitions enabled: only pending appointments can be confirmed or cancelled")
	}

	getAvailableTimesUseCase, err := getAvailableTimesUC.NewUseCase(
		appointmentRepository,
		catalogSvc,
		getAvailableTimesUC.Schedule{
			OpenTime:         types.TimeString(cfg.Schedule.OpenTime),
			CloseTime:        types.TimeString(cfg.Schedule.CloseTime),
			SlotStepMinutes:  cfg.Schedule.SlotStepMinutes,
			MinNoticeMinutes: cfg.Schedule.MinNoticeMinutes,
		},
		log,
	)
	if err != nil {
		log.Fatal("Failed to initialize available times: %v", err)
	}

	// Инициализируем handlers
	getServices := getServicesHandler.NewHandler(catalogSvc, log)
	getBarbers := getBarbersHandler.NewHandler(catalogSvc, log)
	getAvailableTimes := getAvailableTimesHandler.NewHandler(getAvailableTimesUseCase, log)
	bookingDraft := bookingDraftHandler.NewHandler(draftsSvc, log)
	createAppointment := createAppointmentHandler.NewHandler(catalogSvc, commitReservationUseCase, log)
	getDailyAgenda := getDailyAgendaHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)

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
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/barbers", getBarbers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/barbers/{barberId}/available-times", getAvailableTimes.Handle).Methods(http.MethodGet)

	// --- Мастер бронирования и прямое бронирование ---
	booking := api.PathPrefix("").Subrouter()
	stopLimiterCh := make(chan struct{})
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(
			cfg.RateLimit.RPS,
			cfg.RateLimit.Burst,
			cfg.RateLimit.IdleTTL.Duration,
			cfg.RateLimit.TrustedProxies,
		)
		go limiter.RunSweeper(cfg.RateLimit.SweepInterval.Duration, stopLimiterCh)
		booking.Use(limiter.Middleware(log))
		log.Info("Rate limit enabled on booking routes (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	booking.HandleFunc("/drafts", bookingDraft.Start).Methods(http.MethodPost)
	booking.HandleFunc("/drafts/{draftId}", bookingDraft.Get).Methods(http.MethodGet)
	booking.HandleFunc("/drafts/{draftId}", bookingDraft.Discard).Methods(http.MethodDelete)
	booking.HandleFunc("/drafts/{draftId}/service", bookingDraft.SelectService).Methods(http.MethodPut)
	booking.HandleFunc("/drafts/{draftId}/barber", bookingDraft.SelectBarber).Methods(http.MethodPut)
	booking.HandleFunc("/drafts/{draftId}/datetime", bookingDraft.SelectDateTime).Methods(http.MethodPut)
	booking.HandleFunc("/drafts/{draftId}/customer", bookingDraft.UpdateCustomer).Methods(http.MethodPut)
	booking.HandleFunc("/drafts/{draftId}/next", bookingDraft.Next).Methods(http.MethodPost)
	booking.HandleFunc("/drafts/{draftId}/back", bookingDraft.Back).Methods(http.MethodPost)
	booking.HandleFunc("/drafts/{draftId}/submit", bookingDraft.Submit).Methods(http.MethodPost)
	booking.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// ============================================================
	// STAFF ROUTES (требуют X-User-ID header, роль определяется один раз на запрос)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)
	protected.Use(middleware.ResolveRole(authClient, log))

	// Записи дня со счётчиками
	protected.HandleFunc("/agenda", getDailyAgenda.Handle).Methods(http.MethodGet)

	// Подтверждение или отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

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

	close(stopLimiterCh)

	// Останавливаем сбор метрик connection pool
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
