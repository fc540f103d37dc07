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

	approveGroupHandler "github.com/m04kA/SMC-FacilityBookingService/internal/api/handlers/approve_group"
	cancelReservationHandler "github.com/m04kA/SMC-FacilityBookingService/internal/api/handlers/cancel_reservation"
	createReservationsHandler "github.com/m04kA/SMC-FacilityBookingService/internal/api/handlers/create_reservations"
	exportHistoryHandler "github.com/m04kA/SMC-FacilityBookingService/internal/api/handlers/export_history"
	getApprovalQueueHandler "github.com/m04kA/SMC-FacilityBookingService/internal/api/handlers/get_approval_queue"
	getCalendarHandler "github.com/m04kA/SMC-FacilityBookingService/internal/api/handlers/get_calendar"
	getHistoryHandler "github.com/m04kA/SMC-FacilityBookingService/internal/api/handlers/get_history"
	getNotificationsHandler "github.com/m04kA/SMC-FacilityBookingService/internal/api/handlers/get_notifications"
	getReservationHandler "github.com/m04kA/SMC-FacilityBookingService/internal/api/handlers/get_reservation"
	getUserReservationsHandler "github.com/m04kA/SMC-FacilityBookingService/internal/api/handlers/get_user_reservations"
	loginHandler "github.com/m04kA/SMC-FacilityBookingService/internal/api/handlers/login"
	markNotificationsSeenHandler "github.com/m04kA/SMC-FacilityBookingService/internal/api/handlers/mark_notifications_seen"
	rejectGroupHandler "github.com/m04kA/SMC-FacilityBookingService/internal/api/handlers/reject_group"
	"github.com/m04kA/SMC-FacilityBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityBookingService/internal/config"
	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
	"github.com/m04kA/SMC-FacilityBookingService/internal/infra/storage/memory"
	reservationRepo "github.com/m04kA/SMC-FacilityBookingService/internal/infra/storage/reservation"
	seenRepo "github.com/m04kA/SMC-FacilityBookingService/internal/infra/storage/seen"
	"github.com/m04kA/SMC-FacilityBookingService/internal/integrations/accounts"
	approvalService "github.com/m04kA/SMC-FacilityBookingService/internal/service/approval"
	calendarService "github.com/m04kA/SMC-FacilityBookingService/internal/service/calendar"
	exportService "github.com/m04kA/SMC-FacilityBookingService/internal/service/export"
	historyService "github.com/m04kA/SMC-FacilityBookingService/internal/service/history"
	notificationsService "github.com/m04kA/SMC-FacilityBookingService/internal/service/notifications"
	"github.com/m04kA/SMC-FacilityBookingService/internal/service/reservations"
	createReservationsUC "github.com/m04kA/SMC-FacilityBookingService/internal/usecase/create_reservations"
	getCalendarUC "github.com/m04kA/SMC-FacilityBookingService/internal/usecase/get_calendar"
	"github.com/m04kA/SMC-FacilityBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FacilityBookingService/pkg/logger"
	"github.com/m04kA/SMC-FacilityBookingService/pkg/metrics"
	"github.com/m04kA/SMC-FacilityBookingService/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-FacilityBookingService...")
	log.Info("Configuration loaded from %s (reservations=%s, seen_counts=%s)",
		configPath, cfg.Storage.Reservations, cfg.Storage.SeenCounts)

	ctx := context.Background()

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		dbRecorder       dbmetrics.Recorder
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		dbRecorder = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных, если она нужна хоть одному хранилищу
	var wrappedDB *dbmetrics.DB
	if cfg.UsesPostgres() {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(ctx); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		wrappedDB = dbmetrics.WrapWithDefault(db, dbRecorder, stopMetricsCh)
	}

	// Репозиторий бронирований
	var (
		repo      reservations.Repository
		storeOpts []reservations.Option
	)
	switch cfg.Storage.Reservations {
	case config.DriverPostgres:
		repo = reservationRepo.NewRepository(wrappedDB)
		storeOpts = append(storeOpts, reservations.WithTransactionManager(txmanager.NewTransactionManager(wrappedDB)))
	default:
		repo = memory.NewReservationRepository()
		log.Warn("Reservations are kept in memory and will be lost on restart")
	}
	if metricsCollector != nil {
		storeOpts = append(storeOpts, reservations.WithMetrics(metricsCollector))
	}

	// Хранилище счетчиков просмотренных уведомлений
	var seen notificationsService.SeenRepository
	switch cfg.Storage.SeenCounts {
	case config.DriverRedis:
		client, err := seenRepo.NewRedisClient(ctx, seenRepo.RedisOptions{
			Addr:        cfg.Redis.Addr,
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.DB,
			DialTimeout: time.Duration(cfg.Redis.DialTimeout) * time.Second,
		})
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer client.Close()
		seen = seenRepo.NewRedisRepository(client, cfg.Redis.KeyPrefix)
		log.Info("Seen counts stored in redis (addr=%s, prefix=%s)", cfg.Redis.Addr, cfg.Redis.KeyPrefix)
	case config.DriverPostgres:
		seen = seenRepo.NewPostgresRepository(wrappedDB)
	default:
		seen = memory.NewSeenRepository()
	}

	// Загружаем бронирования до старта сервера
	store := reservations.NewStore(repo, log, storeOpts...)
	if err := store.Load(ctx); err != nil {
		log.Fatal("Failed to load reservations: %v", err)
	}

	// Учетные записи
	accountList := make([]accounts.Account, 0, len(cfg.Accounts))
	for _, a := range cfg.Accounts {
		accountList = append(accountList, accounts.Account{
			Username: a.Username,
			Email:    a.Email,
			Password: a.Password,
			Role:     domain.Role(a.Role),
		})
	}
	directory, err := accounts.NewDirectory(accountList, log)
	if err != nil {
		log.Fatal("Failed to load accounts: %v", err)
	}

	// Инициализируем сервисы
	calendarTime := &calendarService.RealTimeProvider{}
	calendarSvc, err := calendarService.NewService(calendarService.Config{
		Rooms:     cfg.Calendar.Rooms,
		OpenHour:  cfg.Calendar.OpenHour,
		CloseHour: cfg.Calendar.CloseHour,
		Timezone:  cfg.Calendar.Timezone,
	}, calendarTime)
	if err != nil {
		log.Fatal("Failed to initialize calendar: %v", err)
	}
	log.Info("Calendar: %d rooms, hours %02d:00-%02d:00 (%s)",
		len(cfg.Calendar.Rooms), cfg.Calendar.OpenHour, cfg.Calendar.CloseHour, cfg.Calendar.Timezone)

	historySvc := historyService.NewService(store, log)
	approvalSvc := approvalService.NewWorkflow(store, log)
	notificationsSvc := notificationsService.NewService(store, seen, log)
	exporter := exportService.NewExporter(log)

	// Инициализируем use cases
	createReservationsUseCase := createReservationsUC.NewUseCase(store, calendarSvc, log)
	getCalendarUseCase := getCalendarUC.NewUseCase(store, calendarSvc, log)

	// Инициализируем handlers
	login := loginHandler.NewHandler(directory, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, calendarSvc, log)
	createReservations := createReservationsHandler.NewHandler(createReservationsUseCase, log)
	getReservation := getReservationHandler.NewHandler(historySvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(store, log)
	getUserReservations := getUserReservationsHandler.NewHandler(historySvc, log)
	getNotifications := getNotificationsHandler.NewHandler(notificationsSvc, log)
	markNotificationsSeen := markNotificationsSeenHandler.NewHandler(notificationsSvc, log)
	getApprovalQueue := getApprovalQueueHandler.NewHandler(historySvc, log)
	approveGroup := approveGroupHandler.NewHandler(approvalSvc, log)
	rejectGroup := rejectGroupHandler.NewHandler(approvalSvc, log)
	getHistory := getHistoryHandler.NewHandler(historySvc, log)
	exportHistory := exportHistoryHandler.NewHandler(historySvc, exporter, calendarTime, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(directory))

	// --- Календарь и бронирования ---
	protected.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations", createReservations.Handle).Methods(http.MethodPost)
	// Маршрут группы регистрируется раньше {reservationId}
	protected.HandleFunc("/reservations/cancel", cancelReservation.HandleGroup).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// --- Пользователь ---
	protected.HandleFunc("/users/{username}/reservations", getUserReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{username}/notifications", getNotifications.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{username}/notifications/seen", markNotificationsSeen.Handle).Methods(http.MethodPost)

	// --- Администратор ---
	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireRole(domain.RoleAdmin))

	admin.HandleFunc("/approvals", getApprovalQueue.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/approvals/approve", approveGroup.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/approvals/reject", rejectGroup.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/history", getHistory.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/history/export", exportHistory.Handle).Methods(http.MethodGet)

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
