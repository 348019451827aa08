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

	announcementsHandler "github.com/frizerhub/Barber-BookingService/internal/api/handlers/announcements"
	cancelBookingHandler "github.com/frizerhub/Barber-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/frizerhub/Barber-BookingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/frizerhub/Barber-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/frizerhub/Barber-BookingService/internal/api/handlers/get_booking"
	getBookingDatesHandler "github.com/frizerhub/Barber-BookingService/internal/api/handlers/get_booking_dates"
	getScheduleHandler "github.com/frizerhub/Barber-BookingService/internal/api/handlers/get_schedule"
	getUserBookingsHandler "github.com/frizerhub/Barber-BookingService/internal/api/handlers/get_user_bookings"
	manageBlockedDatesHandler "github.com/frizerhub/Barber-BookingService/internal/api/handlers/manage_blocked_dates"
	"github.com/frizerhub/Barber-BookingService/internal/api/middleware"
	"github.com/frizerhub/Barber-BookingService/internal/config"
	"github.com/frizerhub/Barber-BookingService/internal/domain"
	"github.com/frizerhub/Barber-BookingService/internal/infra/events"
	"github.com/frizerhub/Barber-BookingService/internal/infra/migrate"
	announcementRepo "github.com/frizerhub/Barber-BookingService/internal/infra/storage/announcement"
	appointmentRepo "github.com/frizerhub/Barber-BookingService/internal/infra/storage/appointment"
	blockedDateRepo "github.com/frizerhub/Barber-BookingService/internal/infra/storage/blockeddate"
	canceledRepo "github.com/frizerhub/Barber-BookingService/internal/infra/storage/canceled"
	userProfileRepo "github.com/frizerhub/Barber-BookingService/internal/infra/storage/userprofile"
	"github.com/frizerhub/Barber-BookingService/internal/integrations/smsgate"
	announcementsService "github.com/frizerhub/Barber-BookingService/internal/service/announcements"
	appointmentsService "github.com/frizerhub/Barber-BookingService/internal/service/appointments"
	scheduleService "github.com/frizerhub/Barber-BookingService/internal/service/schedule"
	cancelBookingUC "github.com/frizerhub/Barber-BookingService/internal/usecase/cancel_booking"
	createBookingUC "github.com/frizerhub/Barber-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/frizerhub/Barber-BookingService/internal/usecase/get_available_slots"
	getBookingDatesUC "github.com/frizerhub/Barber-BookingService/internal/usecase/get_booking_dates"
	"github.com/frizerhub/Barber-BookingService/pkg/dbmetrics"
	"github.com/frizerhub/Barber-BookingService/pkg/logger"
	"github.com/frizerhub/Barber-BookingService/pkg/metrics"
	"github.com/frizerhub/Barber-BookingService/pkg/simpletxmanager"
	"github.com/frizerhub/Barber-BookingService/pkg/txmanager"
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

	log.Info("Starting Barber-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Собираем бизнес-политику бронирования
	policy, err := domain.NewBookingPolicy(
		cfg.Booking.Timezone,
		cfg.Booking.BusinessStart,
		cfg.Booking.BusinessEnd,
		cfg.Booking.SlotStepMinutes,
		cfg.Booking.WindowDays,
		cfg.Booking.MinBookingDate,
		cfg.Booking.MaxUpcomingPerUser,
	)
	if err != nil {
		log.Fatal("Invalid booking configuration: %v", err)
	}
	log.Info("Booking policy: %s-%s step %dmin, window %d days, timezone %s",
		cfg.Booking.BusinessStart, cfg.Booking.BusinessEnd,
		cfg.Booking.SlotStepMinutes, cfg.Booking.WindowDays, cfg.Booking.Timezone)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Применяем миграции
	migrator, err := migrate.NewMigrator(db, cfg.Database.MigrationsPath)
	if err != nil {
		log.Fatal("Failed to initialize migrator: %v", err)
	}
	if err := migrator.Run(context.Background()); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	if version, err := migrator.Version(context.Background()); err == nil {
		log.Info("Database migrated to version %d", version)
	}

	// Издатель событий расписания (Redis Pub/Sub либо заглушка)
	var eventPublisher interface {
		AppointmentCreated(ctx context.Context, appt *domain.Appointment)
		AppointmentCanceled(ctx context.Context, appt *domain.Appointment)
	}
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
		})
		publisher := events.NewRedisPublisher(redisClient, cfg.Redis.Channel, log)
		if err := publisher.Ping(context.Background()); err != nil {
			log.Warn("Redis is not reachable, events may be lost: %v", err)
		} else {
			log.Info("Redis event publisher connected (addr=%s, channel=%s)", cfg.Redis.Addr, cfg.Redis.Channel)
		}
		eventPublisher = publisher
	} else {
		eventPublisher = events.NewNoopPublisher()
		log.Info("Redis disabled, schedule events will not be published")
	}

	// Клиент SMS-шлюза
	smsClient := smsgate.NewClient(
		cfg.SMS.BaseURL,
		cfg.SMS.AccountSID,
		cfg.SMS.AuthToken,
		cfg.SMS.FromNumber,
		time.Duration(cfg.SMS.Timeout)*time.Second,
		log,
	)
	log.Info("SMS gate client initialized (from=%s, timeout=%ds)", cfg.SMS.FromNumber, cfg.SMS.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository  *appointmentRepo.Repository
		canceledRepository     *canceledRepo.Repository
		blockedDateRepository  *blockedDateRepo.Repository
		announcementRepository *announcementRepo.Repository
		userProfileRepository  *userProfileRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		canceledRepository = canceledRepo.NewRepository(wrappedDB)
		blockedDateRepository = blockedDateRepo.NewRepository(wrappedDB)
		announcementRepository = announcementRepo.NewRepository(wrappedDB)
		userProfileRepository = userProfileRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		canceledRepository = canceledRepo.NewRepository(db)
		blockedDateRepository = blockedDateRepo.NewRepository(db)
		announcementRepository = announcementRepo.NewRepository(db)
		userProfileRepository = userProfileRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		canceledRepository,
		policy,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		blockedDateRepository,
		policy,
		log,
	)
	announcementSvc := announcementsService.NewService(
		announcementRepository,
		policy,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		appointmentRepository,
		blockedDateRepository,
		userProfileRepository,
		eventPublisher,
		txMgr,
		policy,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		appointmentRepository,
		canceledRepository,
		smsClient,
		eventPublisher,
		policy,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		blockedDateRepository,
		policy,
		log,
	)
	getBookingDatesUseCase := getBookingDatesUC.NewUseCase(
		appointmentRepository,
		blockedDateRepository,
		policy,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, cfg.Admin.UserIDs, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBookingDates := getBookingDatesHandler.NewHandler(getBookingDatesUseCase, log)
	getBooking := getBookingHandler.NewHandler(appointmentSvc, cfg.Admin.UserIDs, log)
	getUserBookings := getUserBookingsHandler.NewHandler(appointmentSvc, log)
	getSchedule := getScheduleHandler.NewHandler(appointmentSvc, log)
	manageBlockedDates := manageBlockedDatesHandler.NewHandler(scheduleSvc, log)
	announcements := announcementsHandler.NewHandler(announcementSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные слоты на дату
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Активные объявления
	api.HandleFunc("/announcements", announcements.HandleList).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Даты, открытые для бронирования
	protected.HandleFunc("/dates", getBookingDates.Handle).Methods(http.MethodGet)

	// Создание записи
	protected.HandleFunc("/appointments", createBooking.Handle).Methods(http.MethodPost)

	// Предстоящие записи пользователя
	protected.HandleFunc("/appointments/my", getUserBookings.Handle).Methods(http.MethodGet)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{id:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/appointments/{id:[0-9]+}", cancelBooking.Handle).Methods(http.MethodDelete)

	// ============================================================
	// ADMIN ROUTES (только для администраторов)
	// ============================================================

	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminOnly(cfg.Admin.UserIDs))

	// Расписание за период с журналом отмен
	admin.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Управление заблокированными датами
	admin.HandleFunc("/blocked-dates", manageBlockedDates.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/blocked-dates", manageBlockedDates.HandleBlock).Methods(http.MethodPost)
	admin.HandleFunc("/blocked-dates/{date}", manageBlockedDates.HandleUnblock).Methods(http.MethodDelete)

	// Управление объявлениями
	admin.HandleFunc("/announcements", announcements.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/announcements/{id:[0-9]+}", announcements.HandleDelete).Methods(http.MethodDelete)

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
