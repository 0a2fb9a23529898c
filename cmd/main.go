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

	cancelBookingHandler "github.com/banksiaoranpark/booking-service/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/banksiaoranpark/booking-service/internal/api/handlers/check_availability"
	confirmBookingHandler "github.com/banksiaoranpark/booking-service/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/banksiaoranpark/booking-service/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/banksiaoranpark/booking-service/internal/api/handlers/delete_booking"
	getBookingHandler "github.com/banksiaoranpark/booking-service/internal/api/handlers/get_booking"
	listBookingsHandler "github.com/banksiaoranpark/booking-service/internal/api/handlers/list_bookings"
	"github.com/banksiaoranpark/booking-service/internal/api/middleware"
	"github.com/banksiaoranpark/booking-service/internal/config"
	"github.com/banksiaoranpark/booking-service/internal/domain"
	bookingRepo "github.com/banksiaoranpark/booking-service/internal/infra/storage/booking"
	"github.com/banksiaoranpark/booking-service/internal/integrations/mailer"
	"github.com/banksiaoranpark/booking-service/internal/notifications"
	bookingsService "github.com/banksiaoranpark/booking-service/internal/service/bookings"
	checkAvailabilityUC "github.com/banksiaoranpark/booking-service/internal/usecase/check_availability"
	createBookingUC "github.com/banksiaoranpark/booking-service/internal/usecase/create_booking"
	"github.com/banksiaoranpark/booking-service/pkg/dbmetrics"
	"github.com/banksiaoranpark/booking-service/pkg/logger"
	"github.com/banksiaoranpark/booking-service/pkg/metrics"
	"github.com/banksiaoranpark/booking-service/pkg/simpletxmanager"
	"github.com/banksiaoranpark/booking-service/pkg/txmanager"
	"github.com/banksiaoranpark/booking-service/pkg/types"
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

	log.Info("Starting booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Собираем расписание слотов из конфигурации
	schedule, err := buildSchedule(cfg.Booking.Slots)
	if err != nil {
		log.Fatal("Invalid slot schedule in config: %v", err)
	}

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

	// Инициализируем почтовый клиент и диспетчер уведомлений
	mailClient := mailer.NewClient(
		cfg.Mailer.APIKey,
		cfg.Mailer.FromName,
		cfg.Mailer.FromEmail,
		time.Duration(cfg.Mailer.Timeout)*time.Second,
		log,
	)
	dispatcher := notifications.NewDispatcher(mailClient, cfg.Mailer.AdminEmail, notifications.DefaultQueueSize, log)
	log.Info("Notification dispatcher started (admin_email=%s)", cfg.Mailer.AdminEmail)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var bookingRepository *bookingRepo.Repository

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервис броней
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		dispatcher,
		log,
	)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		bookingRepository,
		schedule,
		cfg.Booking.SlotCapacity,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		dispatcher,
		schedule,
		cfg.Booking.SlotCapacity,
		log,
	)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
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

	// Проверка доступности слота
	api.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Создание брони гостем
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Server.AdminToken))

	// Календарь броней
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Бронь по ID
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Подтверждение брони
	admin.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)

	// Отмена брони
	admin.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Удаление брони
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

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

	// Дожидаемся доставки оставшихся уведомлений
	dispatcher.Close()
	log.Info("Notification dispatcher stopped")

	log.Info("Server stopped gracefully")
}

// buildSchedule собирает расписание слотов из конфигурации
func buildSchedule(slots config.SlotsConfig) (*domain.WeekSchedule, error) {
	schedule := &domain.WeekSchedule{}

	days := []struct {
		name   string
		labels []string
		dst    *[]types.TimeString
	}{
		{"monday", slots.Monday, &schedule.Monday},
		{"tuesday", slots.Tuesday, &schedule.Tuesday},
		{"wednesday", slots.Wednesday, &schedule.Wednesday},
		{"thursday", slots.Thursday, &schedule.Thursday},
		{"friday", slots.Friday, &schedule.Friday},
		{"saturday", slots.Saturday, &schedule.Saturday},
		{"sunday", slots.Sunday, &schedule.Sunday},
	}

	for _, day := range days {
		for _, label := range day.labels {
			slot, err := types.NewTimeStringFromString(label)
			if err != nil {
				return nil, fmt.Errorf("%s: invalid slot %q: %w", day.name, label, err)
			}
			*day.dst = append(*day.dst, slot)
		}
	}

	return schedule, nil
}
