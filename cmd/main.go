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

	cancelBookingHandler "github.com/m04kA/HotelBookingService/internal/api/handlers/cancel_booking"
	changeBookingStatusHandler "github.com/m04kA/HotelBookingService/internal/api/handlers/change_booking_status"
	checkAvailabilityHandler "github.com/m04kA/HotelBookingService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/HotelBookingService/internal/api/handlers/create_booking"
	createManualBookingHandler "github.com/m04kA/HotelBookingService/internal/api/handlers/create_manual_booking"
	createRoomHandler "github.com/m04kA/HotelBookingService/internal/api/handlers/create_room"
	deleteBookingHandler "github.com/m04kA/HotelBookingService/internal/api/handlers/delete_booking"
	deleteRoomHandler "github.com/m04kA/HotelBookingService/internal/api/handlers/delete_room"
	getBookingHandler "github.com/m04kA/HotelBookingService/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/m04kA/HotelBookingService/internal/api/handlers/get_bookings"
	getDashboardHandler "github.com/m04kA/HotelBookingService/internal/api/handlers/get_dashboard"
	getRoomHandler "github.com/m04kA/HotelBookingService/internal/api/handlers/get_room"
	getRoomFeaturesHandler "github.com/m04kA/HotelBookingService/internal/api/handlers/get_room_features"
	getRoomsHandler "github.com/m04kA/HotelBookingService/internal/api/handlers/get_rooms"
	getUserBookingsHandler "github.com/m04kA/HotelBookingService/internal/api/handlers/get_user_bookings"
	loginHandler "github.com/m04kA/HotelBookingService/internal/api/handlers/login"
	registerHandler "github.com/m04kA/HotelBookingService/internal/api/handlers/register"
	updateBookingHandler "github.com/m04kA/HotelBookingService/internal/api/handlers/update_booking"
	updateRoomHandler "github.com/m04kA/HotelBookingService/internal/api/handlers/update_room"
	"github.com/m04kA/HotelBookingService/internal/api/middleware"
	"github.com/m04kA/HotelBookingService/internal/config"
	"github.com/m04kA/HotelBookingService/internal/domain"
	bookingRepo "github.com/m04kA/HotelBookingService/internal/infra/storage/booking"
	dashboardRepo "github.com/m04kA/HotelBookingService/internal/infra/storage/dashboard"
	"github.com/m04kA/HotelBookingService/internal/infra/storage/images"
	roomRepo "github.com/m04kA/HotelBookingService/internal/infra/storage/room"
	"github.com/m04kA/HotelBookingService/internal/infra/storage/schema"
	userRepo "github.com/m04kA/HotelBookingService/internal/infra/storage/user"
	authService "github.com/m04kA/HotelBookingService/internal/service/auth"
	bookingsService "github.com/m04kA/HotelBookingService/internal/service/bookings"
	roomsService "github.com/m04kA/HotelBookingService/internal/service/rooms"
	"github.com/m04kA/HotelBookingService/internal/usecase/availability"
	createBookingUC "github.com/m04kA/HotelBookingService/internal/usecase/create_booking"
	createManualBookingUC "github.com/m04kA/HotelBookingService/internal/usecase/create_manual_booking"
	getDashboardUC "github.com/m04kA/HotelBookingService/internal/usecase/get_dashboard"
	updateBookingUC "github.com/m04kA/HotelBookingService/internal/usecase/update_booking"
	"github.com/m04kA/HotelBookingService/pkg/dbmetrics"
	"github.com/m04kA/HotelBookingService/pkg/logger"
	"github.com/m04kA/HotelBookingService/pkg/metrics"
	"github.com/m04kA/HotelBookingService/pkg/txmanager"
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

	log.Info("Starting HotelBookingService...")

	// Метрики (nil, если выключены: все потребители это допускают)
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

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	txManager := txmanager.NewTransactionManager(wrappedDB, cfg.Database.TxMaxRetries)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), time.Minute)
	defer cancelStartup()

	if cfg.Database.AutoMigrate {
		if err := schema.Migrate(startupCtx, wrappedDB, txManager, log); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	roomRepository := roomRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)
	dashboardRepository := dashboardRepo.NewRepository(wrappedDB)

	imageStore, err := images.NewStore(cfg.Images.Dir, cfg.Images.URLPrefix, cfg.Images.MaxSizeBytes)
	if err != nil {
		log.Fatal("Failed to initialize image store: %v", err)
	}

	// Сервисы
	authSvc := authService.NewService(
		userRepository,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
		log,
	)
	bookingSvc := bookingsService.NewService(bookingRepository, txManager, metricsCollector, log)
	roomSvc := roomsService.NewService(roomRepository, bookingRepository, imageStore, log)

	if err := authSvc.SeedAdmin(startupCtx, cfg.Admin.Email, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		log.Fatal("Failed to seed admin account: %v", err)
	}

	// Use cases
	checker := availability.NewChecker(bookingRepository)
	availabilityUseCase := availability.NewUseCase(roomRepository, checker, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		checker,
		txManager,
		metricsCollector,
		log,
	)
	createManualBookingUseCase := createManualBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		userRepository,
		checker,
		txManager,
		metricsCollector,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		checker,
		txManager,
		metricsCollector,
		cfg.Booking.AllowOverlapOnEdit,
		log,
	)
	dashboardUseCase := getDashboardUC.NewUseCase(
		dashboardRepository,
		bookingRepository,
		roomRepository,
		txManager,
		cfg.Booking.CalendarDays,
		cfg.Booking.DashboardLatest,
		log,
	)

	// Handlers
	register := registerHandler.NewHandler(authSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	getRooms := getRoomsHandler.NewHandler(roomSvc, log)
	getRoom := getRoomHandler.NewHandler(roomSvc, log)
	getRoomFeatures := getRoomFeaturesHandler.NewHandler(roomSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(availabilityUseCase, log)
	createRoom := createRoomHandler.NewHandler(roomSvc, log)
	updateRoom := updateRoomHandler.NewHandler(roomSvc, log)
	deleteRoom := deleteRoomHandler.NewHandler(roomSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	approveBooking := changeBookingStatusHandler.NewHandler(bookingSvc, changeBookingStatusHandler.ActionApprove, log)
	adminCancelBooking := changeBookingStatusHandler.NewHandler(bookingSvc, changeBookingStatusHandler.ActionCancel, log)
	completeBooking := changeBookingStatusHandler.NewHandler(bookingSvc, changeBookingStatusHandler.ActionComplete, log)
	createManualBooking := createManualBookingHandler.NewHandler(createManualBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	getDashboard := getDashboardHandler.NewHandler(dashboardUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recover(log))
	r.Use(middleware.Metrics(metricsCollector))

	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Загруженные изображения номеров
	r.PathPrefix(cfg.Images.URLPrefix).Handler(
		http.StripPrefix(cfg.Images.URLPrefix, http.FileServer(http.Dir(cfg.Images.Dir))),
	).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	api.HandleFunc("/rooms", getRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/features", getRoomFeatures.Handle).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{roomId}", getRoom.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc, log))

	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// ============================================================
	// ADMIN ROUTES
	// ============================================================

	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireRole(log, domain.RoleAdmin))

	admin.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	admin.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings", createManualBooking.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/bookings/{bookingId}/approve", approveBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/cancel", adminCancelBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/complete", completeBooking.Handle).Methods(http.MethodPatch)

	// --- Номера ---
	admin.HandleFunc("/rooms", createRoom.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/rooms/{roomId}", updateRoom.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/rooms/{roomId}", deleteRoom.Handle).Methods(http.MethodDelete)

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
