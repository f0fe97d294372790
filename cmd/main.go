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

	applyCouponHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/apply_coupon"
	cancelReservationHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/delete_reservation"
	deleteShiftHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/delete_shift"
	exportStatisticsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/export_statistics"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_available_slots"
	getDashboardHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_dashboard"
	getReservationHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_reservation"
	getStatisticsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_statistics"
	listCouponsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/list_coupons"
	listMyReservationsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/list_my_reservations"
	listReservationsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/list_reservations"
	listShiftsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/list_shifts"
	listStaffHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/list_staff"
	listStaffReservationsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/list_staff_reservations"
	listSurveysHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/list_surveys"
	loginHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/login"
	registerHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/register"
	submitSurveyHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/submit_survey"
	updateReservationHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/update_reservation"
	upsertShiftHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/upsert_shift"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/config"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	couponRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/coupon"
	reservationRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/reservation"
	shiftRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/shift"
	surveyRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/survey"
	userRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/user"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/events"
	couponsService "github.com/m04kA/SMC-SalonBooking/internal/service/coupons"
	reservationsService "github.com/m04kA/SMC-SalonBooking/internal/service/reservations"
	shiftsService "github.com/m04kA/SMC-SalonBooking/internal/service/shifts"
	statisticsService "github.com/m04kA/SMC-SalonBooking/internal/service/statistics"
	surveysService "github.com/m04kA/SMC-SalonBooking/internal/service/surveys"
	usersService "github.com/m04kA/SMC-SalonBooking/internal/service/users"
	applyCouponUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/apply_coupon"
	createReservationUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_available_slots"
	issueCouponUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/issue_coupon"
	"github.com/m04kA/SMC-SalonBooking/internal/usecase/slot_validation"
	submitSurveyUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/submit_survey"
	updateReservationUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/update_reservation"
	"github.com/m04kA/SMC-SalonBooking/pkg/authtoken"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/metrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/txmanager"
)

// eventPublisher is satisfied by both the RabbitMQ publisher and the no-op one
type eventPublisher interface {
	PublishReservationBooked(ctx context.Context, event events.ReservationBooked) error
	PublishReservationCancelled(ctx context.Context, event events.ReservationCancelled) error
	PublishCouponIssued(ctx context.Context, event events.CouponIssued) error
	Close() error
}

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-SalonBooking...")

	// nil collector disables every metric call below
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Repositories
	userRepository := userRepo.NewRepository(wrappedDB)
	shiftRepository := shiftRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	couponRepository := couponRepo.NewRepository(wrappedDB)
	surveyRepository := surveyRepo.NewRepository(wrappedDB)

	// Event publisher; the service keeps working without a broker
	var publisher eventPublisher = events.NoopPublisher{}
	if cfg.Events.Enabled {
		amqpPublisher, err := events.NewPublisher(
			cfg.Events.URL,
			cfg.Events.Exchange,
			time.Duration(cfg.Events.PublishTimeout)*time.Second,
			log,
		)
		if err != nil {
			log.Warn("Events disabled, broker unavailable: %v", err)
		} else {
			publisher = amqpPublisher
			log.Info("Publishing events to exchange %s", cfg.Events.Exchange)
		}
	}

	// Use cases
	slotValidator := slot_validation.NewValidator(reservationRepository, shiftRepository, log)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		reservationRepository,
		shiftRepository,
		userRepository,
		log,
	)
	applyCouponUseCase := applyCouponUC.NewUseCase(
		reservationRepository,
		couponRepository,
		txMgr,
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		userRepository,
		slotValidator,
		applyCouponUseCase,
		txMgr,
		publisher,
		metricsCollector,
		log,
	)
	updateReservationUseCase := updateReservationUC.NewUseCase(
		reservationRepository,
		userRepository,
		slotValidator,
		txMgr,
		log,
	)
	issueCouponUseCase := issueCouponUC.NewUseCase(
		couponRepository,
		surveyRepository,
		issueCouponUC.NewRandomCoin(cfg.Coupons.Seed),
		log,
	)
	submitSurveyUseCase := submitSurveyUC.NewUseCase(
		reservationRepository,
		surveyRepository,
		issueCouponUseCase,
		txMgr,
		publisher,
		metricsCollector,
		log,
	)

	// Services
	tokenManager := authtoken.NewManager(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
		cfg.Auth.Issuer,
	)
	userSvc := usersService.NewService(userRepository, tokenManager, log)
	shiftSvc := shiftsService.NewService(shiftRepository, userRepository, log)
	reservationSvc := reservationsService.NewService(reservationRepository, txMgr, publisher, metricsCollector, log)
	couponSvc := couponsService.NewService(couponRepository, log)
	surveySvc := surveysService.NewService(surveyRepository, log)
	statisticsSvc := statisticsService.NewService(reservationRepository, log)

	// Handlers
	register := registerHandler.NewHandler(userSvc, log)
	login := loginHandler.NewHandler(userSvc, log)
	listStaff := listStaffHandler.NewHandler(userSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)

	getDashboard := getDashboardHandler.NewHandler(reservationSvc, log)
	listShifts := listShiftsHandler.NewHandler(shiftSvc, log)
	upsertShift := upsertShiftHandler.NewHandler(shiftSvc, log)
	deleteShift := deleteShiftHandler.NewHandler(shiftSvc, log)

	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationSvc, log)
	listMyReservations := listMyReservationsHandler.NewHandler(reservationSvc, log)
	listStaffReservations := listStaffReservationsHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)

	applyCoupon := applyCouponHandler.NewHandler(applyCouponUseCase, log)
	listCoupons := listCouponsHandler.NewHandler(couponSvc, log)
	submitSurvey := submitSurveyHandler.NewHandler(submitSurveyUseCase, log)
	listSurveys := listSurveysHandler.NewHandler(surveySvc, log)
	getStatistics := getStatisticsHandler.NewHandler(statisticsSvc, log)
	exportStatistics := exportStatisticsHandler.NewHandler(statisticsSvc, log)

	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/staff", listStaff.Handle).Methods(http.MethodGet)
	api.HandleFunc("/staff/{staffId:[0-9]+}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (Authorization: Bearer <jwt>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokenManager))

	protected.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)

	// --- Shifts ---
	protected.HandleFunc("/shifts", listShifts.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/shifts", upsertShift.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/shifts/{shiftId:[0-9]+}", deleteShift.Handle).Methods(http.MethodDelete)

	// --- Reservations ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/me", listMyReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/staff", listStaffReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId:[0-9]+}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId:[0-9]+}", updateReservation.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/reservations/{reservationId:[0-9]+}", deleteReservation.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/reservations/{reservationId:[0-9]+}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId:[0-9]+}/coupon", applyCoupon.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId:[0-9]+}/survey", submitSurvey.Handle).Methods(http.MethodPost)

	// --- Coupons ---
	protected.HandleFunc("/coupons", listCoupons.Handle).Methods(http.MethodGet)

	// --- Administration ---
	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Handle("/reservations",
		requireCapability(domain.Role.CanViewAllReservations, listReservations.Handle)).Methods(http.MethodGet)
	admin.Handle("/surveys",
		requireCapability(domain.Role.CanViewSurveys, listSurveys.Handle)).Methods(http.MethodGet)
	admin.Handle("/statistics",
		requireCapability(domain.Role.CanViewStatistics, getStatistics.Handle)).Methods(http.MethodGet)
	admin.Handle("/statistics/export",
		requireCapability(domain.Role.CanViewStatistics, exportStatistics.Handle)).Methods(http.MethodGet)

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

	close(stopMetricsCh)
	if err := publisher.Close(); err != nil {
		log.Warn("Failed to close event publisher: %v", err)
	}

	log.Info("Server stopped gracefully")
}

func requireCapability(allowed func(domain.Role) bool, h http.HandlerFunc) http.Handler {
	return middleware.RequireCapability(allowed)(h)
}
