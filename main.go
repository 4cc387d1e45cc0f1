// File: counselhub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"counselhub/config"
	"counselhub/cron"
	"counselhub/database"
	bookingPaymentRepo "counselhub/database/repository/bookingpayment"
	clientRepo "counselhub/database/repository/client"
	counsellorRepo "counselhub/database/repository/counsellor"
	meetingRepo "counselhub/database/repository/meeting"
	rateRepoPkg "counselhub/database/repository/rate"
	reservationRepoPkg "counselhub/database/repository/reservation"
	slotRepoPkg "counselhub/database/repository/slot"
	"counselhub/handlers"
	"counselhub/middleware"
	"counselhub/routes"
	"counselhub/services/booking"
	"counselhub/services/calendar"
	"counselhub/services/notification"
	"counselhub/services/payment"
	"counselhub/services/rate"
	"counselhub/services/reservation"
	"counselhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitHoldCache()
	utils.FirebaseInit()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	calendarService, err := calendar.NewGoogleCalendarService(context.Background())
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize calendar service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	reservationRepo := reservationRepoPkg.NewMongoReservationRepo()
	rateRepo := rateRepoPkg.NewMongoRateRepo()
	slotRepo := slotRepoPkg.NewMongoSlotRepo()
	meetings := meetingRepo.NewMongoMeetingBookingRepo()
	payments := bookingPaymentRepo.NewMongoBookingPaymentRepo()
	clients := clientRepo.NewMongoClientRepo()
	counsellors := counsellorRepo.NewMongoCounsellorRepo()

	// services.
	reservationService := &reservation.DefaultReservationService{
		Store:   reservationRepo,
		Checker: &reservation.ConflictChecker{Store: reservationRepo},
		Logger:  logger,
	}

	rateResolver := &rate.DefaultRateResolver{
		Repo:             rateRepo,
		Converter:        utils.ExchangeRateConverter{},
		BaselineCurrency: config.AppConfig.BaselineCurrency,
		Logger:           logger,
	}

	gateway := payment.NewStripeGateway(logger)
	enqueuer := cron.NewEnqueuer()

	ledger := &booking.DefaultBookingPaymentLedger{
		Payments: payments,
		Meetings: meetings,
		Slots:    slotRepo,
		Gateway:  gateway,
		Logger:   logger,
	}
	orchestrator := &booking.DefaultScheduleOrchestrator{
		Slots:       slotRepo,
		Meetings:    meetings,
		Clients:     clients,
		Counsellors: counsellors,
		Rates:       rateResolver,
		Ledger:      ledger,
		Tasks:       enqueuer,
		Hold:        utils.GetHoldCacheClient(),
		HoldWindow:  time.Duration(config.AppConfig.SlotHoldMinutes) * time.Minute,
		Logger:      logger,
	}
	// Settled payments finalize through the orchestrator.
	ledger.Finalizer = orchestrator

	dispatcher := notification.NewFCMDispatcher(utils.FCMClient, calendarService, logger)
	cron.InitBookingWorker(dispatcher, meetings, orchestrator)

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(
		reservationService,
		slotRepo,
		orchestrator,
		ledger,
		rateRepo,
		storageService,
	)
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
