// File: onibook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"onibook/config"
	"onibook/cron"
	"onibook/database"
	availabilityRepo "onibook/database/repository/availability"
	bookingRepo "onibook/database/repository/booking"
	commentRepo "onibook/database/repository/comment"
	userRepo "onibook/database/repository/user"
	"onibook/handlers"
	"onibook/middleware"
	"onibook/routes"
	"onibook/services/account"
	commentSvc "onibook/services/comment"
	"onibook/services/schedule"
	"onibook/services/storage"
	"onibook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	var storageService storage.StorageService
	var err error
	switch config.AppConfig.StorageBackend {
	case "cloudinary":
		storageService, err = storage.NewCloudinaryStorageService(
			config.AppConfig.CloudinaryCloud,
			config.AppConfig.CloudinaryKey,
			config.AppConfig.CloudinarySecret,
		)
	default:
		storageService, err = storage.NewLocalStorageService(config.AppConfig.UploadDir)
	}
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize attachment storage: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	availRepo := availabilityRepo.NewMongoAvailabilityRepo()
	bookRepo := bookingRepo.NewMongoBookingRepo()
	usrRepo := userRepo.NewMongoUserRepo()
	cmtRepo := commentRepo.NewMongoCommentRepo()

	// services.
	scheduleService := &schedule.DefaultScheduleService{
		AvailabilityRepo: availRepo,
		BookingRepo:      bookRepo,
		Technician:       config.AppConfig.Technician,
	}
	accountService := &account.DefaultAccountService{
		Repo:     usrRepo,
		Sessions: utils.GetAuthCacheClient(),
	}
	commentService := &commentSvc.DefaultCommentService{
		Repo: cmtRepo,
	}

	ctx, cancelBootstrap := context.WithTimeout(context.Background(), 10*time.Second)
	if err := accountService.EnsureAdmin(ctx, config.AppConfig.AdminEmail, config.AppConfig.AdminPassword); err != nil {
		logger.Sugar().Warnf("main: admin bootstrap skipped: %v", err)
	}
	cancelBootstrap()

	// Background worker for orphaned attachments.
	cron.StartSweepWorker(storageService)
	sweepQueue := cron.NewSweepClient()
	defer sweepQueue.Close()

	// handlers.
	authHandler := handlers.NewAuthHandler(accountService)
	availabilityHandler := handlers.NewAvailabilityHandler(scheduleService)
	bookingHandler := handlers.NewBookingHandler(scheduleService, storageService, sweepQueue)
	commentHandler := handlers.NewCommentHandler(commentService)

	handlerBundle := &handlers.HandlerBundle{
		Sessions: utils.GetAuthCacheClient(),

		RegisterHandler: authHandler.RegisterHandler,
		LoginHandler:    authHandler.LoginHandler,

		ListAvailabilityHandler:   availabilityHandler.ListHandler,
		GetAvailabilityHandler:    availabilityHandler.GetByDateHandler,
		UpsertAvailabilityHandler: availabilityHandler.UpsertHandler,
		RemoveSlotHandler:         availabilityHandler.RemoveSlotHandler,

		AvailableSlotsHandler: bookingHandler.AvailableSlotsHandler,
		BookHandler:           bookingHandler.BookHandler,
		MyBookingsHandler:     bookingHandler.MyBookingsHandler,
		AdminListHandler:      bookingHandler.AdminListHandler,
		AdminCancelHandler:    bookingHandler.AdminCancelHandler,

		ListCommentsHandler:  commentHandler.ListHandler,
		CreateCommentHandler: commentHandler.CreateHandler,
	}

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
