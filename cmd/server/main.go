package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "vehicle-rental-backend/internal/api/http"
	"vehicle-rental-backend/internal/config"
	"vehicle-rental-backend/internal/logger"
	"vehicle-rental-backend/internal/repository/postgres"
	"vehicle-rental-backend/internal/security"
	"vehicle-rental-backend/internal/service"
	"vehicle-rental-backend/internal/storage"
	"vehicle-rental-backend/internal/utils"

	_ "github.com/lib/pq"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Vehicle Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	logger.Info("Using local document storage", "upload_dir", cfg.Storage.UploadDir)
	localStorage, err := storage.NewLocalStorage(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		fmt.Sprintf("%d", cfg.SMTP.Port),
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	fees := utils.FeeSchedule{
		DeliveryFeeCents: cfg.Booking.DeliveryFeeCents,
		ServiceFeeCents:  cfg.Booking.ServiceFeeCents,
	}

	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	shopSvc := service.NewShopService(store.ShopRepository, store.VehicleRepository, store.BookingRepository, store.UserRepository)
	vehicleSvc := service.NewVehicleService(store.VehicleRepository, store.ShopRepository)
	bookingSvc := service.NewBookingService(
		store.BookingRepository,
		store.VehicleRepository,
		store.ShopRepository,
		store.UserRepository,
		store.StaffTaskRepository,
		store.NotificationRepository,
		emailSvc,
		fees,
	)
	profileSvc := service.NewProfileService(store.PaymentMethodRepository, store.SavedLocationRepository, store.KYCRepository)
	staffSvc := service.NewStaffService(store.StaffTaskRepository, store.StaffComplaintRepository)
	noteSvc := service.NewNotificationService(store.NotificationRepository)
	docSvc := service.NewDocumentService(store.DocumentRepository, localStorage)

	router := httpapi.NewRouter(httpapi.Handlers{
		Auth:         httpapi.NewAuthHandler(authSvc),
		Shop:         httpapi.NewShopHandler(shopSvc),
		Vehicle:      httpapi.NewVehicleHandler(vehicleSvc),
		Booking:      httpapi.NewBookingHandler(bookingSvc),
		Profile:      httpapi.NewProfileHandler(profileSvc),
		Staff:        httpapi.NewStaffHandler(staffSvc),
		Notification: httpapi.NewNotificationHandler(noteSvc),
		Upload:       httpapi.NewUploadHandler(docSvc, localStorage),
	}, tokenManager)

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
