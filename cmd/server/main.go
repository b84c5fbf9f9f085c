package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	api "rentamaq-backend/internal/api/http"
	"rentamaq-backend/internal/config"
	"rentamaq-backend/internal/jobs"
	"rentamaq-backend/internal/logger"
	"rentamaq-backend/internal/repository/postgres"
	"rentamaq-backend/internal/scheduler"
	"rentamaq-backend/internal/security"
	"rentamaq-backend/internal/service"

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
	logger.Info("Starting RentaMaq backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
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
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)

	emailSvc := service.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	numberingSvc := service.NewNumberingService(store.SequenceRepository, time.Now)
	contractSvc := service.NewContractService(
		store.ContractRepository,
		store.ClientRepository,
		store.EquipmentRepository,
		numberingSvc,
		emailSvc,
		time.Now,
	)
	paymentSvc := service.NewPaymentService(
		store.PaymentRepository,
		store.ContractRepository,
		store.ClientRepository,
		numberingSvc,
		emailSvc,
		time.Now,
	)
	equipmentSvc := service.NewEquipmentService(store.EquipmentRepository, numberingSvc, time.Now)
	clientSvc := service.NewClientService(store.ClientRepository, time.Now)

	if cfg.Scheduler.Enabled {
		jobRunner := jobs.NewJobRunner(store, emailSvc, cfg, time.Now)
		sched := scheduler.NewScheduler(jobRunner)
		sched.Start()
		defer sched.Stop()
	} else {
		logger.Info("Scheduler disabled by configuration")
	}

	router := api.NewRouter(api.Services{
		Contract:  contractSvc,
		Payment:   paymentSvc,
		Equipment: equipmentSvc,
		Client:    clientSvc,
		Numbering: numberingSvc,
	}, tokenManager)

	addr := cfg.GetServerAddress()
	logger.Info("HTTP server listening", "address", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("HTTP server stopped", "error", err)
		log.Fatalf("HTTP server stopped: %v", err)
	}
}
