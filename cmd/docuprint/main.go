package main

import (
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"docuprint/internal/config"
	"docuprint/internal/database"
	httpapi "docuprint/internal/http"
	"docuprint/internal/logger"
	"docuprint/internal/repository"
	"docuprint/internal/seed"
	"docuprint/internal/service"
	"docuprint/internal/session"
	"docuprint/internal/store"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Env)
	defer log.Sync()

	// Directory and admin accounts are always seeded in memory.
	directory := repository.NewMemoryDirectoryRepo(seed.Directory())
	admins := repository.NewMemoryAdminsRepo(seed.Admins())

	// Default storage is in-memory; postgres is opt-in and falls back
	// to memory when the connection fails.
	var (
		signups       repository.SignupsRepo       = repository.NewMemorySignupsRepo()
		residents     repository.ResidentsRepo     = repository.NewMemoryResidentsRepo()
		printJobs     repository.PrintJobsRepo     = repository.NewMemoryPrintJobsRepo()
		notifications repository.NotificationsRepo = repository.NewMemoryNotificationsRepo()
	)
	var db *sql.DB
	if cfg.DBEnabled {
		if d, err := database.NewPostgresDB(&cfg.Database); err == nil {
			db = d
			signups = repository.NewPostgresSignupsRepo(db)
			residents = repository.NewPostgresResidentsRepo(db)
			printJobs = repository.NewPostgresPrintJobsRepo(db)
			notifications = repository.NewPostgresNotificationsRepo(db)
			log.Info("DB enabled for docuprint")
		} else {
			log.Warn("DB enabled but connection failed, using in-memory store", zap.Error(err))
		}
	}

	// OTP entries live in redis when enabled, memory otherwise.
	var kv store.KV = store.NewMemoryKV()
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		kv = store.NewRedisKV(redisClient)
	}

	var sms service.SMSSender
	if cfg.SMS.GatewayURL != "" {
		sms = service.NewSMSClient(cfg.SMS, log)
	}

	sessions := httpapi.NewSessions(session.NewManager(cfg.Session.Secret, cfg.Session.TTL))

	signupSvc := service.NewSignupService(signups, residents, admins, notifications, directory, log)
	otpSvc := service.NewOtpService(kv, residents, sms, cfg.OTP.TTL, log)
	printJobSvc := service.NewPrintJobService(printJobs, residents, admins, log)
	notificationSvc := service.NewNotificationService(notifications, log)

	router := httpapi.NewRouter(httpapi.Handlers{
		Auth:          httpapi.NewAuthHandler(otpSvc, residents, admins, sessions, log),
		Signups:       httpapi.NewSignupHandler(signupSvc, sessions, log),
		PrintJobs:     httpapi.NewPrintJobHandler(printJobSvc, sessions, log),
		Notifications: httpapi.NewNotificationHandler(notificationSvc, sessions, log),
		Directory:     httpapi.NewDirectoryHandler(directory),
		Me:            httpapi.NewMeHandler(printJobSvc, residents, sessions),
	})

	srv := service.NewServer(cfg.HTTP, router, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
	case err := <-errCh:
		log.Error("HTTP server failed", zap.Error(err))
	}

	_ = srv.Stop()
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if db != nil {
		_ = db.Close()
	}
}
