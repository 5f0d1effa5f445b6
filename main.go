package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"job-board-api/config"
	"job-board-api/internal/app"
	"job-board-api/internal/database"
	"job-board-api/internal/files"
	"job-board-api/internal/mailer"
	"job-board-api/internal/server"
	"job-board-api/internal/services"
	"job-board-api/internal/storage/postgres"

	"github.com/go-playground/validator/v10"
)

// @title           Job Board API
// @version         1.0
// @description     Backend for a job search platform: accounts, companies, job postings and applications.

// @host      localhost:8080
// @BasePath  /
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Initialize Redis Client ---
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	dbPool, err := database.NewConnectionPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	if err := database.EnsureSchema(context.Background(), dbPool); err != nil {
		log.Fatalf("Failed to ensure database schema: %v", err)
	}

	// --- Initialize OTP Mail Dispatch ---
	var otpMailer mailer.Mailer
	if cfg.SMTP.Host != "" {
		otpMailer = mailer.NewSMTPMailer(cfg.SMTP)
		log.Printf("SMTP mailer configured for host %s", cfg.SMTP.Host)
	} else {
		otpMailer = mailer.LogMailer{}
		log.Println("SMTP host not configured, OTP codes will be logged instead of mailed.")
	}

	resumeStore, err := files.NewResumeStore(cfg.Uploads.Dir)
	if err != nil {
		log.Fatalf("Failed to initialize resume store: %v", err)
	}

	// --- Repositories and Services ---
	userRepo := postgres.NewUserRepo(dbPool)
	companyRepo := postgres.NewCompanyRepo(dbPool)
	jobRepo := postgres.NewJobRepo(dbPool)
	appRepo := postgres.NewApplicationRepo(dbPool)

	tokenStore := services.NewRedisTokenStore(redisClient)

	userService := services.NewUserService(userRepo, tokenStore, otpMailer,
		cfg.JWT.Secret, cfg.JWT.Expiration, cfg.JWT.RefreshExpiration)
	companyService := services.NewCompanyService(dbPool, companyRepo, jobRepo, appRepo)
	jobService := services.NewJobService(dbPool, jobRepo, companyRepo)
	applicationService := services.NewApplicationService(appRepo, jobRepo)

	validate := validator.New()

	application := &app.Application{
		Config:             cfg,
		DBPool:             dbPool,
		RedisClient:        redisClient,
		Validator:          validate,
		ResumeStore:        resumeStore,
		UserService:        userService,
		CompanyService:     companyService,
		JobService:         jobService,
		ApplicationService: applicationService,
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Println("Shutting down server...")

	//Gin shutdowns on its own

	log.Println("Application gracefully stopped.")
}
