package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/vitaehq/vitae/builder/preview"
	"github.com/vitaehq/vitae/builder/preview/previewapi"
	"github.com/vitaehq/vitae/builder/preview/previewinfra"
	"github.com/vitaehq/vitae/builder/resume/resumeapi"
	"github.com/vitaehq/vitae/builder/resume/resumeinfra"
	"github.com/vitaehq/vitae/builder/resume/resumesrv"
	"github.com/vitaehq/vitae/builder/wizard/wizardapi"
	"github.com/vitaehq/vitae/builder/wizard/wizardinfra"
	"github.com/vitaehq/vitae/builder/wizard/wizardsrv"
	"github.com/vitaehq/vitae/pkg/iam/auth"
	"github.com/vitaehq/vitae/pkg/iam/auth/authinfra"
	"github.com/vitaehq/vitae/pkg/iam/user/userinfra"
	"github.com/vitaehq/vitae/pkg/logx"
)

// Container holds all application dependencies
type Container struct {
	// Infrastructure
	DB    *sqlx.DB
	Redis *redis.Client

	// Services
	AuthService   *auth.AuthService
	TokenService  auth.TokenService
	ResumeService *resumesrv.Service
	WizardService *wizardsrv.Service
	Renderer      *preview.Renderer
	Printer       preview.Printer

	// API Handlers
	AuthHandlers    *auth.Handlers
	ResumeHandlers  *resumeapi.Handlers
	WizardHandlers  *wizardapi.Handlers
	PreviewHandlers *previewapi.Handlers

	// Middleware
	AuthMiddleware *auth.TokenMiddleware
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	if err := godotenv.Load(); err != nil {
		logx.Debugf("No .env file loaded: %v", err)
	}

	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_USER", "postgres"),
			os.Getenv("DB_PASS"),
			getEnv("DB_NAME", "vitae"),
		)
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASS"),
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}
}

func (c *Container) initServices() {
	// --- Repositories ---
	userRepo := userinfra.NewPostgresUserRepository(c.DB)
	resumeRepo := resumeinfra.NewPostgresResumeRepository(c.DB)
	draftStore := wizardinfra.NewRedisDraftStore(c.Redis)

	// --- Auth ---
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
		secret = "super-secret-key-please-change-me-in-production"
	}
	tokenTTL := time.Duration(getEnvInt("TOKEN_TTL_HOURS", 24)) * time.Hour

	c.TokenService = auth.NewJWTService(secret, tokenTTL, getEnv("JWT_ISSUER", "vitae"))
	passwordSvc := authinfra.NewBcryptPasswordService()
	revoker := authinfra.NewRedisTokenRevoker(c.Redis)

	c.AuthService = auth.NewAuthService(userRepo, passwordSvc, c.TokenService, revoker)
	c.AuthMiddleware = auth.NewTokenMiddleware(c.TokenService, revoker)

	// --- Builder ---
	c.ResumeService = resumesrv.NewService(resumeRepo)
	c.WizardService = wizardsrv.NewService(draftStore, c.ResumeService)
	c.Renderer = preview.NewRenderer()
	c.Printer = previewinfra.NewChromedpPrinter()

	// --- Handlers ---
	c.AuthHandlers = auth.NewHandlers(c.AuthService)
	c.ResumeHandlers = resumeapi.NewHandlers(c.ResumeService)
	c.WizardHandlers = wizardapi.NewHandlers(c.WizardService, c.Renderer)
	c.PreviewHandlers = previewapi.NewHandlers(c.ResumeService, c.Renderer, c.Printer)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logx.Warnf("Invalid value for %s: %q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
