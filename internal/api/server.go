// @title Alumni Network API
// @version 1.0
// @description Auth, onboarding, directory and dashboard endpoints for the alumni network.
// @host localhost:3000
// @BasePath /
// @schemes http
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer <JWT>

package api

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/SundayYogurt/alumni_service/config"
	"github.com/SundayYogurt/alumni_service/infra/queue"
	"github.com/SundayYogurt/alumni_service/internal/api/rest/handlers"
	"github.com/SundayYogurt/alumni_service/internal/clients/google"
	"github.com/SundayYogurt/alumni_service/internal/directory"
	"github.com/SundayYogurt/alumni_service/internal/domain"
	"github.com/SundayYogurt/alumni_service/internal/helper"
	"github.com/SundayYogurt/alumni_service/internal/interfaces"
	"github.com/SundayYogurt/alumni_service/internal/repository"
	"github.com/SundayYogurt/alumni_service/internal/services"
	"github.com/SundayYogurt/alumni_service/pkg/cloudinary"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// one id for every replica so only one migrates at a time
const migrateLockID int64 = 20260222

type Deps struct {
	Auth      helper.Auth
	AuthSvc   services.AuthService
	Profile   services.ProfileService
	Directory services.DirectoryService
	Dashboard services.DashboardService
	Config    config.Config
}

// NewApp builds the HTTP surface from already-wired services.
func NewApp(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:   "alumni-service",
		BodyLimit: 6 * 1024 * 1024, // avatar (5MB) plus multipart overhead
	})

	app.Use(recover.New())
	app.Use(logger.New())

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins:     d.Config.BaseURL,
		AllowHeaders:     "Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	RegisterSwagger(app, d.Config.APIURL)

	handlers.NewAuthHandler(d.AuthSvc, d.Auth, d.Config.BaseURL, d.Config.CookieSecure).SetupRoutes(app)
	handlers.NewProfileHandler(d.Profile, d.Auth).SetupRoutes(app)
	handlers.NewDirectoryHandler(d.Directory, d.Profile, d.Auth).SetupRoutes(app)
	handlers.NewDashboardHandler(d.Dashboard, d.Profile, d.Auth).SetupRoutes(app)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	return app
}

func StartServer(cfg config.Config, log *slog.Logger) error {
	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("database connection error: %w", err)
	}
	log.Info("database connected")

	if err := migrate(db); err != nil {
		return err
	}
	log.Info("migration successful")

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
		log,
	)
	var producer interfaces.ProducerHandler
	if kafkaProducer != nil {
		producer = kafkaProducer
		defer kafkaProducer.Close()
	} else {
		log.Warn("KAFKA_BROKER not set; reset and welcome emails are disabled")
	}

	var up interfaces.Uploader
	if cld, err := cloudinary.New(cfg.CloudinaryUrl); err != nil {
		log.Warn("avatar uploads disabled", slog.String("reason", err.Error()))
	} else {
		up = cloudinary.NewCloudinaryUploader(cld)
	}

	var oauth services.OAuthProvider
	if g := google.New(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL); g != nil {
		oauth = g
	} else {
		log.Warn("GOOGLE_CLIENT_ID/SECRET not set; google sign-in disabled")
	}

	authHelper := helper.SetupAuth(cfg.AccessSecret)

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	eventRepo := repository.NewEventRepository(db)
	jobRepo := repository.NewJobRepository(db)

	// ---------- Service ----------
	app := NewApp(Deps{
		Auth:      authHelper,
		AuthSvc:   services.NewAuthService(userRepo, profileRepo, authHelper, oauth, producer, log),
		Profile:   services.NewProfileService(profileRepo, up, producer, log),
		Directory: services.NewDirectoryService(directory.NewLoader(profileRepo, log), cfg.SearchDebounce),
		Dashboard: services.NewDashboardService(eventRepo, jobRepo, profileRepo, log),
		Config:    cfg,
	})

	// ---------- Listen ----------
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = app.ShutdownWithContext(shutdownCtx)
	}()

	log.Info("listening", slog.String("addr", cfg.ServerPort))
	return app.Listen(cfg.ServerPort)
}

// migrate runs AutoMigrate under a session-level advisory lock. The lock
// and unlock must run on the same connection, so a single one is reserved.
func migrate(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	conn, err := sqlDB.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("migration connection: %w", err)
	}
	defer conn.Close()

	tx, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{})
	if err != nil {
		return err
	}

	if err := tx.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
		return fmt.Errorf("migration lock error: %w", err)
	}
	defer func() {
		_ = tx.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
	}()

	if err := tx.AutoMigrate(
		&domain.User{},
		&domain.Profile{},
		&domain.Event{},
		&domain.Job{},
	); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}
	return nil
}
