package config

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"recipebox/internal/api/handlers"
	"recipebox/internal/api/presenters"
	"recipebox/internal/api/routes"
	"recipebox/internal/middleware"
	"recipebox/internal/utils"
	"recipebox/internal/utils/mailing"
	"recipebox/internal/utils/storage"
	"recipebox/internal/views"
	"recipebox/pkg/announcement"
	"recipebox/pkg/jwt"
	"recipebox/pkg/recipe"
	"recipebox/pkg/review"
	"recipebox/pkg/user"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxUploadSize = 10 * 1024 * 1024

func NewApp(db *gorm.DB, log *zap.Logger) (*fiber.App, error) {
	utils.InitValidator()
	cfg := utils.Get()

	app := fiber.New(fiber.Config{
		AppName:           "recipebox",
		EnablePrintRoutes: cfg.AppEnv == "development",
		Views:             views.NewEngine(),
		ViewsLayout:       views.Layout,
		ErrorHandler:      presenters.ErrorHandler,
		BodyLimit:         maxUploadSize,
	})
	validator := utils.Validate

	// setting up access logging
	accessLog, err := openAccessLog(cfg.LogFile)
	if err != nil {
		return nil, err
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     accessLog,
	}))

	aesKey := cfg.AESKey
	if aesKey == "" {
		log.Warn("AES_KEY is not set, cookies will not survive a restart")
		aesKey = encryptcookie.GenerateKey()
	}
	app.Use(encryptcookie.New(encryptcookie.Config{Key: aesKey}))

	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		log.Warn("JWT_SECRET is not set, sessions will not survive a restart")
		jwtSecret = uuid.NewString()
	}

	// utils
	s3, err := storage.NewAwsS3(context.Background())
	if err != nil {
		return nil, fmt.Errorf("configure s3: %w", err)
	}
	if s3 == nil {
		log.Info("AWS_S3_BUCKET is not set, recipe images are disabled")
	}
	mailer := mailing.NewMailer()

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	reviewRepository := review.NewReviewRepository(db)
	announcementRepository := announcement.NewAnnouncementRepository(db)

	// Service
	jwtService := jwt.NewJWTService(jwtSecret, time.Duration(cfg.SessionTTLMinutes)*time.Minute)
	recipeService := recipe.NewRecipeService(recipeRepository, s3, log)
	userService := user.NewUserService(userRepository, recipeService, jwtService, mailer, log)
	reviewService := review.NewReviewService(reviewRepository, recipeRepository)
	announcementService := announcement.NewAnnouncementService(announcementRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, jwtService, validator, log)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator, log)
	reviewHandler := handlers.NewReviewHandler(reviewService, validator, log)
	announcementHandler := handlers.NewAnnouncementHandler(announcementService, validator, log)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		RecipeHandler:       recipeHandler,
		ReviewHandler:       reviewHandler,
		AnnouncementHandler: announcementHandler,
		Middleware:          middleware.NewMiddleware(log),
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

func openAccessLog(path string) (io.Writer, error) {
	if path == "" {
		return os.Stdout, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	return file, nil
}
