package main

import (
	"context"
	"os"
	"os/signal"
	"recipebox/cmd/config"
	migration "recipebox/cmd/database/migrate"
	"recipebox/internal/utils"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	utils.LoadConfig()

	logger, err := utils.NewLogger(utils.GetConfig("APP_ENV"))
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := config.ConnectDB()
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := migration.Migrate(db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	app, err := config.NewApp(db, logger)
	if err != nil {
		logger.Fatal("failed to set up app", zap.Error(err))
	}

	go func() {
		addr := ":" + utils.GetConfig("APP_PORT")
		logger.Info("listening", zap.String("addr", addr))
		if err := app.Listen(addr); err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
