package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"task-tracker.com/task-tracker/internal/auth"
	config "task-tracker.com/task-tracker/internal/configs"
	httpapi "task-tracker.com/task-tracker/internal/http"
	middleware "task-tracker.com/task-tracker/internal/http/middlewares"
	"task-tracker.com/task-tracker/internal/logging"
	repository "task-tracker.com/task-tracker/internal/repositories"
	"task-tracker.com/task-tracker/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task tracker HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		logging.Init("task-tracker", cfg.LogFile)

		db := config.New(cfg.DatabaseDSN)

		redisClient := config.NewRedisClient(cfg.RedisAddr)
		defer redisClient.Close()

		taskRepo := repository.NewTaskRepository(db)
		userRepo := repository.NewUserRepository(db)

		jwtManager := auth.NewJWTManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
		denylist := auth.NewRedisDenylist(redisClient, cfg.RedisDenylistPrefix)

		taskService := services.NewTaskService(taskRepo)
		authService := services.NewAuthService(userRepo, jwtManager, denylist)

		e := echo.New()
		e.HideBanner = true

		handler := httpapi.NewHandler(taskService)
		authHandler := httpapi.NewAuthHandler(authService)
		authmw := middleware.Auth(jwtManager, denylist)
		httpapi.Register(e, handler, authHandler, authmw, cfg.RateLimit)

		go func() {
			logging.Logger.WithField("addr", cfg.AppURL).Info("HTTP server listening")
			if err := e.Start(cfg.AppURL); err != nil {
				logging.Logger.WithError(err).Info("server stopped")
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		ctx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(ctx)

		logging.Logger.Info("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
