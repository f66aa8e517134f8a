package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/remindkit/remindkit/api/database"
	"github.com/remindkit/remindkit/api/handlers"
	"github.com/remindkit/remindkit/api/middleware"
	"github.com/remindkit/remindkit/internal/engine"
	"github.com/remindkit/remindkit/internal/scheduler"
	"github.com/remindkit/remindkit/pkg/config"
	"github.com/remindkit/remindkit/pkg/repository"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zlog.Sync()
	logger := zlog.Sugar()

	// Initialize database connection
	database.Connect(cfg)

	// One engine instance for handlers and the scheduler, so every view
	// computes states from the same rules and week-start setting.
	handlers.Engine = engine.New(engine.WithWeekStart(cfg.Settings.WeekStartDay()))
	handlers.DefaultCategory = cfg.Settings.DefaultCategory
	handlers.DefaultRemindBefore = cfg.Settings.RemindBefore

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sched := scheduler.New(
		repository.NewReminders(database.DB),
		handlers.Engine,
		cfg.Scheduler,
		logger,
	)
	go func() {
		if err := sched.Run(ctx); err != nil {
			logger.Errorw("scheduler stopped", "err", err)
		}
	}()

	r := gin.Default()
	r.Use(middleware.RequestID(logger))

	// Ping endpoint for health check
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		v1.GET("/reminders", handlers.ListReminders)
		v1.POST("/reminders", handlers.CreateReminder)
		v1.GET("/reminders/:id", handlers.GetReminder)
		v1.PUT("/reminders/:id", handlers.UpdateReminder)
		v1.DELETE("/reminders/:id", handlers.DeleteReminder)
		v1.PUT("/reminders/:id/complete", handlers.ToggleCompleteReminder)
		v1.PUT("/reminders/:id/snooze", handlers.SnoozeReminder)

		// Category routes
		v1.GET("/categories", handlers.ListCategories)
		v1.POST("/categories", handlers.CreateCategory)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	if err := r.Run(addr); err != nil {
		logger.Fatalw("server stopped", "err", err)
	}
}
