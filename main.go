package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/utils"

	"kaskelas_backend/internals/configs"
	database "kaskelas_backend/internals/databases"
	reminderService "kaskelas_backend/internals/features/kas/reminders/service"
	helper "kaskelas_backend/internals/helpers"
	"kaskelas_backend/internals/helpers/dbtime"
	middlewares "kaskelas_backend/internals/middlewares"
	"kaskelas_backend/internals/middlewares/logger"
	routes "kaskelas_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
		// error dari middleware (auth, limiter) ikut format JSON yang sama
		ErrorHandler: helper.FromError,
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// 🔎 Request-ID + timing
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals(logger.LocRequestID, id)
		start := time.Now()
		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
		return err
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB + Redis
	database.ConnectDB()
	database.TunePool()
	database.AutoMigrate()
	database.WarmUpQueries()
	database.ConnectRedis()

	kas := routes.SetupRoutes(app, database.DB, database.RDB)

	// ⏱ pengingat WA terjadwal (REMINDER_CRON kosong → nonaktif)
	cronJob, err := reminderService.StartReminderScheduler(kas.Reminders, configs.ReminderCron, dbtime.ClassLocation(), dbtime.NowInClass)
	if err != nil {
		log.Printf("❌ Scheduler pengingat gagal: %v", err)
	}

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if cronJob != nil {
		<-cronJob.Stop().Done()
	}
	_ = app.ShutdownWithContext(ctx)

	if database.RDB != nil {
		_ = database.RDB.Close()
	}
	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
