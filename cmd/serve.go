package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"restaurant_manager/config"
	"restaurant_manager/database"
	"restaurant_manager/handler"
	"restaurant_manager/helper"
	"restaurant_manager/jobs"
	"restaurant_manager/notify"
	"restaurant_manager/router"
	"restaurant_manager/storage"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and background jobs",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg, log)
	},
}

func serve(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	taxRate, err := decimal.NewFromString(cfg.TaxRate)
	if err != nil {
		return fmt.Errorf("TAX_RATE %q: %w", cfg.TaxRate, err)
	}

	db, err := database.Connect(cfg.Database, log)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	store := database.NewStore(db)

	images, err := newStorage(cfg.Upload, log)
	if err != nil {
		return err
	}

	var publishers notify.Multi
	var feed handler.FeedSource
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer client.Close()
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := client.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			return fmt.Errorf("redis %s: %w", cfg.RedisAddr, err)
		}
		r := notify.NewRedis(client)
		publishers = append(publishers, r)
		feed = r
		log.Info("realtime feed enabled", "redis", cfg.RedisAddr)
	}
	if cfg.AMQPURL != "" {
		kitchen, err := notify.NewAMQP(cfg.AMQPURL)
		if err != nil {
			return err
		}
		defer kitchen.Close()
		publishers = append(publishers, kitchen)
		log.Info("kitchen queue enabled", "exchange", notify.KitchenExchange)
	}

	var mailer utils.Mailer = utils.NopMailer{}
	if cfg.SMTP.Host != "" {
		mailer = utils.NewSMTPMailer(utils.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		}, log)
	}

	tokens := helper.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.TTL)
	h := handler.New(handler.Options{
		Store:    store,
		Tokens:   tokens,
		Notifier: publishers,
		Mailer:   mailer,
		Feed:     feed,
		Log:      log,
		TaxRate:  taxRate,
	})

	app := newApp(cfg, log)
	if _, ok := images.(*storage.Local); ok {
		app.Static(cfg.Upload.PublicPath, cfg.Upload.Dir)
	}
	router.SetupRoutes(app, h, tokens, images)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return jobs.New(store, log).Run(ctx)
	})
	g.Go(func() error {
		log.Info("server listening", "port", cfg.Port)
		return app.Listen(":" + cfg.Port)
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("shutting down")
		return app.ShutdownWithContext(shutdownCtx)
	})
	return g.Wait()
}

func newStorage(cfg config.Upload, log *slog.Logger) (storage.Storage, error) {
	if cfg.CloudinaryURL != "" {
		log.Info("images stored on cloudinary")
		return storage.NewCloudinary(cfg.CloudinaryURL)
	}
	log.Info("images stored on disk", "dir", cfg.Dir)
	return storage.NewLocal(cfg.Dir, cfg.PublicPath)
}

func newApp(cfg *config.Config, log *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "internal server error"
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
				message = fe.Message
			}
			if code >= fiber.StatusInternalServerError {
				log.Error("unhandled error", "method", c.Method(), "path", c.Path(), "error", err)
			}
			return utils.ErrorResponse(c, code, message, err)
		},
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: cfg.CORSOrigins != "*",
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))
	return app
}
