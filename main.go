package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"ops-backend/config"
	"ops-backend/handlers"
	"ops-backend/models"
	"ops-backend/pkg/paseto"
	util "ops-backend/pkg/utils"
	"ops-backend/pkg/vault"
	"ops-backend/repository"
	"ops-backend/router"
	"ops-backend/seeder"
	"ops-backend/services"
)

// @title Operations Backend API
// @version 1.0
// @description Internal operations backend: projects, tasks, calendar, attendance, finance, kudos, training, meetings and subscriptions.
//
// @BasePath /api
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the PASETO token.
func main() {
	if len(os.Args) > 1 && os.Args[1] == "genkey" {
		key, err := util.GenerateBase64Key()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(key)
		return
	}

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	zl, err := config.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer zl.Sync()

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := config.MongoConnect(ctx, cfg.MongoString)
	if err != nil {
		return err
	}
	defer func() {
		if err := config.DisconnectDB(client); err != nil {
			zl.Error("disconnect mongo", zap.Error(err))
		}
	}()
	db := client.Database(cfg.DBName)

	if err := config.InitDatabase(ctx, db); err != nil {
		return err
	}

	if cfg.Seed.Admin {
		if err := seeder.SeedAdmin(ctx, repository.NewUserRepository(db), cfg.Seed.AdminUsername, cfg.Seed.AdminPassword, zl); err != nil {
			return err
		}
	}

	tokens, err := paseto.NewPasetoMaker(cfg.PasetoSecret)
	if err != nil {
		return err
	}
	secrets, err := vault.New(cfg.VaultSecret)
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		AppName:   "ops-backend",
		BodyLimit: handlers.MaxUploadSize + 1<<20,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			return c.Status(code).JSON(models.ErrorResponse{Error: err.Error()})
		},
	})

	config.SetupCORS(app, cfg.CORSOrigins)
	app.Use(recover.New())
	app.Use(logger.New())

	router.SetupRoutes(app, db, router.Dependencies{
		Config: cfg,
		Log:    zl,
		Tokens: tokens,
		Vault:  secrets,
		Clock:  services.SystemClock{Location: location},
		Syncer: services.NewGoogleCalendarSyncer(cfg.Calendar.Email, cfg.Calendar.Password, zl),
	})

	errCh := make(chan error, 1)
	go func() {
		zl.Info("server starting",
			zap.String("port", cfg.Port),
			zap.String("docs", fmt.Sprintf("http://localhost:%s/docs/index.html", cfg.Port)),
			zap.Strings("cors_origins", cfg.CORSOrigins),
		)
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zl.Info("shutting down")
	return app.ShutdownWithTimeout(10 * time.Second)
}
