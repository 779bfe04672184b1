package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/ai"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/api"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/cli"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/config"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/db"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/i18n"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/security"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if len(os.Args) > 1 {
		if err := runCommand(os.Args[1:]); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := serve(); err != nil {
		log.Fatal(err)
	}
}

func runCommand(args []string) error {
	switch args[0] {
	case "seed-diets":
		return cli.RunSeedDietsCommand(config.DBPath(), os.Stdout)
	case "reset-password":
		flags := flag.NewFlagSet("reset-password", flag.ContinueOnError)
		prompt := flags.Bool("prompt", false, "read the new password from stdin instead of generating one")
		if err := flags.Parse(args[1:]); err != nil {
			return err
		}
		if flags.NArg() != 1 {
			return errors.New("usage: mediai reset-password [--prompt] <email>")
		}
		return cli.RunResetPasswordCommand(config.DBPath(), flags.Arg(0), cli.ResetPasswordOptions{
			Prompt: *prompt,
			Stdin:  os.Stdin,
			Stdout: os.Stdout,
		})
	default:
		return fmt.Errorf("unknown command %q (expected seed-diets or reset-password)", args[0])
	}
}

func serve() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	languages, err := i18n.NewManager(cfg.DefaultLanguage)
	if err != nil {
		return fmt.Errorf("i18n init failed: %w", err)
	}

	uploader, localDir, err := newUploader(cfg)
	if err != nil {
		return fmt.Errorf("storage init failed: %w", err)
	}

	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()

	var completer ai.Completer
	if cfg.AI.Enabled() {
		gemini, err := ai.NewGeminiCompleter(lifecycleCtx, cfg.AI.APIKey, cfg.AI.Model)
		if err != nil {
			return fmt.Errorf("gemini init failed: %w", err)
		}
		defer func() {
			if err := gemini.Close(); err != nil {
				log.Printf("gemini close failed: %v", err)
			}
		}()
		completer = gemini
	} else {
		log.Printf("GEMINI_API_KEY not set, AI analysis is disabled")
	}

	handler, err := api.NewHandler(database, api.Options{
		Tokens:         security.NewTokenIssuer(cfg.SecretKey, security.DefaultTokenTTL),
		Uploader:       uploader,
		Completer:      completer,
		Retry:          ai.RetryPolicy{Attempts: cfg.AI.RetryAttempts, Delay: cfg.AI.RetryDelay},
		Languages:      languages,
		DefaultCountry: cfg.DefaultCountry,
	})
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	app := newApp(cfg, handler, localDir)

	sigCtx, stopSignals := signal.NotifyContext(lifecycleCtx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("MediAI listening on http://0.0.0.0:%s (db: %s, ai: %t)", cfg.Port, cfg.DBPath, completer != nil)
	if err := app.Listen(":" + cfg.Port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

// newUploader prefers Cloudinary and falls back to the local upload
// directory, which is then also served under /uploads.
func newUploader(cfg config.Config) (storage.Uploader, string, error) {
	if cfg.Cloudinary.Enabled() {
		uploader, err := storage.NewCloudinaryUploader(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
		if err != nil {
			return nil, "", err
		}
		return uploader, "", nil
	}
	local := storage.NewLocalUploader(cfg.UploadDir)
	return local, local.BaseDir(), nil
}

func newApp(cfg config.Config, handler *api.Handler, localDir string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "MediAI",
		DisableStartupMessage: true,
		BodyLimit:             cfg.MaxUploadBytes,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New(corsMiddlewareConfig(cfg.ClientURLs)))

	if localDir != "" {
		app.Static(storage.LocalURLPrefix, localDir)
	}
	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app
}

// corsMiddlewareConfig drops credentials when no client origin is configured;
// fiber refuses a wildcard origin with credentials.
func corsMiddlewareConfig(clientURLs []string) cors.Config {
	corsConfig := cors.Config{
		AllowOrigins:     strings.Join(clientURLs, ","),
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Accept-Language,Authorization",
		AllowCredentials: true,
	}
	if corsConfig.AllowOrigins == "" {
		corsConfig.AllowOrigins = "*"
		corsConfig.AllowCredentials = false
	}
	return corsConfig
}
