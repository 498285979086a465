package main

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/bookstore/backoffice/internal/bookapi"
	"github.com/bookstore/backoffice/internal/webserver"
)

var version string = "unknown"

func main() {
	var cfg Config
	logger := logrus.New()

	if err := godotenv.Load(); err == nil {
		logger.Info("Loaded configuration from .env")
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		logger.Fatalf("Error parsing configuration from environment variables: %s", err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Unknown log level '%s', using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	run(cfg, logger)
}

func run(cfg Config, logger *logrus.Logger) {
	secret := []byte(cfg.JwtSecret)
	if len(secret) == 0 {
		logger.Warn("JWT_SECRET not set, generating a random one. Admin sessions will not survive a restart.")
		secret = make([]byte, 64)
		if _, err := rand.Read(secret); err != nil {
			logger.Fatal(err)
		}
	}

	api := bookapi.NewClient(bookapi.Config{
		BaseURL: cfg.APIURL,
		Prefix:  cfg.APIPrefix,
		Timeout: cfg.APITimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := api.Ping(ctx); err != nil {
		logger.WithError(err).Warnf("Books API at %s is not answering", cfg.APIURL)
	}
	cancel()

	printers, err := webserver.Printers(cfg.DefaultLang)
	if err != nil {
		logger.Fatal(err)
	}

	webserverConfig := webserver.Config{
		Version:         version,
		AdminPassword:   cfg.AdminPassword,
		JwtSecret:       secret,
		SessionTimeout:  cfg.SessionTimeout,
		DefaultLanguage: cfg.DefaultLang,
	}
	controllers := webserver.SetupControllers(webserverConfig, api, printers, logger)
	app := webserver.New(webserverConfig, controllers, printers, logger)

	logger.Infof("BookStore back office version %s started listening on port %s", version, cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		logger.Fatal(err)
	}
}
