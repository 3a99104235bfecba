// Package main is the entry point for the label-service application.
//
// @title           Label Service API
// @version         1.0.0
// @description     Purchases USPS shipping labels through EasyPost.
//
//	The service validates two addresses and a parcel, quotes the shipment,
//	buys the cheapest USPS rate and returns the tracking code and label.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/label-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 HS256 JWT as "Bearer <token>". Accepted when JWT_SECRET_KEY is set.
//
// @tag.name        Labels
// @tag.description Label form and label purchase
//
// @tag.name        Logs
// @tag.description Stored request and audit logs
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/guttosm/label-service/docs" // swagger docs

	"github.com/guttosm/label-service/config"
	"github.com/guttosm/label-service/internal/app"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// A .env file is optional and never overrides the real environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("Failed to load .env file")
	}

	cfg := config.Load()

	router, cleanup, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := app.NewServer(router, cfg.Server)
	if err := server.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Server error")
		cleanup()
		os.Exit(1)
	}
}
