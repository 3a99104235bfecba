// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/guttosm/label-service/config"
	"github.com/guttosm/label-service/internal/circuitbreaker"
	"github.com/guttosm/label-service/internal/middleware"
	"github.com/guttosm/label-service/internal/repository"
	"github.com/guttosm/label-service/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                 *repository.MongoDB
	LoggingService     service.LoggingService
	LogsCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and wires the request log store and
// the batcher writing to it. Returns nil if the database is disabled or the
// connection fails; the service then runs without persisted logs.
func InitializeDatabase(cfg config.DatabaseConfig, logCfg config.LogConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.SetLogsTTL(ctx, cfg.LogsTTL); err != nil {
		log.Warn().Err(err).Dur("ttl", cfg.LogsTTL).Msg("Failed to set logs TTL index")
	}

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
		OnStateChange:    recordBreakerState,
	})

	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	middleware.StartLogBatcher(loggingService, middleware.LogBatcherConfig{
		QueueSize:     logCfg.QueueSize,
		BatchSize:     logCfg.BatchSize,
		FlushInterval: logCfg.FlushInterval,
		WriteTimeout:  logCfg.WriteTimeout,
	})

	return &DatabaseComponents{
		DB:                 db,
		LoggingService:     loggingService,
		LogsCircuitBreaker: logsCB,
	}
}

// Close drains pending log entries and disconnects from MongoDB.
func (d *DatabaseComponents) Close() {
	if d == nil {
		return
	}

	middleware.StopLogBatcher()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := d.DB.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to close MongoDB connection")
	}
}
