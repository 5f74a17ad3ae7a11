package app

import (
	"context"
	"os"
	"strconv"

	"mployee/internal/shared/connection"
	"mployee/internal/state"
	"mployee/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp sets up infrastructure, hydrates state from the store and
// registers every module's routes on the router. It returns the hydrated
// state so callers can inspect it (the importer reuses this wiring).
func BuildApp(ctx context.Context, router *gin.Engine, logger *zap.Logger) (*state.State, error) {
	retries := 5
	if raw := os.Getenv("REDIS_CONNECT_RETRIES"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			retries = n
		}
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), retries)
	if err != nil {
		return nil, err
	}
	logger.Info("✅ Redis connection established")

	store := storage.NewRedisKV(redisClient)
	appState := state.New(store, os.Getenv("STATE_KEY_PREFIX"), logger)
	if err := appState.Load(ctx); err != nil {
		return nil, err
	}

	registerModules(router, appState, redisClient, logger)
	return appState, nil
}
