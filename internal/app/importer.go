package app

import (
	"context"
	"os"

	"mployee/internal/shared/connection"
	"mployee/internal/state"
	"mployee/internal/storage"
	"mployee/internal/transfer"

	"go.uber.org/zap"
)

// BuildImporter wires just enough for the one-shot import command: the
// hydrated state and a transfer service flushing into the store. When no
// REDIS_ADDR is configured it falls back to an in-process store, which
// makes dry runs possible.
func BuildImporter(ctx context.Context, logger *zap.Logger) (*state.State, transfer.Service, error) {
	var store storage.KV
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		redisClient, err := connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("✅ Redis connection established")
		store = storage.NewRedisKV(redisClient)
	} else {
		logger.Warn("⚠️ REDIS_ADDR not set, using in-process store (dry run)")
		store = storage.NewMemoryKV()
	}

	appState := state.New(store, os.Getenv("STATE_KEY_PREFIX"), logger)
	if err := appState.Load(ctx); err != nil {
		return nil, nil, err
	}

	transferService := transfer.NewService(appState.Employees, appState, appState.Settings, logger)
	return appState, transferService, nil
}
