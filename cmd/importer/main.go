package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mployee/internal/app"
	"mployee/internal/shared/apperror"
	"mployee/internal/transfer"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// importer applies an employee spreadsheet to the store without starting
// the HTTP server: importer <file.xlsx|file.csv>
func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: importer <file.xlsx|file.csv>")
		os.Exit(2)
	}

	if err := run(context.Background(), os.Args[1], logger); err != nil {
		logger.Fatal("import failed", zap.Error(err))
	}
}

func run(ctx context.Context, path string, logger *zap.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var rows []transfer.Row
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err = transfer.DecodeXLSX(f)
	case ".csv":
		rows, err = transfer.DecodeCSV(f)
	default:
		return fmt.Errorf("unsupported file type %q", filepath.Ext(path))
	}
	if err != nil {
		return err
	}

	appState, transferService, err := app.BuildImporter(ctx, logger)
	if err != nil {
		return err
	}

	imported, err := transferService.Import(ctx, rows)
	if err != nil {
		return err
	}

	logger.Info("import finished",
		zap.String("file", path),
		zap.Int("imported", imported),
		zap.Int("employees_total", appState.Employees.Len()),
	)
	return nil
}
