package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"burger/cmd"
	httpin "burger/internal/adapters/in/http"
	"burger/internal/adapters/out/postgres"
	"burger/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	appLogger := logger.SetupLogger(configs.AppEnv)
	slog.SetDefault(appLogger)

	gormDB := mustGormOpen(configs.DSN())
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, appLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(ctx); err != nil {
		log.Fatal("Failed to start jobs:", err)
	}
	defer jobManager.StopAll()
	defer app.Sessions().CloseAll()

	e, err := httpin.NewEcho(app.CreateHTTPServer())
	if err != nil {
		log.Fatalf("Failed to set up HTTP server: %v", err)
	}
	startWebServer(ctx, e, configs.HTTPPort, appLogger)
}

func mustGormOpen(dsn string) *gorm.DB {
	gormDB, err := gorm.Open(gormpg.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func startWebServer(ctx context.Context, e *echo.Echo, port string, appLogger *slog.Logger) {
	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()
	appLogger.Info("HTTP server started", "port", port)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("HTTP server shutdown failed", "error", err)
	}
}
