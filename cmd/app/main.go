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

	"orders/cmd"
	httpin "orders/internal/adapters/in/http"
	"orders/internal/adapters/out/postgres/migrations"

	"github.com/labstack/gommon/log"
	"github.com/urfave/cli/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	app := &cli.App{
		Name:  "orders",
		Usage: "orders microservice",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API and the outbox relay",
				Action: serve,
			},
			{
				Name:      "migrate",
				Usage:     "apply or revert database migrations",
				ArgsUsage: "up|down",
				Action:    migrate,
			},
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newLogger(cfg cmd.Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
}

func migrate(c *cli.Context) error {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	direction, err := migrations.ParseDirection(c.Args().First())
	if err != nil {
		return err
	}

	db, err := migrations.Open(cfg.DSN())
	if err != nil {
		return err
	}
	defer db.Close()

	if err = migrations.Run(db, direction); err != nil {
		return err
	}

	logger.Info("Migrations applied", "direction", string(direction))
	return nil
}

func serve(_ *cli.Context) error {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	gormDB, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	root := cmd.NewCompositionRoot(cfg, gormDB, logger)

	doc, err := httpin.LoadSpec()
	if err != nil {
		return err
	}
	e, err := httpin.NewRouter(root.CreateHTTPServer(), doc, root.Metrics())
	if err != nil {
		return err
	}

	jobManager, err := root.CreateJobManager()
	if err != nil {
		return err
	}
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server started", "port", cfg.HTTPPort)
		serverErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort))
	}()

	select {
	case err = <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}
	return nil
}

