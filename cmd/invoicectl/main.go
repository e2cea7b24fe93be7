package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/afero"

	"github.com/jhoicas/tour-invoice-desk/internal/bootstrap"
	"github.com/jhoicas/tour-invoice-desk/internal/interfaces/cmdline"
	"github.com/jhoicas/tour-invoice-desk/pkg/config"
	"github.com/jhoicas/tour-invoice-desk/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load configuration:", err)
		os.Exit(1)
	}

	// Logs go to stderr; stdout carries the rendered invoice.
	log := logger.NewWithWriter(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level}, os.Stderr)

	fs := afero.NewOsFs()
	svc := bootstrap.New(cfg, log, fs, time.Now)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := cmdline.NewApp(cmdline.Deps{Console: svc.Console, Output: svc.Output, Fs: fs, Log: log}, os.Stdout)
	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Error().Err(err).Msg("invoicectl failed")
		stop()
		os.Exit(1)
	}
}
