package main

import (
	"context"
	"fmt"
	"os"

	"spendbook/internal/cli"
	"spendbook/internal/log"
	"spendbook/internal/session"
)

func main() {
	os.Exit(run())
}

func run() int {
	cli.LoadEnvFile()

	cfg, err := cli.LoadAndValidateConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger, closeLog, err := cli.SetupLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer closeLog()

	ctx := log.NewContext(context.Background(), logger)

	svc, err := cli.OpenService(ctx, logger, cfg)
	if err != nil {
		logger.Error("Failed to open expense store", log.FieldError, err, log.FieldBackend, cfg.DataBackend)
		fmt.Fprintf(os.Stderr, "cannot open expense store: %v\n", err)
		return 1
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.Error("Failed to close expense store", log.FieldError, err)
		}
	}()

	ctrl := session.New(svc, os.Stdin, os.Stdout, session.Options{
		Currency: cfg.CurrencySymbol,
		Chart:    cli.ChartSink(cfg, os.Stdout, logger),
	})
	if err := ctrl.Run(ctx); err != nil {
		logger.Error("Session aborted", log.FieldError, err)
		return 1
	}
	return 0
}
