// Package cli provides common CLI initialization utilities used by
// cmd/spendbook.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"spendbook/internal/backend"
	"spendbook/internal/chart"
	"spendbook/internal/config"
	"spendbook/internal/log"
	"spendbook/internal/services"
)

// LoadEnvFile loads the .env file for local development.
// A missing file is not an error.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger builds the application logger from cfg and installs it as the
// slog default. The returned close function releases the log file, if any.
func SetupLogger(cfg *config.Config) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	var out io.Writer = os.Stderr
	closeFn := func() error { return nil }
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}

	logger := log.New(log.Config{
		Level:     level,
		Format:    cfg.LogFormat,
		Component: log.ComponentApp,
		Output:    out,
	})
	log.SetDefault(logger)
	return logger, closeFn, nil
}

// LoadAndValidateConfig loads configuration and validates it.
func LoadAndValidateConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// OpenService opens the configured store and wraps it in the expense service.
// The caller owns the service and must Close it exactly once.
func OpenService(ctx context.Context, logger *log.Logger, cfg *config.Config) (*services.ExpenseService, error) {
	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		return nil, err
	}
	store, err := backend.NewFactory(logger).CreateStore(ctx, backendCfg)
	if err != nil {
		return nil, err
	}
	return services.NewExpenseService(store, logger), nil
}

// ChartSink returns the terminal renderer, plus the HTML renderer when an
// output file is configured.
func ChartSink(cfg *config.Config, out io.Writer, logger *log.Logger) chart.Sink {
	text := chart.NewTextRenderer(out, cfg.ChartWidth, cfg.CurrencySymbol)
	if cfg.ChartOutput == "" {
		return text
	}

	html := chart.NewHTMLRenderer(cfg.ChartOutput, cfg.CurrencySymbol)
	chartLogger := logger.WithComponent(log.ComponentChart)
	html.Written = func(path string) {
		fmt.Fprintf(out, "Chart saved to %s\n", path)
		chartLogger.Info("Chart written", log.FieldPath, path, log.FieldOperation, log.OpRender)
	}
	return chart.Multi{text, html}
}
