package app

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"huggiesd/internal/domain"
	"huggiesd/internal/infra/assets"
	"huggiesd/internal/infra/catalog"
	"huggiesd/internal/infra/config"
	"huggiesd/internal/infra/dispatcher"
	"huggiesd/internal/infra/gateway"
	"huggiesd/internal/infra/knowledge"
	"huggiesd/internal/infra/registry"
	"huggiesd/internal/infra/telemetry"
	"huggiesd/internal/infra/tools"
)

type App struct {
	logger *zap.Logger
}

type ServeConfig struct {
	ConfigPath string
}

type ValidateConfig struct {
	ConfigPath string
}

func New(logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		logger: logger.Named("app"),
	}
}

// Serve assembles the full stack from configuration and serves until ctx is
// cancelled. Any assembly failure is startup-fatal.
func (a *App) Serve(ctx context.Context, cfg ServeConfig) error {
	conf, err := config.NewLoader(a.logger).Load(cfg.ConfigPath)
	if err != nil {
		return err
	}

	gw, metricsRegistry, err := a.assemble(conf)
	if err != nil {
		return err
	}

	serveCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	observabilityErr := make(chan error, 1)
	go func() {
		observabilityErr <- telemetry.StartHTTPServer(serveCtx, telemetry.HTTPServerOptions{
			Addr:          conf.Observability.ListenAddress,
			EnableMetrics: conf.Observability.EnableMetrics,
			EnableHealthz: conf.Observability.EnableHealthz,
			Registry:      metricsRegistry,
		}, a.logger)
	}()

	var serveErr error
	switch conf.Transport {
	case domain.TransportStdio:
		serveErr = gw.Run(serveCtx)
	default:
		serveErr = gw.RunHTTP(serveCtx, conf.ListenAddress)
	}

	cancel()
	if obsErr := <-observabilityErr; serveErr == nil {
		serveErr = obsErr
	}
	return serveErr
}

// ValidateConfig checks the configuration and the content it references
// without serving: the knowledge source must load and every widget asset
// must resolve.
func (a *App) ValidateConfig(ctx context.Context, cfg ValidateConfig) error {
	conf, err := config.NewLoader(a.logger).Load(cfg.ConfigPath)
	if err != nil {
		return err
	}
	if _, _, err := a.assemble(conf); err != nil {
		return err
	}
	a.logger.Info("configuration is valid",
		zap.String("config", cfg.ConfigPath),
		zap.String("transport", conf.Transport),
	)
	return ctx.Err()
}

func (a *App) assemble(conf domain.Config) (*gateway.Gateway, *prometheus.Registry, error) {
	store, err := knowledge.Load(conf.KnowledgePath, a.logger)
	if err != nil {
		return nil, nil, fmt.Errorf("load knowledge: %w", err)
	}

	loader := assets.NewLoader(conf.AssetsDir, a.logger)
	cat, err := catalog.Build(loader, a.logger)
	if err != nil {
		return nil, nil, fmt.Errorf("build widget catalog: %w", err)
	}

	reg := registry.New(cat, a.logger)
	if err := tools.RegisterAll(reg, store); err != nil {
		return nil, nil, err
	}

	metricsRegistry := prometheus.NewRegistry()
	metrics := telemetry.NewPrometheusMetrics(metricsRegistry)
	disp := dispatcher.New(reg, cat, metrics, a.logger)
	return gateway.New(disp, conf.ServerName, conf.CORS.AllowedOrigins, a.logger), metricsRegistry, nil
}
