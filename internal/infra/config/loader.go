package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"huggiesd/internal/domain"
)

type Loader struct {
	logger *zap.Logger
}

func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger.Named("config")}
}

func newConfigViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("serverName", domain.DefaultServerName)
	v.SetDefault("transport", domain.DefaultTransport)
	v.SetDefault("listenAddress", domain.DefaultListenAddress)
	v.SetDefault("knowledgePath", domain.DefaultKnowledgePath)
	v.SetDefault("assetsDir", domain.DefaultAssetsDir)
	v.SetDefault("cors.allowedOrigins", []string{"*"})
	v.SetDefault("observability.listenAddress", domain.DefaultObservabilityListenAddress)
	v.SetDefault("observability.enableMetrics", true)
	v.SetDefault("observability.enableHealthz", true)
}

type rawConfig struct {
	ServerName    string                 `mapstructure:"serverName"`
	Transport     string                 `mapstructure:"transport"`
	ListenAddress string                 `mapstructure:"listenAddress"`
	KnowledgePath string                 `mapstructure:"knowledgePath"`
	AssetsDir     string                 `mapstructure:"assetsDir"`
	CORS          rawCORSConfig          `mapstructure:"cors"`
	Observability rawObservabilityConfig `mapstructure:"observability"`
}

type rawCORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

type rawObservabilityConfig struct {
	ListenAddress string `mapstructure:"listenAddress"`
	EnableMetrics bool   `mapstructure:"enableMetrics"`
	EnableHealthz bool   `mapstructure:"enableHealthz"`
}

// Load reads the YAML config at path. An empty path yields the defaults, so
// the server runs without any config file present.
func (l *Loader) Load(path string) (domain.Config, error) {
	v := newConfigViper()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return domain.Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return domain.Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	var raw rawConfig
	if err := v.Unmarshal(&raw); err != nil {
		return domain.Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg, errs := normalize(raw)
	if len(errs) > 0 {
		return domain.Config{}, errors.New(strings.Join(errs, "; "))
	}

	if path != "" {
		l.logger.Info("config loaded", zap.String("path", path), zap.String("transport", cfg.Transport))
	}
	return cfg, nil
}

func normalize(raw rawConfig) (domain.Config, []string) {
	cfg := domain.Config{
		ServerName:    strings.TrimSpace(raw.ServerName),
		Transport:     strings.ToLower(strings.TrimSpace(raw.Transport)),
		ListenAddress: strings.TrimSpace(raw.ListenAddress),
		KnowledgePath: strings.TrimSpace(raw.KnowledgePath),
		AssetsDir:     strings.TrimSpace(raw.AssetsDir),
		CORS: domain.CORSConfig{
			AllowedOrigins: raw.CORS.AllowedOrigins,
		},
		Observability: domain.ObservabilityConfig{
			ListenAddress: strings.TrimSpace(raw.Observability.ListenAddress),
			EnableMetrics: raw.Observability.EnableMetrics,
			EnableHealthz: raw.Observability.EnableHealthz,
		},
	}

	var errs []string
	if cfg.ServerName == "" {
		errs = append(errs, "serverName must not be empty")
	}
	switch cfg.Transport {
	case domain.TransportHTTP, domain.TransportStdio:
	default:
		errs = append(errs, fmt.Sprintf("transport %q is not supported (use %q or %q)", cfg.Transport, domain.TransportHTTP, domain.TransportStdio))
	}
	if cfg.Transport == domain.TransportHTTP && cfg.ListenAddress == "" {
		errs = append(errs, "listenAddress is required for the http transport")
	}
	if cfg.KnowledgePath == "" {
		errs = append(errs, "knowledgePath must not be empty")
	}
	if cfg.AssetsDir == "" {
		errs = append(errs, "assetsDir must not be empty")
	}
	if (cfg.Observability.EnableMetrics || cfg.Observability.EnableHealthz) && cfg.Observability.ListenAddress == "" {
		errs = append(errs, "observability.listenAddress is required when observability endpoints are enabled")
	}

	return cfg, errs
}
