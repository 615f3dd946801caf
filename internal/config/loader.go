package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	// configName is the config file name without extension.
	configName = ".termwrapped"
	configType = "yaml"

	envPrefix       = "TERMWRAPPED"
	envKeySeparator = "_"
)

// LoadConfig loads configuration from file, env vars, and defaults.
// If configPath is non-empty it must exist; otherwise .termwrapped.yaml is
// searched in CWD and $HOME and a missing file means defaults.
// The result is not validated; callers apply their overrides and then call Validate.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	return &cfg, nil
}

// applyDefaults registers every key so AutomaticEnv can override it.
func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("shell", "")

	viperCfg.SetDefault("history.file", "")
	viperCfg.SetDefault("history.format", "")
	viperCfg.SetDefault("history.timezone", "")

	viperCfg.SetDefault("aliases.file", "")

	viperCfg.SetDefault("report.top", DefaultReportTop)
	viperCfg.SetDefault("report.top_complex", DefaultReportTopComplex)
	viperCfg.SetDefault("report.top_aliases", DefaultReportTopAliases)
	viperCfg.SetDefault("report.year", DefaultReportYear)
	viperCfg.SetDefault("report.format", DefaultReportFormat)
	viperCfg.SetDefault("report.theme", DefaultReportTheme)

	viperCfg.SetDefault("output.no_color", DefaultOutputNoColor)
	viperCfg.SetDefault("output.interactive", DefaultOutputInteractive)

	viperCfg.SetDefault("logging.level", DefaultLogLevel)
	viperCfg.SetDefault("logging.json", DefaultLogJSON)

	viperCfg.SetDefault("telemetry.otlp_endpoint", "")
	viperCfg.SetDefault("telemetry.otlp_insecure", DefaultTelemetryInsecure)
	viperCfg.SetDefault("telemetry.otlp_headers", "")
	viperCfg.SetDefault("telemetry.sample_ratio", DefaultTelemetrySampleRatio)
	viperCfg.SetDefault("telemetry.environment", "")
	viperCfg.SetDefault("telemetry.metrics_file", "")
}
