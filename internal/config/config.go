package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "castpulse/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Pipeline PipelineConfig `yaml:"pipeline" envconfig:"PIPELINE"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/pulsebuilder.log"`
}

// PipelineConfig contains the tunable knobs of the pulse pipeline.
// Defaults implement the published aggregation policy; they exist as
// configuration so tests and downstream deployments can see them as data.
type PipelineConfig struct {
	// SuppressionFloor is the minimum bucket size below which no aggregate
	// row is published. A privacy/significance floor, not a quality filter.
	SuppressionFloor int `yaml:"suppression_floor" envconfig:"SUPPRESSION_FLOOR" default:"5" validate:"min=1"`

	// RateQuantumUSD is the step the bucket median rate snaps to.
	RateQuantumUSD int `yaml:"rate_quantum_usd" envconfig:"RATE_QUANTUM_USD" default:"250" validate:"min=1"`

	// SentimentStep is the quantization step for per-record sentiment.
	SentimentStep float64 `yaml:"sentiment_step" envconfig:"SENTIMENT_STEP" default:"0.05" validate:"gt=0,lte=1"`

	// Workers controls normalization parallelism. Output order is
	// preserved regardless of the value.
	Workers int `yaml:"workers" envconfig:"WORKERS" default:"1" validate:"min=1"`
}

// Load loads configuration from environment variables and an optional
// YAML config file. Environment variables take precedence.
func Load() (*Config, error) {
	return LoadFromFile(getConfigFilePath())
}

// LoadFromFile loads configuration using the given YAML file path as the
// file layer. A missing file is not an error; the env/default layer applies.
func LoadFromFile(configFile string) (*Config, error) {
	var fileCfg Config
	haveFile := false

	if configFile != "" {
		if data, err := os.ReadFile(configFile); err == nil {
			if err := yaml.Unmarshal(data, &fileCfg); err != nil {
				return nil, apperrors.NewConfigError(
					fmt.Sprintf("failed to parse config file %s", configFile), err)
			}
			haveFile = true
		}
	}

	var cfg Config
	if err := envconfig.Process("PULSE", &cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to load config from env", err)
	}

	if haveFile {
		cfg = mergeConfigs(fileCfg, cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs overlays file values onto the env/default layer. Environment
// variables win only when they differ from the envconfig defaults.
func mergeConfigs(file, env Config) Config {
	merged := env

	defaults := *DefaultConfig()

	if file.Logging.Level != "" && env.Logging.Level == defaults.Logging.Level {
		merged.Logging.Level = file.Logging.Level
	}
	if file.Logging.Output != "" && env.Logging.Output == defaults.Logging.Output {
		merged.Logging.Output = file.Logging.Output
	}
	if file.Logging.FilePath != "" && env.Logging.FilePath == defaults.Logging.FilePath {
		merged.Logging.FilePath = file.Logging.FilePath
	}
	if file.Pipeline.SuppressionFloor != 0 && env.Pipeline.SuppressionFloor == defaults.Pipeline.SuppressionFloor {
		merged.Pipeline.SuppressionFloor = file.Pipeline.SuppressionFloor
	}
	if file.Pipeline.RateQuantumUSD != 0 && env.Pipeline.RateQuantumUSD == defaults.Pipeline.RateQuantumUSD {
		merged.Pipeline.RateQuantumUSD = file.Pipeline.RateQuantumUSD
	}
	if file.Pipeline.SentimentStep != 0 && env.Pipeline.SentimentStep == defaults.Pipeline.SentimentStep {
		merged.Pipeline.SentimentStep = file.Pipeline.SentimentStep
	}
	if file.Pipeline.Workers != 0 && env.Pipeline.Workers == defaults.Pipeline.Workers {
		merged.Pipeline.Workers = file.Pipeline.Workers
	}

	return merged
}

// validate checks the configuration against the declared constraints
func (c *Config) validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return apperrors.NewConfigError("config validation failed", err)
	}
	return nil
}

// getConfigFilePath returns the config file path, overridable via env
func getConfigFilePath() string {
	if path := os.Getenv("PULSE_CONFIG_FILE"); path != "" {
		return path
	}
	return "pulsebuilder.yaml"
}

// DefaultConfig returns the built-in configuration (env and file ignored).
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "console",
			FilePath: "logs/pulsebuilder.log",
		},
		Pipeline: PipelineConfig{
			SuppressionFloor: 5,
			RateQuantumUSD:   250,
			SentimentStep:    0.05,
			Workers:          1,
		},
	}
}
