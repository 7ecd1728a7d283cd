package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Data     DataConfig     `yaml:"data"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Schedule struct {
		Cron string `yaml:"cron" validate:"required"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Logging LoggingConfig `yaml:"logging"`
}

// DataConfig describes where source files come from.
type DataConfig struct {
	Dir            string   `yaml:"dir" validate:"required"`
	Sources        []string `yaml:"sources"` // empty means scan Dir
	Symbols        []string `yaml:"symbols" validate:"dive,min=3"`
	SkipBadSources bool     `yaml:"skip_bad_sources"`
}

// AnalysisConfig selects analysers and their parameters.
type AnalysisConfig struct {
	Analysers           []string `yaml:"analysers" validate:"dive,oneof=high_low moving_average gap_up average_volume rsi"`
	MovingAverageWindow int      `yaml:"moving_average_window" validate:"gte=1"`
	GapUpDelta          float64  `yaml:"gap_up_delta"`
	RSIPeriod           int      `yaml:"rsi_period" validate:"gte=1"`
}

// LoggingConfig configures the global logger.
type LoggingConfig struct {
	Level         string `yaml:"level" validate:"oneof=trace debug info warn error"`
	Format        string `yaml:"format" validate:"oneof=json pretty"`
	FilePath      string `yaml:"file_path"`
	RotationSize  int    `yaml:"rotation_size_mb" validate:"gte=0"`
	RetentionDays int    `yaml:"retention_days" validate:"gte=0"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("STOCKLENS_DATA_DIR"); v != "" {
		cfg.Data.Dir = v
	}
	if v := os.Getenv("STOCKLENS_SYMBOLS"); v != "" {
		cfg.Data.Symbols = splitList(v)
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("CRON_SCHEDULE"); v != "" {
		cfg.Schedule.Cron = v
	}
	if v := os.Getenv("MA_WINDOW"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse MA_WINDOW %q: %w", v, err)
		}
		cfg.Analysis.MovingAverageWindow = n
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = "data_files"
	}
	if len(cfg.Analysis.Analysers) == 0 {
		cfg.Analysis.Analysers = []string{"high_low", "moving_average", "gap_up", "average_volume", "rsi"}
	}
	if cfg.Analysis.MovingAverageWindow == 0 {
		cfg.Analysis.MovingAverageWindow = 10
	}
	if cfg.Analysis.RSIPeriod == 0 {
		cfg.Analysis.RSIPeriod = 14
	}
	if cfg.Schedule.Cron == "" {
		cfg.Schedule.Cron = "0 0 18 * * 1-5"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "pretty"
	}
	if cfg.Logging.RotationSize == 0 {
		cfg.Logging.RotationSize = 50
	}
	if cfg.Logging.RetentionDays == 0 {
		cfg.Logging.RetentionDays = 14
	}
}

// Validate checks field constraints and returns one error per violated field.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
