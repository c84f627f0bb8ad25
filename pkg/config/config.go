package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/DevelopLee20/Nara-Chart/pkg/util"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	BidAPI struct {
		BaseURL   string        `yaml:"base_url"`
		Timeout   time.Duration `yaml:"timeout"`
		PageLimit int           `yaml:"page_limit"`
	} `yaml:"bid_api"`
	Trend struct {
		EMASpan        int           `yaml:"ema_span"`
		LOESSBandwidth float64       `yaml:"loess_bandwidth"`
		ForecastMonths int           `yaml:"forecast_months"`
		Debounce       time.Duration `yaml:"debounce"`
	} `yaml:"trend"`
	Cache struct {
		TrendTTL   time.Duration `yaml:"trend_ttl"`
		OptionsTTL time.Duration `yaml:"options_ttl"`
		Redis      struct {
			Enabled  bool   `yaml:"enabled"`
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Options struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"options"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
// A .env file in the working directory is loaded first when present.
func LoadWithEnv(path string) (*Config, error) {
	_ = godotenv.Load()

	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("BID_API_BASE_URL"); v != "" {
		c.BidAPI.BaseURL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Enabled = true
		c.Cache.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Cache.Redis.Password = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	c.Server.Port = util.ParseIntDefault(os.Getenv("SERVER_PORT"), c.Server.Port)
	c.Metrics.Enabled = util.ParseBoolDefault(os.Getenv("METRICS_ENABLED"), c.Metrics.Enabled)

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
	if c.BidAPI.Timeout == 0 {
		c.BidAPI.Timeout = 10 * time.Second
	}
	if c.BidAPI.PageLimit == 0 {
		c.BidAPI.PageLimit = 1000
	}
	if c.Trend.EMASpan == 0 {
		c.Trend.EMASpan = 10
	}
	if c.Trend.LOESSBandwidth == 0 {
		c.Trend.LOESSBandwidth = 0.3
	}
	if c.Trend.ForecastMonths == 0 {
		c.Trend.ForecastMonths = 3
	}
	if c.Trend.Debounce == 0 {
		c.Trend.Debounce = 400 * time.Millisecond
	}
	if c.Cache.TrendTTL == 0 {
		c.Cache.TrendTTL = 30 * time.Second
	}
	if c.Cache.OptionsTTL == 0 {
		c.Cache.OptionsTTL = 10 * time.Minute
	}
	if c.Options.RefreshCron == "" {
		c.Options.RefreshCron = "@every 10m"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.BidAPI.BaseURL == "" {
		return fmt.Errorf("bid_api.base_url is required")
	}
	if c.Trend.LOESSBandwidth <= 0 || c.Trend.LOESSBandwidth > 1 {
		return fmt.Errorf("trend.loess_bandwidth must be in (0, 1], got %v", c.Trend.LOESSBandwidth)
	}
	if c.Trend.EMASpan < 1 {
		return fmt.Errorf("trend.ema_span must be >= 1, got %d", c.Trend.EMASpan)
	}
	if c.Cache.Redis.Enabled && c.Cache.Redis.Addr == "" {
		return fmt.Errorf("cache.redis.addr is required when redis is enabled")
	}
	return nil
}
