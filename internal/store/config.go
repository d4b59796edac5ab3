package store

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var validRanges = map[string]bool{"ALL": true, "WEEK": true, "MONTH": true, "YEAR": true}

type Config struct {
	Analytics struct {
		RollingWindows []int `yaml:"rolling_windows"`
		DefaultWindow  int   `yaml:"default_window"`
	} `yaml:"analytics"`
	Filter struct {
		DefaultRange string `yaml:"default_range"`
	} `yaml:"filter"`
	ImportLog struct {
		Dir           string `yaml:"dir"`
		RetentionDays int    `yaml:"retention_days"`
	} `yaml:"import_log"`
}

func (c *Config) Validate() error {
	if !validRanges[c.Filter.DefaultRange] {
		return fmt.Errorf("invalid filter.default_range '%s': must be one of ALL, WEEK, MONTH, YEAR", c.Filter.DefaultRange)
	}
	if c.Analytics.DefaultWindow <= 0 {
		return fmt.Errorf("analytics.default_window must be positive, got %d", c.Analytics.DefaultWindow)
	}
	for _, w := range c.Analytics.RollingWindows {
		if w <= 0 {
			return fmt.Errorf("analytics.rolling_windows entries must be positive, got %d", w)
		}
	}
	if c.ImportLog.RetentionDays < 0 {
		return fmt.Errorf("import_log.retention_days cannot be negative, got %d", c.ImportLog.RetentionDays)
	}
	return nil
}

func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &c, nil
}

// DefaultConfig returns a Config with every field at its default, for
// callers that run without a config file.
func DefaultConfig() *Config {
	var c Config
	c.applyDefaults()
	return &c
}

func (c *Config) applyDefaults() {
	if len(c.Analytics.RollingWindows) == 0 {
		c.Analytics.RollingWindows = []int{10, 20, 50, 100}
	}
	if c.Analytics.DefaultWindow == 0 {
		c.Analytics.DefaultWindow = 20
	}
	if c.Filter.DefaultRange == "" {
		c.Filter.DefaultRange = "ALL"
	}
	if c.ImportLog.Dir == "" {
		if v := os.Getenv("IMPORT_LOG_DIR"); v != "" {
			c.ImportLog.Dir = v
		} else {
			c.ImportLog.Dir = "logs/imports"
		}
	}
	if c.ImportLog.RetentionDays == 0 {
		c.ImportLog.RetentionDays = 30
	}
}
