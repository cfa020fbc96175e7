package app

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/plasmahub/plasma-builder-backend/internal/logger"
	"github.com/plasmahub/plasma-builder-backend/internal/utils"
)

type Config struct {
	Port         string        `yaml:"port"`
	ProxyPort    string        `yaml:"proxy_port"`
	DBDriver     string        `yaml:"db_driver"`
	APIBaseURL   string        `yaml:"api_base_url"`
	AllowOrigins []string      `yaml:"allow_origins"`
	CacheSize    int           `yaml:"cache_size"`
	CacheTTL     time.Duration `yaml:"cache_ttl"`
	ProxyDataDir string        `yaml:"proxy_data_dir"`
	Environment  string        `yaml:"environment"`
}

// LoadConfig reads the optional YAML config file first, then lets the
// environment override every field.
func LoadConfig(log *logger.Logger) (Config, error) {
	cfg := Config{
		Port:         "8080",
		ProxyPort:    "8081",
		DBDriver:     "postgres",
		APIBaseURL:   "http://localhost:8080/api",
		CacheSize:    128,
		CacheTTL:     5 * time.Minute,
		ProxyDataDir: "data/design-systems",
		Environment:  "development",
	}

	if path := utils.GetEnv("CONFIG_FILE", "", log); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file: %w", err)
		}
		log.Info("Loaded config file", "path", path)
	}

	cfg.Port = utils.GetEnv("PORT", cfg.Port, log)
	cfg.ProxyPort = utils.GetEnv("PROXY_PORT", cfg.ProxyPort, log)
	cfg.DBDriver = utils.GetEnv("DB_DRIVER", cfg.DBDriver, log)
	cfg.APIBaseURL = utils.GetEnv("API_BASE_URL", cfg.APIBaseURL, log)
	cfg.ProxyDataDir = utils.GetEnv("PROXY_DATA_DIR", cfg.ProxyDataDir, log)
	cfg.Environment = utils.GetEnv("APP_ENV", cfg.Environment, log)
	cfg.CacheSize = utils.GetEnvAsInt("EXPORT_CACHE_SIZE", cfg.CacheSize, log)
	if ttlSeconds := utils.GetEnvAsInt("EXPORT_CACHE_TTL", 0, log); ttlSeconds > 0 {
		cfg.CacheTTL = time.Duration(ttlSeconds) * time.Second
	}
	return cfg, nil
}
