package utils

import (
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// HTTP server
	AppPort string `yaml:"APP_PORT"`

	// JWT key for the admin role middleware
	JWTSecret string `yaml:"JWT_SECRET"`

	// Scraper configuration
	BrowserPath          string `yaml:"BROWSER_PATH"`
	ScrapeTimeoutSeconds int    `yaml:"SCRAPE_TIMEOUT_SECONDS"`
}

// LoadConfig reads config.yaml, applies environment overrides and returns the
// configuration struct handed to every component at startup.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppPort:              "8000",
		ScrapeTimeoutSeconds: 5,
	}

	file, err := os.ReadFile("config.yaml")
	if err == nil {
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, err
		}
	} else {
		log.Printf("config.yaml not read (%v), relying on environment", err)
	}

	overrideString(&cfg.DBUser, "DB_USER")
	overrideString(&cfg.DBName, "DB_NAME")
	overrideString(&cfg.DBPassword, "DB_PASSWORD")
	overrideString(&cfg.DBPort, "DB_PORT")
	overrideString(&cfg.DBHost, "DB_HOST")
	overrideString(&cfg.AppPort, "APP_PORT")
	overrideString(&cfg.JWTSecret, "JWT_SECRET")
	overrideString(&cfg.BrowserPath, "BROWSER_PATH")
	if v := os.Getenv("SCRAPE_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ScrapeTimeoutSeconds = n
		}
	}

	return cfg, nil
}

func (c *Config) ScrapeTimeout() time.Duration {
	return time.Duration(c.ScrapeTimeoutSeconds) * time.Second
}

func overrideString(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}
