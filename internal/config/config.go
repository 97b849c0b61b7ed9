package config

import (
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr      string
	Env       string
	JWTSecret string
	MySQLDSN  string
}

const (
	EnvProduction = "production"

	// development-only fallbacks; production refuses to start on them
	defaultJWTSecret = "super-secret-jwt-key-for-development-only-min-32-characters-long"
	defaultMySQLDSN  = "app:app@tcp(localhost:3306)/app"
)

// Load reads process configuration from the environment, with an
// optional .env file for local runs. Missing secrets fall back to the
// insecure development defaults above — loudly — except under
// APP_ENV=production, where starting with a known secret would be
// worse than not starting at all.
func Load(logger *slog.Logger) Config {
	_ = godotenv.Load()

	cfg := Config{
		Addr:      os.Getenv("ADDR"),
		Env:       os.Getenv("APP_ENV"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		MySQLDSN:  os.Getenv("MYSQL_DSN"),
	}

	if cfg.Addr == "" {
		cfg.Addr = ":8082"
	}

	if cfg.JWTSecret == "" {
		if cfg.Env == EnvProduction {
			log.Fatalf("JWT_SECRET is not set in environment")
		}
		logger.Warn("JWT_SECRET is not set, using insecure development default")
		cfg.JWTSecret = defaultJWTSecret
	}

	if cfg.MySQLDSN == "" {
		if cfg.Env == EnvProduction {
			log.Fatalf("MYSQL_DSN is not set in environment")
		}
		logger.Warn("MYSQL_DSN is not set, using development default")
		cfg.MySQLDSN = defaultMySQLDSN
	}

	return cfg
}
