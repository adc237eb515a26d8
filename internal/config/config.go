package config

import (
	"log/slog"
	"os"
	"time"
)

// TokenTTL is the fixed session token lifetime. Expiry forces re-login;
// there is no refresh mechanism.
const TokenTTL = 7 * 24 * time.Hour

type Config struct {
	Port           string
	Env            string
	DatabaseDriver string
	DatabaseDSN    string
	JWTSecret      string
	TokenTTL       time.Duration
	CORSOrigin     string
}

// IsProduction reports whether the service runs in the production environment.
// It controls the Secure attribute on the session cookie.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func Load() Config {
	cfg := Config{
		Port:           getEnv("PORT", "5000"),
		Env:            getEnv("ENV", "development"),
		DatabaseDriver: getEnv("DATABASE_DRIVER", "mysql"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/tellis?parseTime=true"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		TokenTTL:       TokenTTL,
		CORSOrigin:     getEnv("CORS_ORIGIN", "http://localhost:5173"),
	}

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET must be set")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
