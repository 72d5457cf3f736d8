package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              int           `env:"PORT" envDefault:"8080"`
	APIBaseURL        string        `env:"API_BASE_URL" envDefault:"http://localhost:3000"`
	APITimeout        time.Duration `env:"API_TIMEOUT" envDefault:"30s"`
	UserPageLimit     int           `env:"USER_PAGE_LIMIT" envDefault:"20"`
	ActivityPageLimit int           `env:"ACTIVITY_PAGE_LIMIT" envDefault:"20"`
	TrendingPageLimit int           `env:"TRENDING_PAGE_LIMIT" envDefault:"5"`
	SessionCookie     string        `env:"SESSION_COOKIE" envDefault:"bondsio_admin_session"`
	SessionTTL        time.Duration `env:"SESSION_TTL" envDefault:"12h"`
	LogLevel          string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat         string        `env:"LOG_FORMAT" envDefault:"text"`
}

func New() *Config {
	if loadErr := godotenv.Load(".env"); loadErr != nil {
		log.Printf("[Env]: unable to load .env file: %v", loadErr)
	}

	var cfg Config

	if parseErr := env.Parse(&cfg); parseErr != nil {
		log.Printf("[Env]: failed to parse environment variables: %v", parseErr)
	}

	return &cfg
}
