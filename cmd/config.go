package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string `env:"APP_ENV" env-default:"local"`
	HTTPPort string `env:"HTTP_PORT" env-default:"8080"`

	DBHost     string `env:"DB_HOST" env-required:"true"`
	DBPort     string `env:"DB_PORT" env-default:"5432"`
	DBUser     string `env:"DB_USER" env-required:"true"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" env-required:"true"`
	DBSslMode  string `env:"DB_SSLMODE" env-default:"disable"`

	BurgerAPIURL     string        `env:"BURGER_API_URL" env-default:"https://norma.nomoreparties.space/api"`
	BurgerAPITimeout time.Duration `env:"BURGER_API_TIMEOUT" env-default:"10s"`

	// JWTSecret enables signature checks on access tokens. Empty means tokens
	// are only decoded.
	JWTSecret string `env:"JWT_SECRET"`

	OrderErrorDismissAfter time.Duration `env:"ORDER_ERROR_DISMISS_AFTER" env-default:"5s"`
	CatalogRefreshSchedule string        `env:"CATALOG_REFRESH_SCHEDULE" env-default:"0 */10 * * * *"`

	SessionIdleTimeout      time.Duration `env:"SESSION_IDLE_TIMEOUT" env-default:"30m"`
	SessionEvictionSchedule string        `env:"SESSION_EVICTION_SCHEDULE" env-default:"0 * * * * *"`
	SessionMax              int           `env:"SESSION_MAX" env-default:"10000"`
}

// LoadConfig reads envFile into the environment, if it exists, and then
// builds the Config from environment variables. Variables already set win
// over the file.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	var config Config
	if err := cleanenv.ReadEnv(&config); err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return config, nil
}

// DSN returns the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
