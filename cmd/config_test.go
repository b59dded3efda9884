package cmd_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"burger/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_NAME", "burger")
}

func TestLoadConfig(t *testing.T) {
	t.Run("should apply defaults without an env file", func(t *testing.T) {
		setRequired(t)

		config, err := cmd.LoadConfig(filepath.Join(t.TempDir(), ".env"))

		require.NoError(t, err)
		assert.Equal(t, "local", config.AppEnv)
		assert.Equal(t, "8080", config.HTTPPort)
		assert.Equal(t, "5432", config.DBPort)
		assert.Equal(t, "disable", config.DBSslMode)
		assert.Equal(t, "https://norma.nomoreparties.space/api", config.BurgerAPIURL)
		assert.Equal(t, 10*time.Second, config.BurgerAPITimeout)
		assert.Equal(t, 5*time.Second, config.OrderErrorDismissAfter)
		assert.Equal(t, "0 */10 * * * *", config.CatalogRefreshSchedule)
		assert.Empty(t, config.JWTSecret)
		assert.Equal(t, 30*time.Minute, config.SessionIdleTimeout)
		assert.Equal(t, "0 * * * * *", config.SessionEvictionSchedule)
		assert.Equal(t, 10000, config.SessionMax)
	})

	t.Run("should read the environment", func(t *testing.T) {
		setRequired(t)
		t.Setenv("HTTP_PORT", "9090")
		t.Setenv("ORDER_ERROR_DISMISS_AFTER", "2s")

		config, err := cmd.LoadConfig(filepath.Join(t.TempDir(), ".env"))

		require.NoError(t, err)
		assert.Equal(t, "9090", config.HTTPPort)
		assert.Equal(t, 2*time.Second, config.OrderErrorDismissAfter)
	})

	t.Run("should read the env file", func(t *testing.T) {
		setRequired(t)
		t.Cleanup(func() { _ = os.Unsetenv("BURGER_API_TIMEOUT") })
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("BURGER_API_TIMEOUT=3s\nDB_HOST=ignored\n"), 0o600))

		config, err := cmd.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, 3*time.Second, config.BurgerAPITimeout)
		assert.Equal(t, "localhost", config.DBHost)
	})

	t.Run("should fail without required values", func(t *testing.T) {
		t.Setenv("DB_HOST", "")
		t.Setenv("DB_USER", "postgres")
		t.Setenv("DB_NAME", "burger")
		require.NoError(t, os.Unsetenv("DB_HOST"))

		_, err := cmd.LoadConfig(filepath.Join(t.TempDir(), ".env"))

		require.Error(t, err)
	})
}

func TestConfig_DSN(t *testing.T) {
	config := cmd.Config{
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "postgres",
		DBPassword: "secret",
		DBName:     "burger",
		DBSslMode:  "disable",
	}

	assert.Equal(t, "host=db port=5432 user=postgres password=secret dbname=burger sslmode=disable", config.DSN())
}
