package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		// t.Setenv sets the environment variable for the duration of the test
		// and automatically restores it afterwards.
		t.Setenv("APP_PORT", "8080")
		t.Setenv("APP_ENV", "test")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "test", cfg.AppEnv)
	})

	t.Run("Default port when unset", func(t *testing.T) {
		t.Setenv("APP_PORT", "")
		t.Setenv("APP_ENV", "")

		cfg := LoadConfig()

		assert.Equal(t, "8000", cfg.AppPort)
		assert.Equal(t, "", cfg.AppEnv)
	})
}
