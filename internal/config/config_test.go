package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, "my-secret-key", cfg.APIKey)
	assert.Empty(t, cfg.APIKeyBcrypt)
	assert.True(t, cfg.SeedProducts)
	assert.Equal(t, 10, cfg.PageDefaultLimit)
	assert.Zero(t, cfg.PageMaxLimit)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("API_KEY", "other")
	t.Setenv("SEED_PRODUCTS", "false")
	t.Setenv("PAGE_DEFAULT_LIMIT", "5")
	t.Setenv("PAGE_MAX_LIMIT", "20")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "other", cfg.APIKey)
	assert.False(t, cfg.SeedProducts)
	assert.Equal(t, 5, cfg.PageDefaultLimit)
	assert.Equal(t, 20, cfg.PageMaxLimit)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "zero default limit", env: map[string]string{"PAGE_DEFAULT_LIMIT": "0"}},
		{name: "max below default", env: map[string]string{"PAGE_DEFAULT_LIMIT": "50", "PAGE_MAX_LIMIT": "10"}},
		{name: "bad duration", env: map[string]string{"SHUTDOWN_TIMEOUT": "soon"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Parse()
			assert.Error(t, err)
		})
	}
}

func TestValidate_RequiresCredential(t *testing.T) {
	cfg := Config{PageDefaultLimit: 10, PageMaxLimit: 100}
	assert.Error(t, cfg.validate())

	cfg.APIKeyBcrypt = "$2a$10$abcdefghijklmnopqrstuv"
	assert.NoError(t, cfg.validate())
}

func TestValidate_UncappedPageSize(t *testing.T) {
	cfg := Config{APIKey: "k", PageDefaultLimit: 10}
	assert.NoError(t, cfg.validate())

	cfg.PageMaxLimit = 5
	assert.Error(t, cfg.validate())
}
