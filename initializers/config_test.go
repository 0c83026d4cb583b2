package initializers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("DATABASE_DSN", "user:pass@tcp(localhost:3306)/sehatku?parseTime=true")
	t.Setenv("PAYMENT_GATEWAY_API_KEY", "key")
	t.Setenv("PAYMENT_CALLBACK_TOKEN", "token")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://api.xendit.co", cfg.GatewayBaseURL)
	assert.Equal(t, "token", cfg.GatewayCallbackToken)
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("PAYMENT_GATEWAY_API_KEY", "key")
	t.Setenv("PAYMENT_CALLBACK_TOKEN", "token")
	t.Setenv("JWT_SECRET", "secret")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_DSN")
}
