package logger

import (
	"testing"

	"github.com/finwatch/payments-analytics-service/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("json format", func(t *testing.T) {
		l, err := New(config.LogConfig{LogLevel: "info", LogFormat: "json"})
		require.NoError(t, err)
		assert.NotNil(t, l)
	})

	t.Run("console format", func(t *testing.T) {
		l, err := New(config.LogConfig{LogLevel: "debug", LogFormat: "console"})
		require.NoError(t, err)
		assert.NotNil(t, l)
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := New(config.LogConfig{LogLevel: "loud", LogFormat: "json"})
		require.Error(t, err)
	})
}
