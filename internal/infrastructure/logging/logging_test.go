package logging_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Xausdorf/card-gateway/internal/infrastructure/logging"
)

func TestNewLogger(t *testing.T) {
	logger, err := logging.NewLogger("payment-gateway", "test", "debug")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))

	_, err = logging.NewLogger("payment-gateway", "test", "loud")
	require.Error(t, err)
}

func TestNewLogger_DuplicatesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "gateway.log")
	t.Setenv("LOG_FILE", path)

	logger, err := logging.NewLogger("payment-gateway", "test", "info")
	require.NoError(t, err)
	logger.Info("payment_processed")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"payment_processed"`)
	assert.Contains(t, string(data), `"service":"payment-gateway"`)
}

func TestContextLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	ctx := logging.ContextWithLogger(context.Background(), logger)
	logging.FromContext(ctx).Info("from_context")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "from_context", logs.All()[0].Message)
	assert.Same(t, zap.L(), logging.FromContext(context.Background()))
	assert.Equal(t, ctx, logging.ContextWithLogger(ctx, nil))
}
