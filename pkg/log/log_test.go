package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	require.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestForContextAddsCorrelationField(t *testing.T) {
	SetupTestLogger()

	previous := logrus.StandardLogger().Out
	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	t.Cleanup(func() { logrus.SetOutput(previous) })

	ctx, id := WithCorrelationID(context.Background())
	ForContext(ctx).WithField("rota", "/api/campaigns").Info("requisição recebida")

	assert.Contains(t, buf.String(), "correlation_id="+id)
	assert.Contains(t, buf.String(), "rota=/api/campaigns")
}

func TestSetupFallsBackToInfo(t *testing.T) {
	Setup("development", "nível-inexistente")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())

	Setup("production", "warn")
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
	_, isJSON := logrus.StandardLogger().Formatter.(*logrus.JSONFormatter)
	assert.True(t, isJSON)

	SetupTestLogger()
}
