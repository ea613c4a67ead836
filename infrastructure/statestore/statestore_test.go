package statestore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/meta-ads-manager-api/internal/config"
	"github.com/vfg2006/meta-ads-manager-api/pkg/utils"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.StateLedger
		wantErr bool
	}{
		{name: "driver vazio usa noop", cfg: config.StateLedger{}},
		{name: "driver none usa noop", cfg: config.StateLedger{Driver: "none"}},
		{name: "redis sem url", cfg: config.StateLedger{Driver: "redis"}, wantErr: true},
		{name: "driver desconhecido", cfg: config.StateLedger{Driver: "memcached"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger, closeFn, err := New(context.Background(), tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.NoError(t, closeFn())

			ok, err := ledger.Consume(context.Background(), "nonce", time.Minute)
			assert.NoError(t, err)
			assert.True(t, ok)

			ok, _ = ledger.Consume(context.Background(), "nonce", time.Minute)
			assert.True(t, ok)
		})
	}
}

func TestRedisLedger_Consume(t *testing.T) {
	redisURL := os.Getenv("TEST_REDIS_URL")
	if redisURL == "" {
		t.Skip("TEST_REDIS_URL não definida")
	}

	ctx := context.Background()
	client, err := Connect(ctx, redisURL)
	require.NoError(t, err)
	defer client.Close()

	ledger := NewRedisLedger(client)
	nonce, err := utils.GenerateNonce()
	require.NoError(t, err)

	ok, err := ledger.Consume(ctx, nonce, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ledger.Consume(ctx, nonce, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)
}
