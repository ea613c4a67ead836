package statestore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/meta-ads-manager-api/internal/config"
)

const keyPrefix = "oauth_state:"

// Ledger registra nonces de state já utilizados no callback OAuth
type Ledger interface {
	// Consume retorna false quando o nonce já foi consumido dentro do ttl
	Consume(ctx context.Context, nonce string, ttl time.Duration) (bool, error)
}

type noopLedger struct{}

func (noopLedger) Consume(context.Context, string, time.Duration) (bool, error) {
	return true, nil
}

func NewNoop() Ledger {
	return noopLedger{}
}

type RedisLedger struct {
	client *redis.Client
}

func NewRedisLedger(client *redis.Client) *RedisLedger {
	return &RedisLedger{client: client}
}

func (l *RedisLedger) Consume(ctx context.Context, nonce string, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, keyPrefix+nonce, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("state ledger: %w", err)
	}
	return ok, nil
}

func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	var client *redis.Client
	if strings.HasPrefix(redisURL, "redis://") || strings.HasPrefix(redisURL, "rediss://") {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: redisURL})
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

// New escolhe o ledger conforme OAUTH_STATE_LEDGER. O retorno close deve ser chamado no shutdown.
func New(ctx context.Context, cfg config.StateLedger) (Ledger, func() error, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", "none":
		return NewNoop(), func() error { return nil }, nil
	case "redis":
		if cfg.RedisURL == "" {
			return nil, nil, fmt.Errorf("state ledger: REDIS_URL não configurada")
		}

		client, err := Connect(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}

		logrus.Info("state ledger: usando redis para nonces de OAuth")
		return NewRedisLedger(client), client.Close, nil
	default:
		return nil, nil, fmt.Errorf("state ledger: driver desconhecido %q", cfg.Driver)
	}
}
