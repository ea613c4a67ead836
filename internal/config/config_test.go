package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCipherKey(t *testing.T) {
	tests := []struct {
		name         string
		cfg          Config
		wantKey      string
		wantFallback bool
		wantErr      error
	}{
		{
			name:    "usa ENCRYPTION_KEY quando informada",
			cfg:     Config{App: App{Env: "production"}, EncryptionKey: "chave", Auth: Auth{Secret: "jwt"}},
			wantKey: "chave",
		},
		{
			name:         "desenvolvimento cai para AUTH_SECRET",
			cfg:          Config{App: App{Env: "development"}, Auth: Auth{Secret: "jwt"}},
			wantKey:      "jwt",
			wantFallback: true,
		},
		{
			name:    "produção sem chave",
			cfg:     Config{App: App{Env: "production"}, Auth: Auth{Secret: "jwt"}},
			wantErr: ErrEncryptionKeyRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, fallback, err := tt.cfg.CipherKey()
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantFallback, fallback)
		})
	}
}
