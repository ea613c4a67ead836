package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	metadomain "github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/meta-ads-manager-api/internal/config"
	"github.com/vfg2006/meta-ads-manager-api/internal/domain"
	"github.com/vfg2006/meta-ads-manager-api/pkg/vault"
)

const (
	TokenExpiryJobName = "token-expiry"

	defaultTokenWarningDays = 7
)

// TokenExpiryJob avisa sobre tokens de contas ativas que vencem em breve e,
// se habilitado, troca cada um por um novo token de longa duração.
type TokenExpiryJob struct {
	cfg         config.TokenExpiry
	metaCfg     config.Meta
	accountRepo repository.MetaAccountRepository
	appRepo     repository.MetaAppRepository
	client      metaclient.Client
	cipher      vault.Cipher
	clock       Clock
}

func NewTokenExpiryJob(
	cfg config.TokenExpiry,
	metaCfg config.Meta,
	accountRepo repository.MetaAccountRepository,
	appRepo repository.MetaAppRepository,
	client metaclient.Client,
	cipher vault.Cipher,
	clock Clock,
) *TokenExpiryJob {
	if cfg.WarningDays <= 0 {
		cfg.WarningDays = defaultTokenWarningDays
	}
	if clock == nil {
		clock = SystemClock()
	}

	return &TokenExpiryJob{
		cfg:         cfg,
		metaCfg:     metaCfg,
		accountRepo: accountRepo,
		appRepo:     appRepo,
		client:      client,
		cipher:      cipher,
		clock:       clock,
	}
}

func (j *TokenExpiryJob) Name() string         { return TokenExpiryJobName }
func (j *TokenExpiryJob) CronSchedule() string { return j.cfg.CronSchedule }
func (j *TokenExpiryJob) Enabled() bool        { return j.cfg.Enabled }

func (j *TokenExpiryJob) RunOnce(ctx context.Context) error {
	now := j.clock.Now()
	window := time.Duration(j.cfg.WarningDays) * 24 * time.Hour

	accounts, err := j.accountRepo.ListExpiringTokens(ctx, now.Add(window))
	if err != nil {
		return fmt.Errorf("erro ao listar tokens expirando: %w", err)
	}

	refreshed := 0
	for _, account := range accounts {
		fields := logrus.Fields{
			"account_id": account.ID,
			"user_id":    account.UserID,
		}
		if account.TokenExpiresAt != nil {
			fields["expires_at"] = account.TokenExpiresAt.Format(time.RFC3339)
			fields["remaining"] = metaclient.FormatDuration(int64(account.TokenExpiresAt.Sub(now).Seconds()))
		}
		logrus.WithFields(fields).Warn("token expiry: token da conta expira em breve")

		if !j.cfg.AutoRefresh {
			continue
		}

		if err := j.refresh(ctx, account, now); err != nil {
			logrus.WithFields(fields).WithError(err).Error("token expiry: falha ao renovar token")
			continue
		}
		refreshed++
	}

	logrus.WithFields(logrus.Fields{
		"expiring":  len(accounts),
		"refreshed": refreshed,
	}).Info("token expiry: verificação concluída")

	return nil
}

func (j *TokenExpiryJob) refresh(ctx context.Context, account *domain.MetaAccount, now time.Time) error {
	creds, err := j.credentials(ctx, account)
	if err != nil {
		return err
	}

	current, err := j.cipher.Decrypt(account.AccessToken)
	if err != nil {
		return fmt.Errorf("erro ao descriptografar token: %w", err)
	}

	token, err := j.client.ExchangeLongLivedToken(ctx, creds, current)
	if err != nil {
		return err
	}

	encrypted, err := j.cipher.Encrypt(token.AccessToken)
	if err != nil {
		return fmt.Errorf("erro ao criptografar token: %w", err)
	}

	expiresAt := metaclient.CalculateTokenExpiration(now, token.ExpiresIn)

	return j.accountRepo.UpdateToken(ctx, account.ID, encrypted, &expiresAt)
}

// credentials usa o app da plataforma quando a conta foi conectada por ele
func (j *TokenExpiryJob) credentials(ctx context.Context, account *domain.MetaAccount) (metadomain.AppCredentials, error) {
	if account.MetaAppID == j.metaCfg.AppRecordID && j.metaCfg.AppID != "" {
		return metadomain.AppCredentials{AppID: j.metaCfg.AppID, AppSecret: j.metaCfg.AppSecret}, nil
	}

	app, err := j.appRepo.GetByID(ctx, account.MetaAppID, account.UserID)
	if err != nil {
		return metadomain.AppCredentials{}, fmt.Errorf("erro ao buscar app: %w", err)
	}
	if app == nil || !app.IsActive {
		return metadomain.AppCredentials{}, fmt.Errorf("app %s não encontrado ou inativo", account.MetaAppID)
	}

	secret, err := j.cipher.Decrypt(app.AppSecret)
	if err != nil {
		return metadomain.AppCredentials{}, fmt.Errorf("erro ao descriptografar segredo do app: %w", err)
	}

	return metadomain.AppCredentials{AppID: app.AppID, AppSecret: secret}, nil
}
