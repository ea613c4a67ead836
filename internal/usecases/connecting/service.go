package connecting

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/meta-ads-manager-api/infrastructure/statestore"
	"github.com/vfg2006/meta-ads-manager-api/internal/config"
	"github.com/vfg2006/meta-ads-manager-api/internal/domain"
	"github.com/vfg2006/meta-ads-manager-api/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-manager-api/pkg/metrics"
	"github.com/vfg2006/meta-ads-manager-api/pkg/utils"
	"github.com/vfg2006/meta-ads-manager-api/pkg/vault"
)

const defaultDialogURL = "https://www.facebook.com/dialog/oauth"

type Connector interface {
	BeginAuthorization(ctx context.Context, userID, metaAppID string) (string, error)
	CompleteAuthorization(ctx context.Context, code, state string) (*domain.ConnectionResult, error)
	DisconnectAccount(ctx context.Context, id, userID string) error
	DisconnectPage(ctx context.Context, pageID, userID string) error
}

type Service struct {
	cfg         config.Meta
	appRepo     repository.MetaAppRepository
	accountRepo repository.MetaAccountRepository
	pageRepo    repository.FacebookPageRepository
	client      metaclient.Client
	cipher      vault.Cipher
	ledger      statestore.Ledger
	now         func() time.Time
}

func NewService(
	cfg config.Meta,
	appRepo repository.MetaAppRepository,
	accountRepo repository.MetaAccountRepository,
	pageRepo repository.FacebookPageRepository,
	client metaclient.Client,
	cipher vault.Cipher,
	ledger statestore.Ledger,
) Connector {
	if ledger == nil {
		ledger = statestore.NewNoop()
	}

	return &Service{
		cfg:         cfg,
		appRepo:     appRepo,
		accountRepo: accountRepo,
		pageRepo:    pageRepo,
		client:      client,
		cipher:      cipher,
		ledger:      ledger,
		now:         time.Now,
	}
}

// appContext reúne as credenciais usadas na troca de tokens e o registro
// local em meta_apps ao qual os recursos descobertos ficam vinculados
type appContext struct {
	creds    metadomain.AppCredentials
	recordID string
}

func (s *Service) BeginAuthorization(ctx context.Context, userID, metaAppID string) (string, error) {
	app, err := s.resolveApp(ctx, userID, metaAppID)
	if err != nil {
		return "", err
	}

	nonce, err := utils.GenerateNonce()
	if err != nil {
		return "", NewConnectError(err, apiErrors.ErrInternalServer, "Erro ao gerar nonce")
	}

	state, err := EncodeState(domain.OAuthState{
		UserID:    userID,
		MetaAppID: metaAppID,
		Timestamp: s.now().UnixMilli(),
		Nonce:     nonce,
	}, s.cfg.StateSecret)
	if err != nil {
		return "", NewConnectError(err, apiErrors.ErrInternalServer, "Erro ao gerar state")
	}

	params := url.Values{}
	params.Add("client_id", app.creds.AppID)
	params.Add("redirect_uri", s.cfg.RedirectURI)
	params.Add("state", state)
	params.Add("response_type", "code")
	if s.cfg.ConfigID != "" {
		params.Add("config_id", s.cfg.ConfigID)
	} else if len(s.cfg.Scopes) > 0 {
		params.Add("scope", strings.Join(s.cfg.Scopes, ","))
	}

	dialogURL := s.cfg.DialogURL
	if dialogURL == "" {
		dialogURL = defaultDialogURL
	}

	logrus.WithFields(logrus.Fields{
		"user_id":     userID,
		"meta_app_id": app.recordID,
	}).Info("oauth: url de autorização gerada")

	return dialogURL + "?" + params.Encode(), nil
}

func (s *Service) CompleteAuthorization(ctx context.Context, code, rawState string) (*domain.ConnectionResult, error) {
	result, err := s.completeAuthorization(ctx, code, rawState)
	if err != nil {
		metrics.OAuthConnectionsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}

	metrics.OAuthConnectionsTotal.WithLabelValues("success").Inc()
	return result, nil
}

func (s *Service) completeAuthorization(ctx context.Context, code, rawState string) (*domain.ConnectionResult, error) {
	window := s.cfg.StateWindow
	if window <= 0 {
		window = DefaultStateWindow
	}

	state, err := DecodeState(rawState, s.cfg.StateSecret, s.now(), window)
	if err != nil {
		logrus.WithError(err).Warn("oauth: state rejeitado")
		return nil, NewConnectError(err, apiErrors.ErrInvalidState, "")
	}

	if code == "" {
		return nil, NewConnectError(ErrInvalidState, apiErrors.ErrMissingRequiredData, "Código de autorização ausente")
	}

	fresh, err := s.ledger.Consume(ctx, state.Nonce, window)
	if err != nil {
		return nil, NewConnectError(err, apiErrors.ErrInternalServer, "Erro ao registrar state")
	}
	if !fresh {
		logrus.WithField("user_id", state.UserID).Warn("oauth: state reutilizado")
		return nil, NewConnectError(ErrStateReplayed, apiErrors.ErrInvalidState, "")
	}

	app, err := s.resolveApp(ctx, state.UserID, state.MetaAppID)
	if err != nil {
		return nil, err
	}

	// troca de tokens estritamente sequencial: código, token curto, token longo
	shortLived, err := s.client.ExchangeCode(ctx, app.creds, s.cfg.RedirectURI, code)
	if err != nil {
		return nil, s.providerError(ErrTokenExchange, err, state.UserID)
	}

	longLived, err := s.client.ExchangeLongLivedToken(ctx, app.creds, shortLived.AccessToken)
	if err != nil {
		return nil, s.providerError(ErrTokenExchange, err, state.UserID)
	}

	expiresAt := metaclient.CalculateTokenExpiration(s.now(), longLived.ExpiresIn)

	adAccounts, pages, err := s.discover(ctx, longLived.AccessToken)
	if err != nil {
		return nil, s.providerError(ErrDiscovery, err, state.UserID)
	}

	encryptedToken, err := s.cipher.Encrypt(longLived.AccessToken)
	if err != nil {
		return nil, NewConnectError(wrap(ErrEncryption, err), apiErrors.ErrInternalServer, "")
	}

	result := &domain.ConnectionResult{
		Accounts: s.saveAccounts(ctx, state.UserID, app.recordID, encryptedToken, &expiresAt, adAccounts),
		Pages:    s.savePages(ctx, state.UserID, app.recordID, pages),
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  state.UserID,
		"accounts": len(result.Accounts),
		"pages":    len(result.Pages),
	}).Info("oauth: conexão concluída")

	return result, nil
}

// discover busca contas e páginas em paralelo e espera as duas chamadas.
// Só falha quando as duas falham.
func (s *Service) discover(ctx context.Context, accessToken string) ([]metadomain.AdAccount, []metadomain.Page, error) {
	var (
		wg          sync.WaitGroup
		adAccounts  []metadomain.AdAccount
		pages       []metadomain.Page
		accountsErr error
		pagesErr    error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		adAccounts, accountsErr = s.client.ListAdAccounts(ctx, accessToken)
	}()
	go func() {
		defer wg.Done()
		pages, pagesErr = s.client.ListPages(ctx, accessToken)
	}()
	wg.Wait()

	if accountsErr != nil && pagesErr != nil {
		return nil, nil, accountsErr
	}

	if accountsErr != nil {
		logrus.WithError(accountsErr).Warn("oauth: falha ao buscar contas de anúncio, seguindo com as páginas")
	}
	if pagesErr != nil {
		logrus.WithError(pagesErr).Warn("oauth: falha ao buscar páginas, seguindo com as contas de anúncio")
	}

	return adAccounts, pages, nil
}

func (s *Service) saveAccounts(ctx context.Context, userID, metaAppID, encryptedToken string, expiresAt *time.Time, adAccounts []metadomain.AdAccount) []*domain.MetaAccount {
	saved := make([]*domain.MetaAccount, 0, len(adAccounts))

	for _, adAccount := range adAccounts {
		account := meta.FactoryMetaAccount(adAccount, userID, metaAppID, encryptedToken, expiresAt, adAccount.Capabilities)

		row, err := s.accountRepo.Upsert(ctx, account)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id":    userID,
				"account_id": account.AccountID,
				"error":      err.Error(),
			}).Error("oauth: falha ao salvar conta de anúncio")
			continue
		}

		saved = append(saved, row)
	}

	return saved
}

func (s *Service) savePages(ctx context.Context, userID, metaAppID string, pages []metadomain.Page) []*domain.FacebookPage {
	saved := make([]*domain.FacebookPage, 0, len(pages))

	for _, page := range pages {
		fbPage := meta.FactoryFacebookPage(page, userID, metaAppID)

		encrypted, err := s.cipher.Encrypt(fbPage.PageAccessToken)
		if err != nil {
			logrus.WithError(err).WithField("page_id", page.ID).Error("oauth: falha ao cifrar token da página")
			continue
		}
		fbPage.PageAccessToken = encrypted

		row, err := s.pageRepo.Upsert(ctx, fbPage)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"page_id": page.ID,
				"error":   err.Error(),
			}).Error("oauth: falha ao salvar página")
			continue
		}

		saved = append(saved, row)
	}

	return saved
}

func (s *Service) DisconnectAccount(ctx context.Context, id, userID string) error {
	if err := s.accountRepo.Deactivate(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewConnectError(ErrAccountNotFound, apiErrors.ErrNotFound, "")
		}
		return NewConnectError(wrap(ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "Erro ao desconectar conta")
	}

	logrus.WithFields(logrus.Fields{
		"user_id":         userID,
		"meta_account_id": id,
	}).Info("oauth: conta desconectada")

	return nil
}

func (s *Service) DisconnectPage(ctx context.Context, pageID, userID string) error {
	if err := s.pageRepo.Deactivate(ctx, userID, pageID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewConnectError(ErrPageNotFound, apiErrors.ErrNotFound, "")
		}
		return NewConnectError(wrap(ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "Erro ao desconectar página")
	}

	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"page_id": pageID,
	}).Info("oauth: página desconectada")

	return nil
}

// resolveApp usa o app da plataforma quando metaAppID é vazio, senão o app
// cadastrado pelo próprio usuário
func (s *Service) resolveApp(ctx context.Context, userID, metaAppID string) (*appContext, error) {
	if s.cfg.RedirectURI == "" {
		return nil, NewConnectError(ErrConfiguration, apiErrors.ErrConfiguration, "META_REDIRECT_URI não configurada")
	}

	if metaAppID == "" {
		switch {
		case s.cfg.AppID == "":
			return nil, NewConnectError(ErrConfiguration, apiErrors.ErrConfiguration, "META_APP_ID não configurado")
		case s.cfg.AppSecret == "":
			return nil, NewConnectError(ErrConfiguration, apiErrors.ErrConfiguration, "META_APP_SECRET não configurado")
		case s.cfg.AppRecordID == "":
			return nil, NewConnectError(ErrConfiguration, apiErrors.ErrConfiguration, "META_APP_RECORD_ID não configurado")
		}

		return &appContext{
			creds:    metadomain.AppCredentials{AppID: s.cfg.AppID, AppSecret: s.cfg.AppSecret},
			recordID: s.cfg.AppRecordID,
		}, nil
	}

	app, err := s.appRepo.GetByID(ctx, metaAppID, userID)
	if err != nil {
		return nil, NewConnectError(wrap(ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "Erro ao buscar app")
	}
	if app == nil {
		return nil, NewConnectError(ErrAppNotFound, apiErrors.ErrNotFound, "")
	}

	secret, err := s.cipher.Decrypt(app.AppSecret)
	if err != nil {
		return nil, NewConnectError(wrap(ErrEncryption, err), apiErrors.ErrInternalServer, "")
	}

	return &appContext{
		creds:    metadomain.AppCredentials{AppID: app.AppID, AppSecret: secret},
		recordID: app.ID,
	}, nil
}

func (s *Service) providerError(base, err error, userID string) error {
	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"error":   err.Error(),
	}).Error("oauth: " + base.Error())

	return NewConnectError(wrap(base, err), metaclient.ErrorCode(err), "")
}
