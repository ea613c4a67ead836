package appregistering

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	metadomain "github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/meta-ads-manager-api/internal/domain"
	"github.com/vfg2006/meta-ads-manager-api/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-manager-api/pkg/utils"
	"github.com/vfg2006/meta-ads-manager-api/pkg/vault"
)

type Registrar interface {
	Create(ctx context.Context, userID string, req domain.CreateMetaAppRequest) (*domain.MetaApp, error)
	List(ctx context.Context, userID string) ([]*domain.MetaApp, error)
	Get(ctx context.Context, id, userID string) (*domain.MetaApp, error)
	Update(ctx context.Context, id, userID string, req domain.UpdateMetaAppRequest) (*domain.MetaApp, error)
	Delete(ctx context.Context, id, userID string) error
	Verify(ctx context.Context, id, userID string) (*domain.MetaApp, error)
}

type Service struct {
	appRepo repository.MetaAppRepository
	client  metaclient.Client
	cipher  vault.Cipher
	now     func() time.Time
}

func NewService(appRepo repository.MetaAppRepository, client metaclient.Client, cipher vault.Cipher) Registrar {
	return &Service{
		appRepo: appRepo,
		client:  client,
		cipher:  cipher,
		now:     time.Now,
	}
}

func (s *Service) Create(ctx context.Context, userID string, req domain.CreateMetaAppRequest) (*domain.MetaApp, error) {
	if err := s.validateCredentials(ctx, req.AppID, req.AppSecret); err != nil {
		return nil, err
	}

	encryptedSecret, err := s.cipher.Encrypt(req.AppSecret)
	if err != nil {
		return nil, NewAppError(wrap(ErrEncryption, err), apiErrors.ErrInternalServer, "")
	}

	now := s.now()
	app := &domain.MetaApp{
		ID:                 utils.GenerateID(),
		UserID:             userID,
		AppID:              req.AppID,
		AppSecret:          encryptedSecret,
		AppName:            req.AppName,
		WebhookURL:         req.WebhookURL,
		IsActive:           true,
		IsVerified:         true,
		VerificationStatus: domain.VerificationStatusVerified,
		LastVerifiedAt:     &now,
	}

	if err := s.appRepo.Create(ctx, app); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, NewAppError(ErrAppAlreadyExists, apiErrors.ErrConflict, "Este app já está cadastrado para o usuário")
		}
		return nil, NewAppError(wrap(ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "Erro ao salvar app")
	}

	logrus.WithFields(logrus.Fields{
		"user_id":     userID,
		"meta_app_id": app.ID,
		"app_id":      app.AppID,
	}).Info("meta-apps: app cadastrado e verificado")

	return app, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]*domain.MetaApp, error) {
	apps, err := s.appRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, NewAppError(wrap(ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "Erro ao listar apps")
	}
	return apps, nil
}

func (s *Service) Get(ctx context.Context, id, userID string) (*domain.MetaApp, error) {
	app, err := s.appRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, NewAppError(wrap(ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "Erro ao buscar app")
	}
	if app == nil {
		return nil, NewAppError(ErrAppNotFound, apiErrors.ErrNotFound, "")
	}
	return app, nil
}

func (s *Service) Update(ctx context.Context, id, userID string, req domain.UpdateMetaAppRequest) (*domain.MetaApp, error) {
	app, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.AppName != nil {
		app.AppName = *req.AppName
	}
	if req.WebhookURL != nil {
		app.WebhookURL = req.WebhookURL
	}

	// um novo segredo só é aceito depois de validado no Meta
	if req.AppSecret != nil {
		if err := s.validateCredentials(ctx, app.AppID, *req.AppSecret); err != nil {
			return nil, err
		}

		encryptedSecret, err := s.cipher.Encrypt(*req.AppSecret)
		if err != nil {
			return nil, NewAppError(wrap(ErrEncryption, err), apiErrors.ErrInternalServer, "")
		}

		now := s.now()
		app.AppSecret = encryptedSecret
		app.IsVerified = true
		app.VerificationStatus = domain.VerificationStatusVerified
		app.LastVerifiedAt = &now
	}

	if err := s.save(ctx, app); err != nil {
		return nil, err
	}

	return app, nil
}

// Delete desativa o app; as contas conectadas por ele são desativadas junto
func (s *Service) Delete(ctx context.Context, id, userID string) error {
	if err := s.appRepo.Deactivate(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewAppError(ErrAppNotFound, apiErrors.ErrNotFound, "")
		}
		return NewAppError(wrap(ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "Erro ao remover app")
	}

	logrus.WithFields(logrus.Fields{
		"user_id":     userID,
		"meta_app_id": id,
	}).Info("meta-apps: app desativado")

	return nil
}

// Verify revalida as credenciais guardadas. Uma recusa do Meta não é erro:
// o app volta com status FAILED.
func (s *Service) Verify(ctx context.Context, id, userID string) (*domain.MetaApp, error) {
	app, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	secret, err := s.cipher.Decrypt(app.AppSecret)
	if err != nil {
		return nil, NewAppError(wrap(ErrEncryption, err), apiErrors.ErrInternalServer, "")
	}

	err = s.client.ValidateAppCredentials(ctx, metadomain.AppCredentials{AppID: app.AppID, AppSecret: secret})
	if _, isTransport := metaclient.AsTransportError(err); isTransport {
		return nil, NewAppError(wrap(ErrMetaIntegration, err), apiErrors.ErrCommunication, "Meta indisponível")
	}

	now := s.now()
	app.LastVerifiedAt = &now
	app.IsVerified = err == nil
	app.VerificationStatus = domain.VerificationStatusVerified
	if err != nil {
		app.VerificationStatus = domain.VerificationStatusFailed
		logrus.WithFields(logrus.Fields{
			"meta_app_id": app.ID,
			"error":       err.Error(),
		}).Warn("meta-apps: credenciais recusadas na verificação")
	}

	if err := s.save(ctx, app); err != nil {
		return nil, err
	}

	return app, nil
}

func (s *Service) validateCredentials(ctx context.Context, appID, appSecret string) error {
	err := s.client.ValidateAppCredentials(ctx, metadomain.AppCredentials{AppID: appID, AppSecret: appSecret})
	if err == nil {
		return nil
	}

	if _, ok := metaclient.AsProviderError(err); ok {
		return NewAppError(wrap(ErrInvalidCredentials, err), apiErrors.ErrInvalidRequest, "Verifique o App ID e o App Secret")
	}

	return NewAppError(wrap(ErrMetaIntegration, err), metaclient.ErrorCode(err), "Não foi possível validar as credenciais")
}

func (s *Service) save(ctx context.Context, app *domain.MetaApp) error {
	if err := s.appRepo.Update(ctx, app); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewAppError(ErrAppNotFound, apiErrors.ErrNotFound, "")
		}
		return NewAppError(wrap(ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "Erro ao atualizar app")
	}
	return nil
}
