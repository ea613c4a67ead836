package appregistering

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	metadomain "github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta/metaclient"
	metamocks "github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/meta-ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/meta-ads-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/meta-ads-manager-api/internal/domain"
	"github.com/vfg2006/meta-ads-manager-api/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-manager-api/pkg/vault"
)

var fixedNow = time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	service *Service
	appRepo *mocks.MockMetaAppRepository
	client  *metamocks.MockClient
	cipher  *vault.Vault
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	cipher, err := vault.New("chave-de-teste")
	require.NoError(t, err)

	f := &fixture{
		appRepo: mocks.NewMockMetaAppRepository(ctrl),
		client:  metamocks.NewMockClient(ctrl),
		cipher:  cipher,
	}
	f.service = &Service{
		appRepo: f.appRepo,
		client:  f.client,
		cipher:  cipher,
		now:     func() time.Time { return fixedNow },
	}
	return f
}

func apiCode(t *testing.T, err error) string {
	t.Helper()
	var coded apiErrors.CodedError
	require.True(t, errors.As(err, &coded))
	return coded.APICode()
}

func TestService_Create(t *testing.T) {
	req := domain.CreateMetaAppRequest{AppID: "123456789", AppSecret: "segredo-com-16-caracteres", AppName: "Meu app"}
	creds := metadomain.AppCredentials{AppID: req.AppID, AppSecret: req.AppSecret}

	t.Run("Credenciais válidas são cifradas e o app fica verificado", func(t *testing.T) {
		f := newFixture(t)

		f.client.EXPECT().ValidateAppCredentials(gomock.Any(), creds).Return(nil)
		f.appRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, app *domain.MetaApp) error {
			assert.NotEqual(t, req.AppSecret, app.AppSecret)
			plain, err := f.cipher.Decrypt(app.AppSecret)
			require.NoError(t, err)
			assert.Equal(t, req.AppSecret, plain)
			return nil
		})

		app, err := f.service.Create(context.Background(), "u1", req)
		require.NoError(t, err)
		assert.Equal(t, "u1", app.UserID)
		assert.True(t, app.IsVerified)
		assert.Equal(t, domain.VerificationStatusVerified, app.VerificationStatus)
		assert.Equal(t, fixedNow, *app.LastVerifiedAt)
	})

	t.Run("Credenciais recusadas pelo Meta", func(t *testing.T) {
		f := newFixture(t)

		f.client.EXPECT().ValidateAppCredentials(gomock.Any(), creds).Return(&metaclient.ProviderError{Code: 101, Message: "Invalid client_id"})

		_, err := f.service.Create(context.Background(), "u1", req)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Equal(t, apiErrors.ErrInvalidRequest, apiCode(t, err))
	})

	t.Run("Meta fora do ar", func(t *testing.T) {
		f := newFixture(t)

		f.client.EXPECT().ValidateAppCredentials(gomock.Any(), creds).Return(&metaclient.TransportError{Op: "validate", Err: context.DeadlineExceeded})

		_, err := f.service.Create(context.Background(), "u1", req)
		assert.ErrorIs(t, err, ErrMetaIntegration)
		assert.Equal(t, apiErrors.ErrCommunication, apiCode(t, err))
	})

	t.Run("App duplicado", func(t *testing.T) {
		f := newFixture(t)

		f.client.EXPECT().ValidateAppCredentials(gomock.Any(), creds).Return(nil)
		f.appRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repository.ErrDuplicate)

		_, err := f.service.Create(context.Background(), "u1", req)
		assert.ErrorIs(t, err, ErrAppAlreadyExists)
		assert.Equal(t, apiErrors.ErrConflict, apiCode(t, err))
	})
}

func TestService_Update(t *testing.T) {
	newSecret := "novo-segredo-com-16-chars"

	t.Run("Novo segredo é validado antes de salvar", func(t *testing.T) {
		f := newFixture(t)
		name := "Renomeado"

		f.appRepo.EXPECT().GetByID(gomock.Any(), "app-1", "u1").Return(&domain.MetaApp{ID: "app-1", UserID: "u1", AppID: "123456789"}, nil)
		f.client.EXPECT().ValidateAppCredentials(gomock.Any(), metadomain.AppCredentials{AppID: "123456789", AppSecret: newSecret}).Return(nil)
		f.appRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		app, err := f.service.Update(context.Background(), "app-1", "u1", domain.UpdateMetaAppRequest{AppName: &name, AppSecret: &newSecret})
		require.NoError(t, err)
		assert.Equal(t, "Renomeado", app.AppName)

		plain, err := f.cipher.Decrypt(app.AppSecret)
		require.NoError(t, err)
		assert.Equal(t, newSecret, plain)
	})

	t.Run("Segredo recusado não altera o app", func(t *testing.T) {
		f := newFixture(t)

		f.appRepo.EXPECT().GetByID(gomock.Any(), "app-1", "u1").Return(&domain.MetaApp{ID: "app-1", AppID: "123456789"}, nil)
		f.client.EXPECT().ValidateAppCredentials(gomock.Any(), gomock.Any()).Return(&metaclient.ProviderError{Code: 1})

		_, err := f.service.Update(context.Background(), "app-1", "u1", domain.UpdateMetaAppRequest{AppSecret: &newSecret})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("App de outro usuário", func(t *testing.T) {
		f := newFixture(t)

		f.appRepo.EXPECT().GetByID(gomock.Any(), "app-1", "u2").Return(nil, nil)

		_, err := f.service.Update(context.Background(), "app-1", "u2", domain.UpdateMetaAppRequest{})
		assert.ErrorIs(t, err, ErrAppNotFound)
		assert.Equal(t, apiErrors.ErrNotFound, apiCode(t, err))
	})
}

func TestService_Delete(t *testing.T) {
	f := newFixture(t)

	f.appRepo.EXPECT().Deactivate(gomock.Any(), "app-1", "u1").Return(nil)
	f.appRepo.EXPECT().Deactivate(gomock.Any(), "app-2", "u1").Return(repository.ErrNotFound)

	assert.NoError(t, f.service.Delete(context.Background(), "app-1", "u1"))
	assert.ErrorIs(t, f.service.Delete(context.Background(), "app-2", "u1"), ErrAppNotFound)
}

func TestService_Verify(t *testing.T) {
	tests := []struct {
		name       string
		validation error
		wantStatus domain.VerificationStatus
		wantErr    error
	}{
		{name: "Credenciais aceitas", wantStatus: domain.VerificationStatusVerified},
		{name: "Credenciais recusadas", validation: &metaclient.ProviderError{Code: 190}, wantStatus: domain.VerificationStatusFailed},
		{name: "Falha de rede não altera o status", validation: &metaclient.TransportError{Op: "validate", Err: errors.New("timeout")}, wantErr: ErrMetaIntegration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			encrypted, err := f.cipher.Encrypt("segredo-guardado-123")
			require.NoError(t, err)

			f.appRepo.EXPECT().GetByID(gomock.Any(), "app-1", "u1").Return(&domain.MetaApp{
				ID: "app-1", UserID: "u1", AppID: "123456789", AppSecret: encrypted,
				VerificationStatus: domain.VerificationStatusPending,
			}, nil)
			f.client.EXPECT().ValidateAppCredentials(gomock.Any(), metadomain.AppCredentials{AppID: "123456789", AppSecret: "segredo-guardado-123"}).Return(tt.validation)

			if tt.wantErr == nil {
				f.appRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			}

			app, err := f.service.Verify(context.Background(), "app-1", "u1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, app.VerificationStatus)
			assert.Equal(t, tt.wantStatus == domain.VerificationStatusVerified, app.IsVerified)
		})
	}
}
