package account

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	metadomain "github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta/metaclient"
	metamocks "github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/meta-ads-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/meta-ads-manager-api/internal/domain"
	"github.com/vfg2006/meta-ads-manager-api/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-manager-api/pkg/vault"
)

func newTestService(t *testing.T) (*Service, *mocks.MockMetaAccountRepository, *metamocks.MockClient, *domain.MetaAccount) {
	ctrl := gomock.NewController(t)

	cipher, err := vault.New("chave-de-teste")
	require.NoError(t, err)

	token, err := cipher.Encrypt("token-da-conta")
	require.NoError(t, err)

	repo := mocks.NewMockMetaAccountRepository(ctrl)
	client := metamocks.NewMockClient(ctrl)

	account := &domain.MetaAccount{
		ID:          "acc-1",
		UserID:      "u1",
		AccountID:   "123",
		AccountName: "Nome antigo",
		AccessToken: token,
		IsActive:    true,
	}

	return &Service{accountRepository: repo, client: client, cipher: cipher}, repo, client, account
}

func TestService_GetDetails(t *testing.T) {
	t.Run("Inclui saldo e gasto atuais", func(t *testing.T) {
		service, repo, client, account := newTestService(t)

		repo.EXPECT().GetActiveByID(gomock.Any(), "acc-1", "u1").Return(account, nil)
		client.EXPECT().GetAdAccount(gomock.Any(), "token-da-conta", "123").Return(&metadomain.AdAccount{Balance: "1500", AmountSpent: "98765"}, nil)

		details, err := service.GetDetails(context.Background(), "acc-1", "u1")
		require.NoError(t, err)
		assert.Equal(t, "1500", details.Balance)
		assert.Equal(t, "98765", details.AmountSpent)
		assert.Equal(t, "acc-1", details.ID)
	})

	t.Run("Conta inexistente ou inativa", func(t *testing.T) {
		service, repo, _, _ := newTestService(t)

		repo.EXPECT().GetActiveByID(gomock.Any(), "acc-x", "u1").Return(nil, nil)

		_, err := service.GetDetails(context.Background(), "acc-x", "u1")
		assert.ErrorIs(t, err, ErrAccountNotFound)

		var accountErr *AccountError
		require.True(t, errors.As(err, &accountErr))
		assert.Equal(t, apiErrors.ErrNotFound, accountErr.APICode())
	})

	t.Run("Erro do Meta vira erro de serviço externo", func(t *testing.T) {
		service, repo, client, account := newTestService(t)

		repo.EXPECT().GetActiveByID(gomock.Any(), "acc-1", "u1").Return(account, nil)
		client.EXPECT().GetAdAccount(gomock.Any(), gomock.Any(), "123").Return(nil, &metaclient.ProviderError{Code: 190})

		_, err := service.GetDetails(context.Background(), "acc-1", "u1")
		assert.ErrorIs(t, err, ErrMetaIntegration)

		var accountErr *AccountError
		require.True(t, errors.As(err, &accountErr))
		assert.Equal(t, apiErrors.ErrExternalService, accountErr.APICode())
	})
}

func TestService_SyncAccount(t *testing.T) {
	service, repo, client, account := newTestService(t)

	repo.EXPECT().GetActiveByID(gomock.Any(), "acc-1", "u1").Return(account, nil)
	client.EXPECT().GetAdAccount(gomock.Any(), "token-da-conta", "123").Return(&metadomain.AdAccount{
		Name:          "Nome novo",
		AccountStatus: 2,
		Currency:      "USD",
		TimezoneName:  "America/New_York",
	}, nil)
	repo.EXPECT().UpdateSyncedData(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, updated *domain.MetaAccount) error {
		assert.Equal(t, "Nome novo", updated.AccountName)
		assert.Equal(t, 2, updated.AccountStatus)
		assert.Equal(t, "USD", updated.Currency)
		assert.Equal(t, "America/New_York", updated.Timezone)
		return nil
	})

	synced, err := service.SyncAccount(context.Background(), "acc-1", "u1")
	require.NoError(t, err)
	assert.Equal(t, "Nome novo", synced.AccountName)
}

func TestService_List(t *testing.T) {
	service, repo, _, account := newTestService(t)

	repo.EXPECT().ListActiveByUser(gomock.Any(), "u1").Return([]*domain.MetaAccount{account}, nil)
	repo.EXPECT().ListActiveByUser(gomock.Any(), "u2").Return(nil, errors.New("conexão perdida"))

	accounts, err := service.List(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, accounts, 1)

	_, err = service.List(context.Background(), "u2")
	assert.ErrorIs(t, err, ErrFetchAccounts)
}
