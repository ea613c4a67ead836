package account

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/meta-ads-manager-api/internal/domain"
	"github.com/vfg2006/meta-ads-manager-api/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-manager-api/pkg/vault"
)

type AccountService interface {
	List(ctx context.Context, userID string) ([]*domain.MetaAccount, error)
	GetDetails(ctx context.Context, id, userID string) (*domain.AccountDetails, error)
	SyncAccount(ctx context.Context, id, userID string) (*domain.MetaAccount, error)
}

type Service struct {
	accountRepository repository.MetaAccountRepository
	client            metaclient.Client
	cipher            vault.Cipher
}

func NewService(accountRepository repository.MetaAccountRepository, client metaclient.Client, cipher vault.Cipher) AccountService {
	return &Service{
		accountRepository: accountRepository,
		client:            client,
		cipher:            cipher,
	}
}

func (s *Service) List(ctx context.Context, userID string) ([]*domain.MetaAccount, error) {
	accounts, err := s.accountRepository.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, NewAccountError(fmt.Errorf("%w: %w", ErrFetchAccounts, err), apiErrors.ErrDatabaseOperation, "Falha ao listar contas no banco de dados")
	}
	return accounts, nil
}

// GetDetails junta a conta local com saldo e gasto atuais consultados no Meta
func (s *Service) GetDetails(ctx context.Context, id, userID string) (*domain.AccountDetails, error) {
	account, token, err := s.activeAccount(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	live, err := s.client.GetAdAccount(ctx, token, account.AccountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.AccountID,
			"error":      err.Error(),
		}).Error("accounts: falha ao buscar dados atuais no Meta")
		return nil, NewAccountErrorWithID(fmt.Errorf("%w: %w", ErrMetaIntegration, err), metaclient.ErrorCode(err), account.ID, "")
	}

	return &domain.AccountDetails{
		MetaAccount: account,
		Balance:     live.Balance,
		AmountSpent: live.AmountSpent,
	}, nil
}

// SyncAccount atualiza nome, status, moeda e fuso da conta com os dados do Meta
func (s *Service) SyncAccount(ctx context.Context, id, userID string) (*domain.MetaAccount, error) {
	account, token, err := s.activeAccount(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	live, err := s.client.GetAdAccount(ctx, token, account.AccountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.AccountID,
			"error":      err.Error(),
		}).Error("accounts: falha ao sincronizar conta com o Meta")
		return nil, NewAccountErrorWithID(fmt.Errorf("%w: %w", ErrMetaIntegration, err), metaclient.ErrorCode(err), account.ID, "")
	}

	account.AccountName = live.Name
	account.AccountStatus = live.AccountStatus
	account.Currency = live.Currency
	account.Timezone = live.TimezoneName

	if err := s.accountRepository.UpdateSyncedData(ctx, account); err != nil {
		return nil, NewAccountErrorWithID(fmt.Errorf("%w: %w", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, account.ID, "Falha ao atualizar conta")
	}

	logrus.WithFields(logrus.Fields{
		"account_id":   account.AccountID,
		"account_name": account.AccountName,
	}).Info("accounts: conta sincronizada")

	return account, nil
}

// activeAccount busca a conta ativa do usuário e devolve o token já decifrado
func (s *Service) activeAccount(ctx context.Context, id, userID string) (*domain.MetaAccount, string, error) {
	account, err := s.accountRepository.GetActiveByID(ctx, id, userID)
	if err != nil {
		return nil, "", NewAccountErrorWithID(fmt.Errorf("%w: %w", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, id, "")
	}
	if account == nil {
		return nil, "", NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrNotFound, id, "")
	}

	token, err := s.cipher.Decrypt(account.AccessToken)
	if err != nil {
		return nil, "", NewAccountErrorWithID(fmt.Errorf("%w: %w", ErrDecryptToken, err), apiErrors.ErrInternalServer, id, "")
	}

	return account, token, nil
}
