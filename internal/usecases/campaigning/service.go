package campaigning

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	metadomain "github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/meta-ads-manager-api/internal/config"
	"github.com/vfg2006/meta-ads-manager-api/internal/domain"
	"github.com/vfg2006/meta-ads-manager-api/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-manager-api/pkg/utils"
	"github.com/vfg2006/meta-ads-manager-api/pkg/vault"
)

const (
	defaultListLimit      = 50
	defaultBulkConcurrent = 5
)

type CampaignService interface {
	Create(ctx context.Context, userID string, req domain.CreateCampaignRequest) (*domain.Campaign, error)
	List(ctx context.Context, userID string, filters domain.CampaignFilters) ([]*domain.Campaign, error)
	Get(ctx context.Context, id, userID string) (*domain.CampaignDetails, error)
	UpdateStatus(ctx context.Context, id, userID string, status domain.CampaignStatus) (*domain.Campaign, error)
	BulkUpdateStatus(ctx context.Context, userID string, req domain.BulkCampaignActionRequest) []domain.BulkActionResult
}

type Service struct {
	campaignRepo   repository.CampaignRepository
	accountRepo    repository.MetaAccountRepository
	adSetRepo      repository.AdSetRepository
	client         metaclient.Client
	cipher         vault.Cipher
	bulkConcurrent int
}

func NewService(
	cfg config.Campaigns,
	campaignRepo repository.CampaignRepository,
	accountRepo repository.MetaAccountRepository,
	adSetRepo repository.AdSetRepository,
	client metaclient.Client,
	cipher vault.Cipher,
) CampaignService {
	bulkConcurrent := cfg.BulkMaxConcurrent
	if bulkConcurrent <= 0 {
		bulkConcurrent = defaultBulkConcurrent
	}

	return &Service{
		campaignRepo:   campaignRepo,
		accountRepo:    accountRepo,
		adSetRepo:      adSetRepo,
		client:         client,
		cipher:         cipher,
		bulkConcurrent: bulkConcurrent,
	}
}

// Create cria a campanha primeiro no Meta (sempre pausada) e só então grava a linha local
func (s *Service) Create(ctx context.Context, userID string, req domain.CreateCampaignRequest) (*domain.Campaign, error) {
	if req.StartTime != nil && req.EndTime != nil && !req.EndTime.After(*req.StartTime) {
		return nil, NewCampaignError(ErrInvalidSchedule, apiErrors.ErrInvalidRequest, "", "")
	}

	account, token, err := s.activeAccount(ctx, req.MetaAccountID, userID)
	if err != nil {
		return nil, err
	}

	budgetType := req.BudgetType
	if budgetType == "" {
		budgetType = domain.BudgetTypeDaily
	}

	created, err := s.client.CreateCampaign(ctx, token, account.AccountID, metadomain.CampaignInput{
		Name:       req.Name,
		Objective:  string(req.Objective),
		Status:     string(domain.CampaignStatusPaused),
		BudgetType: string(budgetType),
		Budget:     req.Budget,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	})
	if err != nil {
		return nil, s.providerError(err, "", "create")
	}

	metaCampaignID := created.ID
	campaign := &domain.Campaign{
		ID:             utils.GenerateID(),
		UserID:         userID,
		MetaAccountID:  account.ID,
		MetaCampaignID: &metaCampaignID,
		Name:           req.Name,
		Objective:      req.Objective,
		Status:         domain.CampaignStatusPaused,
		BudgetType:     budgetType,
		Budget:         req.Budget,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Configuration:  req.Configuration,
	}

	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id":          userID,
			"meta_campaign_id": metaCampaignID,
			"error":            err.Error(),
		}).Error("campaigns: campanha criada no Meta mas não gravada no banco")
		return nil, NewCampaignError(wrap(ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "", "Falha ao salvar campanha")
	}

	logrus.WithFields(logrus.Fields{
		"user_id":          userID,
		"campaign_id":      campaign.ID,
		"meta_campaign_id": metaCampaignID,
	}).Info("campaigns: campanha criada")

	return campaign, nil
}

func (s *Service) List(ctx context.Context, userID string, filters domain.CampaignFilters) ([]*domain.Campaign, error) {
	if filters.Limit == 0 {
		filters.Limit = defaultListLimit
	}

	campaigns, err := s.campaignRepo.List(ctx, userID, filters)
	if err != nil {
		return nil, NewCampaignError(wrap(ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "", "Falha ao listar campanhas")
	}
	return campaigns, nil
}

// Get devolve a campanha com o nome e a moeda da conta e os conjuntos de anúncios
func (s *Service) Get(ctx context.Context, id, userID string) (*domain.CampaignDetails, error) {
	campaign, err := s.ownedCampaign(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepo.GetByID(ctx, campaign.MetaAccountID, userID)
	if err != nil {
		return nil, NewCampaignError(wrap(ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, id, "")
	}

	adSets, err := s.adSetRepo.ListByCampaign(ctx, campaign.ID)
	if err != nil {
		return nil, NewCampaignError(wrap(ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, id, "")
	}

	details := &domain.CampaignDetails{
		Campaign: campaign,
		AdSets:   adSets,
	}
	if account != nil {
		details.AccountName = account.AccountName
		details.Currency = account.Currency
	}

	return details, nil
}

// UpdateStatus altera o status no Meta e só depois no banco. Se o Meta falhar
// a linha local não é tocada.
func (s *Service) UpdateStatus(ctx context.Context, id, userID string, status domain.CampaignStatus) (*domain.Campaign, error) {
	campaign, err := s.ownedCampaign(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if campaign.MetaCampaignID == nil || *campaign.MetaCampaignID == "" {
		return nil, NewCampaignError(ErrMissingProviderID, apiErrors.ErrInvalidRequest, id, "")
	}

	_, token, err := s.activeAccount(ctx, campaign.MetaAccountID, userID)
	if err != nil {
		return nil, err
	}

	if err := s.client.UpdateCampaignStatus(ctx, token, *campaign.MetaCampaignID, string(status)); err != nil {
		return nil, s.providerError(err, id, "update_status")
	}

	if err := s.campaignRepo.UpdateStatus(ctx, campaign.ID, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewCampaignError(ErrCampaignNotFound, apiErrors.ErrNotFound, id, "")
		}
		return nil, NewCampaignError(wrap(ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, id, "")
	}

	campaign.Status = status

	logrus.WithFields(logrus.Fields{
		"user_id":     userID,
		"campaign_id": id,
		"status":      status,
	}).Info("campaigns: status atualizado")

	return campaign, nil
}

// BulkUpdateStatus aplica a mesma ação a várias campanhas em paralelo limitado.
// O resultado segue a ordem dos ids recebidos.
func (s *Service) BulkUpdateStatus(ctx context.Context, userID string, req domain.BulkCampaignActionRequest) []domain.BulkActionResult {
	status := req.Action.Status()
	results := make([]domain.BulkActionResult, len(req.CampaignIDs))

	utils.ForEachBounded(len(req.CampaignIDs), s.bulkConcurrent, func(i int) {
		id := req.CampaignIDs[i]
		result := domain.BulkActionResult{CampaignID: id, Success: true}

		if _, err := s.UpdateStatus(ctx, id, userID, status); err != nil {
			result.Success = false
			result.Error = err.Error()
		}

		results[i] = result
	})

	return results
}

func (s *Service) ownedCampaign(ctx context.Context, id, userID string) (*domain.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, NewCampaignError(wrap(ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, id, "")
	}
	if campaign == nil {
		return nil, NewCampaignError(ErrCampaignNotFound, apiErrors.ErrNotFound, id, "")
	}
	return campaign, nil
}

func (s *Service) activeAccount(ctx context.Context, accountID, userID string) (*domain.MetaAccount, string, error) {
	account, err := s.accountRepo.GetActiveByID(ctx, accountID, userID)
	if err != nil {
		return nil, "", NewCampaignError(wrap(ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "", "")
	}
	if account == nil {
		return nil, "", NewCampaignError(ErrAccountNotFound, apiErrors.ErrNotFound, "", accountID)
	}

	token, err := s.cipher.Decrypt(account.AccessToken)
	if err != nil {
		return nil, "", NewCampaignError(wrap(ErrDecryptToken, err), apiErrors.ErrInternalServer, "", "")
	}

	return account, token, nil
}

func (s *Service) providerError(err error, campaignID, operation string) error {
	logrus.WithFields(logrus.Fields{
		"campaign_id": campaignID,
		"operation":   operation,
		"error":       err.Error(),
	}).Error("campaigns: erro na chamada ao Meta")

	return NewCampaignError(wrap(ErrMetaIntegration, err), metaclient.ErrorCode(err), campaignID, "")
}
