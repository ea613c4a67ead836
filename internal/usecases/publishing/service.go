package publishing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/meta-ads-manager-api/internal/domain"
	"github.com/vfg2006/meta-ads-manager-api/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-manager-api/pkg/utils"
	"github.com/vfg2006/meta-ads-manager-api/pkg/vault"
)

const (
	defaultInsightsMetric = "page_views,page_fans"
	defaultInsightsPeriod = "day"
	defaultInsightsRange  = 30 * 24 * time.Hour
	syncConcurrency       = 5
)

var validPeriods = map[string]bool{
	"day":              true,
	"week":             true,
	"days_28":          true,
	"month":            true,
	"lifetime":         true,
	"total_over_range": true,
}

type PageService interface {
	ListPages(ctx context.Context, userID string) ([]*domain.FacebookPage, error)
	GetPageInsights(ctx context.Context, userID, pageID string, query domain.PageInsightsQuery) ([]domain.PageInsight, error)
	CreatePost(ctx context.Context, userID, pageID string, req domain.CreatePagePostRequest) (*domain.PagePostResponse, error)
	SyncPage(ctx context.Context, userID, pageID string) (*domain.FacebookPage, error)
	SyncAllPages(ctx context.Context, userID, pageID string) (*domain.PageSyncReport, error)
}

type Service struct {
	pageRepo repository.FacebookPageRepository
	client   metaclient.Client
	cipher   vault.Cipher
	now      func() time.Time
}

func NewService(pageRepo repository.FacebookPageRepository, client metaclient.Client, cipher vault.Cipher) PageService {
	return &Service{
		pageRepo: pageRepo,
		client:   client,
		cipher:   cipher,
		now:      time.Now,
	}
}

func (s *Service) ListPages(ctx context.Context, userID string) ([]*domain.FacebookPage, error) {
	pages, err := s.pageRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, NewPageError(fmt.Errorf("%w: %w", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "", "Falha ao listar páginas")
	}
	return pages, nil
}

// GetPageInsights aplica os padrões page_views,page_fans / day / últimos 30 dias
func (s *Service) GetPageInsights(ctx context.Context, userID, pageID string, query domain.PageInsightsQuery) ([]domain.PageInsight, error) {
	if query.Metric == "" {
		query.Metric = defaultInsightsMetric
	}
	if query.Period == "" {
		query.Period = defaultInsightsPeriod
	}
	if !validPeriods[query.Period] {
		return nil, NewPageError(ErrInvalidPeriod, apiErrors.ErrInvalidFormat, pageID, query.Period)
	}

	now := s.now()
	if query.Until.IsZero() {
		query.Until = now
	}
	if query.Since.IsZero() {
		query.Since = query.Until.Add(-defaultInsightsRange)
	}

	page, token, err := s.activePage(ctx, userID, pageID)
	if err != nil {
		return nil, err
	}

	insights, err := s.client.GetPageInsights(ctx, token, page.PageID, metadomain.PageInsightsParams{
		Metric: query.Metric,
		Period: query.Period,
		Since:  utils.FormatDate(query.Since),
		Until:  utils.FormatDate(query.Until),
	})
	if err != nil {
		return nil, s.providerError(err, page.PageID, "insights")
	}

	return meta.FactoryPageInsights(insights), nil
}

func (s *Service) CreatePost(ctx context.Context, userID, pageID string, req domain.CreatePagePostRequest) (*domain.PagePostResponse, error) {
	page, token, err := s.activePage(ctx, userID, pageID)
	if err != nil {
		return nil, err
	}

	created, err := s.client.CreatePagePost(ctx, token, page.PageID, metadomain.PagePost{
		Message: req.Message,
		Picture: req.Picture,
	})
	if err != nil {
		return nil, s.providerError(err, page.PageID, "post")
	}

	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"page_id": page.PageID,
		"post_id": created.ID,
	}).Info("pages: publicação criada")

	return &domain.PagePostResponse{PostID: created.ID}, nil
}

// SyncPage atualiza nome, categoria, link e fãs de uma página com os dados do Meta
func (s *Service) SyncPage(ctx context.Context, userID, pageID string) (*domain.FacebookPage, error) {
	page, token, err := s.activePage(ctx, userID, pageID)
	if err != nil {
		return nil, err
	}

	return s.syncPage(ctx, page, token)
}

// SyncAllPages confirma que a página informada pertence ao usuário e então
// sincroniza todas as páginas ativas dele. Falhas individuais entram no relatório.
func (s *Service) SyncAllPages(ctx context.Context, userID, pageID string) (*domain.PageSyncReport, error) {
	if _, _, err := s.activePage(ctx, userID, pageID); err != nil {
		return nil, err
	}

	pages, err := s.ListPages(ctx, userID)
	if err != nil {
		return nil, err
	}

	var (
		mu     sync.Mutex
		report = &domain.PageSyncReport{Errors: []string{}}
	)

	utils.ForEachBounded(len(pages), syncConcurrency, func(i int) {
		page := pages[i]

		token, err := s.cipher.Decrypt(page.PageAccessToken)
		if err == nil {
			_, err = s.syncPage(ctx, page, token)
		}

		mu.Lock()
		defer mu.Unlock()

		if err != nil {
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %s", page.PageID, err.Error()))
			return
		}
		report.Synced++
	})

	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"synced":  report.Synced,
		"failed":  report.Failed,
	}).Info("pages: sincronização concluída")

	return report, nil
}

func (s *Service) syncPage(ctx context.Context, page *domain.FacebookPage, token string) (*domain.FacebookPage, error) {
	live, err := s.client.GetPage(ctx, token, page.PageID)
	if err != nil {
		return nil, s.providerError(err, page.PageID, "sync")
	}

	synced := meta.FactoryFacebookPage(*live, page.UserID, page.MetaAppID)
	page.PageName = synced.PageName
	page.PageCategory = synced.PageCategory
	page.PageURL = synced.PageURL
	page.FanCount = synced.FanCount

	if err := s.pageRepo.UpdateSyncedData(ctx, page); err != nil {
		return nil, NewPageError(fmt.Errorf("%w: %w", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, page.PageID, "Falha ao atualizar página")
	}

	now := s.now()
	page.LastSyncAt = &now

	return page, nil
}

func (s *Service) activePage(ctx context.Context, userID, pageID string) (*domain.FacebookPage, string, error) {
	page, err := s.pageRepo.GetActiveByPageID(ctx, userID, pageID)
	if err != nil {
		return nil, "", NewPageError(fmt.Errorf("%w: %w", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, pageID, "")
	}
	if page == nil {
		return nil, "", NewPageError(ErrPageNotFound, apiErrors.ErrNotFound, pageID, "")
	}

	token, err := s.cipher.Decrypt(page.PageAccessToken)
	if err != nil {
		return nil, "", NewPageError(fmt.Errorf("%w: %w", ErrDecryptToken, err), apiErrors.ErrInternalServer, pageID, "")
	}

	return page, token, nil
}

func (s *Service) providerError(err error, pageID, operation string) error {
	logrus.WithFields(logrus.Fields{
		"page_id":   pageID,
		"operation": operation,
		"error":     err.Error(),
	}).Error("pages: erro na chamada ao Meta")

	return NewPageError(fmt.Errorf("%w: %w", ErrMetaIntegration, err), metaclient.ErrorCode(err), pageID, "")
}
