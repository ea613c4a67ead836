package domain

import "time"

type CampaignStatus string

const (
	CampaignStatusActive   CampaignStatus = "ACTIVE"
	CampaignStatusPaused   CampaignStatus = "PAUSED"
	CampaignStatusDeleted  CampaignStatus = "DELETED"
	CampaignStatusArchived CampaignStatus = "ARCHIVED"
)

type CampaignObjective string

const (
	ObjectiveAwareness    CampaignObjective = "OUTCOME_AWARENESS"
	ObjectiveTraffic      CampaignObjective = "OUTCOME_TRAFFIC"
	ObjectiveEngagement   CampaignObjective = "OUTCOME_ENGAGEMENT"
	ObjectiveLeads        CampaignObjective = "OUTCOME_LEADS"
	ObjectiveAppPromotion CampaignObjective = "OUTCOME_APP_PROMOTION"
	ObjectiveSales        CampaignObjective = "OUTCOME_SALES"
)

type BudgetType string

const (
	BudgetTypeDaily    BudgetType = "DAILY"
	BudgetTypeLifetime BudgetType = "LIFETIME"
)

type Campaign struct {
	ID             string            `json:"id"`
	UserID         string            `json:"userId"`
	MetaAccountID  string            `json:"metaAccountId"`
	MetaCampaignID *string           `json:"metaCampaignId,omitempty"`
	Name           string            `json:"name"`
	Objective      CampaignObjective `json:"objective"`
	Status         CampaignStatus    `json:"status"`
	BudgetType     BudgetType        `json:"budgetType"`
	Budget         *float64          `json:"budget,omitempty"`
	StartTime      *time.Time        `json:"startTime,omitempty"`
	EndTime        *time.Time        `json:"endTime,omitempty"`
	Configuration  map[string]any    `json:"configuration,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

type CampaignDetails struct {
	*Campaign
	AccountName string   `json:"accountName"`
	Currency    string   `json:"currency"`
	AdSets      []*AdSet `json:"adSets"`
}

type CreateCampaignRequest struct {
	MetaAccountID string            `json:"metaAccountId" validate:"required,uuid"`
	Name          string            `json:"name" validate:"required,min=1,max=100"`
	Objective     CampaignObjective `json:"objective" validate:"required,oneof=OUTCOME_AWARENESS OUTCOME_TRAFFIC OUTCOME_ENGAGEMENT OUTCOME_LEADS OUTCOME_APP_PROMOTION OUTCOME_SALES"`
	Budget        *float64          `json:"budget" validate:"omitempty,min=1,max=999999"`
	BudgetType    BudgetType        `json:"budgetType" validate:"omitempty,oneof=DAILY LIFETIME"`
	StartTime     *time.Time        `json:"startTime"`
	EndTime       *time.Time        `json:"endTime"`
	Configuration map[string]any    `json:"configuration"`
}

type UpdateCampaignStatusRequest struct {
	Status CampaignStatus `json:"status" validate:"required,oneof=ACTIVE PAUSED DELETED ARCHIVED"`
}

type BulkAction string

const (
	BulkActionPause    BulkAction = "pause"
	BulkActionActivate BulkAction = "activate"
	BulkActionDelete   BulkAction = "delete"
	BulkActionArchive  BulkAction = "archive"
)

// Status converte a ação em lote no status correspondente
func (a BulkAction) Status() CampaignStatus {
	switch a {
	case BulkActionPause:
		return CampaignStatusPaused
	case BulkActionActivate:
		return CampaignStatusActive
	case BulkActionDelete:
		return CampaignStatusDeleted
	case BulkActionArchive:
		return CampaignStatusArchived
	}
	return ""
}

type BulkCampaignActionRequest struct {
	CampaignIDs []string   `json:"campaignIds" validate:"required,min=1,max=50,dive,uuid"`
	Action      BulkAction `json:"action" validate:"required,oneof=pause activate delete archive"`
}

type BulkActionResult struct {
	CampaignID string `json:"campaignId"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
}

type CampaignFilters struct {
	Status        CampaignStatus
	MetaAccountID string
	Limit         uint64
	Offset        uint64
}

// SyncableCampaign carrega o token da conta dona para a sincronização de métricas
type SyncableCampaign struct {
	*Campaign
	AccountID   string
	AccessToken string
}
