package domain

import "time"

type AdSet struct {
	ID           string         `json:"id"`
	CampaignID   string         `json:"campaignId"`
	MetaAdSetID  *string        `json:"metaAdSetId,omitempty"`
	Name         string         `json:"name"`
	Status       CampaignStatus `json:"status"`
	BudgetType   BudgetType     `json:"budgetType"`
	Budget       *float64       `json:"budget,omitempty"`
	BidStrategy  *string        `json:"bidStrategy,omitempty"`
	Targeting    map[string]any `json:"targeting,omitempty"`
	Placements   map[string]any `json:"placements,omitempty"`
	Optimization map[string]any `json:"optimization,omitempty"`
	Ads          []*Ad          `json:"ads"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

type Ad struct {
	ID        string         `json:"id"`
	AdSetID   string         `json:"adSetId"`
	MetaAdID  *string        `json:"metaAdId,omitempty"`
	Name      string         `json:"name"`
	Status    CampaignStatus `json:"status"`
	Creative  map[string]any `json:"creative,omitempty"`
	AdFormat  *string        `json:"adFormat,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
