package metadomain

import (
	"strconv"
	"time"
)

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

type Paging struct {
	Next string `json:"next"`
}

// CreatedObject é a resposta da Graph API ao criar um objeto
type CreatedObject struct {
	ID string `json:"id"`
}

type CampaignInput struct {
	Name       string
	Objective  string
	Status     string
	BudgetType string
	Budget     *float64
	StartTime  *time.Time
	EndTime    *time.Time
}

type TimeRange struct {
	Since string `json:"since"`
	Until string `json:"until"`
}

// CampaignInsight guarda os valores como texto, assim como a Graph API envia
type CampaignInsight struct {
	Impressions       string   `json:"impressions"`
	Clicks            string   `json:"clicks"`
	Spend             string   `json:"spend"`
	CTR               string   `json:"ctr"`
	CPC               string   `json:"cpc"`
	CPM               string   `json:"cpm"`
	Reach             string   `json:"reach"`
	Frequency         string   `json:"frequency"`
	Conversions       []Action `json:"conversions"`
	CostPerConversion []Action `json:"cost_per_conversion"`
	PurchaseROAS      []Action `json:"purchase_roas"`
	DateStart         string   `json:"date_start"`
	DateStop          string   `json:"date_stop"`
}

// SumActions soma os valores numéricos de uma lista de ações
func SumActions(actions []Action) float64 {
	var total float64
	for _, action := range actions {
		value, err := strconv.ParseFloat(action.Value, 64)
		if err != nil {
			continue
		}
		total += value
	}
	return total
}
