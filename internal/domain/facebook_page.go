package domain

import "time"

type FacebookPage struct {
	ID              string     `json:"id"`
	UserID          string     `json:"userId"`
	MetaAppID       string     `json:"metaAppId"`
	PageID          string     `json:"pageId"`
	PageName        string     `json:"pageName"`
	PageAccessToken string     `json:"-"`
	PageCategory    *string    `json:"pageCategory,omitempty"`
	PageURL         *string    `json:"pageUrl,omitempty"`
	FanCount        int64      `json:"fanCount"`
	Permissions     []string   `json:"permissions"`
	IsActive        bool       `json:"isActive"`
	LastSyncAt      *time.Time `json:"lastSyncAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type PageInsightsQuery struct {
	Metric string
	Period string
	Since  time.Time
	Until  time.Time
}

type PageInsightValue struct {
	Value   any    `json:"value"`
	EndTime string `json:"endTime,omitempty"`
}

type PageInsight struct {
	Name        string             `json:"name"`
	Period      string             `json:"period"`
	Title       string             `json:"title,omitempty"`
	Description string             `json:"description,omitempty"`
	Values      []PageInsightValue `json:"values"`
}

type CreatePagePostRequest struct {
	Message string `json:"message" validate:"required,min=1,max=63206"`
	Picture string `json:"picture" validate:"omitempty,url"`
}

type PagePostResponse struct {
	PostID string `json:"postId"`
}

type PageSyncReport struct {
	Synced int      `json:"synced"`
	Failed int      `json:"failed"`
	Errors []string `json:"errors,omitempty"`
}
