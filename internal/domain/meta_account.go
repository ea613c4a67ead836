package domain

import "time"

type MetaAccount struct {
	ID             string     `json:"id"`
	UserID         string     `json:"userId"`
	MetaAppID      string     `json:"metaAppId"`
	AccountID      string     `json:"accountId"`
	AccountName    string     `json:"accountName"`
	AccessToken    string     `json:"-"`
	RefreshToken   *string    `json:"-"`
	TokenExpiresAt *time.Time `json:"tokenExpiresAt,omitempty"`
	AccountStatus  int        `json:"accountStatus"`
	Currency       string     `json:"currency"`
	Timezone       string     `json:"timezone"`
	BusinessID     *string    `json:"businessId,omitempty"`
	Permissions    []string   `json:"permissions"`
	IsActive       bool       `json:"isActive"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// AccountDetails junta os dados locais com os valores atuais do provedor
type AccountDetails struct {
	*MetaAccount
	Balance     string `json:"balance"`
	AmountSpent string `json:"amountSpent"`
}

// TokenExpiringWithin indica se o token expira antes de now+window
func (a *MetaAccount) TokenExpiringWithin(now time.Time, window time.Duration) bool {
	if a.TokenExpiresAt == nil {
		return false
	}
	return a.TokenExpiresAt.Before(now.Add(window))
}
