package metadomain

type Business struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type AdAccount struct {
	ID            string    `json:"id"`
	AccountID     string    `json:"account_id"`
	Name          string    `json:"name"`
	AccountStatus int       `json:"account_status"`
	Business      *Business `json:"business,omitempty"`
	Currency      string    `json:"currency"`
	TimezoneName  string    `json:"timezone_name"`
	AmountSpent   string    `json:"amount_spent"`
	Balance       string    `json:"balance"`
	Capabilities  []string  `json:"capabilities"`
}
