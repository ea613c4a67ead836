package metadomain

type Page struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Link        string   `json:"link"`
	FanCount    int64    `json:"fan_count"`
	AccessToken string   `json:"access_token"`
	Tasks       []string `json:"tasks"`
}

type PageInsightsParams struct {
	Metric string
	Period string
	Since  string
	Until  string
}

type PageInsightValue struct {
	Value   any    `json:"value"`
	EndTime string `json:"end_time"`
}

type PageInsight struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Period      string             `json:"period"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Values      []PageInsightValue `json:"values"`
}

type PagePost struct {
	Message string
	Picture string
}
