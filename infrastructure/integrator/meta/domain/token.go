package metadomain

// AppCredentials identifica o app do Meta usado nas trocas de token
type AppCredentials struct {
	AppID     string
	AppSecret string
}

// TokenResponse representa a resposta da API do Meta ao trocar um token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
