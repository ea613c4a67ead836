package domain

// OAuthState é o conteúdo do parâmetro state enviado ao diálogo do Meta
type OAuthState struct {
	UserID    string `json:"userId"`
	MetaAppID string `json:"metaAppId,omitempty"`
	Timestamp int64  `json:"timestamp"`
	Nonce     string `json:"nonce"`
}

type AuthorizationURLResponse struct {
	AuthURL string `json:"authUrl"`
}

type ConnectionResult struct {
	Accounts []*MetaAccount  `json:"accounts"`
	Pages    []*FacebookPage `json:"pages"`
}
