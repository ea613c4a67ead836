package domain

import "time"

type VerificationStatus string

const (
	VerificationStatusPending  VerificationStatus = "PENDING"
	VerificationStatusVerified VerificationStatus = "VERIFIED"
	VerificationStatusFailed   VerificationStatus = "FAILED"
)

// MetaApp é um app do Meta registrado por um usuário. O AppSecret fica
// sempre criptografado no banco e nunca é serializado.
type MetaApp struct {
	ID                 string             `json:"id"`
	UserID             string             `json:"userId"`
	AppID              string             `json:"appId"`
	AppSecret          string             `json:"-"`
	AppName            string             `json:"appName"`
	WebhookURL         *string            `json:"webhookUrl,omitempty"`
	IsActive           bool               `json:"isActive"`
	IsVerified         bool               `json:"isVerified"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
	LastVerifiedAt     *time.Time         `json:"lastVerifiedAt,omitempty"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

type CreateMetaAppRequest struct {
	AppID      string  `json:"appId" validate:"required,numeric,min=5,max=32"`
	AppSecret  string  `json:"appSecret" validate:"required,min=16,max=128"`
	AppName    string  `json:"appName" validate:"required,min=1,max=100"`
	WebhookURL *string `json:"webhookUrl" validate:"omitempty,url"`
}

type UpdateMetaAppRequest struct {
	AppName    *string `json:"appName" validate:"omitempty,min=1,max=100"`
	AppSecret  *string `json:"appSecret" validate:"omitempty,min=16,max=128"`
	WebhookURL *string `json:"webhookUrl" validate:"omitempty,url"`
}
