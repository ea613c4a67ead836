package campaigning

import (
	"errors"
	"fmt"
)

var (
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrAccountNotFound   = errors.New("meta account not found or inactive")
	ErrInvalidSchedule   = errors.New("end time must be after start time")
	ErrMissingProviderID = errors.New("campaign has no Meta id")
	ErrMetaIntegration   = errors.New("error calling Meta")
	ErrDecryptToken      = errors.New("error decrypting account token")
	ErrDatabaseOperation = errors.New("database operation error")
)

type CampaignError struct {
	Err        error
	Code       string
	CampaignID string
	Details    string
}

func (e *CampaignError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CampaignError) Unwrap() error {
	return e.Err
}

func (e *CampaignError) APICode() string {
	return e.Code
}

func NewCampaignError(baseErr error, code, campaignID, details string) *CampaignError {
	return &CampaignError{
		Err:        baseErr,
		Code:       code,
		CampaignID: campaignID,
		Details:    details,
	}
}

func wrap(base, cause error) error {
	return fmt.Errorf("%w: %w", base, cause)
}
