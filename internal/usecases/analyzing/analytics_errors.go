package analyzing

import (
	"errors"
	"fmt"
)

var (
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrAccountInactive   = errors.New("campaign account is inactive")
	ErrNotSynced         = errors.New("campaign has no Meta id")
	ErrInvalidDateRange  = errors.New("start date must not be after end date")
	ErrMetaIntegration   = errors.New("error fetching insights from Meta")
	ErrDecryptToken      = errors.New("error decrypting account token")
	ErrDatabaseOperation = errors.New("database operation error")
)

type AnalyticsError struct {
	Err        error
	Code       string
	CampaignID string
}

func (e *AnalyticsError) Error() string {
	return e.Err.Error()
}

func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

func (e *AnalyticsError) APICode() string {
	return e.Code
}

func NewAnalyticsError(baseErr error, code, campaignID string) *AnalyticsError {
	return &AnalyticsError{
		Err:        baseErr,
		Code:       code,
		CampaignID: campaignID,
	}
}

func wrap(base, cause error) error {
	return fmt.Errorf("%w: %w", base, cause)
}
