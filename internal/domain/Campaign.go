package domain

import (
	"time"
)

type CampaignStatus string

const (
	CampaignStatusActive   CampaignStatus = "ACTIVE"
	CampaignStatusPaused   CampaignStatus = "PAUSED"
	CampaignStatusDeleted  CampaignStatus = "DELETED"
	CampaignStatusArchived CampaignStatus = "ARCHIVED"
)

func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignStatusActive, CampaignStatusPaused, CampaignStatusDeleted, CampaignStatusArchived:
		return true
	}
	return false
}

// Campaign mirrors an externally sourced advertising campaign. Rows are
// created and updated only by the sync reconciliation services; the platform
// is the source of truth for name and status.
type Campaign struct {
	ID          string         `json:"id"`
	AdAccountID string         `json:"ad_account_id"`
	ExternalID  string         `json:"external_id"`
	Name        string         `json:"name"`
	Status      CampaignStatus `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func NewCampaign(id, adAccountID, externalID, name string, status CampaignStatus) (Campaign, error) {
	if id == "" {
		return Campaign{}, ErrEmptyID
	}
	if adAccountID == "" {
		return Campaign{}, ErrEmptyID
	}
	if externalID == "" {
		return Campaign{}, ErrEmptyExternalID
	}
	if name == "" {
		return Campaign{}, ErrEmptyName
	}
	if !status.Valid() {
		return Campaign{}, ErrInvalidStatus
	}

	now := time.Now().UTC()

	return Campaign{
		ID:          id,
		AdAccountID: adAccountID,
		ExternalID:  externalID,
		Name:        name,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (c Campaign) WithName(name string) (Campaign, error) {
	if name == "" {
		return Campaign{}, ErrEmptyName
	}
	c.Name = name
	c.UpdatedAt = time.Now().UTC()
	return c, nil
}

// WithStatus returns a copy with the new status. DELETED is terminal: once a
// campaign is deleted no further transition is accepted.
func (c Campaign) WithStatus(status CampaignStatus) (Campaign, error) {
	if !status.Valid() {
		return Campaign{}, ErrInvalidStatus
	}
	if c.Status == CampaignStatusDeleted && status != CampaignStatusDeleted {
		return Campaign{}, ErrCampaignDeleted
	}
	c.Status = status
	c.UpdatedAt = time.Now().UTC()
	return c, nil
}
