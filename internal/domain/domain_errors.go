package domain

import "errors"

// Validation errors shared by the entity constructors and mutators.
var (
	ErrEmptyID               = errors.New("id is required")
	ErrEmptyOrganizationID   = errors.New("organization id is required")
	ErrEmptyExternalID       = errors.New("external id is required")
	ErrEmptyName             = errors.New("name is required")
	ErrInvalidPlatform       = errors.New("unknown platform")
	ErrInvalidStatus         = errors.New("unknown campaign status")
	ErrCampaignDeleted       = errors.New("campaign is deleted and cannot change status")
	ErrNegativeMetric        = errors.New("metrics cannot be negative")
	ErrClicksOverImpressions = errors.New("clicks cannot exceed impressions")
)
