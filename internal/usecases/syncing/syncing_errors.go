package syncing

import "errors"

// Precondition errors. All of them fail fast, before any platform call.
var (
	ErrAccountNotFound     = errors.New("ad account not found")
	ErrAccountInactive     = errors.New("ad account is inactive")
	ErrMissingAccessToken  = errors.New("ad account has no access token")
	ErrCampaignNotFound    = errors.New("campaign not found")
	ErrUnsupportedPlatform = errors.New("platform has no registered adapter")
)
