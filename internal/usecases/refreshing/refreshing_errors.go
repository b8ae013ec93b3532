package refreshing

import "errors"

var (
	ErrAccountNotFound     = errors.New("ad account not found")
	ErrMissingAccessToken  = errors.New("ad account has no access token")
	ErrUnsupportedPlatform = errors.New("platform has no registered adapter")
)
