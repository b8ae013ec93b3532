package integrator

import (
	"time"

	"github.com/vfg2006/adlens-api/internal/domain"
)

// TokenExchangeResult is the normalized outcome of an OAuth code exchange or
// a token refresh. RefreshToken is nil for grants that do not issue one.
type TokenExchangeResult struct {
	AccessToken  string
	RefreshToken *string
	ExpiresAt    time.Time
}

// NormalizedAdAccountData is a platform ad account as listed by the platform
// API, stripped of platform-specific field names.
type NormalizedAdAccountData struct {
	ExternalID string
	Name       string
	Currency   string
}

// NormalizedCampaignData carries campaign metadata with the status already
// mapped onto the local closed status set.
type NormalizedCampaignData struct {
	ExternalID string
	Name       string
	Status     domain.CampaignStatus
}

// NormalizedInsightData is one day of raw metrics for one campaign. Values
// stay float64 here; entity construction floors the counts.
type NormalizedInsightData struct {
	Date        time.Time
	Spend       float64
	Impressions float64
	Clicks      float64
	Conversions float64
	Revenue     float64
}

// Adapter is the capability contract every platform client implements. All
// other components talk to platforms exclusively through this interface, so
// adding a platform means writing an adapter and registering it.
type Adapter interface {
	Platform() domain.Platform
	AuthType() domain.AuthType

	AuthURL(state, redirectURI string) string
	ExchangeCode(code, redirectURI string) (*TokenExchangeResult, error)
	RefreshAccessToken(refreshToken string) (*TokenExchangeResult, error)
	ValidateToken(accessToken string) bool

	GetAdAccounts(accessToken string) ([]NormalizedAdAccountData, error)
	GetCampaigns(accessToken, externalAccountID string) ([]NormalizedCampaignData, error)
	GetInsights(accessToken, externalCampaignID string, startDate, endDate time.Time) ([]NormalizedInsightData, error)
}
