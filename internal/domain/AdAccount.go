package domain

import (
	"time"
)

// Platform identifies an advertising platform supported by the integrator layer.
type Platform string

const (
	PlatformMeta   Platform = "meta"
	PlatformGoogle Platform = "google"
	PlatformTikTok Platform = "tiktok"
	PlatformNaver  Platform = "naver"
	PlatformKakao  Platform = "kakao"
)

func (p Platform) Valid() bool {
	switch p {
	case PlatformMeta, PlatformGoogle, PlatformTikTok, PlatformNaver, PlatformKakao:
		return true
	}
	return false
}

func (p Platform) String() string {
	return string(p)
}

// AuthType describes how an adapter issues credentials for its platform.
type AuthType string

const (
	AuthTypeOAuth  AuthType = "oauth"
	AuthTypeAPIKey AuthType = "api_key"
)

type AdAccountStatus string

const (
	AdAccountStatusActive   AdAccountStatus = "ACTIVE"
	AdAccountStatusInactive AdAccountStatus = "INACTIVE"
)

// AdAccount is a connected external advertising account owned by an
// organization. Token fields hold ciphertext produced by the token encryptor;
// the entity never inspects them. Mutators return a new value instead of
// changing the receiver, so a loaded account can be shared across goroutines.
type AdAccount struct {
	ID             string          `json:"id"`
	OrganizationID string          `json:"organization_id"`
	Platform       Platform        `json:"platform"`
	ExternalID     string          `json:"external_id"`
	Name           string          `json:"name"`
	AccessToken    *string         `json:"-"`
	RefreshToken   *string         `json:"-"`
	TokenExpiresAt *time.Time      `json:"token_expires_at,omitempty"`
	Status         AdAccountStatus `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func NewAdAccount(id, organizationID string, platform Platform, externalID, name string) (AdAccount, error) {
	if id == "" {
		return AdAccount{}, ErrEmptyID
	}
	if organizationID == "" {
		return AdAccount{}, ErrEmptyOrganizationID
	}
	if !platform.Valid() {
		return AdAccount{}, ErrInvalidPlatform
	}
	if externalID == "" {
		return AdAccount{}, ErrEmptyExternalID
	}
	if name == "" {
		return AdAccount{}, ErrEmptyName
	}

	now := time.Now().UTC()

	return AdAccount{
		ID:             id,
		OrganizationID: organizationID,
		Platform:       platform,
		ExternalID:     externalID,
		Name:           name,
		Status:         AdAccountStatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

func (a AdAccount) IsActive() bool {
	return a.Status == AdAccountStatusActive
}

func (a AdAccount) HasAccessToken() bool {
	return a.AccessToken != nil && *a.AccessToken != ""
}

func (a AdAccount) HasRefreshToken() bool {
	return a.RefreshToken != nil && *a.RefreshToken != ""
}

// TokenExpiresWithin reports whether the stored credential expires before
// now+window. A missing expiry is treated as already expired.
func (a AdAccount) TokenExpiresWithin(now time.Time, window time.Duration) bool {
	if a.TokenExpiresAt == nil {
		return true
	}
	return !a.TokenExpiresAt.After(now.Add(window))
}

// WithTokens returns a copy carrying a new encrypted credential set.
// refreshToken may be nil for platforms that never issue one.
func (a AdAccount) WithTokens(accessToken string, refreshToken *string, expiresAt time.Time) AdAccount {
	a.AccessToken = &accessToken
	a.RefreshToken = refreshToken
	a.TokenExpiresAt = &expiresAt
	a.UpdatedAt = time.Now().UTC()
	return a
}

func (a AdAccount) Activated() AdAccount {
	a.Status = AdAccountStatusActive
	a.UpdatedAt = time.Now().UTC()
	return a
}

func (a AdAccount) Deactivated() AdAccount {
	a.Status = AdAccountStatusInactive
	a.UpdatedAt = time.Now().UTC()
	return a
}
