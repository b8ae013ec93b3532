package refreshing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adlens-api/infrastructure/crypto/mocks"
	"github.com/vfg2006/adlens-api/infrastructure/integrator"
	integratormocks "github.com/vfg2006/adlens-api/infrastructure/integrator/mocks"
	repomocks "github.com/vfg2006/adlens-api/infrastructure/repository/mocks"
	"github.com/vfg2006/adlens-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var referenceNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func stringPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}

type fixture struct {
	accountRepo *repomocks.MockAdAccountRepository
	adapter     *integratormocks.MockAdapter
	encryptor   *mocks.MockTokenEncryptor
	service     *Service
}

func newFixture(ctrl *gomock.Controller) *fixture {
	accountRepo := repomocks.NewMockAdAccountRepository(ctrl)
	adapter := integratormocks.NewMockAdapter(ctrl)
	adapter.EXPECT().Platform().Return(domain.PlatformMeta).AnyTimes()
	encryptor := mocks.NewMockTokenEncryptor(ctrl)

	return &fixture{
		accountRepo: accountRepo,
		adapter:     adapter,
		encryptor:   encryptor,
		service: &Service{
			accountRepository: accountRepo,
			registry:          integrator.NewRegistry(adapter),
			encryptor:         encryptor,
			now:               func() time.Time { return referenceNow },
		},
	}
}

func metaAccount(expiresAt time.Time, refreshToken *string) *domain.AdAccount {
	return &domain.AdAccount{
		ID:             "ACC001",
		OrganizationID: "ORG001",
		Platform:       domain.PlatformMeta,
		ExternalID:     "act_999",
		Name:           "Main Meta Account",
		AccessToken:    stringPtr("enc-access"),
		RefreshToken:   refreshToken,
		TokenExpiresAt: timePtr(expiresAt),
		Status:         domain.AdAccountStatusActive,
	}
}

func TestService_RefreshAccount_ValidAndNotExpiring(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	// Expires well outside the 7-day lookahead: nothing to do.
	account := metaAccount(referenceNow.Add(30*24*time.Hour), stringPtr("enc-refresh"))

	f.accountRepo.EXPECT().GetByID("ACC001").Return(account, nil)
	f.encryptor.EXPECT().Decrypt("enc-access").Return("plain-access", nil)
	f.adapter.EXPECT().ValidateToken("plain-access").Return(true)

	result, err := f.service.RefreshAccount("ACC001")

	require.NoError(t, err)
	assert.Equal(t, &RefreshResult{IsValid: true}, result)
}

func TestService_RefreshAccount_ExpiringWithRefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	// Still valid but expiring inside the lookahead window, so a proactive
	// refresh kicks in.
	account := metaAccount(referenceNow.Add(2*24*time.Hour), stringPtr("enc-refresh"))
	newExpiry := referenceNow.Add(60 * 24 * time.Hour)

	f.accountRepo.EXPECT().GetByID("ACC001").Return(account, nil)
	f.encryptor.EXPECT().Decrypt("enc-access").Return("plain-access", nil)
	f.adapter.EXPECT().ValidateToken("plain-access").Return(true)

	f.encryptor.EXPECT().Decrypt("enc-refresh").Return("plain-refresh", nil)
	f.adapter.EXPECT().
		RefreshAccessToken("plain-refresh").
		Return(&integrator.TokenExchangeResult{
			AccessToken:  "new-access",
			RefreshToken: stringPtr("new-refresh"),
			ExpiresAt:    newExpiry,
		}, nil)
	f.encryptor.EXPECT().Encrypt("new-access").Return("enc-new-access", nil)
	f.encryptor.EXPECT().Encrypt("new-refresh").Return("enc-new-refresh", nil)

	var saved domain.AdAccount
	f.accountRepo.EXPECT().
		Save(gomock.Any()).
		DoAndReturn(func(account domain.AdAccount) error {
			saved = account
			return nil
		})

	result, err := f.service.RefreshAccount("ACC001")

	require.NoError(t, err)
	assert.Equal(t, &RefreshResult{IsValid: true, WasRefreshed: true}, result)
	require.NotNil(t, saved.AccessToken)
	assert.Equal(t, "enc-new-access", *saved.AccessToken)
	require.NotNil(t, saved.RefreshToken)
	assert.Equal(t, "enc-new-refresh", *saved.RefreshToken)
	require.NotNil(t, saved.TokenExpiresAt)
	assert.Equal(t, newExpiry, *saved.TokenExpiresAt)
}

func TestService_RefreshAccount_KeepsOldRefreshTokenWhenNoneIssued(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	account := metaAccount(referenceNow.Add(time.Hour), stringPtr("enc-refresh"))

	f.accountRepo.EXPECT().GetByID("ACC001").Return(account, nil)
	f.encryptor.EXPECT().Decrypt("enc-access").Return("plain-access", nil)
	f.adapter.EXPECT().ValidateToken("plain-access").Return(false)

	f.encryptor.EXPECT().Decrypt("enc-refresh").Return("plain-refresh", nil)
	f.adapter.EXPECT().
		RefreshAccessToken("plain-refresh").
		Return(&integrator.TokenExchangeResult{
			AccessToken: "new-access",
			ExpiresAt:   referenceNow.Add(30 * 24 * time.Hour),
		}, nil)
	f.encryptor.EXPECT().Encrypt("new-access").Return("enc-new-access", nil)

	var saved domain.AdAccount
	f.accountRepo.EXPECT().
		Save(gomock.Any()).
		DoAndReturn(func(account domain.AdAccount) error {
			saved = account
			return nil
		})

	result, err := f.service.RefreshAccount("ACC001")

	require.NoError(t, err)
	assert.True(t, result.WasRefreshed)
	require.NotNil(t, saved.RefreshToken)
	assert.Equal(t, "enc-refresh", *saved.RefreshToken)
}

func TestService_RefreshAccount_RefreshFailures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *fixture)
	}{
		{
			name: "refresh token decryption fails",
			setup: func(f *fixture) {
				f.encryptor.EXPECT().Decrypt("enc-refresh").Return("", errors.New("bad ciphertext"))
			},
		},
		{
			name: "platform refuses the refresh",
			setup: func(f *fixture) {
				f.encryptor.EXPECT().Decrypt("enc-refresh").Return("plain-refresh", nil)
				f.adapter.EXPECT().
					RefreshAccessToken("plain-refresh").
					Return(nil, errors.New("refresh token revoked"))
			},
		},
		{
			name: "new token encryption fails",
			setup: func(f *fixture) {
				f.encryptor.EXPECT().Decrypt("enc-refresh").Return("plain-refresh", nil)
				f.adapter.EXPECT().
					RefreshAccessToken("plain-refresh").
					Return(&integrator.TokenExchangeResult{
						AccessToken: "new-access",
						ExpiresAt:   referenceNow.Add(30 * 24 * time.Hour),
					}, nil)
				f.encryptor.EXPECT().Encrypt("new-access").Return("", errors.New("cipher failure"))
			},
		},
		{
			name: "persistence fails",
			setup: func(f *fixture) {
				f.encryptor.EXPECT().Decrypt("enc-refresh").Return("plain-refresh", nil)
				f.adapter.EXPECT().
					RefreshAccessToken("plain-refresh").
					Return(&integrator.TokenExchangeResult{
						AccessToken: "new-access",
						ExpiresAt:   referenceNow.Add(30 * 24 * time.Hour),
					}, nil)
				f.encryptor.EXPECT().Encrypt("new-access").Return("enc-new-access", nil)
				f.accountRepo.EXPECT().Save(gomock.Any()).Return(errors.New("connection reset"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newFixture(ctrl)

			account := metaAccount(referenceNow.Add(time.Hour), stringPtr("enc-refresh"))

			f.accountRepo.EXPECT().GetByID("ACC001").Return(account, nil)
			f.encryptor.EXPECT().Decrypt("enc-access").Return("plain-access", nil)
			f.adapter.EXPECT().ValidateToken("plain-access").Return(false)

			tt.setup(f)

			// A failed refresh attempt is not an error, it is a reauth signal.
			result, err := f.service.RefreshAccount("ACC001")

			require.NoError(t, err)
			assert.Equal(t, &RefreshResult{NeedsReauth: true}, result)
		})
	}
}

func TestService_RefreshAccount_NoRefreshToken(t *testing.T) {
	tests := []struct {
		name     string
		isValid  bool
		expected *RefreshResult
	}{
		{
			name:    "token still valid but expiring",
			isValid: true,
			// A few usable days remain, but without a refresh token the user
			// has to reconnect before expiry.
			expected: &RefreshResult{IsValid: true, NeedsReauth: true},
		},
		{
			name:     "token already invalid",
			isValid:  false,
			expected: &RefreshResult{NeedsReauth: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newFixture(ctrl)

			account := metaAccount(referenceNow.Add(time.Hour), nil)

			f.accountRepo.EXPECT().GetByID("ACC001").Return(account, nil)
			f.encryptor.EXPECT().Decrypt("enc-access").Return("plain-access", nil)
			f.adapter.EXPECT().ValidateToken("plain-access").Return(tt.isValid)

			result, err := f.service.RefreshAccount("ACC001")

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestService_RefreshAccount_MissingExpiryCountsAsExpiring(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	account := metaAccount(referenceNow, nil)
	account.TokenExpiresAt = nil

	f.accountRepo.EXPECT().GetByID("ACC001").Return(account, nil)
	f.encryptor.EXPECT().Decrypt("enc-access").Return("plain-access", nil)
	f.adapter.EXPECT().ValidateToken("plain-access").Return(true)

	result, err := f.service.RefreshAccount("ACC001")

	require.NoError(t, err)
	assert.Equal(t, &RefreshResult{IsValid: true, NeedsReauth: true}, result)
}

func TestService_RefreshAccount_Preconditions(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(f *fixture)
		expected error
	}{
		{
			name: "account not found",
			setup: func(f *fixture) {
				f.accountRepo.EXPECT().GetByID("ACC001").Return(nil, nil)
			},
			expected: ErrAccountNotFound,
		},
		{
			name: "account without access token",
			setup: func(f *fixture) {
				account := metaAccount(referenceNow.Add(time.Hour), nil)
				account.AccessToken = nil
				f.accountRepo.EXPECT().GetByID("ACC001").Return(account, nil)
			},
			expected: ErrMissingAccessToken,
		},
		{
			name: "platform without adapter",
			setup: func(f *fixture) {
				account := metaAccount(referenceNow.Add(time.Hour), nil)
				account.Platform = domain.PlatformTikTok
				f.accountRepo.EXPECT().GetByID("ACC001").Return(account, nil)
			},
			expected: ErrUnsupportedPlatform,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newFixture(ctrl)
			tt.setup(f)

			result, err := f.service.RefreshAccount("ACC001")

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}
