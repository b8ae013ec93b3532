package syncing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adlens-api/infrastructure/cache"
	"github.com/vfg2006/adlens-api/infrastructure/crypto/mocks"
	"github.com/vfg2006/adlens-api/infrastructure/integrator"
	integratormocks "github.com/vfg2006/adlens-api/infrastructure/integrator/mocks"
	repomocks "github.com/vfg2006/adlens-api/infrastructure/repository/mocks"
	"github.com/vfg2006/adlens-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var (
	syncStart = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	syncEnd   = time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC)
)

type insightSyncFixture struct {
	accountRepo  *repomocks.MockAdAccountRepository
	campaignRepo *repomocks.MockCampaignRepository
	insightRepo  *repomocks.MockCampaignInsightRepository
	adapter      *integratormocks.MockAdapter
	encryptor    *mocks.MockTokenEncryptor
	cache        *cache.Memory
	service      InsightSyncer
}

func newInsightSyncFixture(ctrl *gomock.Controller) *insightSyncFixture {
	accountRepo := repomocks.NewMockAdAccountRepository(ctrl)
	campaignRepo := repomocks.NewMockCampaignRepository(ctrl)
	insightRepo := repomocks.NewMockCampaignInsightRepository(ctrl)
	adapter := integratormocks.NewMockAdapter(ctrl)
	adapter.EXPECT().Platform().Return(domain.PlatformMeta).AnyTimes()
	encryptor := mocks.NewMockTokenEncryptor(ctrl)
	resultCache := cache.NewMemory()

	return &insightSyncFixture{
		accountRepo:  accountRepo,
		campaignRepo: campaignRepo,
		insightRepo:  insightRepo,
		adapter:      adapter,
		encryptor:    encryptor,
		cache:        resultCache,
		service: NewInsightSyncService(accountRepo, campaignRepo, insightRepo,
			integrator.NewRegistry(adapter), encryptor, resultCache),
	}
}

func syncedCampaign() *domain.Campaign {
	return &domain.Campaign{
		ID:          "CMP001",
		AdAccountID: "ACC001",
		ExternalID:  "cmp-1",
		Name:        "Summer Sale",
		Status:      domain.CampaignStatusActive,
	}
}

func TestInsightSyncService_SyncInsights_ColdPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newInsightSyncFixture(ctrl)

	f.campaignRepo.EXPECT().GetByID("CMP001").Return(syncedCampaign(), nil)
	f.accountRepo.EXPECT().GetByID("ACC001").Return(activeAccount(), nil)
	f.encryptor.EXPECT().Decrypt("enc-access").Return("plain-access", nil)
	f.adapter.EXPECT().
		GetInsights("plain-access", "cmp-1", syncStart, syncEnd).
		Return([]integrator.NormalizedInsightData{
			{Date: syncStart, Spend: 100.0, Impressions: 10000, Clicks: 500, Conversions: 25, Revenue: 400.0},
			{Date: syncStart.AddDate(0, 0, 1), Spend: 50.0, Impressions: 4000, Clicks: 100, Conversions: 5, Revenue: 90.0},
		}, nil).
		Times(1)

	f.insightRepo.EXPECT().GetByCampaignAndDate("CMP001", syncStart).Return(nil, nil)
	f.insightRepo.EXPECT().
		GetByCampaignAndDate("CMP001", syncStart.AddDate(0, 0, 1)).
		Return(&domain.CampaignInsight{
			ID:         "INS001",
			CampaignID: "CMP001",
			Date:       syncStart.AddDate(0, 0, 1),
			Spend:      48.0,
		}, nil)

	var saved []domain.CampaignInsight
	f.insightRepo.EXPECT().
		SaveMany(gomock.Any()).
		DoAndReturn(func(insights []domain.CampaignInsight) error {
			saved = insights
			return nil
		})

	result, err := f.service.SyncInsights("CMP001", syncStart, syncEnd)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Synced)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Updated)
	assert.Empty(t, result.Errors)
	assert.False(t, result.SyncedAt.IsZero())

	require.Len(t, saved, 2)
	assert.Equal(t, 100.0, saved[0].Spend)
	assert.Equal(t, int64(10000), saved[0].Impressions)
	assert.Equal(t, "INS001", saved[1].ID)
	assert.Equal(t, 50.0, saved[1].Spend)

	// The pass leaves its result in the cache under the documented key.
	cached, ok := f.cache.Get("insights:meta:cmp-1:2024-06-01:2024-06-07")
	require.True(t, ok)
	assert.Equal(t, result, cached)
}

func TestInsightSyncService_SyncInsights_WarmPathServesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newInsightSyncFixture(ctrl)

	previous := &InsightSyncResult{
		Synced:   3,
		Created:  3,
		Errors:   []string{},
		SyncedAt: time.Now().UTC().Add(-time.Hour),
	}
	f.cache.Set("insights:meta:cmp-1:2024-06-01:2024-06-07", previous, time.Hour)

	// Only the two repository lookups run; no decryption, no platform call,
	// no persistence.
	f.campaignRepo.EXPECT().GetByID("CMP001").Return(syncedCampaign(), nil)
	f.accountRepo.EXPECT().GetByID("ACC001").Return(activeAccount(), nil)

	result, err := f.service.SyncInsights("CMP001", syncStart, syncEnd)

	require.NoError(t, err)
	assert.Same(t, previous, result)
}

func TestInsightSyncService_SyncInsights_PerInsightErrorIsolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newInsightSyncFixture(ctrl)

	f.campaignRepo.EXPECT().GetByID("CMP001").Return(syncedCampaign(), nil)
	f.accountRepo.EXPECT().GetByID("ACC001").Return(activeAccount(), nil)
	f.encryptor.EXPECT().Decrypt("enc-access").Return("plain-access", nil)
	f.adapter.EXPECT().
		GetInsights("plain-access", "cmp-1", syncStart, syncEnd).
		Return([]integrator.NormalizedInsightData{
			// Clicks above impressions fails entity validation.
			{Date: syncStart, Spend: 10.0, Impressions: 100, Clicks: 500},
			{Date: syncStart.AddDate(0, 0, 1), Spend: 20.0, Impressions: 2000, Clicks: 80},
		}, nil)

	f.insightRepo.EXPECT().GetByCampaignAndDate("CMP001", syncStart).Return(nil, nil)
	f.insightRepo.EXPECT().GetByCampaignAndDate("CMP001", syncStart.AddDate(0, 0, 1)).Return(nil, nil)

	f.insightRepo.EXPECT().
		SaveMany(gomock.Any()).
		DoAndReturn(func(insights []domain.CampaignInsight) error {
			require.Len(t, insights, 1)
			assert.Equal(t, 20.0, insights[0].Spend)
			return nil
		})

	result, err := f.service.SyncInsights("CMP001", syncStart, syncEnd)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Synced)
	assert.Equal(t, 1, result.Created)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Failed to sync insight for 2024-06-01")
}

func TestInsightSyncService_SyncInsights_Preconditions(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(f *insightSyncFixture)
		expected error
	}{
		{
			name: "campaign not found",
			setup: func(f *insightSyncFixture) {
				f.campaignRepo.EXPECT().GetByID("CMP001").Return(nil, nil)
			},
			expected: ErrCampaignNotFound,
		},
		{
			name: "account not found",
			setup: func(f *insightSyncFixture) {
				f.campaignRepo.EXPECT().GetByID("CMP001").Return(syncedCampaign(), nil)
				f.accountRepo.EXPECT().GetByID("ACC001").Return(nil, nil)
			},
			expected: ErrAccountNotFound,
		},
		{
			name: "missing access token",
			setup: func(f *insightSyncFixture) {
				account := activeAccount()
				account.AccessToken = nil
				f.campaignRepo.EXPECT().GetByID("CMP001").Return(syncedCampaign(), nil)
				f.accountRepo.EXPECT().GetByID("ACC001").Return(account, nil)
			},
			expected: ErrMissingAccessToken,
		},
		{
			name: "unsupported platform",
			setup: func(f *insightSyncFixture) {
				account := activeAccount()
				account.Platform = domain.PlatformGoogle
				f.campaignRepo.EXPECT().GetByID("CMP001").Return(syncedCampaign(), nil)
				f.accountRepo.EXPECT().GetByID("ACC001").Return(account, nil)
			},
			expected: ErrUnsupportedPlatform,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newInsightSyncFixture(ctrl)
			tt.setup(f)

			result, err := f.service.SyncInsights("CMP001", syncStart, syncEnd)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestInsightSyncService_SyncInsights_DecryptionFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newInsightSyncFixture(ctrl)

	f.campaignRepo.EXPECT().GetByID("CMP001").Return(syncedCampaign(), nil)
	f.accountRepo.EXPECT().GetByID("ACC001").Return(activeAccount(), nil)
	f.encryptor.EXPECT().Decrypt("enc-access").Return("", errors.New("bad ciphertext"))

	result, err := f.service.SyncInsights("CMP001", syncStart, syncEnd)

	assert.Nil(t, result)
	assert.EqualError(t, err, "bad ciphertext")
}

func TestInsightCacheKey(t *testing.T) {
	key := insightCacheKey(domain.PlatformTikTok, "ext-42", syncStart, syncEnd)
	assert.Equal(t, "insights:tiktok:ext-42:2024-06-01:2024-06-07", key)
}
