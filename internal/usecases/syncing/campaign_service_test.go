package syncing

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

func stringPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func activeAccount() *domain.AdAccount {
	return &domain.AdAccount{
		ID:             "ACC001",
		OrganizationID: "ORG001",
		Platform:       domain.PlatformMeta,
		ExternalID:     "act_999",
		Name:           "Main Meta Account",
		AccessToken:    stringPtr("enc-access"),
		TokenExpiresAt: timePtr(time.Now().UTC().Add(30 * 24 * time.Hour)),
		Status:         domain.AdAccountStatusActive,
	}
}

type campaignSyncFixture struct {
	accountRepo  *repomocks.MockAdAccountRepository
	campaignRepo *repomocks.MockCampaignRepository
	adapter      *integratormocks.MockAdapter
	encryptor    *mocks.MockTokenEncryptor
	service      CampaignSyncer
}

func newCampaignSyncFixture(ctrl *gomock.Controller) *campaignSyncFixture {
	accountRepo := repomocks.NewMockAdAccountRepository(ctrl)
	campaignRepo := repomocks.NewMockCampaignRepository(ctrl)
	adapter := integratormocks.NewMockAdapter(ctrl)
	adapter.EXPECT().Platform().Return(domain.PlatformMeta).AnyTimes()
	encryptor := mocks.NewMockTokenEncryptor(ctrl)

	return &campaignSyncFixture{
		accountRepo:  accountRepo,
		campaignRepo: campaignRepo,
		adapter:      adapter,
		encryptor:    encryptor,
		service:      NewCampaignSyncService(accountRepo, campaignRepo, integrator.NewRegistry(adapter), encryptor),
	}
}

func TestCampaignSyncService_SyncCampaigns_CreatesAndUpdates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCampaignSyncFixture(ctrl)

	f.accountRepo.EXPECT().GetByID("ACC001").Return(activeAccount(), nil)
	f.encryptor.EXPECT().Decrypt("enc-access").Return("plain-access", nil)
	f.adapter.EXPECT().
		GetCampaigns("plain-access", "act_999").
		Return([]integrator.NormalizedCampaignData{
			{ExternalID: "cmp-1", Name: "Summer Sale", Status: domain.CampaignStatusActive},
			{ExternalID: "cmp-2", Name: "Brand Awareness", Status: domain.CampaignStatusPaused},
		}, nil)

	// cmp-1 is unknown locally, cmp-2 exists with a stale status.
	f.campaignRepo.EXPECT().GetByExternalID("ACC001", "cmp-1").Return(nil, nil)
	f.campaignRepo.EXPECT().GetByExternalID("ACC001", "cmp-2").Return(&domain.Campaign{
		ID:          "CMP002",
		AdAccountID: "ACC001",
		ExternalID:  "cmp-2",
		Name:        "Brand Awareness",
		Status:      domain.CampaignStatusActive,
	}, nil)

	var saved []domain.Campaign
	f.campaignRepo.EXPECT().
		SaveMany(gomock.Any()).
		DoAndReturn(func(campaigns []domain.Campaign) error {
			saved = campaigns
			return nil
		})

	result, err := f.service.SyncCampaigns("ACC001")

	require.NoError(t, err)
	assert.Equal(t, 2, result.Synced)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Updated)
	assert.Empty(t, result.Errors)

	require.Len(t, saved, 2)
	assert.Equal(t, "cmp-1", saved[0].ExternalID)
	assert.Equal(t, domain.CampaignStatusActive, saved[0].Status)
	assert.Equal(t, "CMP002", saved[1].ID)
	assert.Equal(t, domain.CampaignStatusPaused, saved[1].Status)
}

func TestCampaignSyncService_SyncCampaigns_UnchangedStillCountsAsUpdated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCampaignSyncFixture(ctrl)

	f.accountRepo.EXPECT().GetByID("ACC001").Return(activeAccount(), nil)
	f.encryptor.EXPECT().Decrypt("enc-access").Return("plain-access", nil)
	f.adapter.EXPECT().
		GetCampaigns("plain-access", "act_999").
		Return([]integrator.NormalizedCampaignData{
			{ExternalID: "cmp-1", Name: "Summer Sale", Status: domain.CampaignStatusActive},
		}, nil)

	f.campaignRepo.EXPECT().GetByExternalID("ACC001", "cmp-1").Return(&domain.Campaign{
		ID:          "CMP001",
		AdAccountID: "ACC001",
		ExternalID:  "cmp-1",
		Name:        "Summer Sale",
		Status:      domain.CampaignStatusActive,
	}, nil)

	// Nothing changed, so no persistence call is made, but the campaign was
	// still reconciled and counts as updated.
	result, err := f.service.SyncCampaigns("ACC001")

	require.NoError(t, err)
	assert.Equal(t, 1, result.Synced)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 1, result.Updated)
	assert.Empty(t, result.Errors)
}

func TestCampaignSyncService_SyncCampaigns_PerCampaignErrorIsolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCampaignSyncFixture(ctrl)

	f.accountRepo.EXPECT().GetByID("ACC001").Return(activeAccount(), nil)
	f.encryptor.EXPECT().Decrypt("enc-access").Return("plain-access", nil)
	f.adapter.EXPECT().
		GetCampaigns("plain-access", "act_999").
		Return([]integrator.NormalizedCampaignData{
			{ExternalID: "cmp-1", Name: "Summer Sale", Status: domain.CampaignStatusActive},
			{ExternalID: "cmp-2", Name: "Brand Awareness", Status: domain.CampaignStatusPaused},
		}, nil)

	f.campaignRepo.EXPECT().
		GetByExternalID("ACC001", "cmp-1").
		Return(nil, errors.New("connection reset"))
	f.campaignRepo.EXPECT().GetByExternalID("ACC001", "cmp-2").Return(nil, nil)

	f.campaignRepo.EXPECT().
		SaveMany(gomock.Any()).
		DoAndReturn(func(campaigns []domain.Campaign) error {
			require.Len(t, campaigns, 1)
			assert.Equal(t, "cmp-2", campaigns[0].ExternalID)
			return nil
		})

	result, err := f.service.SyncCampaigns("ACC001")

	require.NoError(t, err)
	assert.Equal(t, 1, result.Synced)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 0, result.Updated)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Failed to sync campaign cmp-1: connection reset", result.Errors[0])
}

func TestCampaignSyncService_SyncCampaigns_DeletedCampaignTransitionFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCampaignSyncFixture(ctrl)

	f.accountRepo.EXPECT().GetByID("ACC001").Return(activeAccount(), nil)
	f.encryptor.EXPECT().Decrypt("enc-access").Return("plain-access", nil)
	f.adapter.EXPECT().
		GetCampaigns("plain-access", "act_999").
		Return([]integrator.NormalizedCampaignData{
			{ExternalID: "cmp-1", Name: "Summer Sale", Status: domain.CampaignStatusActive},
		}, nil)

	// DELETED is terminal locally, reviving it is a per-campaign error.
	f.campaignRepo.EXPECT().GetByExternalID("ACC001", "cmp-1").Return(&domain.Campaign{
		ID:          "CMP001",
		AdAccountID: "ACC001",
		ExternalID:  "cmp-1",
		Name:        "Summer Sale",
		Status:      domain.CampaignStatusDeleted,
	}, nil)

	result, err := f.service.SyncCampaigns("ACC001")

	require.NoError(t, err)
	assert.Equal(t, 0, result.Synced)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Failed to sync campaign cmp-1")
}

func TestCampaignSyncService_SyncCampaigns_EmptyRemoteListSkipsPersistence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCampaignSyncFixture(ctrl)

	f.accountRepo.EXPECT().GetByID("ACC001").Return(activeAccount(), nil)
	f.encryptor.EXPECT().Decrypt("enc-access").Return("plain-access", nil)
	f.adapter.EXPECT().
		GetCampaigns("plain-access", "act_999").
		Return([]integrator.NormalizedCampaignData{}, nil)

	result, err := f.service.SyncCampaigns("ACC001")

	require.NoError(t, err)
	assert.Equal(t, 0, result.Synced)
	assert.Empty(t, result.Errors)
}

func TestCampaignSyncService_SyncCampaigns_Preconditions(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(f *campaignSyncFixture)
		expected error
	}{
		{
			name: "account not found",
			setup: func(f *campaignSyncFixture) {
				f.accountRepo.EXPECT().GetByID("ACC001").Return(nil, nil)
			},
			expected: ErrAccountNotFound,
		},
		{
			name: "account inactive",
			setup: func(f *campaignSyncFixture) {
				account := activeAccount()
				account.Status = domain.AdAccountStatusInactive
				f.accountRepo.EXPECT().GetByID("ACC001").Return(account, nil)
			},
			expected: ErrAccountInactive,
		},
		{
			name: "missing access token",
			setup: func(f *campaignSyncFixture) {
				account := activeAccount()
				account.AccessToken = nil
				f.accountRepo.EXPECT().GetByID("ACC001").Return(account, nil)
			},
			expected: ErrMissingAccessToken,
		},
		{
			name: "unsupported platform",
			setup: func(f *campaignSyncFixture) {
				account := activeAccount()
				account.Platform = domain.PlatformGoogle
				f.accountRepo.EXPECT().GetByID("ACC001").Return(account, nil)
			},
			expected: ErrUnsupportedPlatform,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newCampaignSyncFixture(ctrl)
			tt.setup(f)

			result, err := f.service.SyncCampaigns("ACC001")

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestCampaignSyncService_SyncCampaigns_PlatformFetchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCampaignSyncFixture(ctrl)

	f.accountRepo.EXPECT().GetByID("ACC001").Return(activeAccount(), nil)
	f.encryptor.EXPECT().Decrypt("enc-access").Return("plain-access", nil)
	f.adapter.EXPECT().
		GetCampaigns("plain-access", "act_999").
		Return(nil, errors.New("rate limited"))

	result, err := f.service.SyncCampaigns("ACC001")

	assert.Nil(t, result)
	assert.EqualError(t, err, "rate limited")
}
