package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCampaign(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		accountID  string
		externalID string
		campaign   string
		status     CampaignStatus
		expected   error
	}{
		{
			name:       "valid campaign",
			id:         "CMP001",
			accountID:  "ACC001",
			externalID: "cmp-1",
			campaign:   "Summer Sale",
			status:     CampaignStatusActive,
		},
		{
			name:       "empty id",
			accountID:  "ACC001",
			externalID: "cmp-1",
			campaign:   "Summer Sale",
			status:     CampaignStatusActive,
			expected:   ErrEmptyID,
		},
		{
			name:      "empty external id",
			id:        "CMP001",
			accountID: "ACC001",
			campaign:  "Summer Sale",
			status:    CampaignStatusActive,
			expected:  ErrEmptyExternalID,
		},
		{
			name:       "empty name",
			id:         "CMP001",
			accountID:  "ACC001",
			externalID: "cmp-1",
			status:     CampaignStatusActive,
			expected:   ErrEmptyName,
		},
		{
			name:       "unknown status",
			id:         "CMP001",
			accountID:  "ACC001",
			externalID: "cmp-1",
			campaign:   "Summer Sale",
			status:     CampaignStatus("RUNNING"),
			expected:   ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			campaign, err := NewCampaign(tt.id, tt.accountID, tt.externalID, tt.campaign, tt.status)

			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.id, campaign.ID)
			assert.Equal(t, tt.status, campaign.Status)
		})
	}
}

func TestCampaign_WithStatus_DeletedIsTerminal(t *testing.T) {
	campaign, err := NewCampaign("CMP001", "ACC001", "cmp-1", "Summer Sale", CampaignStatusActive)
	require.NoError(t, err)

	deleted, err := campaign.WithStatus(CampaignStatusDeleted)
	require.NoError(t, err)

	_, err = deleted.WithStatus(CampaignStatusActive)
	assert.ErrorIs(t, err, ErrCampaignDeleted)

	// Re-asserting DELETED is allowed; it is not a transition.
	again, err := deleted.WithStatus(CampaignStatusDeleted)
	require.NoError(t, err)
	assert.Equal(t, CampaignStatusDeleted, again.Status)
}

func TestCampaign_MutatorsDoNotChangeReceiver(t *testing.T) {
	campaign, err := NewCampaign("CMP001", "ACC001", "cmp-1", "Summer Sale", CampaignStatusActive)
	require.NoError(t, err)

	renamed, err := campaign.WithName("Winter Sale")
	require.NoError(t, err)

	assert.Equal(t, "Summer Sale", campaign.Name)
	assert.Equal(t, "Winter Sale", renamed.Name)
}
