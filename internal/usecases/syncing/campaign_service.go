package syncing

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adlens-api/infrastructure/crypto"
	"github.com/vfg2006/adlens-api/infrastructure/integrator"
	"github.com/vfg2006/adlens-api/infrastructure/repository"
	"github.com/vfg2006/adlens-api/internal/domain"
	"github.com/vfg2006/adlens-api/pkg/utils"
)

// CampaignSyncResult reports one reconciliation pass. Updated counts every
// remote campaign that matched an existing row, whether or not a field
// actually changed, so running the sync twice over unchanged remote data
// yields the same Updated count with Created = 0.
type CampaignSyncResult struct {
	Synced  int      `json:"synced"`
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Errors  []string `json:"errors"`
}

type CampaignSyncer interface {
	SyncCampaigns(adAccountID string) (*CampaignSyncResult, error)
}

type CampaignSyncService struct {
	accountRepository  repository.AdAccountRepository
	campaignRepository repository.CampaignRepository
	registry           *integrator.Registry
	encryptor          crypto.TokenEncryptor
}

func NewCampaignSyncService(
	accountRepository repository.AdAccountRepository,
	campaignRepository repository.CampaignRepository,
	registry *integrator.Registry,
	encryptor crypto.TokenEncryptor,
) CampaignSyncer {
	return &CampaignSyncService{
		accountRepository:  accountRepository,
		campaignRepository: campaignRepository,
		registry:           registry,
		encryptor:          encryptor,
	}
}

// SyncCampaigns mirrors the platform's current campaign list into local
// storage. Campaigns are processed independently: one failing campaign is
// recorded and the rest continue. Everything new or changed is persisted in
// a single batch at the end.
func (s *CampaignSyncService) SyncCampaigns(adAccountID string) (*CampaignSyncResult, error) {
	account, err := s.accountRepository.GetByID(adAccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	if !account.IsActive() {
		return nil, ErrAccountInactive
	}
	if !account.HasAccessToken() {
		return nil, ErrMissingAccessToken
	}

	adapter, ok := s.registry.Resolve(account.Platform)
	if !ok {
		return nil, ErrUnsupportedPlatform
	}

	accessToken, err := s.encryptor.Decrypt(*account.AccessToken)
	if err != nil {
		return nil, err
	}

	remoteCampaigns, err := adapter.GetCampaigns(accessToken, account.ExternalID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"platform":   account.Platform,
			"error":      err.Error(),
		}).Error("campaign sync: failed to fetch campaigns from platform")
		return nil, err
	}

	result := &CampaignSyncResult{Errors: make([]string, 0)}
	toSave := make([]domain.Campaign, 0, len(remoteCampaigns))

	for _, remote := range remoteCampaigns {
		campaign, created, err := s.reconcileCampaign(account.ID, remote)
		if err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Failed to sync campaign %s: %s", remote.ExternalID, err.Error()))
			continue
		}

		if created {
			result.Created++
		} else {
			result.Updated++
		}

		if campaign != nil {
			toSave = append(toSave, *campaign)
		}
	}

	if len(toSave) > 0 {
		if err := s.campaignRepository.SaveMany(toSave); err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"error":      err.Error(),
			}).Error("campaign sync: failed to persist campaigns")
			return nil, err
		}
	}

	result.Synced = result.Created + result.Updated

	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"platform":   account.Platform,
		"created":    result.Created,
		"updated":    result.Updated,
		"errors":     len(result.Errors),
	}).Info("campaign sync: reconciliation finished")

	return result, nil
}

// reconcileCampaign upserts one remote campaign. It returns the campaign to
// persist (nil when an existing row needed no field change), and whether the
// row was created.
func (s *CampaignSyncService) reconcileCampaign(adAccountID string, remote integrator.NormalizedCampaignData) (*domain.Campaign, bool, error) {
	existing, err := s.campaignRepository.GetByExternalID(adAccountID, remote.ExternalID)
	if err != nil {
		return nil, false, err
	}

	if existing == nil {
		campaignID, err := utils.GenerateID()
		if err != nil {
			return nil, false, err
		}

		campaign, err := domain.NewCampaign(campaignID, adAccountID, remote.ExternalID, remote.Name, remote.Status)
		if err != nil {
			return nil, false, err
		}

		return &campaign, true, nil
	}

	campaign := *existing
	changed := false

	if campaign.Name != remote.Name {
		campaign, err = campaign.WithName(remote.Name)
		if err != nil {
			return nil, false, err
		}
		changed = true
	}

	if campaign.Status != remote.Status {
		campaign, err = campaign.WithStatus(remote.Status)
		if err != nil {
			return nil, false, err
		}
		changed = true
	}

	if !changed {
		return nil, false, nil
	}

	return &campaign, false, nil
}
