package syncing

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adlens-api/infrastructure/cache"
	"github.com/vfg2006/adlens-api/infrastructure/crypto"
	"github.com/vfg2006/adlens-api/infrastructure/integrator"
	"github.com/vfg2006/adlens-api/infrastructure/repository"
	"github.com/vfg2006/adlens-api/internal/domain"
	"github.com/vfg2006/adlens-api/pkg/utils"
)

// insightCacheTTL bounds how stale a cached sync result may be served.
const insightCacheTTL = 24 * time.Hour

// InsightSyncResult reports one insight reconciliation pass. SyncedAt makes
// the staleness of a cache hit visible to callers instead of hiding it
// behind the TTL.
type InsightSyncResult struct {
	Synced   int       `json:"synced"`
	Created  int       `json:"created"`
	Updated  int       `json:"updated"`
	Errors   []string  `json:"errors"`
	SyncedAt time.Time `json:"synced_at"`
}

type InsightSyncer interface {
	SyncInsights(campaignID string, startDate, endDate time.Time) (*InsightSyncResult, error)
}

type InsightSyncService struct {
	accountRepository  repository.AdAccountRepository
	campaignRepository repository.CampaignRepository
	insightRepository  repository.CampaignInsightRepository
	registry           *integrator.Registry
	encryptor          crypto.TokenEncryptor
	cache              cache.Cache
}

func NewInsightSyncService(
	accountRepository repository.AdAccountRepository,
	campaignRepository repository.CampaignRepository,
	insightRepository repository.CampaignInsightRepository,
	registry *integrator.Registry,
	encryptor crypto.TokenEncryptor,
	resultCache cache.Cache,
) InsightSyncer {
	return &InsightSyncService{
		accountRepository:  accountRepository,
		campaignRepository: campaignRepository,
		insightRepository:  insightRepository,
		registry:           registry,
		encryptor:          encryptor,
		cache:              resultCache,
	}
}

// insightCacheKey must stay stable: stored entries are addressed by this
// exact format.
func insightCacheKey(platform domain.Platform, externalCampaignID string, startDate, endDate time.Time) string {
	return fmt.Sprintf("insights:%s:%s:%s:%s",
		platform, externalCampaignID, utils.DateKey(startDate), utils.DateKey(endDate))
}

// SyncInsights mirrors daily metrics for one campaign over a date range. A
// cache hit returns the previous result verbatim with no platform or
// decryption calls; the accepted staleness window is the cache TTL.
func (s *InsightSyncService) SyncInsights(campaignID string, startDate, endDate time.Time) (*InsightSyncResult, error) {
	campaign, err := s.campaignRepository.GetByID(campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	account, err := s.accountRepository.GetByID(campaign.AdAccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	if !account.HasAccessToken() {
		return nil, ErrMissingAccessToken
	}

	adapter, ok := s.registry.Resolve(account.Platform)
	if !ok {
		return nil, ErrUnsupportedPlatform
	}

	cacheKey := insightCacheKey(account.Platform, campaign.ExternalID, startDate, endDate)

	if cached, ok := s.cache.Get(cacheKey); ok {
		if result, ok := cached.(*InsightSyncResult); ok {
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"cache_key":   cacheKey,
				"synced_at":   result.SyncedAt,
			}).Debug("insight sync: serving cached result")
			return result, nil
		}
	}

	accessToken, err := s.encryptor.Decrypt(*account.AccessToken)
	if err != nil {
		return nil, err
	}

	remoteInsights, err := adapter.GetInsights(accessToken, campaign.ExternalID, startDate, endDate)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"platform":    account.Platform,
			"error":       err.Error(),
		}).Error("insight sync: failed to fetch insights from platform")
		return nil, err
	}

	result := &InsightSyncResult{Errors: make([]string, 0)}
	toSave := make([]domain.CampaignInsight, 0, len(remoteInsights))

	for _, remote := range remoteInsights {
		insight, created, err := s.reconcileInsight(campaign.ID, remote)
		if err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Failed to sync insight for %s: %s", utils.DateKey(remote.Date), err.Error()))
			continue
		}

		if created {
			result.Created++
		} else {
			result.Updated++
		}

		toSave = append(toSave, *insight)
	}

	if len(toSave) > 0 {
		if err := s.insightRepository.SaveMany(toSave); err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"error":       err.Error(),
			}).Error("insight sync: failed to persist insights")
			return nil, err
		}
	}

	result.Synced = result.Created + result.Updated
	result.SyncedAt = time.Now().UTC()

	// The error list is cached along with the counts: a repeated request
	// inside the TTL sees exactly what the original caller saw.
	s.cache.Set(cacheKey, result, insightCacheTTL)

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaign.ID,
		"created":     result.Created,
		"updated":     result.Updated,
		"errors":      len(result.Errors),
	}).Info("insight sync: reconciliation finished")

	return result, nil
}

func (s *InsightSyncService) reconcileInsight(campaignID string, remote integrator.NormalizedInsightData) (*domain.CampaignInsight, bool, error) {
	metrics := domain.InsightMetrics{
		Spend:       remote.Spend,
		Impressions: remote.Impressions,
		Clicks:      remote.Clicks,
		Conversions: remote.Conversions,
		Revenue:     remote.Revenue,
	}

	existing, err := s.insightRepository.GetByCampaignAndDate(campaignID, remote.Date)
	if err != nil {
		return nil, false, err
	}

	if existing != nil {
		updated, err := existing.WithMetrics(metrics)
		if err != nil {
			return nil, false, err
		}
		return &updated, false, nil
	}

	insightID, err := utils.GenerateID()
	if err != nil {
		return nil, false, err
	}

	insight, err := domain.NewCampaignInsight(insightID, campaignID, remote.Date, metrics)
	if err != nil {
		return nil, false, err
	}

	return &insight, true, nil
}
