package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adlens-api/infrastructure/repository"
	"github.com/vfg2006/adlens-api/internal/config"
	"github.com/vfg2006/adlens-api/internal/domain"
	"github.com/vfg2006/adlens-api/internal/usecases/syncing"
)

// DailySyncConfig holds the scheduling parameters of the nightly data pull.
type DailySyncConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	SyncEnabled         bool
}

// DailySyncService reconciles campaigns and pulls insights for every active
// account on a nightly cron. Campaigns are synced first so the insight pass
// sees newly created ones.
type DailySyncService struct {
	scheduler           *gocron.Scheduler
	config              DailySyncConfig
	accountRepository   repository.AdAccountRepository
	campaignRepository  repository.CampaignRepository
	campaignSyncService syncing.CampaignSyncer
	insightSyncService  syncing.InsightSyncer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewDailySyncService(
	accountRepository repository.AdAccountRepository,
	campaignRepository repository.CampaignRepository,
	campaignSyncService syncing.CampaignSyncer,
	insightSyncService syncing.InsightSyncer,
	appConfig *config.Config,
) *DailySyncService {
	syncConfig := DailySyncConfig{
		CronSchedule:        appConfig.DailySync.CronSchedule,
		LookbackDays:        appConfig.DailySync.LookbackDays,
		RequestDelaySeconds: appConfig.DailySync.RequestDelaySeconds,
		SyncEnabled:         appConfig.DailySync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"lookback_days":         syncConfig.LookbackDays,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Daily sync scheduler configuration loaded")

	return &DailySyncService{
		scheduler:           scheduler,
		config:              syncConfig,
		accountRepository:   accountRepository,
		campaignRepository:  campaignRepository,
		campaignSyncService: campaignSyncService,
		insightSyncService:  insightSyncService,
	}
}

func (s *DailySyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Daily sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting daily sync scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.SyncAllAccounts()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule daily sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping daily sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncAllAccounts runs the campaign and insight sync for every active
// account. Per-account failures are logged and the sweep moves on.
func (s *DailySyncService) SyncAllAccounts() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Daily sync already running, skipping")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	accounts, err := s.accountRepository.ListActive()
	if err != nil {
		logrus.WithError(err).Error("Failed to list active accounts for daily sync")
		return
	}

	if len(accounts) == 0 {
		logrus.Info("No active accounts for daily sync")
		return
	}

	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -s.config.LookbackDays)

	logrus.WithFields(logrus.Fields{
		"accounts":   len(accounts),
		"start_date": startDate.Format(time.DateOnly),
		"end_date":   endDate.Format(time.DateOnly),
	}).Info("Daily sync period")

	for _, account := range accounts {
		s.syncAccount(account, startDate, endDate)
		time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"accounts": len(accounts),
	}).Info("Daily sync finished")
}

func (s *DailySyncService) syncAccount(account *domain.AdAccount, startDate, endDate time.Time) {
	campaignResult, err := s.campaignSyncService.SyncCampaigns(account.ID)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"account_id": account.ID,
			"platform":   account.Platform,
		}).Error("Campaign sync failed for account")
		return
	}

	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"synced":     campaignResult.Synced,
		"created":    campaignResult.Created,
		"updated":    campaignResult.Updated,
		"errors":     len(campaignResult.Errors),
	}).Info("Campaign sync finished for account")

	campaigns, err := s.campaignRepository.ListByAdAccount(account.ID)
	if err != nil {
		logrus.WithError(err).WithField("account_id", account.ID).Error("Failed to list campaigns for insight sync")
		return
	}

	for _, campaign := range campaigns {
		if campaign.Status == domain.CampaignStatusDeleted {
			continue
		}

		insightResult, err := s.insightSyncService.SyncInsights(campaign.ID, startDate, endDate)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"account_id":  account.ID,
				"campaign_id": campaign.ID,
			}).Warn("Insight sync failed for campaign")
			continue
		}

		if len(insightResult.Errors) > 0 {
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"errors":      insightResult.Errors,
			}).Warn("Insight sync finished with item errors")
		}
	}
}
