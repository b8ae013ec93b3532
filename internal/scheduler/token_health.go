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
	"github.com/vfg2006/adlens-api/internal/usecases/refreshing"
)

// TokenHealthConfig holds the scheduling parameters of the credential sweep.
type TokenHealthConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// TokenHealthService periodically walks every active ad account and runs the
// refresh flow, so expiring credentials are renewed before the daily sync
// needs them.
type TokenHealthService struct {
	scheduler           *gocron.Scheduler
	config              TokenHealthConfig
	accountRepository   repository.AdAccountRepository
	refreshService      refreshing.Refresher
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewTokenHealthService(
	accountRepository repository.AdAccountRepository,
	refreshService refreshing.Refresher,
	appConfig *config.Config,
) *TokenHealthService {
	healthConfig := TokenHealthConfig{
		CronSchedule: appConfig.TokenHealthSync.CronSchedule,
		SyncEnabled:  appConfig.TokenHealthSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": healthConfig.CronSchedule,
		"sync_enabled":  healthConfig.SyncEnabled,
	}).Info("Token health scheduler configuration loaded")

	return &TokenHealthService{
		scheduler:         scheduler,
		config:            healthConfig,
		accountRepository: accountRepository,
		refreshService:    refreshService,
	}
}

// Start schedules the sweep and runs the scheduler asynchronously until the
// context is cancelled.
func (s *TokenHealthService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Token health sweep disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting token health scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.SweepAccounts()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule token health sweep: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping token health scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// SweepAccounts runs the refresh flow for every active account. Accounts that
// end up needing reauthorization are only logged; operators re-connect them
// through the API.
func (s *TokenHealthService) SweepAccounts() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Token health sweep already running, skipping")
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
		logrus.WithError(err).Error("Failed to list active accounts for token health sweep")
		return
	}

	if len(accounts) == 0 {
		logrus.Info("No active accounts for token health sweep")
		return
	}

	var refreshed, needsReauth, failed int
	for _, account := range accounts {
		result, err := s.refreshService.RefreshAccount(account.ID)
		if err != nil {
			failed++
			logrus.WithError(err).WithFields(logrus.Fields{
				"account_id": account.ID,
				"platform":   account.Platform,
			}).Warn("Token health check failed for account")
			continue
		}

		if result.WasRefreshed {
			refreshed++
		}
		if result.NeedsReauth {
			needsReauth++
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"platform":   account.Platform,
			}).Warn("Account needs reauthorization")
		}
	}

	logrus.WithFields(logrus.Fields{
		"duration":     time.Since(startTime).String(),
		"accounts":     len(accounts),
		"refreshed":    refreshed,
		"needs_reauth": needsReauth,
		"failed":       failed,
	}).Info("Token health sweep finished")
}
