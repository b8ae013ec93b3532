package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adlens-api/infrastructure/cache"
	"github.com/vfg2006/adlens-api/infrastructure/crypto"
	"github.com/vfg2006/adlens-api/infrastructure/database/postgres"
	"github.com/vfg2006/adlens-api/infrastructure/integrator"
	"github.com/vfg2006/adlens-api/infrastructure/integrator/google"
	"github.com/vfg2006/adlens-api/infrastructure/integrator/kakao"
	"github.com/vfg2006/adlens-api/infrastructure/integrator/meta"
	"github.com/vfg2006/adlens-api/infrastructure/integrator/naver"
	"github.com/vfg2006/adlens-api/infrastructure/integrator/tiktok"
	"github.com/vfg2006/adlens-api/infrastructure/repository"
	"github.com/vfg2006/adlens-api/internal/api"
	"github.com/vfg2006/adlens-api/internal/config"
	"github.com/vfg2006/adlens-api/internal/scheduler"
	"github.com/vfg2006/adlens-api/internal/usecases/authenticating"
	"github.com/vfg2006/adlens-api/internal/usecases/connecting"
	"github.com/vfg2006/adlens-api/internal/usecases/insighting"
	"github.com/vfg2006/adlens-api/internal/usecases/refreshing"
	"github.com/vfg2006/adlens-api/internal/usecases/syncing"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	accountRepository := repository.NewAdAccountRepository(pgConn)
	campaignRepository := repository.NewCampaignRepository(pgConn)
	insightRepository := repository.NewCampaignInsightRepository(pgConn)
	userRepository := repository.NewUserRepository(pgConn)

	encryptor, err := crypto.NewTokenCipher(cfg.SecretKey)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize token cipher")
	}

	registry := integrator.NewRegistry(
		meta.New(cfg.Meta),
		google.New(cfg.Google),
		tiktok.New(cfg.TikTok),
		naver.New(cfg.Naver),
		kakao.New(cfg.Kakao),
	)

	resultCache := cache.NewMemory()

	authenticator := authenticating.NewService(userRepository, cfg)
	connectService := connecting.NewService(userRepository, accountRepository, registry, encryptor)
	refreshService := refreshing.NewService(accountRepository, registry, encryptor)
	campaignSyncService := syncing.NewCampaignSyncService(accountRepository, campaignRepository, registry, encryptor)
	insightSyncService := syncing.NewInsightSyncService(accountRepository, campaignRepository, insightRepository, registry, encryptor, resultCache)
	insightService := insighting.NewService(accountRepository, campaignRepository, insightRepository)

	tokenHealthService := scheduler.NewTokenHealthService(accountRepository, refreshService, cfg)
	dailySyncService := scheduler.NewDailySyncService(
		accountRepository,
		campaignRepository,
		campaignSyncService,
		insightSyncService,
		cfg,
	)

	if err := tokenHealthService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Failed to start token health scheduler")
	}

	if err := dailySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Failed to start daily sync scheduler")
	}

	server, err := api.New(
		cfg,
		authenticator,
		connectService,
		refreshService,
		campaignSyncService,
		insightSyncService,
		insightService,
		accountRepository,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
