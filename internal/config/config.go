package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	Meta            Meta            `mapstructure:",squash"`
	Google          Google          `mapstructure:",squash"`
	TikTok          TikTok          `mapstructure:",squash"`
	Naver           Naver           `mapstructure:",squash"`
	Kakao           Kakao           `mapstructure:",squash"`
	TokenHealthSync TokenHealthSync `mapstructure:",squash"`
	DailySync       DailySync       `mapstructure:",squash"`
	SecretKey       string          `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Meta struct {
	BaseURL   string `mapstructure:"meta_base_url"`
	URL       string `mapstructure:"meta_url"`
	Version   string `mapstructure:"meta_version"`
	AppID     string `mapstructure:"meta_app_id"`
	AppSecret string `mapstructure:"meta_app_secret"`
}

type Google struct {
	BaseURL      string `mapstructure:"google_base_url"`
	ClientID     string `mapstructure:"google_client_id"`
	ClientSecret string `mapstructure:"google_client_secret"`
}

type TikTok struct {
	BaseURL string `mapstructure:"tiktok_base_url"`
	AppID   string `mapstructure:"tiktok_app_id"`
	Secret  string `mapstructure:"tiktok_app_secret"`
}

type Naver struct {
	BaseURL string `mapstructure:"naver_base_url"`
}

type Kakao struct {
	BaseURL string `mapstructure:"kakao_base_url"`
}

type TokenHealthSync struct {
	CronSchedule string `mapstructure:"token_health_sync_cron"`
	Enabled      bool   `mapstructure:"token_health_sync_enabled"`
}

type DailySync struct {
	CronSchedule        string `mapstructure:"daily_sync_cron"`
	LookbackDays        int    `mapstructure:"daily_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"daily_sync_request_delay_seconds"`
	Enabled             bool   `mapstructure:"daily_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/adlens")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_URL", "https://graph.facebook.com/v22.0")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")

	viper.SetDefault("GOOGLE_BASE_URL", "https://googleads.googleapis.com/v17")
	viper.SetDefault("GOOGLE_CLIENT_ID", "your_client_id")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "your_client_secret")

	viper.SetDefault("TIKTOK_BASE_URL", "https://business-api.tiktok.com/open_api/v1.3")
	viper.SetDefault("TIKTOK_APP_ID", "your_app_id")
	viper.SetDefault("TIKTOK_APP_SECRET", "your_app_secret")

	viper.SetDefault("NAVER_BASE_URL", "https://api.searchad.naver.com")
	viper.SetDefault("KAKAO_BASE_URL", "https://apis.moment.kakao.com/openapi/v4")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("TOKEN_HEALTH_SYNC_CRON", "0 2 * * *")
	viper.SetDefault("TOKEN_HEALTH_SYNC_ENABLED", false)

	viper.SetDefault("DAILY_SYNC_CRON", "0 3 * * *")
	viper.SetDefault("DAILY_SYNC_LOOKBACK_DAYS", 7)
	viper.SetDefault("DAILY_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("DAILY_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using variables loaded by godotenv (viper could not read .env):", err)
	} else {
		logrus.Info(".env file read by viper")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not resolve current directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info(".env file loaded from:", location)
			return
		}
	}

	logrus.Warn("Could not load a .env file from any known location")
}
