package tiktok

import (
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adlens-api/infrastructure/integrator"
	"github.com/vfg2006/adlens-api/internal/config"
	"github.com/vfg2006/adlens-api/internal/domain"
	"github.com/vfg2006/adlens-api/pkg/utils"
)

// Adapter integrates the TikTok Business API.
type Adapter struct {
	cfg config.TikTok
}

func New(cfg config.TikTok) *Adapter {
	return &Adapter{cfg: cfg}
}

func (a *Adapter) Platform() domain.Platform {
	return domain.PlatformTikTok
}

func (a *Adapter) AuthType() domain.AuthType {
	return domain.AuthTypeOAuth
}

func (a *Adapter) AuthURL(state, redirectURI string) string {
	params := url.Values{}
	params.Add("app_id", a.cfg.AppID)
	params.Add("redirect_uri", redirectURI)
	params.Add("state", state)

	return fmt.Sprintf("https://business-api.tiktok.com/portal/auth?%s", params.Encode())
}

type tokenData struct {
	AccessToken      string `json:"access_token"`
	RefreshToken     string `json:"refresh_token"`
	ExpiresIn        int64  `json:"expires_in"`
	RefreshExpiresIn int64  `json:"refresh_token_expires_in"`
}

type tokenEnvelope struct {
	Code    int       `json:"code"`
	Message string    `json:"message"`
	Data    tokenData `json:"data"`
}

func (a *Adapter) ExchangeCode(code, redirectURI string) (*integrator.TokenExchangeResult, error) {
	form := url.Values{}
	form.Add("app_id", a.cfg.AppID)
	form.Add("secret", a.cfg.Secret)
	form.Add("auth_code", code)

	return a.requestToken("/oauth2/access_token/", form)
}

func (a *Adapter) RefreshAccessToken(refreshToken string) (*integrator.TokenExchangeResult, error) {
	form := url.Values{}
	form.Add("app_id", a.cfg.AppID)
	form.Add("secret", a.cfg.Secret)
	form.Add("refresh_token", refreshToken)

	return a.requestToken("/oauth2/refresh_token/", form)
}

func (a *Adapter) requestToken(path string, form url.Values) (*integrator.TokenExchangeResult, error) {
	var envelope tokenEnvelope
	if err := utils.PostFormJSON(a.cfg.BaseURL+path, form, &envelope); err != nil {
		return nil, err
	}
	if envelope.Code != 0 {
		return nil, fmt.Errorf("tiktok token request failed: %s", envelope.Message)
	}

	result := &integrator.TokenExchangeResult{
		AccessToken: envelope.Data.AccessToken,
		ExpiresAt:   time.Now().UTC().Add(time.Duration(envelope.Data.ExpiresIn) * time.Second),
	}
	if envelope.Data.RefreshToken != "" {
		result.RefreshToken = &envelope.Data.RefreshToken
	}

	return result, nil
}

func (a *Adapter) ValidateToken(accessToken string) bool {
	var envelope struct {
		Code int `json:"code"`
	}

	endpoint := fmt.Sprintf("%s/user/info/?access_token=%s", a.cfg.BaseURL, url.QueryEscape(accessToken))
	if err := utils.GetJSON(endpoint, &envelope); err != nil {
		logrus.WithError(err).Debug("tiktok: token validation request failed")
		return false
	}

	return envelope.Code == 0
}

type advertiserEntry struct {
	AdvertiserID   string `json:"advertiser_id"`
	AdvertiserName string `json:"advertiser_name"`
	Currency       string `json:"currency"`
}

func (a *Adapter) GetAdAccounts(accessToken string) ([]integrator.NormalizedAdAccountData, error) {
	var envelope struct {
		Code int `json:"code"`
		Data struct {
			List []advertiserEntry `json:"list"`
		} `json:"data"`
	}

	endpoint := fmt.Sprintf("%s/advertiser/get/?access_token=%s", a.cfg.BaseURL, url.QueryEscape(accessToken))
	if err := utils.GetJSON(endpoint, &envelope); err != nil {
		return nil, err
	}

	accounts := make([]integrator.NormalizedAdAccountData, 0, len(envelope.Data.List))
	for _, advertiser := range envelope.Data.List {
		accounts = append(accounts, integrator.NormalizedAdAccountData{
			ExternalID: advertiser.AdvertiserID,
			Name:       advertiser.AdvertiserName,
			Currency:   advertiser.Currency,
		})
	}

	return accounts, nil
}

var campaignStatusByRemote = map[string]domain.CampaignStatus{
	"ENABLE":  domain.CampaignStatusActive,
	"DISABLE": domain.CampaignStatusPaused,
	"DELETE":  domain.CampaignStatusDeleted,
}

func mapCampaignStatus(remote string) domain.CampaignStatus {
	if status, ok := campaignStatusByRemote[remote]; ok {
		return status
	}
	return domain.CampaignStatusPaused
}

type campaignEntry struct {
	CampaignID      string `json:"campaign_id"`
	CampaignName    string `json:"campaign_name"`
	OperationStatus string `json:"operation_status"`
}

func (a *Adapter) GetCampaigns(accessToken, externalAccountID string) ([]integrator.NormalizedCampaignData, error) {
	var envelope struct {
		Code int `json:"code"`
		Data struct {
			List []campaignEntry `json:"list"`
		} `json:"data"`
	}

	endpoint := fmt.Sprintf("%s/campaign/get/?advertiser_id=%s&access_token=%s",
		a.cfg.BaseURL, externalAccountID, url.QueryEscape(accessToken))
	if err := utils.GetJSON(endpoint, &envelope); err != nil {
		return nil, err
	}

	campaigns := make([]integrator.NormalizedCampaignData, 0, len(envelope.Data.List))
	for _, campaign := range envelope.Data.List {
		campaigns = append(campaigns, integrator.NormalizedCampaignData{
			ExternalID: campaign.CampaignID,
			Name:       campaign.CampaignName,
			Status:     mapCampaignStatus(campaign.OperationStatus),
		})
	}

	return campaigns, nil
}

type reportEntry struct {
	Date                 string  `json:"stat_time_day"`
	Spend                float64 `json:"spend,string"`
	Impressions          float64 `json:"impressions,string"`
	Clicks               float64 `json:"clicks,string"`
	Conversions          float64 `json:"conversion,string"`
	TotalConversionValue float64 `json:"total_purchase_value,string"`
}

func (a *Adapter) GetInsights(accessToken, externalCampaignID string, startDate, endDate time.Time) ([]integrator.NormalizedInsightData, error) {
	var envelope struct {
		Code int `json:"code"`
		Data struct {
			List []reportEntry `json:"list"`
		} `json:"data"`
	}

	endpoint := fmt.Sprintf("%s/report/integrated/get/?campaign_id=%s&start_date=%s&end_date=%s&access_token=%s",
		a.cfg.BaseURL, externalCampaignID,
		startDate.Format(time.DateOnly), endDate.Format(time.DateOnly),
		url.QueryEscape(accessToken))
	if err := utils.GetJSON(endpoint, &envelope); err != nil {
		return nil, err
	}

	insights := make([]integrator.NormalizedInsightData, 0, len(envelope.Data.List))
	for _, entry := range envelope.Data.List {
		// stat_time_day arrives as "2024-01-15 00:00:00"
		date, err := time.Parse(time.DateTime, entry.Date)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": externalCampaignID,
				"date":        entry.Date,
			}).Warn("tiktok: skipping report row with unparseable date")
			continue
		}

		insights = append(insights, integrator.NormalizedInsightData{
			Date:        date,
			Spend:       entry.Spend,
			Impressions: entry.Impressions,
			Clicks:      entry.Clicks,
			Conversions: entry.Conversions,
			Revenue:     entry.TotalConversionValue,
		})
	}

	return insights, nil
}
