package google

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

const (
	oauthURL     = "https://accounts.google.com/o/oauth2/v2/auth"
	tokenURL     = "https://oauth2.googleapis.com/token"
	tokenInfoURL = "https://www.googleapis.com/oauth2/v3/tokeninfo"
)

// Adapter integrates the Google Ads API through its REST surface.
type Adapter struct {
	cfg config.Google
}

func New(cfg config.Google) *Adapter {
	return &Adapter{cfg: cfg}
}

func (a *Adapter) Platform() domain.Platform {
	return domain.PlatformGoogle
}

func (a *Adapter) AuthType() domain.AuthType {
	return domain.AuthTypeOAuth
}

func (a *Adapter) AuthURL(state, redirectURI string) string {
	params := url.Values{}
	params.Add("client_id", a.cfg.ClientID)
	params.Add("redirect_uri", redirectURI)
	params.Add("response_type", "code")
	params.Add("scope", "https://www.googleapis.com/auth/adwords")
	params.Add("access_type", "offline")
	params.Add("prompt", "consent")
	params.Add("state", state)

	return oauthURL + "?" + params.Encode()
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (a *Adapter) ExchangeCode(code, redirectURI string) (*integrator.TokenExchangeResult, error) {
	form := url.Values{}
	form.Add("grant_type", "authorization_code")
	form.Add("client_id", a.cfg.ClientID)
	form.Add("client_secret", a.cfg.ClientSecret)
	form.Add("redirect_uri", redirectURI)
	form.Add("code", code)

	var response tokenResponse
	if err := utils.PostFormJSON(tokenURL, form, &response); err != nil {
		return nil, err
	}

	result := &integrator.TokenExchangeResult{
		AccessToken: response.AccessToken,
		ExpiresAt:   time.Now().UTC().Add(time.Duration(response.ExpiresIn) * time.Second),
	}
	if response.RefreshToken != "" {
		result.RefreshToken = &response.RefreshToken
	}

	return result, nil
}

func (a *Adapter) RefreshAccessToken(refreshToken string) (*integrator.TokenExchangeResult, error) {
	form := url.Values{}
	form.Add("grant_type", "refresh_token")
	form.Add("client_id", a.cfg.ClientID)
	form.Add("client_secret", a.cfg.ClientSecret)
	form.Add("refresh_token", refreshToken)

	var response tokenResponse
	if err := utils.PostFormJSON(tokenURL, form, &response); err != nil {
		return nil, err
	}

	// Google keeps the refresh token stable across rotations; hand the old
	// one back so the caller re-stores it.
	refresh := refreshToken

	return &integrator.TokenExchangeResult{
		AccessToken:  response.AccessToken,
		RefreshToken: &refresh,
		ExpiresAt:    time.Now().UTC().Add(time.Duration(response.ExpiresIn) * time.Second),
	}, nil
}

func (a *Adapter) ValidateToken(accessToken string) bool {
	var response struct {
		Audience string `json:"aud"`
	}

	endpoint := fmt.Sprintf("%s?access_token=%s", tokenInfoURL, url.QueryEscape(accessToken))
	if err := utils.GetJSON(endpoint, &response); err != nil {
		logrus.WithError(err).Debug("google: token validation request failed")
		return false
	}

	return response.Audience != ""
}

type customerEntry struct {
	ID           string `json:"id"`
	Name         string `json:"descriptiveName"`
	CurrencyCode string `json:"currencyCode"`
}

func (a *Adapter) GetAdAccounts(accessToken string) ([]integrator.NormalizedAdAccountData, error) {
	var response struct {
		Customers []customerEntry `json:"customers"`
	}

	endpoint := fmt.Sprintf("%s/customers?access_token=%s", a.cfg.BaseURL, url.QueryEscape(accessToken))
	if err := utils.GetJSON(endpoint, &response); err != nil {
		return nil, err
	}

	accounts := make([]integrator.NormalizedAdAccountData, 0, len(response.Customers))
	for _, customer := range response.Customers {
		accounts = append(accounts, integrator.NormalizedAdAccountData{
			ExternalID: customer.ID,
			Name:       customer.Name,
			Currency:   customer.CurrencyCode,
		})
	}

	return accounts, nil
}

var campaignStatusByRemote = map[string]domain.CampaignStatus{
	"ENABLED": domain.CampaignStatusActive,
	"PAUSED":  domain.CampaignStatusPaused,
	"REMOVED": domain.CampaignStatusDeleted,
}

func mapCampaignStatus(remote string) domain.CampaignStatus {
	if status, ok := campaignStatusByRemote[remote]; ok {
		return status
	}
	return domain.CampaignStatusPaused
}

type campaignEntry struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

func (a *Adapter) GetCampaigns(accessToken, externalAccountID string) ([]integrator.NormalizedCampaignData, error) {
	var response struct {
		Campaigns []campaignEntry `json:"campaigns"`
	}

	endpoint := fmt.Sprintf("%s/customers/%s/campaigns?access_token=%s",
		a.cfg.BaseURL, externalAccountID, url.QueryEscape(accessToken))
	if err := utils.GetJSON(endpoint, &response); err != nil {
		return nil, err
	}

	campaigns := make([]integrator.NormalizedCampaignData, 0, len(response.Campaigns))
	for _, campaign := range response.Campaigns {
		campaigns = append(campaigns, integrator.NormalizedCampaignData{
			ExternalID: campaign.ID,
			Name:       campaign.Name,
			Status:     mapCampaignStatus(campaign.Status),
		})
	}

	return campaigns, nil
}

type metricsEntry struct {
	Date            string  `json:"date"`
	CostMicros      int64   `json:"costMicros"`
	Impressions     int64   `json:"impressions"`
	Clicks          int64   `json:"clicks"`
	Conversions     float64 `json:"conversions"`
	ConversionValue float64 `json:"conversionsValue"`
}

func (a *Adapter) GetInsights(accessToken, externalCampaignID string, startDate, endDate time.Time) ([]integrator.NormalizedInsightData, error) {
	var response struct {
		Results []metricsEntry `json:"results"`
	}

	endpoint := fmt.Sprintf("%s/campaigns/%s/metrics?start=%s&end=%s&access_token=%s",
		a.cfg.BaseURL, externalCampaignID,
		startDate.Format(time.DateOnly), endDate.Format(time.DateOnly),
		url.QueryEscape(accessToken))
	if err := utils.GetJSON(endpoint, &response); err != nil {
		return nil, err
	}

	insights := make([]integrator.NormalizedInsightData, 0, len(response.Results))
	for _, entry := range response.Results {
		date, err := time.Parse(time.DateOnly, entry.Date)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": externalCampaignID,
				"date":        entry.Date,
			}).Warn("google: skipping metrics row with unparseable date")
			continue
		}

		insights = append(insights, integrator.NormalizedInsightData{
			Date:        date,
			Spend:       float64(entry.CostMicros) / 1e6,
			Impressions: float64(entry.Impressions),
			Clicks:      float64(entry.Clicks),
			Conversions: entry.Conversions,
			Revenue:     entry.ConversionValue,
		})
	}

	return insights, nil
}
