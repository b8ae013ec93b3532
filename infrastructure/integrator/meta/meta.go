package meta

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adlens-api/infrastructure/integrator"
	"github.com/vfg2006/adlens-api/internal/config"
	"github.com/vfg2006/adlens-api/internal/domain"
	"github.com/vfg2006/adlens-api/pkg/utils"
)

// Adapter integrates the Meta Marketing API (Graph API). Meta does not issue
// refresh tokens; instead the long-lived access token itself can be
// re-exchanged, so the refresh token slot carries a copy of the long-lived
// token.
type Adapter struct {
	cfg config.Meta
}

func New(cfg config.Meta) *Adapter {
	return &Adapter{cfg: cfg}
}

func (a *Adapter) Platform() domain.Platform {
	return domain.PlatformMeta
}

func (a *Adapter) AuthType() domain.AuthType {
	return domain.AuthTypeOAuth
}

func (a *Adapter) AuthURL(state, redirectURI string) string {
	params := url.Values{}
	params.Add("client_id", a.cfg.AppID)
	params.Add("redirect_uri", redirectURI)
	params.Add("state", state)
	params.Add("scope", "ads_read,ads_management")

	return fmt.Sprintf("https://www.facebook.com/%s/dialog/oauth?%s", a.cfg.Version, params.Encode())
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func (a *Adapter) ExchangeCode(code, redirectURI string) (*integrator.TokenExchangeResult, error) {
	params := url.Values{}
	params.Add("client_id", a.cfg.AppID)
	params.Add("client_secret", a.cfg.AppSecret)
	params.Add("redirect_uri", redirectURI)
	params.Add("code", code)

	var shortLived tokenResponse
	endpoint := fmt.Sprintf("%s/oauth/access_token?%s", a.apiURL(), params.Encode())
	if err := utils.GetJSON(endpoint, &shortLived); err != nil {
		return nil, err
	}

	// Upgrade to a long-lived token right away; the short-lived one expires
	// within hours.
	return a.exchangeForLongLived(shortLived.AccessToken)
}

// RefreshAccessToken re-exchanges the stored long-lived token for a fresh one.
func (a *Adapter) RefreshAccessToken(refreshToken string) (*integrator.TokenExchangeResult, error) {
	return a.exchangeForLongLived(refreshToken)
}

func (a *Adapter) exchangeForLongLived(token string) (*integrator.TokenExchangeResult, error) {
	params := url.Values{}
	params.Add("grant_type", "fb_exchange_token")
	params.Add("client_id", a.cfg.AppID)
	params.Add("client_secret", a.cfg.AppSecret)
	params.Add("fb_exchange_token", token)

	var longLived tokenResponse
	endpoint := fmt.Sprintf("%s/oauth/access_token?%s", a.apiURL(), params.Encode())
	if err := utils.GetJSON(endpoint, &longLived); err != nil {
		return nil, err
	}

	refresh := longLived.AccessToken

	return &integrator.TokenExchangeResult{
		AccessToken:  longLived.AccessToken,
		RefreshToken: &refresh,
		ExpiresAt:    time.Now().UTC().Add(time.Duration(longLived.ExpiresIn) * time.Second),
	}, nil
}

func (a *Adapter) ValidateToken(accessToken string) bool {
	params := url.Values{}
	params.Add("input_token", accessToken)
	params.Add("access_token", accessToken)

	var response struct {
		Data struct {
			IsValid bool `json:"is_valid"`
		} `json:"data"`
	}

	endpoint := fmt.Sprintf("%s/debug_token?%s", a.apiURL(), params.Encode())
	if err := utils.GetJSON(endpoint, &response); err != nil {
		logrus.WithError(err).Debug("meta: token validation request failed")
		return false
	}

	return response.Data.IsValid
}

type adAccountEntry struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Currency  string `json:"currency"`
}

func (a *Adapter) GetAdAccounts(accessToken string) ([]integrator.NormalizedAdAccountData, error) {
	params := url.Values{}
	params.Add("fields", "id,account_id,name,currency")
	params.Add("limit", "100")
	params.Add("access_token", accessToken)

	var response struct {
		Data []adAccountEntry `json:"data"`
	}

	endpoint := fmt.Sprintf("%s/me/adaccounts?%s", a.apiURL(), params.Encode())
	if err := utils.GetJSON(endpoint, &response); err != nil {
		return nil, err
	}

	accounts := make([]integrator.NormalizedAdAccountData, 0, len(response.Data))
	for _, account := range response.Data {
		accounts = append(accounts, integrator.NormalizedAdAccountData{
			ExternalID: account.AccountID,
			Name:       account.Name,
			Currency:   account.Currency,
		})
	}

	return accounts, nil
}

// campaignStatusByRemote maps Meta effective statuses onto the local closed
// set. Anything unrecognized lands on PAUSED; that fallback is flagged for
// product sign-off rather than silently widening the set.
var campaignStatusByRemote = map[string]domain.CampaignStatus{
	"ACTIVE":   domain.CampaignStatusActive,
	"PAUSED":   domain.CampaignStatusPaused,
	"DELETED":  domain.CampaignStatusDeleted,
	"ARCHIVED": domain.CampaignStatusArchived,
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
	params := url.Values{}
	params.Add("fields", "id,name,status")
	params.Add("limit", "100")
	params.Add("access_token", accessToken)

	var response struct {
		Data []campaignEntry `json:"data"`
	}

	endpoint := fmt.Sprintf("%s/act_%s/campaigns?%s", a.apiURL(), externalAccountID, params.Encode())
	if err := utils.GetJSON(endpoint, &response); err != nil {
		return nil, err
	}

	campaigns := make([]integrator.NormalizedCampaignData, 0, len(response.Data))
	for _, campaign := range response.Data {
		campaigns = append(campaigns, integrator.NormalizedCampaignData{
			ExternalID: campaign.ID,
			Name:       campaign.Name,
			Status:     mapCampaignStatus(campaign.Status),
		})
	}

	return campaigns, nil
}

type actionEntry struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

type insightEntry struct {
	DateStart    string        `json:"date_start"`
	Spend        string        `json:"spend"`
	Impressions  string        `json:"impressions"`
	Clicks       string        `json:"clicks"`
	Actions      []actionEntry `json:"actions"`
	ActionValues []actionEntry `json:"action_values"`
}

func (a *Adapter) GetInsights(accessToken, externalCampaignID string, startDate, endDate time.Time) ([]integrator.NormalizedInsightData, error) {
	timeRange := fmt.Sprintf(`{"since":"%s","until":"%s"}`,
		startDate.Format(time.DateOnly), endDate.Format(time.DateOnly))

	params := url.Values{}
	params.Add("fields", "spend,impressions,clicks,actions,action_values")
	params.Add("time_range", timeRange)
	params.Add("time_increment", "1")
	params.Add("access_token", accessToken)

	var response struct {
		Data []insightEntry `json:"data"`
	}

	endpoint := fmt.Sprintf("%s/%s/insights?%s", a.apiURL(), externalCampaignID, params.Encode())
	if err := utils.GetJSON(endpoint, &response); err != nil {
		return nil, err
	}

	insights := make([]integrator.NormalizedInsightData, 0, len(response.Data))
	for _, entry := range response.Data {
		date, err := time.Parse(time.DateOnly, entry.DateStart)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": externalCampaignID,
				"date_start":  entry.DateStart,
			}).Warn("meta: skipping insight row with unparseable date")
			continue
		}

		insights = append(insights, integrator.NormalizedInsightData{
			Date:        date,
			Spend:       parseMetric(entry.Spend),
			Impressions: parseMetric(entry.Impressions),
			Clicks:      parseMetric(entry.Clicks),
			Conversions: actionValue(entry.Actions, "purchase"),
			Revenue:     actionValue(entry.ActionValues, "purchase"),
		})
	}

	return insights, nil
}

func (a *Adapter) apiURL() string {
	return fmt.Sprintf("%s/%s", a.cfg.BaseURL, a.cfg.Version)
}

// parseMetric tolerates the Graph API habit of returning numbers as strings.
func parseMetric(value string) float64 {
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithField("value", value).Warn("meta: error converting metric to float")
		return 0
	}

	return parsed
}

func actionValue(actions []actionEntry, actionType string) float64 {
	for _, action := range actions {
		if action.ActionType == actionType {
			return parseMetric(action.Value)
		}
	}
	return 0
}
