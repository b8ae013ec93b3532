package kakao

import (
	"fmt"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adlens-api/infrastructure/integrator"
	"github.com/vfg2006/adlens-api/internal/config"
	"github.com/vfg2006/adlens-api/internal/domain"
	"github.com/vfg2006/adlens-api/pkg/utils"
)

// Adapter integrates the Kakao Moment API using static api key credentials.
type Adapter struct {
	cfg config.Kakao
}

func New(cfg config.Kakao) *Adapter {
	return &Adapter{cfg: cfg}
}

func (a *Adapter) Platform() domain.Platform {
	return domain.PlatformKakao
}

func (a *Adapter) AuthType() domain.AuthType {
	return domain.AuthTypeAPIKey
}

func (a *Adapter) AuthURL(state, redirectURI string) string {
	return ""
}

func (a *Adapter) ExchangeCode(code, redirectURI string) (*integrator.TokenExchangeResult, error) {
	return nil, errors.New("kakao does not support oauth code exchange")
}

func (a *Adapter) RefreshAccessToken(refreshToken string) (*integrator.TokenExchangeResult, error) {
	return nil, errors.New("kakao does not support token refresh")
}

func (a *Adapter) ValidateToken(accessToken string) bool {
	credentials, err := integrator.ParseAPIKeyCredentials(accessToken)
	if err != nil {
		logrus.WithError(err).Debug("kakao: invalid credential bundle")
		return false
	}

	var response struct {
		ID int64 `json:"id"`
	}

	endpoint := fmt.Sprintf("%s/adAccounts?accessKey=%s&adAccountId=%s",
		a.cfg.BaseURL, url.QueryEscape(credentials.APIKey), url.QueryEscape(credentials.CustomerID))
	if err := utils.GetJSON(endpoint, &response); err != nil {
		logrus.WithError(err).Debug("kakao: credential validation request failed")
		return false
	}

	return true
}

func (a *Adapter) GetAdAccounts(accessToken string) ([]integrator.NormalizedAdAccountData, error) {
	credentials, err := integrator.ParseAPIKeyCredentials(accessToken)
	if err != nil {
		return nil, err
	}

	var response struct {
		Name     string `json:"name"`
		Currency string `json:"currency"`
	}

	endpoint := fmt.Sprintf("%s/adAccounts?accessKey=%s&adAccountId=%s",
		a.cfg.BaseURL, url.QueryEscape(credentials.APIKey), url.QueryEscape(credentials.CustomerID))
	if err := utils.GetJSON(endpoint, &response); err != nil {
		return nil, err
	}

	name := response.Name
	if name == "" {
		name = fmt.Sprintf("Kakao account %s", credentials.CustomerID)
	}

	currency := response.Currency
	if currency == "" {
		currency = "KRW"
	}

	return []integrator.NormalizedAdAccountData{
		{
			ExternalID: credentials.CustomerID,
			Name:       name,
			Currency:   currency,
		},
	}, nil
}

var campaignStatusByRemote = map[string]domain.CampaignStatus{
	"ON":      domain.CampaignStatusActive,
	"OFF":     domain.CampaignStatusPaused,
	"DELETED": domain.CampaignStatusDeleted,
}

func mapCampaignStatus(remote string) domain.CampaignStatus {
	if status, ok := campaignStatusByRemote[remote]; ok {
		return status
	}
	return domain.CampaignStatusPaused
}

type campaignEntry struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Status string `json:"userConfig"`
}

func (a *Adapter) GetCampaigns(accessToken, externalAccountID string) ([]integrator.NormalizedCampaignData, error) {
	credentials, err := integrator.ParseAPIKeyCredentials(accessToken)
	if err != nil {
		return nil, err
	}

	var response struct {
		Content []campaignEntry `json:"content"`
	}

	endpoint := fmt.Sprintf("%s/campaigns?accessKey=%s&adAccountId=%s",
		a.cfg.BaseURL, url.QueryEscape(credentials.APIKey), url.QueryEscape(externalAccountID))
	if err := utils.GetJSON(endpoint, &response); err != nil {
		return nil, err
	}

	campaigns := make([]integrator.NormalizedCampaignData, 0, len(response.Content))
	for _, campaign := range response.Content {
		campaigns = append(campaigns, integrator.NormalizedCampaignData{
			ExternalID: fmt.Sprintf("%d", campaign.ID),
			Name:       campaign.Name,
			Status:     mapCampaignStatus(campaign.Status),
		})
	}

	return campaigns, nil
}

type reportEntry struct {
	Start   string `json:"start"`
	Metrics struct {
		Cost        float64 `json:"cost"`
		Impressions float64 `json:"imp"`
		Clicks      float64 `json:"click"`
		Conversions float64 `json:"convPurchase"`
		Revenue     float64 `json:"convPurchaseP"`
	} `json:"metrics"`
}

func (a *Adapter) GetInsights(accessToken, externalCampaignID string, startDate, endDate time.Time) ([]integrator.NormalizedInsightData, error) {
	credentials, err := integrator.ParseAPIKeyCredentials(accessToken)
	if err != nil {
		return nil, err
	}

	var response struct {
		Data []reportEntry `json:"data"`
	}

	endpoint := fmt.Sprintf("%s/campaigns/report?campaignId=%s&start=%s&end=%s&timeUnit=DAY&accessKey=%s",
		a.cfg.BaseURL, externalCampaignID,
		startDate.Format(time.DateOnly), endDate.Format(time.DateOnly),
		url.QueryEscape(credentials.APIKey))
	if err := utils.GetJSON(endpoint, &response); err != nil {
		return nil, err
	}

	insights := make([]integrator.NormalizedInsightData, 0, len(response.Data))
	for _, entry := range response.Data {
		date, err := time.Parse(time.DateOnly, entry.Start)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": externalCampaignID,
				"date":        entry.Start,
			}).Warn("kakao: skipping report row with unparseable date")
			continue
		}

		insights = append(insights, integrator.NormalizedInsightData{
			Date:        date,
			Spend:       entry.Metrics.Cost,
			Impressions: entry.Metrics.Impressions,
			Clicks:      entry.Metrics.Clicks,
			Conversions: entry.Metrics.Conversions,
			Revenue:     entry.Metrics.Revenue,
		})
	}

	return insights, nil
}
