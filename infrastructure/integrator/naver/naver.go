package naver

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

// Adapter integrates the Naver Search Ad API. Naver issues static api keys,
// so the oauth operations are not available and the credential material is
// the serialized api key bundle.
type Adapter struct {
	cfg config.Naver
}

func New(cfg config.Naver) *Adapter {
	return &Adapter{cfg: cfg}
}

func (a *Adapter) Platform() domain.Platform {
	return domain.PlatformNaver
}

func (a *Adapter) AuthType() domain.AuthType {
	return domain.AuthTypeAPIKey
}

func (a *Adapter) AuthURL(state, redirectURI string) string {
	return ""
}

func (a *Adapter) ExchangeCode(code, redirectURI string) (*integrator.TokenExchangeResult, error) {
	return nil, errors.New("naver does not support oauth code exchange")
}

func (a *Adapter) RefreshAccessToken(refreshToken string) (*integrator.TokenExchangeResult, error) {
	return nil, errors.New("naver does not support token refresh")
}

func (a *Adapter) ValidateToken(accessToken string) bool {
	credentials, err := integrator.ParseAPIKeyCredentials(accessToken)
	if err != nil {
		logrus.WithError(err).Debug("naver: invalid credential bundle")
		return false
	}

	var response []struct {
		CustomerID int64 `json:"customerId"`
	}

	endpoint := fmt.Sprintf("%s/customer-links?apiKey=%s&customerId=%s",
		a.cfg.BaseURL, url.QueryEscape(credentials.APIKey), url.QueryEscape(credentials.CustomerID))
	if err := utils.GetJSON(endpoint, &response); err != nil {
		logrus.WithError(err).Debug("naver: credential validation request failed")
		return false
	}

	return true
}

func (a *Adapter) GetAdAccounts(accessToken string) ([]integrator.NormalizedAdAccountData, error) {
	credentials, err := integrator.ParseAPIKeyCredentials(accessToken)
	if err != nil {
		return nil, err
	}

	// The api key is scoped to a single customer; expose it as the one
	// account.
	return []integrator.NormalizedAdAccountData{
		{
			ExternalID: credentials.CustomerID,
			Name:       fmt.Sprintf("Naver customer %s", credentials.CustomerID),
			Currency:   "KRW",
		},
	}, nil
}

var campaignStatusByRemote = map[string]domain.CampaignStatus{
	"ELIGIBLE": domain.CampaignStatusActive,
	"PAUSED":   domain.CampaignStatusPaused,
	"DELETED":  domain.CampaignStatusDeleted,
}

func mapCampaignStatus(remote string) domain.CampaignStatus {
	if status, ok := campaignStatusByRemote[remote]; ok {
		return status
	}
	return domain.CampaignStatusPaused
}

type campaignEntry struct {
	CampaignID string `json:"nccCampaignId"`
	Name       string `json:"name"`
	Status     string `json:"status"`
}

func (a *Adapter) GetCampaigns(accessToken, externalAccountID string) ([]integrator.NormalizedCampaignData, error) {
	credentials, err := integrator.ParseAPIKeyCredentials(accessToken)
	if err != nil {
		return nil, err
	}

	var response []campaignEntry

	endpoint := fmt.Sprintf("%s/ncc/campaigns?apiKey=%s&customerId=%s",
		a.cfg.BaseURL, url.QueryEscape(credentials.APIKey), url.QueryEscape(externalAccountID))
	if err := utils.GetJSON(endpoint, &response); err != nil {
		return nil, err
	}

	campaigns := make([]integrator.NormalizedCampaignData, 0, len(response))
	for _, campaign := range response {
		campaigns = append(campaigns, integrator.NormalizedCampaignData{
			ExternalID: campaign.CampaignID,
			Name:       campaign.Name,
			Status:     mapCampaignStatus(campaign.Status),
		})
	}

	return campaigns, nil
}

type statEntry struct {
	Date        string  `json:"statDt"`
	Cost        float64 `json:"salesAmt"`
	Impressions float64 `json:"impCnt"`
	Clicks      float64 `json:"clkCnt"`
	Conversions float64 `json:"ccnt"`
	Revenue     float64 `json:"convAmt"`
}

func (a *Adapter) GetInsights(accessToken, externalCampaignID string, startDate, endDate time.Time) ([]integrator.NormalizedInsightData, error) {
	credentials, err := integrator.ParseAPIKeyCredentials(accessToken)
	if err != nil {
		return nil, err
	}

	var response struct {
		Data []statEntry `json:"data"`
	}

	endpoint := fmt.Sprintf("%s/stats?id=%s&statDt=%s&statEndDt=%s&apiKey=%s",
		a.cfg.BaseURL, externalCampaignID,
		startDate.Format(time.DateOnly), endDate.Format(time.DateOnly),
		url.QueryEscape(credentials.APIKey))
	if err := utils.GetJSON(endpoint, &response); err != nil {
		return nil, err
	}

	insights := make([]integrator.NormalizedInsightData, 0, len(response.Data))
	for _, entry := range response.Data {
		date, err := time.Parse(time.DateOnly, entry.Date)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": externalCampaignID,
				"date":        entry.Date,
			}).Warn("naver: skipping stat row with unparseable date")
			continue
		}

		insights = append(insights, integrator.NormalizedInsightData{
			Date:        date,
			Spend:       entry.Cost,
			Impressions: entry.Impressions,
			Clicks:      entry.Clicks,
			Conversions: entry.Conversions,
			Revenue:     entry.Revenue,
		})
	}

	return insights, nil
}
