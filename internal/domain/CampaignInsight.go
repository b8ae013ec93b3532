package domain

import (
	"math"
	"time"

	"github.com/vfg2006/adlens-api/pkg/utils"
)

// InsightMetrics carries the five raw metrics as reported by a platform,
// before validation. Counts may arrive fractional from an adapter and are
// floored on the way in.
type InsightMetrics struct {
	Spend       float64 `json:"spend"`
	Impressions float64 `json:"impressions"`
	Clicks      float64 `json:"clicks"`
	Conversions float64 `json:"conversions"`
	Revenue     float64 `json:"revenue"`
}

// CampaignInsight is one calendar day of performance metrics for one
// campaign. (CampaignID, Date) is the natural identity used for upserts.
// Derived KPIs are computed, never stored.
type CampaignInsight struct {
	ID          string    `json:"id"`
	CampaignID  string    `json:"campaign_id"`
	Date        time.Time `json:"date"`
	Spend       float64   `json:"spend"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	Conversions int64     `json:"conversions"`
	Revenue     float64   `json:"revenue"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NormalizeDate strips the time component, keeping only the calendar date in UTC.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func NewCampaignInsight(id, campaignID string, date time.Time, metrics InsightMetrics) (CampaignInsight, error) {
	if id == "" {
		return CampaignInsight{}, ErrEmptyID
	}
	if campaignID == "" {
		return CampaignInsight{}, ErrEmptyID
	}

	ci := CampaignInsight{
		ID:         id,
		CampaignID: campaignID,
		Date:       NormalizeDate(date),
		CreatedAt:  time.Now().UTC(),
	}

	return ci.WithMetrics(metrics)
}

// WithMetrics returns a copy with all five metrics replaced. The same
// validation runs on create and on update: nothing negative, clicks bounded
// by impressions, money rounded to cents, counts floored.
func (ci CampaignInsight) WithMetrics(metrics InsightMetrics) (CampaignInsight, error) {
	if metrics.Spend < 0 || metrics.Impressions < 0 || metrics.Clicks < 0 ||
		metrics.Conversions < 0 || metrics.Revenue < 0 {
		return CampaignInsight{}, ErrNegativeMetric
	}

	impressions := int64(math.Floor(metrics.Impressions))
	clicks := int64(math.Floor(metrics.Clicks))

	if clicks > impressions {
		return CampaignInsight{}, ErrClicksOverImpressions
	}

	ci.Spend = utils.RoundWithTwoDecimalPlace(metrics.Spend)
	ci.Impressions = impressions
	ci.Clicks = clicks
	ci.Conversions = int64(math.Floor(metrics.Conversions))
	ci.Revenue = utils.RoundWithTwoDecimalPlace(metrics.Revenue)
	ci.UpdatedAt = time.Now().UTC()

	return ci, nil
}

// KPIRatios are the derived performance indicators. Every ratio degrades to 0
// when its denominator is 0; none of them ever yields NaN or Inf.
type KPIRatios struct {
	CTR    float64 `json:"ctr"`
	CPC    float64 `json:"cpc"`
	CPM    float64 `json:"cpm"`
	CVR    float64 `json:"cvr"`
	CPA    float64 `json:"cpa"`
	ROAS   float64 `json:"roas"`
	ROI    float64 `json:"roi"`
	Profit float64 `json:"profit"`
}

// ComputeKPIRatios derives the full KPI set from raw totals. Aggregations
// must call this once over summed metrics rather than averaging per-row
// ratios.
func ComputeKPIRatios(spend float64, impressions, clicks, conversions int64, revenue float64) KPIRatios {
	var r KPIRatios

	if impressions > 0 {
		r.CTR = utils.RoundWithTwoDecimalPlace(float64(clicks) / float64(impressions) * 100)
		r.CPM = utils.RoundWithTwoDecimalPlace(spend / float64(impressions) * 1000)
	}
	if clicks > 0 {
		r.CPC = utils.RoundWithTwoDecimalPlace(spend / float64(clicks))
		r.CVR = utils.RoundWithTwoDecimalPlace(float64(conversions) / float64(clicks) * 100)
	}
	if conversions > 0 {
		r.CPA = utils.RoundWithTwoDecimalPlace(spend / float64(conversions))
	}
	if spend > 0 {
		r.ROAS = utils.RoundWithTwoDecimalPlace(revenue / spend)
		r.ROI = utils.RoundWithTwoDecimalPlace((revenue - spend) / spend * 100)
	}
	r.Profit = utils.RoundWithTwoDecimalPlace(revenue - spend)

	return r
}

func (ci CampaignInsight) Ratios() KPIRatios {
	return ComputeKPIRatios(ci.Spend, ci.Impressions, ci.Clicks, ci.Conversions, ci.Revenue)
}

func (ci CampaignInsight) CTR() float64    { return ci.Ratios().CTR }
func (ci CampaignInsight) CPC() float64    { return ci.Ratios().CPC }
func (ci CampaignInsight) CPM() float64    { return ci.Ratios().CPM }
func (ci CampaignInsight) CVR() float64    { return ci.Ratios().CVR }
func (ci CampaignInsight) CPA() float64    { return ci.Ratios().CPA }
func (ci CampaignInsight) ROAS() float64   { return ci.Ratios().ROAS }
func (ci CampaignInsight) ROI() float64    { return ci.Ratios().ROI }
func (ci CampaignInsight) Profit() float64 { return ci.Ratios().Profit }
