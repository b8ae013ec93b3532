package insighting

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adlens-api/infrastructure/repository"
	"github.com/vfg2006/adlens-api/internal/domain"
	"github.com/vfg2006/adlens-api/pkg/utils"
)

// Filters bound an aggregation to an organization-owned slice of data.
// Platform is optional; nil means every platform.
type Filters struct {
	StartDate time.Time
	EndDate   time.Time
	Platform  *domain.Platform
}

// KPISummary is the organization-wide rollup: the five raw metrics summed
// across every matching insight, with the eight ratios derived once from the
// totals.
type KPISummary struct {
	Spend       float64 `json:"spend"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	Revenue     float64 `json:"revenue"`
	domain.KPIRatios
}

// DailyTrendPoint sums metrics for one calendar date across all campaigns.
type DailyTrendPoint struct {
	Date        string  `json:"date"`
	Spend       float64 `json:"spend"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	Revenue     float64 `json:"revenue"`
}

// CampaignSpend is one campaign's total spend inside the range. Campaigns
// without insights stay in the list with zero spend.
type CampaignSpend struct {
	CampaignID   string  `json:"campaign_id"`
	CampaignName string  `json:"campaign_name"`
	Spend        float64 `json:"spend"`
}

type DashboardOverview struct {
	Summary         KPISummary        `json:"summary"`
	DailyTrend      []DailyTrendPoint `json:"daily_trend"`
	SpendByCampaign []CampaignSpend   `json:"spend_by_campaign"`
}

// CampaignPerformanceRow is one campaign's rollup with its own derived
// ratios. The KPI set here is narrower than the dashboard's: no ROI, no
// profit.
type CampaignPerformanceRow struct {
	CampaignID   string                `json:"campaign_id"`
	CampaignName string                `json:"campaign_name"`
	Status       domain.CampaignStatus `json:"status"`
	Spend        float64               `json:"spend"`
	Impressions  int64                 `json:"impressions"`
	Clicks       int64                 `json:"clicks"`
	Conversions  int64                 `json:"conversions"`
	Revenue      float64               `json:"revenue"`
	CTR          float64               `json:"ctr"`
	CPC          float64               `json:"cpc"`
	CPM          float64               `json:"cpm"`
	CVR          float64               `json:"cvr"`
	CPA          float64               `json:"cpa"`
	ROAS         float64               `json:"roas"`
}

type Insighter interface {
	GetDashboardOverview(organizationID string, filters Filters) (*DashboardOverview, error)
	GetCampaignPerformance(organizationID string, filters Filters) ([]*CampaignPerformanceRow, error)
}

type Service struct {
	accountRepository repository.AdAccountRepository
	campaignRepository repository.CampaignRepository
	insightRepository  repository.CampaignInsightRepository
}

func NewService(
	accountRepository repository.AdAccountRepository,
	campaignRepository repository.CampaignRepository,
	insightRepository repository.CampaignInsightRepository,
) Insighter {
	return &Service{
		accountRepository:  accountRepository,
		campaignRepository: campaignRepository,
		insightRepository:  insightRepository,
	}
}

// GetDashboardOverview aggregates mirrored insights into the dashboard's
// three views. Empty results at any resolution step short-circuit to a
// canonical zero-valued overview without further repository calls.
func (s *Service) GetDashboardOverview(organizationID string, filters Filters) (*DashboardOverview, error) {
	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	campaigns, err := s.resolveCampaigns(organizationID, filters)
	if err != nil {
		return nil, err
	}
	if len(campaigns) == 0 {
		return emptyOverview(), nil
	}

	insightsByCampaign, total, err := s.collectInsights(campaigns, filters)
	if err != nil {
		return nil, err
	}

	overview := &DashboardOverview{
		Summary:         summarize(total),
		DailyTrend:      buildDailyTrend(insightsByCampaign),
		SpendByCampaign: buildSpendByCampaign(campaigns, insightsByCampaign),
	}

	logrus.WithFields(logrus.Fields{
		"organization_id": organizationID,
		"campaigns":       len(campaigns),
		"trend_days":      len(overview.DailyTrend),
	}).Debug("insighting: dashboard overview built")

	return overview, nil
}

// GetCampaignPerformance emits one KPI row per campaign that has at least
// one insight inside the range. Campaigns without data are dropped rather
// than shown with zeros.
func (s *Service) GetCampaignPerformance(organizationID string, filters Filters) ([]*CampaignPerformanceRow, error) {
	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	campaigns, err := s.resolveCampaigns(organizationID, filters)
	if err != nil {
		return nil, err
	}

	rows := make([]*CampaignPerformanceRow, 0, len(campaigns))
	for _, campaign := range campaigns {
		insights, err := s.insightRepository.ListByCampaignAndDateRange(campaign.ID, filters.StartDate, filters.EndDate)
		if err != nil {
			return nil, err
		}
		if len(insights) == 0 {
			continue
		}

		var m domain.InsightMetrics
		for _, insight := range insights {
			m.Spend += insight.Spend
			m.Impressions += float64(insight.Impressions)
			m.Clicks += float64(insight.Clicks)
			m.Conversions += float64(insight.Conversions)
			m.Revenue += insight.Revenue
		}

		ratios := domain.ComputeKPIRatios(m.Spend, int64(m.Impressions), int64(m.Clicks), int64(m.Conversions), m.Revenue)

		rows = append(rows, &CampaignPerformanceRow{
			CampaignID:   campaign.ID,
			CampaignName: campaign.Name,
			Status:       campaign.Status,
			Spend:        utils.RoundWithTwoDecimalPlace(m.Spend),
			Impressions:  int64(m.Impressions),
			Clicks:       int64(m.Clicks),
			Conversions:  int64(m.Conversions),
			Revenue:      utils.RoundWithTwoDecimalPlace(m.Revenue),
			CTR:          ratios.CTR,
			CPC:          ratios.CPC,
			CPM:          ratios.CPM,
			CVR:          ratios.CVR,
			CPA:          ratios.CPA,
			ROAS:         ratios.ROAS,
		})
	}

	return rows, nil
}

func validateFilters(filters Filters) error {
	if !filters.StartDate.Before(filters.EndDate) {
		return ErrInvalidDateRange
	}
	return nil
}

// resolveCampaigns walks organization -> active accounts -> campaigns.
// Platform-filtered lookups may return inactive accounts; they are excluded
// here before any campaign call is made.
func (s *Service) resolveCampaigns(organizationID string, filters Filters) ([]*domain.Campaign, error) {
	var accounts []*domain.AdAccount
	var err error

	if filters.Platform != nil {
		accounts, err = s.accountRepository.ListByOrganizationAndPlatform(organizationID, *filters.Platform)
	} else {
		accounts, err = s.accountRepository.ListByOrganization(organizationID)
	}
	if err != nil {
		return nil, err
	}

	active := make([]*domain.AdAccount, 0, len(accounts))
	for _, account := range accounts {
		if account.IsActive() {
			active = append(active, account)
		}
	}
	if len(active) == 0 {
		return nil, nil
	}

	campaigns := make([]*domain.Campaign, 0)
	for _, account := range active {
		accountCampaigns, err := s.campaignRepository.ListByAdAccount(account.ID)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, accountCampaigns...)
	}

	return campaigns, nil
}

func (s *Service) collectInsights(campaigns []*domain.Campaign, filters Filters) (map[string][]*domain.CampaignInsight, domain.InsightMetrics, error) {
	byCampaign := make(map[string][]*domain.CampaignInsight, len(campaigns))
	var total domain.InsightMetrics

	for _, campaign := range campaigns {
		insights, err := s.insightRepository.ListByCampaignAndDateRange(campaign.ID, filters.StartDate, filters.EndDate)
		if err != nil {
			return nil, domain.InsightMetrics{}, err
		}

		byCampaign[campaign.ID] = insights

		for _, insight := range insights {
			total.Spend += insight.Spend
			total.Impressions += float64(insight.Impressions)
			total.Clicks += float64(insight.Clicks)
			total.Conversions += float64(insight.Conversions)
			total.Revenue += insight.Revenue
		}
	}

	return byCampaign, total, nil
}

func summarize(total domain.InsightMetrics) KPISummary {
	return KPISummary{
		Spend:       utils.RoundWithTwoDecimalPlace(total.Spend),
		Impressions: int64(total.Impressions),
		Clicks:      int64(total.Clicks),
		Conversions: int64(total.Conversions),
		Revenue:     utils.RoundWithTwoDecimalPlace(total.Revenue),
		KPIRatios: domain.ComputeKPIRatios(total.Spend, int64(total.Impressions),
			int64(total.Clicks), int64(total.Conversions), total.Revenue),
	}
}

// buildDailyTrend groups insights by calendar date, summing metrics per
// date, ascending by date string.
func buildDailyTrend(insightsByCampaign map[string][]*domain.CampaignInsight) []DailyTrendPoint {
	byDate := make(map[string]*DailyTrendPoint)

	for _, insights := range insightsByCampaign {
		for _, insight := range insights {
			key := utils.DateKey(insight.Date)

			point, ok := byDate[key]
			if !ok {
				point = &DailyTrendPoint{Date: key}
				byDate[key] = point
			}

			point.Spend = utils.RoundWithTwoDecimalPlace(point.Spend + insight.Spend)
			point.Impressions += insight.Impressions
			point.Clicks += insight.Clicks
			point.Conversions += insight.Conversions
			point.Revenue = utils.RoundWithTwoDecimalPlace(point.Revenue + insight.Revenue)
		}
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	trend := make([]DailyTrendPoint, 0, len(dates))
	for _, date := range dates {
		trend = append(trend, *byDate[date])
	}

	return trend
}

// buildSpendByCampaign returns total spend per campaign, descending. Every
// resolved campaign appears, including ones with no insights in range; this
// intentionally differs from the per-campaign performance view.
func buildSpendByCampaign(campaigns []*domain.Campaign, insightsByCampaign map[string][]*domain.CampaignInsight) []CampaignSpend {
	spends := make([]CampaignSpend, 0, len(campaigns))

	for _, campaign := range campaigns {
		var spend float64
		for _, insight := range insightsByCampaign[campaign.ID] {
			spend += insight.Spend
		}

		spends = append(spends, CampaignSpend{
			CampaignID:   campaign.ID,
			CampaignName: campaign.Name,
			Spend:        utils.RoundWithTwoDecimalPlace(spend),
		})
	}

	sort.SliceStable(spends, func(i, j int) bool {
		return spends[i].Spend > spends[j].Spend
	})

	return spends
}

func emptyOverview() *DashboardOverview {
	return &DashboardOverview{
		Summary:         KPISummary{},
		DailyTrend:      make([]DailyTrendPoint, 0),
		SpendByCampaign: make([]CampaignSpend, 0),
	}
}
