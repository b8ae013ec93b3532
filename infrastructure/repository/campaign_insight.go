package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/adlens-api/infrastructure/database/postgres"
	"github.com/vfg2006/adlens-api/internal/domain"
)

const campaignInsightsTable = "campaign_insights"

const campaignInsightColumns = "id, campaign_id, date, spend, impressions, clicks, " +
	"conversions, revenue, created_at, updated_at"

type CampaignInsightRepository interface {
	GetByCampaignAndDate(campaignID string, date time.Time) (*domain.CampaignInsight, error)
	ListByCampaignAndDateRange(campaignID string, startDate, endDate time.Time) ([]*domain.CampaignInsight, error)
	SaveMany(insights []domain.CampaignInsight) error
}

type campaignInsightRepository struct {
	conn *postgres.Connection
}

func NewCampaignInsightRepository(conn *postgres.Connection) CampaignInsightRepository {
	return &campaignInsightRepository{
		conn: conn,
	}
}

func (r *campaignInsightRepository) GetByCampaignAndDate(campaignID string, date time.Time) (*domain.CampaignInsight, error) {
	query, args, err := squirrel.
		Select(campaignInsightColumns).
		From(campaignInsightsTable).
		Where(squirrel.Eq{
			"campaign_id": campaignID,
			"date":        domain.NormalizeDate(date),
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	insight, err := scanCampaignInsight(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "querying campaign insight")
	}

	return insight, nil
}

func (r *campaignInsightRepository) ListByCampaignAndDateRange(campaignID string, startDate, endDate time.Time) ([]*domain.CampaignInsight, error) {
	query, args, err := squirrel.
		Select(campaignInsightColumns).
		From(campaignInsightsTable).
		Where(squirrel.Eq{"campaign_id": campaignID}).
		Where(squirrel.GtOrEq{"date": domain.NormalizeDate(startDate)}).
		Where(squirrel.LtOrEq{"date": domain.NormalizeDate(endDate)}).
		OrderBy("date").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "listing campaign insights")
	}
	defer rows.Close()

	insights := make([]*domain.CampaignInsight, 0)
	for rows.Next() {
		insight, err := scanCampaignInsight(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scanning campaign insight")
		}
		insights = append(insights, insight)
	}

	return insights, rows.Err()
}

func (r *campaignInsightRepository) SaveMany(insights []domain.CampaignInsight) error {
	if len(insights) == 0 {
		return nil
	}

	builder := squirrel.
		Insert(campaignInsightsTable).
		Columns("id", "campaign_id", "date", "spend", "impressions", "clicks",
			"conversions", "revenue", "created_at", "updated_at")

	for _, insight := range insights {
		builder = builder.Values(insight.ID, insight.CampaignID, insight.Date,
			insight.Spend, insight.Impressions, insight.Clicks,
			insight.Conversions, insight.Revenue, insight.CreatedAt, insight.UpdatedAt)
	}

	query, args, err := builder.
		Suffix(`ON CONFLICT (campaign_id, date) DO UPDATE SET
			spend = EXCLUDED.spend,
			impressions = EXCLUDED.impressions,
			clicks = EXCLUDED.clicks,
			conversions = EXCLUDED.conversions,
			revenue = EXCLUDED.revenue,
			updated_at = EXCLUDED.updated_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	return errors.Wrap(err, "saving campaign insights")
}

func scanCampaignInsight(row rowScanner) (*domain.CampaignInsight, error) {
	insight := &domain.CampaignInsight{}

	if err := row.Scan(
		&insight.ID,
		&insight.CampaignID,
		&insight.Date,
		&insight.Spend,
		&insight.Impressions,
		&insight.Clicks,
		&insight.Conversions,
		&insight.Revenue,
		&insight.CreatedAt,
		&insight.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return insight, nil
}
