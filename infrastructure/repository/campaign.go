package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/adlens-api/infrastructure/database/postgres"
	"github.com/vfg2006/adlens-api/internal/domain"
)

const campaignsTable = "campaigns"

const campaignColumns = "id, ad_account_id, external_id, name, status, created_at, updated_at"

type CampaignRepository interface {
	GetByID(id string) (*domain.Campaign, error)
	GetByExternalID(adAccountID, externalID string) (*domain.Campaign, error)
	ListByAdAccount(adAccountID string) ([]*domain.Campaign, error)
	SaveMany(campaigns []domain.Campaign) error
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) GetByID(id string) (*domain.Campaign, error) {
	return r.getOne(squirrel.Eq{"id": id})
}

func (r *campaignRepository) GetByExternalID(adAccountID, externalID string) (*domain.Campaign, error) {
	return r.getOne(squirrel.Eq{
		"ad_account_id": adAccountID,
		"external_id":   externalID,
	})
}

func (r *campaignRepository) getOne(where squirrel.Eq) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns).
		From(campaignsTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	campaign := &domain.Campaign{}
	err = r.conn.QueryRow(query, args...).Scan(
		&campaign.ID,
		&campaign.AdAccountID,
		&campaign.ExternalID,
		&campaign.Name,
		&campaign.Status,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "querying campaign")
	}

	return campaign, nil
}

func (r *campaignRepository) ListByAdAccount(adAccountID string) ([]*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns).
		From(campaignsTable).
		Where(squirrel.Eq{"ad_account_id": adAccountID}).
		OrderBy("created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "listing campaigns")
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign := &domain.Campaign{}
		if err := rows.Scan(
			&campaign.ID,
			&campaign.AdAccountID,
			&campaign.ExternalID,
			&campaign.Name,
			&campaign.Status,
			&campaign.CreatedAt,
			&campaign.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "scanning campaign")
		}
		campaigns = append(campaigns, campaign)
	}

	return campaigns, rows.Err()
}

func (r *campaignRepository) SaveMany(campaigns []domain.Campaign) error {
	if len(campaigns) == 0 {
		return nil
	}

	builder := squirrel.
		Insert(campaignsTable).
		Columns("id", "ad_account_id", "external_id", "name", "status", "created_at", "updated_at")

	for _, campaign := range campaigns {
		builder = builder.Values(campaign.ID, campaign.AdAccountID, campaign.ExternalID,
			campaign.Name, campaign.Status, campaign.CreatedAt, campaign.UpdatedAt)
	}

	query, args, err := builder.
		Suffix(`ON CONFLICT (ad_account_id, external_id) DO UPDATE SET
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	return errors.Wrap(err, "saving campaigns")
}
