package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/adlens-api/infrastructure/database/postgres"
	"github.com/vfg2006/adlens-api/internal/domain"
)

const adAccountsTable = "ad_accounts"

const adAccountColumns = "id, organization_id, platform, external_id, name, " +
	"access_token, refresh_token, token_expires_at, status, created_at, updated_at"

type AdAccountRepository interface {
	GetByID(id string) (*domain.AdAccount, error)
	GetByExternalID(organizationID string, platform domain.Platform, externalID string) (*domain.AdAccount, error)
	ListByOrganization(organizationID string) ([]*domain.AdAccount, error)
	ListByOrganizationAndPlatform(organizationID string, platform domain.Platform) ([]*domain.AdAccount, error)
	ListActive() ([]*domain.AdAccount, error)
	Save(account domain.AdAccount) error
}

type adAccountRepository struct {
	conn *postgres.Connection
}

func NewAdAccountRepository(conn *postgres.Connection) AdAccountRepository {
	return &adAccountRepository{
		conn: conn,
	}
}

func (r *adAccountRepository) GetByID(id string) (*domain.AdAccount, error) {
	return r.getOne(squirrel.Eq{"id": id})
}

func (r *adAccountRepository) GetByExternalID(organizationID string, platform domain.Platform, externalID string) (*domain.AdAccount, error) {
	return r.getOne(squirrel.Eq{
		"organization_id": organizationID,
		"platform":        platform,
		"external_id":     externalID,
	})
}

func (r *adAccountRepository) getOne(where squirrel.Eq) (*domain.AdAccount, error) {
	query, args, err := squirrel.
		Select(adAccountColumns).
		From(adAccountsTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	account, err := deserializeAdAccount(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "querying ad account")
	}

	return account, nil
}

func (r *adAccountRepository) ListByOrganization(organizationID string) ([]*domain.AdAccount, error) {
	return r.list(squirrel.Eq{"organization_id": organizationID})
}

func (r *adAccountRepository) ListByOrganizationAndPlatform(organizationID string, platform domain.Platform) ([]*domain.AdAccount, error) {
	return r.list(squirrel.Eq{
		"organization_id": organizationID,
		"platform":        platform,
	})
}

func (r *adAccountRepository) ListActive() ([]*domain.AdAccount, error) {
	return r.list(squirrel.Eq{"status": domain.AdAccountStatusActive})
}

func (r *adAccountRepository) list(where squirrel.Eq) ([]*domain.AdAccount, error) {
	query, args, err := squirrel.
		Select(adAccountColumns).
		From(adAccountsTable).
		Where(where).
		OrderBy("created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "listing ad accounts")
	}
	defer rows.Close()

	accounts := make([]*domain.AdAccount, 0)
	for rows.Next() {
		account, err := deserializeAdAccount(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scanning ad account")
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

func (r *adAccountRepository) Save(account domain.AdAccount) error {
	query, args, err := squirrel.
		Insert(adAccountsTable).
		Columns("id", "organization_id", "platform", "external_id", "name",
			"access_token", "refresh_token", "token_expires_at", "status",
			"created_at", "updated_at").
		Values(account.ID, account.OrganizationID, account.Platform, account.ExternalID,
			account.Name, account.AccessToken, account.RefreshToken, account.TokenExpiresAt,
			account.Status, account.CreatedAt, account.UpdatedAt).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			token_expires_at = EXCLUDED.token_expires_at,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	return errors.Wrap(err, "saving ad account")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func deserializeAdAccount(row rowScanner) (*domain.AdAccount, error) {
	account := &domain.AdAccount{}

	if err := row.Scan(
		&account.ID,
		&account.OrganizationID,
		&account.Platform,
		&account.ExternalID,
		&account.Name,
		&account.AccessToken,
		&account.RefreshToken,
		&account.TokenExpiresAt,
		&account.Status,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return account, nil
}
