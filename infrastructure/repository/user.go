package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/adlens-api/infrastructure/database/postgres"
	"github.com/vfg2006/adlens-api/internal/domain"
)

const usersTable = "users"

const userColumns = "id, organization_id, name, lastname, email, password_hash, " +
	"active, role_id, deleted, deleted_at, created_at, updated_at"

type UserRepository interface {
	GetByID(id string) (*domain.User, error)
	GetByEmail(email string) (*domain.User, error)
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) GetByID(id string) (*domain.User, error) {
	return r.getOne(squirrel.Eq{"id": id})
}

func (r *userRepository) GetByEmail(email string) (*domain.User, error) {
	return r.getOne(squirrel.Eq{"email": email})
}

func (r *userRepository) getOne(where squirrel.Eq) (*domain.User, error) {
	query, args, err := squirrel.
		Select(userColumns).
		From(usersTable).
		Where(where).
		Where(squirrel.Eq{"deleted": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	user := &domain.User{}
	err = r.conn.QueryRow(query, args...).Scan(
		&user.ID,
		&user.OrganizationID,
		&user.Name,
		&user.Lastname,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&user.RoleID,
		&user.Deleted,
		&user.DeletedAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "querying user")
	}

	return user, nil
}
