package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin      = 1
	RoleSupervisor = 2
	RoleAnalyst    = 3
)

type User struct {
	ID             string     `json:"id"`
	OrganizationID string     `json:"organization_id"`
	Name           string     `json:"name"`
	Lastname       string     `json:"lastname"`
	Email          string     `json:"email"`
	PasswordHash   string     `json:"-"`
	Active         bool       `json:"active"`
	RoleID         int        `json:"role_id"`
	Deleted        bool       `json:"deleted"`
	DeletedAt      *time.Time `json:"deleted_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (u User) BelongsTo(organizationID string) bool {
	return u.OrganizationID == organizationID
}

// CanManageAdAccounts reports whether the user may connect, refresh or
// deactivate ad accounts. Analysts get read-only access to dashboards.
func (u User) CanManageAdAccounts() bool {
	return u.RoleID == RoleAdmin || u.RoleID == RoleSupervisor
}

type Claims struct {
	UserID         string
	UserName       string
	UserEmail      string
	OrganizationID string
	UserRoleID     int
	jwt.RegisteredClaims
}
