package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/adlens-api/infrastructure/repository/mocks"
	"github.com/vfg2006/adlens-api/internal/config"
	"github.com/vfg2006/adlens-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{SecretKey: "test-secret"}
}

func activeUser(t *testing.T, password string) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &domain.User{
		ID:             "USR001",
		OrganizationID: "ORG001",
		Name:           "Ana",
		Email:          "ana@example.com",
		PasswordHash:   string(hash),
		Active:         true,
		RoleID:         domain.RoleAdmin,
	}
}

func TestService_LoginUser(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		setup    func(userRepo *repomocks.MockUserRepository, user *domain.User)
		expected error
	}{
		{
			name:     "successful login",
			email:    "ana@example.com",
			password: "correct-password",
			setup: func(userRepo *repomocks.MockUserRepository, user *domain.User) {
				userRepo.EXPECT().GetByEmail("ana@example.com").Return(user, nil)
			},
		},
		{
			name:     "email is normalized before lookup",
			email:    "  Ana@Example.COM ",
			password: "correct-password",
			setup: func(userRepo *repomocks.MockUserRepository, user *domain.User) {
				userRepo.EXPECT().GetByEmail("ana@example.com").Return(user, nil)
			},
		},
		{
			name:     "missing credentials",
			email:    "",
			password: "correct-password",
			setup:    func(userRepo *repomocks.MockUserRepository, user *domain.User) {},
			expected: ErrMissingRequiredData,
		},
		{
			name:     "user not found",
			email:    "ghost@example.com",
			password: "correct-password",
			setup: func(userRepo *repomocks.MockUserRepository, user *domain.User) {
				userRepo.EXPECT().GetByEmail("ghost@example.com").Return(nil, nil)
			},
			expected: ErrUserNotFound,
		},
		{
			name:     "disabled user",
			email:    "ana@example.com",
			password: "correct-password",
			setup: func(userRepo *repomocks.MockUserRepository, user *domain.User) {
				user.Active = false
				userRepo.EXPECT().GetByEmail("ana@example.com").Return(user, nil)
			},
			expected: ErrUserDisabled,
		},
		{
			name:     "wrong password",
			email:    "ana@example.com",
			password: "wrong-password",
			setup: func(userRepo *repomocks.MockUserRepository, user *domain.User) {
				userRepo.EXPECT().GetByEmail("ana@example.com").Return(user, nil)
			},
			expected: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := repomocks.NewMockUserRepository(ctrl)
			user := activeUser(t, "correct-password")
			tt.setup(userRepo, user)

			service := NewService(userRepo, testConfig())

			token, err := service.LoginUser(tt.email, tt.password)

			if tt.expected != nil {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, tt.expected)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestService_LoginUser_RepositoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := repomocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetByEmail("ana@example.com").Return(nil, errors.New("connection refused"))

	service := NewService(userRepo, testConfig())

	_, err := service.LoginUser("ana@example.com", "correct-password")

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "SRV_002", authErr.Code)
}

func TestService_ValidateToken_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := repomocks.NewMockUserRepository(ctrl)
	user := activeUser(t, "correct-password")
	userRepo.EXPECT().GetByEmail("ana@example.com").Return(user, nil)

	service := NewService(userRepo, testConfig())

	token, err := service.LoginUser("ana@example.com", "correct-password")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)

	require.NoError(t, err)
	assert.Equal(t, "USR001", claims.UserID)
	assert.Equal(t, "ORG001", claims.OrganizationID)
	assert.Equal(t, domain.RoleAdmin, claims.UserRoleID)
}

func TestService_ValidateToken_Failures(t *testing.T) {
	signToken := func(secret string, expiresAt time.Time) string {
		claims := domain.Claims{
			UserID: "USR001",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(expiresAt),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return token
	}

	tests := []struct {
		name     string
		token    string
		expected error
	}{
		{
			name:     "expired token",
			token:    signToken("test-secret", time.Now().Add(-time.Hour)),
			expected: ErrExpiredToken,
		},
		{
			name:     "wrong signing key",
			token:    signToken("other-secret", time.Now().Add(time.Hour)),
			expected: ErrInvalidToken,
		},
		{
			name:     "garbage token",
			token:    "not.a.jwt",
			expected: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewService(repomocks.NewMockUserRepository(ctrl), testConfig())

			claims, err := service.ValidateToken(tt.token)

			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestService_GetUserProfile_StripsPasswordHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := repomocks.NewMockUserRepository(ctrl)
	user := activeUser(t, "correct-password")
	userRepo.EXPECT().GetByID("USR001").Return(user, nil)

	service := NewService(userRepo, testConfig())

	profile, err := service.GetUserProfile("USR001")

	require.NoError(t, err)
	assert.Empty(t, profile.PasswordHash)
	assert.Equal(t, "ana@example.com", profile.Email)
}

func TestService_GetUserProfile_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := repomocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetByID("USR404").Return(nil, nil)

	service := NewService(userRepo, testConfig())

	profile, err := service.GetUserProfile("USR404")

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
