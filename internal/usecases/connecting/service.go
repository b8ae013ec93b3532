package connecting

import (
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adlens-api/infrastructure/crypto"
	"github.com/vfg2006/adlens-api/infrastructure/integrator"
	"github.com/vfg2006/adlens-api/infrastructure/repository"
	"github.com/vfg2006/adlens-api/internal/domain"
	"github.com/vfg2006/adlens-api/pkg/apiErrors"
	"github.com/vfg2006/adlens-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// apiKeyLifetime models api keys as effectively non-expiring via a far-future
// sentinel. This is a local design choice, not a platform guarantee.
const apiKeyLifetime = 365 * 24 * time.Hour

// ConnectInput carries everything needed to onboard one external ad account.
// OAuth platforms fill AuthCode/RedirectURI; api_key platforms fill
// APIKey/APISecret and optionally CustomerID.
type ConnectInput struct {
	UserID              string
	OrganizationID      string
	Platform            domain.Platform
	ExternalAccountID   string
	ExternalAccountName string

	AuthCode    string
	RedirectURI string

	APIKey     string
	APISecret  string
	CustomerID string
}

type ConnectResult struct {
	Account      *domain.AdAccount `json:"account"`
	IsNewAccount bool              `json:"is_new_account"`
}

type Connector interface {
	Connect(input ConnectInput) (*ConnectResult, error)
}

type Service struct {
	userRepository    repository.UserRepository
	accountRepository repository.AdAccountRepository
	registry          *integrator.Registry
	encryptor         crypto.TokenEncryptor
}

func NewService(
	userRepository repository.UserRepository,
	accountRepository repository.AdAccountRepository,
	registry *integrator.Registry,
	encryptor crypto.TokenEncryptor,
) Connector {
	return &Service{
		userRepository:    userRepository,
		accountRepository: accountRepository,
		registry:          registry,
		encryptor:         encryptor,
	}
}

// Connect exchanges the provided credentials, encrypts them and upserts the
// ad account. Reconnecting an existing account replaces its tokens and
// reactivates it, which is how a user repairs a broken connection.
func (s *Service) Connect(input ConnectInput) (*ConnectResult, error) {
	adapter, err := s.checkPreconditions(input)
	if err != nil {
		return nil, err
	}

	accessToken, refreshToken, expiresAt, err := s.buildCredentials(adapter, input)
	if err != nil {
		return nil, err
	}

	existing, err := s.accountRepository.GetByExternalID(input.OrganizationID, input.Platform, input.ExternalAccountID)
	if err != nil {
		logrus.WithError(err).Error("connect: failed to look up existing ad account")
		return nil, NewConnectError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "failed to look up existing ad account")
	}

	if existing != nil {
		updated := existing.WithTokens(accessToken, refreshToken, expiresAt)
		if !updated.IsActive() {
			updated = updated.Activated()
		}

		if err := s.accountRepository.Save(updated); err != nil {
			logrus.WithError(err).Error("connect: failed to update ad account")
			return nil, NewConnectError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "failed to update ad account")
		}

		logrus.WithFields(logrus.Fields{
			"account_id": updated.ID,
			"platform":   updated.Platform,
		}).Info("connect: existing ad account reconnected")

		return &ConnectResult{Account: &updated, IsNewAccount: false}, nil
	}

	accountID, err := utils.GenerateID()
	if err != nil {
		return nil, NewConnectError(ErrGenerateID, apiErrors.ErrInternalServer, "failed to generate account id")
	}

	account, err := domain.NewAdAccount(accountID, input.OrganizationID, input.Platform,
		input.ExternalAccountID, input.ExternalAccountName)
	if err != nil {
		return nil, NewConnectError(err, apiErrors.ErrInvalidRequest, "invalid ad account data")
	}

	account = account.WithTokens(accessToken, refreshToken, expiresAt)

	if err := s.accountRepository.Save(account); err != nil {
		logrus.WithError(err).Error("connect: failed to create ad account")
		return nil, NewConnectError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "failed to create ad account")
	}

	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"platform":   account.Platform,
	}).Info("connect: new ad account connected")

	return &ConnectResult{Account: &account, IsNewAccount: true}, nil
}

// checkPreconditions runs the ordered precondition chain. Each failure maps
// to a distinct error so callers can tell exactly what was wrong.
func (s *Service) checkPreconditions(input ConnectInput) (integrator.Adapter, error) {
	user, err := s.userRepository.GetByID(input.UserID)
	if err != nil {
		logrus.WithError(err).Error("connect: failed to look up user")
		return nil, NewConnectError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "failed to look up user")
	}
	if user == nil {
		return nil, NewConnectError(ErrUserNotFound, apiErrors.ErrUserNotFound, input.UserID)
	}

	if !user.BelongsTo(input.OrganizationID) {
		return nil, NewConnectError(ErrOrganizationMismatch, apiErrors.ErrOrganizationMismatch, input.OrganizationID)
	}

	if !user.CanManageAdAccounts() {
		return nil, NewConnectError(ErrPermissionDenied, apiErrors.ErrInsufficientPrivilege, input.UserID)
	}

	adapter, ok := s.registry.Resolve(input.Platform)
	if !ok {
		return nil, NewConnectError(ErrUnsupportedPlatform, apiErrors.ErrUnsupportedPlatform, input.Platform.String())
	}

	switch adapter.AuthType() {
	case domain.AuthTypeOAuth:
		if input.AuthCode == "" || input.RedirectURI == "" {
			return nil, NewConnectError(ErrMissingOAuthParams, apiErrors.ErrMissingRequiredData, input.Platform.String())
		}
	case domain.AuthTypeAPIKey:
		if input.APIKey == "" || input.APISecret == "" {
			return nil, NewConnectError(ErrMissingAPIKeyParams, apiErrors.ErrMissingRequiredData, input.Platform.String())
		}
	}

	return adapter, nil
}

type apiKeyCredentials struct {
	APIKey     string `json:"apiKey"`
	APISecret  string `json:"apiSecret"`
	CustomerID string `json:"customerId"`
}

// buildCredentials produces the encrypted token set for the account. OAuth
// tokens are encrypted independently; api_key material is bundled into one
// JSON blob and encrypted as a single unit.
func (s *Service) buildCredentials(adapter integrator.Adapter, input ConnectInput) (string, *string, time.Time, error) {
	if adapter.AuthType() == domain.AuthTypeAPIKey {
		customerID := input.CustomerID
		if customerID == "" {
			customerID = input.ExternalAccountID
		}

		bundle, err := json.Marshal(apiKeyCredentials{
			APIKey:     input.APIKey,
			APISecret:  input.APISecret,
			CustomerID: customerID,
		})
		if err != nil {
			return "", nil, time.Time{}, NewConnectError(ErrTokenEncryption, apiErrors.ErrInternalServer, "failed to serialize api key bundle")
		}

		encrypted, err := s.encryptor.Encrypt(string(bundle))
		if err != nil {
			return "", nil, time.Time{}, NewConnectError(ErrTokenEncryption, apiErrors.ErrInternalServer, "failed to encrypt api key bundle")
		}

		return encrypted, nil, time.Now().UTC().Add(apiKeyLifetime), nil
	}

	result, err := adapter.ExchangeCode(input.AuthCode, input.RedirectURI)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"platform": input.Platform,
			"error":    err.Error(),
		}).Error("connect: authorization code exchange failed")
		return "", nil, time.Time{}, NewConnectError(ErrTokenExchange, apiErrors.ErrExternalService, err.Error())
	}

	encryptedAccess, err := s.encryptor.Encrypt(result.AccessToken)
	if err != nil {
		return "", nil, time.Time{}, NewConnectError(ErrTokenEncryption, apiErrors.ErrInternalServer, "failed to encrypt access token")
	}

	var encryptedRefresh *string
	if result.RefreshToken != nil {
		encrypted, err := s.encryptor.Encrypt(*result.RefreshToken)
		if err != nil {
			return "", nil, time.Time{}, NewConnectError(ErrTokenEncryption, apiErrors.ErrInternalServer, "failed to encrypt refresh token")
		}
		encryptedRefresh = &encrypted
	}

	return encryptedAccess, encryptedRefresh, result.ExpiresAt, nil
}
