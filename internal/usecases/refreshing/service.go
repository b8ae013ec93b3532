package refreshing

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adlens-api/infrastructure/crypto"
	"github.com/vfg2006/adlens-api/infrastructure/integrator"
	"github.com/vfg2006/adlens-api/infrastructure/repository"
	"github.com/vfg2006/adlens-api/internal/domain"
)

// refreshLookahead is how far before hard expiry a token is refreshed
// proactively.
const refreshLookahead = 7 * 24 * time.Hour

// RefreshResult reports the credential health of one ad account after a
// check-and-repair pass. NeedsReauth means automatic refresh cannot help and
// the user has to reconnect the account.
type RefreshResult struct {
	IsValid      bool `json:"is_valid"`
	NeedsReauth  bool `json:"needs_reauth"`
	WasRefreshed bool `json:"was_refreshed"`
}

type Refresher interface {
	RefreshAccount(accountID string) (*RefreshResult, error)
}

type Service struct {
	accountRepository repository.AdAccountRepository
	registry          *integrator.Registry
	encryptor         crypto.TokenEncryptor
	now               func() time.Time
}

func NewService(
	accountRepository repository.AdAccountRepository,
	registry *integrator.Registry,
	encryptor crypto.TokenEncryptor,
) Refresher {
	return &Service{
		accountRepository: accountRepository,
		registry:          registry,
		encryptor:         encryptor,
		now:               time.Now,
	}
}

// RefreshAccount validates the stored access token and refreshes it when it
// is invalid or expires within the lookahead window. A failed refresh attempt
// is an expected operational state, not a fault: it is swallowed and reported
// as NeedsReauth.
func (s *Service) RefreshAccount(accountID string) (*RefreshResult, error) {
	account, err := s.accountRepository.GetByID(accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	if !account.HasAccessToken() {
		return nil, ErrMissingAccessToken
	}

	adapter, ok := s.registry.Resolve(account.Platform)
	if !ok {
		return nil, ErrUnsupportedPlatform
	}

	accessToken, err := s.encryptor.Decrypt(*account.AccessToken)
	if err != nil {
		return nil, err
	}

	isValid := adapter.ValidateToken(accessToken)
	expiring := account.TokenExpiresWithin(s.now(), refreshLookahead)

	if isValid && !expiring {
		return &RefreshResult{IsValid: true}, nil
	}

	if account.HasRefreshToken() {
		if refreshed := s.tryRefresh(*account, adapter); refreshed {
			return &RefreshResult{IsValid: true, WasRefreshed: true}, nil
		}
		return &RefreshResult{NeedsReauth: true}, nil
	}

	// Nothing to refresh with. The current token may still work for a few
	// more days, but the user has to reconnect before it expires.
	return &RefreshResult{IsValid: isValid, NeedsReauth: true}, nil
}

// tryRefresh performs the single documented refresh attempt. Every failure
// inside it, including decryption and persistence, is caught and converted
// into a reauth outcome.
func (s *Service) tryRefresh(account domain.AdAccount, adapter integrator.Adapter) bool {
	refreshToken, err := s.encryptor.Decrypt(*account.RefreshToken)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err.Error(),
		}).Warn("refresh: failed to decrypt refresh token")
		return false
	}

	result, err := adapter.RefreshAccessToken(refreshToken)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"platform":   account.Platform,
			"error":      err.Error(),
		}).Warn("refresh: platform refused to refresh the token")
		return false
	}

	encryptedAccess, err := s.encryptor.Encrypt(result.AccessToken)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err.Error(),
		}).Warn("refresh: failed to encrypt new access token")
		return false
	}

	encryptedRefresh := account.RefreshToken
	if result.RefreshToken != nil {
		encrypted, err := s.encryptor.Encrypt(*result.RefreshToken)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"error":      err.Error(),
			}).Warn("refresh: failed to encrypt new refresh token")
			return false
		}
		encryptedRefresh = &encrypted
	}

	updated := account.WithTokens(encryptedAccess, encryptedRefresh, result.ExpiresAt)

	if err := s.accountRepository.Save(updated); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err.Error(),
		}).Warn("refresh: failed to persist rotated tokens")
		return false
	}

	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"platform":   account.Platform,
	}).Info("refresh: access token rotated")

	return true
}
