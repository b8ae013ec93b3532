package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adlens-api/infrastructure/repository"
	"github.com/vfg2006/adlens-api/internal/domain"
	"github.com/vfg2006/adlens-api/internal/usecases/connecting"
	"github.com/vfg2006/adlens-api/internal/usecases/refreshing"
	"github.com/vfg2006/adlens-api/pkg/apiErrors"
	"github.com/vfg2006/adlens-api/pkg/middleware"
)

type ConnectAccountRequest struct {
	Platform            string `json:"platform"`
	ExternalAccountID   string `json:"external_account_id"`
	ExternalAccountName string `json:"external_account_name"`

	AuthCode    string `json:"auth_code,omitempty"`
	RedirectURI string `json:"redirect_uri,omitempty"`

	APIKey     string `json:"api_key,omitempty"`
	APISecret  string `json:"api_secret,omitempty"`
	CustomerID string `json:"customer_id,omitempty"`
}

type ConnectAccountResponse struct {
	Account      *domain.AdAccount `json:"account"`
	IsNewAccount bool              `json:"is_new_account"`
}

func ConnectAdAccount(service connecting.Connector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User is not authenticated", nil)
			return
		}

		var req ConnectAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		result, err := service.Connect(connecting.ConnectInput{
			UserID:              userClaims.UserID,
			OrganizationID:      userClaims.OrganizationID,
			Platform:            domain.Platform(req.Platform),
			ExternalAccountID:   req.ExternalAccountID,
			ExternalAccountName: req.ExternalAccountName,
			AuthCode:            req.AuthCode,
			RedirectURI:         req.RedirectURI,
			APIKey:              req.APIKey,
			APISecret:           req.APISecret,
			CustomerID:          req.CustomerID,
		})
		if err != nil {
			handleConnectError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if result.IsNewAccount {
			w.WriteHeader(http.StatusCreated)
		}

		if err := json.NewEncoder(w).Encode(ConnectAccountResponse{
			Account:      result.Account,
			IsNewAccount: result.IsNewAccount,
		}); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to encode response", nil)
		}
	})
}

func handleConnectError(w http.ResponseWriter, err error) {
	logrus.Error("Error connecting ad account:", err)

	var connectErr *connecting.ConnectError
	if errors.As(err, &connectErr) {
		apiErrors.WriteError(w, connectErr.Code, connectErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, connecting.ErrUserNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "User not found", nil)

	case errors.Is(err, connecting.ErrOrganizationMismatch):
		apiErrors.WriteError(w, apiErrors.ErrOrganizationMismatch, "User does not belong to the organization", nil)

	case errors.Is(err, connecting.ErrPermissionDenied):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "User cannot manage ad accounts", nil)

	case errors.Is(err, connecting.ErrUnsupportedPlatform):
		apiErrors.WriteError(w, apiErrors.ErrUnsupportedPlatform, "Platform is not supported", nil)

	case errors.Is(err, connecting.ErrMissingOAuthParams), errors.Is(err, connecting.ErrMissingAPIKeyParams):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, connecting.ErrTokenExchange):
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Failed to exchange the authorization code", nil)

	case errors.Is(err, connecting.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to persist the ad account", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to connect ad account", nil)
	}
}

// AdAccountResponse is the account representation exposed over HTTP. Token
// ciphertext never leaves the service.
type AdAccountResponse struct {
	ID             string                 `json:"id"`
	Platform       domain.Platform        `json:"platform"`
	ExternalID     string                 `json:"external_id"`
	Name           string                 `json:"name"`
	Status         domain.AdAccountStatus `json:"status"`
	HasAccessToken bool                   `json:"has_access_token"`
}

func AdAccountList(accountRepository repository.AdAccountRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User is not authenticated", nil)
			return
		}

		var (
			accounts []*domain.AdAccount
			err      error
		)

		if platform := r.URL.Query().Get("platform"); platform != "" {
			if !domain.Platform(platform).Valid() {
				apiErrors.WriteError(w, apiErrors.ErrUnsupportedPlatform, "Platform is not supported", nil)
				return
			}
			accounts, err = accountRepository.ListByOrganizationAndPlatform(userClaims.OrganizationID, domain.Platform(platform))
		} else {
			accounts, err = accountRepository.ListByOrganization(userClaims.OrganizationID)
		}

		if err != nil {
			logrus.Error("Error listing ad accounts:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to list ad accounts", nil)
			return
		}

		response := make([]AdAccountResponse, 0, len(accounts))
		for _, account := range accounts {
			response = append(response, AdAccountResponse{
				ID:             account.ID,
				Platform:       account.Platform,
				ExternalID:     account.ExternalID,
				Name:           account.Name,
				Status:         account.Status,
				HasAccessToken: account.HasAccessToken(),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to encode response", nil)
		}
	})
}

func RefreshAdAccount(service refreshing.Refresher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Account ID is required", nil)
			return
		}

		result, err := service.RefreshAccount(id)
		if err != nil {
			logrus.Error("Error refreshing account credentials:", err)

			switch {
			case errors.Is(err, refreshing.ErrAccountNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Ad account not found", nil)

			case errors.Is(err, refreshing.ErrMissingAccessToken):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Ad account has no stored credentials", nil)

			case errors.Is(err, refreshing.ErrUnsupportedPlatform):
				apiErrors.WriteError(w, apiErrors.ErrUnsupportedPlatform, "Platform is not supported", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to refresh account credentials", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to encode response", nil)
		}
	})
}
