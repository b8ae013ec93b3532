package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adlens-api/internal/domain"
	"github.com/vfg2006/adlens-api/internal/usecases/insighting"
	"github.com/vfg2006/adlens-api/pkg/apiErrors"
	"github.com/vfg2006/adlens-api/pkg/middleware"
)

func GetDashboardOverview(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User is not authenticated", nil)
			return
		}

		filters, ok := parseInsightFilters(w, r)
		if !ok {
			return
		}

		overview, err := service.GetDashboardOverview(userClaims.OrganizationID, filters)
		if err != nil {
			handleInsightError(w, err, "Failed to build dashboard overview")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(overview); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to encode response", nil)
		}
	})
}

func GetCampaignPerformance(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User is not authenticated", nil)
			return
		}

		filters, ok := parseInsightFilters(w, r)
		if !ok {
			return
		}

		rows, err := service.GetCampaignPerformance(userClaims.OrganizationID, filters)
		if err != nil {
			handleInsightError(w, err, "Failed to build campaign performance")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rows); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to encode response", nil)
		}
	})
}

func parseInsightFilters(w http.ResponseWriter, r *http.Request) (insighting.Filters, bool) {
	startDate, endDate, ok := parseDateRange(w, r)
	if !ok {
		return insighting.Filters{}, false
	}

	filters := insighting.Filters{
		StartDate: startDate,
		EndDate:   endDate,
	}

	if platform := r.URL.Query().Get("platform"); platform != "" {
		p := domain.Platform(platform)
		if !p.Valid() {
			apiErrors.WriteError(w, apiErrors.ErrUnsupportedPlatform, "Platform is not supported", nil)
			return insighting.Filters{}, false
		}
		filters.Platform = &p
	}

	return filters, true
}

func handleInsightError(w http.ResponseWriter, err error, fallback string) {
	logrus.Error(fallback+":", err)

	if errors.Is(err, insighting.ErrInvalidDateRange) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "Start date must be before end date", nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}
