package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adlens-api/internal/usecases/syncing"
	"github.com/vfg2006/adlens-api/pkg/apiErrors"
	"github.com/vfg2006/adlens-api/pkg/utils"
)

func SyncCampaigns(service syncing.CampaignSyncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Account ID is required", nil)
			return
		}

		result, err := service.SyncCampaigns(id)
		if err != nil {
			handleSyncError(w, err, "Failed to sync campaigns")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to encode response", nil)
		}
	})
}

func SyncInsights(service syncing.InsightSyncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campaign ID is required", nil)
			return
		}

		startDate, endDate, ok := parseDateRange(w, r)
		if !ok {
			return
		}

		result, err := service.SyncInsights(id, startDate, endDate)
		if err != nil {
			handleSyncError(w, err, "Failed to sync insights")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to encode response", nil)
		}
	})
}

// parseDateRange reads the mandatory start_date/end_date query params. Both
// must be present and in YYYY-MM-DD form.
func parseDateRange(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	startParam := r.URL.Query().Get("start_date")
	endParam := r.URL.Query().Get("end_date")

	if startParam == "" || endParam == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "start_date and end_date are required", nil)
		return time.Time{}, time.Time{}, false
	}

	startDate, err := utils.ParseDate(startParam)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date must be in YYYY-MM-DD format", nil)
		return time.Time{}, time.Time{}, false
	}

	endDate, err := utils.ParseDate(endParam)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date must be in YYYY-MM-DD format", nil)
		return time.Time{}, time.Time{}, false
	}

	return *startDate, *endDate, true
}

func handleSyncError(w http.ResponseWriter, err error, fallback string) {
	logrus.Error(fallback+":", err)

	switch {
	case errors.Is(err, syncing.ErrAccountNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Ad account not found", nil)

	case errors.Is(err, syncing.ErrCampaignNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Campaign not found", nil)

	case errors.Is(err, syncing.ErrAccountInactive):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Ad account is inactive", nil)

	case errors.Is(err, syncing.ErrMissingAccessToken):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Ad account has no stored credentials", nil)

	case errors.Is(err, syncing.ErrUnsupportedPlatform):
		apiErrors.WriteError(w, apiErrors.ErrUnsupportedPlatform, "Platform is not supported", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
