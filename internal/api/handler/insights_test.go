package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adlens-api/internal/domain"
	"github.com/vfg2006/adlens-api/internal/usecases/insighting"
	insightingmocks "github.com/vfg2006/adlens-api/internal/usecases/insighting/mocks"
	"github.com/vfg2006/adlens-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func dashboardRequest(query string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/v1/insights/dashboard?"+query, nil)
	claims := &domain.Claims{UserID: "USR001", OrganizationID: "ORG001", UserRoleID: domain.RoleAnalyst}
	return r.WithContext(context.WithValue(r.Context(), middleware.ContextKeyUser, claims))
}

func TestGetDashboardOverview_BuildsFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	platform := domain.PlatformMeta

	service := insightingmocks.NewMockInsighter(ctrl)
	service.EXPECT().
		GetDashboardOverview("ORG001", insighting.Filters{
			StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC),
			Platform:  &platform,
		}).
		Return(&insighting.DashboardOverview{}, nil)

	rec := httptest.NewRecorder()
	GetDashboardOverview(service).ServeHTTP(rec, dashboardRequest("start_date=2024-06-01&end_date=2024-06-07&platform=meta"))

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetDashboardOverview_Validation(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{
			name:     "missing dates",
			query:    "platform=meta",
			expected: "VAL_002",
		},
		{
			name:     "unknown platform",
			query:    "start_date=2024-06-01&end_date=2024-06-07&platform=bing",
			expected: "SRV_004",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := insightingmocks.NewMockInsighter(ctrl)

			rec := httptest.NewRecorder()
			GetDashboardOverview(service).ServeHTTP(rec, dashboardRequest(tt.query))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.expected, decodeErrorCode(t, rec))
		})
	}
}

func TestGetDashboardOverview_InvalidDateRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := insightingmocks.NewMockInsighter(ctrl)
	service.EXPECT().
		GetDashboardOverview("ORG001", gomock.Any()).
		Return(nil, insighting.ErrInvalidDateRange)

	rec := httptest.NewRecorder()
	GetDashboardOverview(service).ServeHTTP(rec, dashboardRequest("start_date=2024-06-07&end_date=2024-06-01"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VAL_004", decodeErrorCode(t, rec))
}

func TestGetCampaignPerformance_RequiresAuthenticatedUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := insightingmocks.NewMockInsighter(ctrl)

	r := httptest.NewRequest(http.MethodGet, "/v1/insights/performance?start_date=2024-06-01&end_date=2024-06-07", nil)
	rec := httptest.NewRecorder()
	GetCampaignPerformance(service).ServeHTTP(rec, r)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var payload struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
	assert.Equal(t, "AUTH_004", payload.Code)
}
