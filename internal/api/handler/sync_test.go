package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adlens-api/internal/usecases/syncing"
	syncingmocks "github.com/vfg2006/adlens-api/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

func insightSyncRequest(campaignID, query string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/v1/campaigns/"+campaignID+"/insights/sync?"+query, nil)
	params := httprouter.Params{{Key: "id", Value: campaignID}}
	return r.WithContext(context.WithValue(r.Context(), httprouter.ParamsKey, params))
}

func decodeErrorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var payload struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
	return payload.Code
}

func TestSyncInsights_ParsesDateRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := syncingmocks.NewMockInsightSyncer(ctrl)
	service.EXPECT().
		SyncInsights("CMP001",
			time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC)).
		Return(&syncing.InsightSyncResult{Synced: 7, Created: 7, Errors: []string{}}, nil)

	rec := httptest.NewRecorder()
	SyncInsights(service).ServeHTTP(rec, insightSyncRequest("CMP001", "start_date=2024-06-01&end_date=2024-06-07"))

	require.Equal(t, http.StatusOK, rec.Code)

	var result syncing.InsightSyncResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.Equal(t, 7, result.Synced)
}

func TestSyncInsights_DateRangeValidation(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{
			name:     "missing start date",
			query:    "end_date=2024-06-07",
			expected: "VAL_002",
		},
		{
			name:     "missing end date",
			query:    "start_date=2024-06-01",
			expected: "VAL_002",
		},
		{
			name:     "missing both dates",
			query:    "",
			expected: "VAL_002",
		},
		{
			name:     "malformed start date",
			query:    "start_date=01/06/2024&end_date=2024-06-07",
			expected: "VAL_003",
		},
		{
			name:     "malformed end date",
			query:    "start_date=2024-06-01&end_date=junk",
			expected: "VAL_003",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// The service must never be reached with an unusable range.
			service := syncingmocks.NewMockInsightSyncer(ctrl)

			rec := httptest.NewRecorder()
			SyncInsights(service).ServeHTTP(rec, insightSyncRequest("CMP001", tt.query))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.expected, decodeErrorCode(t, rec))
		})
	}
}
