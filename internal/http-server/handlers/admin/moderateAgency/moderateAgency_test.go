package moderateAgency

import (
	"context"
	"errors"
	"musaferBox/internal/http-server/handlers/admin/moderateAgency/mocks"
	"musaferBox/internal/lib/logger/handlers/slogdiscard"
	"musaferBox/internal/models"
	"musaferBox/internal/storage"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModerateAgencyHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		status         string
		agencyID       string
		mockSetup      func(m *mocks.AgencyModerator)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "Approve",
			status:   models.AgencyApproved,
			agencyID: "2",
			mockSetup: func(m *mocks.AgencyModerator) {
				m.On("SetAgencyStatus", int64(2), models.AgencyApproved).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:     "Reject",
			status:   models.AgencyRejected,
			agencyID: "2",
			mockSetup: func(m *mocks.AgencyModerator) {
				m.On("SetAgencyStatus", int64(2), models.AgencyRejected).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:           "Missing agency ID",
			status:         models.AgencyApproved,
			agencyID:       "",
			mockSetup:      func(m *mocks.AgencyModerator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"id is required"}`,
		},
		{
			name:     "Agency not found",
			status:   models.AgencyApproved,
			agencyID: "2",
			mockSetup: func(m *mocks.AgencyModerator) {
				m.On("SetAgencyStatus", int64(2), models.AgencyApproved).Return(storage.ErrAgencyNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"agency not found"}`,
		},
		{
			name:     "Storage failure",
			status:   models.AgencyRejected,
			agencyID: "2",
			mockSetup: func(m *mocks.AgencyModerator) {
				m.On("SetAgencyStatus", int64(2), models.AgencyRejected).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to moderate agency"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			moderator := mocks.NewAgencyModerator(t)
			tc.mockSetup(moderator)

			handler := New(logger, moderator, tc.status)

			req, err := http.NewRequest(http.MethodPost, "/", nil)
			require.NoError(t, err)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tc.agencyID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
