package getAgencies

import (
	"errors"
	"musaferBox/internal/http-server/handlers/admin/getAgencies/mocks"
	"musaferBox/internal/lib/logger/handlers/slogdiscard"
	"musaferBox/internal/models"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetAgenciesHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		query          string
		mockSetup      func(m *mocks.AgenciesGetter)
		expectedStatus int
		bodyContains   string
	}{
		{
			name:  "All statuses",
			query: "",
			mockSetup: func(m *mocks.AgenciesGetter) {
				m.On("ListAgencies", "").Return([]models.Agency{
					{ID: 1, Name: "Atlas Voyages", Status: models.AgencyApproved},
					{ID: 2, Name: "New Co", Status: models.AgencyPending},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			bodyContains:   `"name":"New Co"`,
		},
		{
			name:  "Pending only",
			query: "?status=pending",
			mockSetup: func(m *mocks.AgenciesGetter) {
				m.On("ListAgencies", models.AgencyPending).Return([]models.Agency{}, nil)
			},
			expectedStatus: http.StatusOK,
			bodyContains:   `"agencies":[]`,
		},
		{
			name:           "Unknown status",
			query:          "?status=banned",
			mockSetup:      func(m *mocks.AgenciesGetter) {},
			expectedStatus: http.StatusBadRequest,
			bodyContains:   `"error":"invalid status filter"`,
		},
		{
			name:  "Storage failure",
			query: "?status=rejected",
			mockSetup: func(m *mocks.AgenciesGetter) {
				m.On("ListAgencies", models.AgencyRejected).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			bodyContains:   `"error":"failed to get agencies"`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getter := mocks.NewAgenciesGetter(t)
			tc.mockSetup(getter)

			rr := httptest.NewRecorder()
			New(logger, getter).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/admin/agencies"+tc.query, nil))

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.Contains(t, rr.Body.String(), tc.bodyContains)
		})
	}
}
