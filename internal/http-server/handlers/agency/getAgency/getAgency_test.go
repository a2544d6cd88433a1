package getAgency

import (
	"errors"
	"musaferBox/internal/http-server/handlers/agency/getAgency/mocks"
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

func TestGetAgencyHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		agencyID       string
		mockSetup      func(m *mocks.AgencyGetter)
		expectedStatus int
		bodyContains   string
	}{
		{
			name:     "Approved agency",
			agencyID: "1",
			mockSetup: func(m *mocks.AgencyGetter) {
				m.On("AgencyByID", int64(1)).Return(&models.Agency{ID: 1, Name: "Atlas Voyages", Status: models.AgencyApproved}, nil)
			},
			expectedStatus: http.StatusOK,
			bodyContains:   `"name":"Atlas Voyages"`,
		},
		{
			name:     "Pending agency is hidden",
			agencyID: "2",
			mockSetup: func(m *mocks.AgencyGetter) {
				m.On("AgencyByID", int64(2)).Return(&models.Agency{ID: 2, Name: "New Co", Status: models.AgencyPending}, nil)
			},
			expectedStatus: http.StatusNotFound,
			bodyContains:   `"error":"agency not found"`,
		},
		{
			name:     "Missing agency",
			agencyID: "3",
			mockSetup: func(m *mocks.AgencyGetter) {
				m.On("AgencyByID", int64(3)).Return(nil, storage.ErrAgencyNotFound)
			},
			expectedStatus: http.StatusNotFound,
			bodyContains:   `"error":"agency not found"`,
		},
		{
			name:           "Invalid agency ID format",
			agencyID:       "one",
			mockSetup:      func(m *mocks.AgencyGetter) {},
			expectedStatus: http.StatusBadRequest,
			bodyContains:   `"error":"invalid id format"`,
		},
		{
			name:     "Storage failure",
			agencyID: "1",
			mockSetup: func(m *mocks.AgencyGetter) {
				m.On("AgencyByID", int64(1)).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			bodyContains:   `"error":"failed to get agency"`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getter := mocks.NewAgencyGetter(t)
			tc.mockSetup(getter)

			router := chi.NewRouter()
			router.Get("/agencies/{id}", New(logger, getter))

			req, err := http.NewRequest(http.MethodGet, "/agencies/"+tc.agencyID, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.Contains(t, rr.Body.String(), tc.bodyContains)
		})
	}
}
