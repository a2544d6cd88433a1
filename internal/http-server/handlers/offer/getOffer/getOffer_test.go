package getOffer

import (
	"errors"
	"musaferBox/internal/http-server/handlers/offer/getOffer/mocks"
	"musaferBox/internal/lib/logger/handlers/slogdiscard"
	"musaferBox/internal/models"
	"musaferBox/internal/storage"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOfferHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	offer := &models.Offer{
		ID:           4,
		AgencyID:     1,
		AgencyName:   "Atlas Voyages",
		Title:        "Marrakech escape",
		Description:  "Riads and souks",
		Destination:  "Marrakech",
		Price:        780,
		DurationDays: 5,
		Tags:         []string{"culture", "desert"},
		CreatedAt:    time.Date(2025, 1, 15, 8, 30, 0, 0, time.UTC),
	}

	testCases := []struct {
		name           string
		offerID        string
		mockSetup      func(m *mocks.OfferGetter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Success",
			offerID: "4",
			mockSetup: func(m *mocks.OfferGetter) {
				m.On("OfferByID", int64(4)).Return(offer, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","offer":{"id":4,"agency_id":1,"agency_name":"Atlas Voyages","title":"Marrakech escape",
				"description":"Riads and souks","destination":"Marrakech","price":780,"duration_days":5,
				"tags":["culture","desert"],"created_at":"2025-01-15T08:30:00Z"}}`,
		},
		{
			name:           "Invalid offer ID format",
			offerID:        "abc",
			mockSetup:      func(m *mocks.OfferGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid id format"}`,
		},
		{
			name:           "Non-positive offer ID",
			offerID:        "0",
			mockSetup:      func(m *mocks.OfferGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid id format"}`,
		},
		{
			name:    "Offer not found",
			offerID: "99",
			mockSetup: func(m *mocks.OfferGetter) {
				m.On("OfferByID", int64(99)).Return(nil, storage.ErrOfferNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"offer not found"}`,
		},
		{
			name:    "Storage failure",
			offerID: "4",
			mockSetup: func(m *mocks.OfferGetter) {
				m.On("OfferByID", int64(4)).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get offer"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getter := mocks.NewOfferGetter(t)
			tc.mockSetup(getter)

			router := chi.NewRouter()
			router.Get("/api/offers/{id}", New(logger, getter))

			req, err := http.NewRequest(http.MethodGet, "/api/offers/"+tc.offerID, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}

func TestHandlerWithoutChiContext(t *testing.T) {
	t.Parallel()

	getter := mocks.NewOfferGetter(t)

	rr := httptest.NewRecorder()
	New(slogdiscard.NewDiscardLogger(), getter).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"status":"Error","error":"id is required"}`, rr.Body.String())
}
