package getBookings

import (
	"errors"
	"musaferBox/internal/http-server/handlers/booking/getBookings/mocks"
	"musaferBox/internal/http-server/middleware/mwauth"
	"musaferBox/internal/lib/logger/handlers/slogdiscard"
	"musaferBox/internal/models"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBookingsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	day := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		{
			ID:            3,
			Reference:     "1234",
			OfferID:       4,
			OfferTitle:    "Marrakech escape",
			AgencyID:      1,
			AgencyName:    "Atlas Voyages",
			ClientID:      21,
			Travelers:     1,
			TravelDate:    day,
			ContactName:   "Ann Lee",
			ContactPhone:  "555",
			TotalPrice:    780,
			Status:        models.BookingConfirmed,
			CreatedAt:     day,
			UpdatedAt:     day,
			AgencyOwnerID: 12,
		},
	}
	bookingsJSON := `[{"id":3,"reference":"1234","offer_id":4,"offer_title":"Marrakech escape","agency_id":1,
		"agency_name":"Atlas Voyages","client_id":21,"travelers":1,"travel_date":"2026-07-01T00:00:00Z",
		"contact_name":"Ann Lee","contact_phone":"555","notes":"","total_price":780,"status":"confirmed",
		"created_at":"2026-07-01T00:00:00Z","updated_at":"2026-07-01T00:00:00Z"}]`

	testCases := []struct {
		name           string
		user           *models.User
		mockSetup      func(m *mocks.BookingsLister)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Client",
			user: &models.User{ID: 21, Role: models.RoleClient},
			mockSetup: func(m *mocks.BookingsLister) {
				m.On("ListBookingsByClient", int64(21)).Return(bookings, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","bookings":` + bookingsJSON + `}`,
		},
		{
			name: "Agency",
			user: &models.User{ID: 12, Role: models.RoleAgency},
			mockSetup: func(m *mocks.BookingsLister) {
				m.On("ListBookingsByAgency", int64(12)).Return(bookings, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","bookings":` + bookingsJSON + `}`,
		},
		{
			name: "Admin",
			user: &models.User{ID: 1, Role: models.RoleAdmin},
			mockSetup: func(m *mocks.BookingsLister) {
				m.On("ListBookings").Return([]models.Booking{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","bookings":[]}`,
		},
		{
			name: "Storage failure",
			user: &models.User{ID: 21, Role: models.RoleClient},
			mockSetup: func(m *mocks.BookingsLister) {
				m.On("ListBookingsByClient", int64(21)).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get bookings"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			lister := mocks.NewBookingsLister(t)
			tc.mockSetup(lister)

			req, err := http.NewRequest(http.MethodGet, "/api/bookings", nil)
			require.NoError(t, err)
			req = req.WithContext(mwauth.WithUser(req.Context(), tc.user))

			rr := httptest.NewRecorder()
			New(logger, lister).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
