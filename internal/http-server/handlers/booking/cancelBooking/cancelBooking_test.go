package cancelBooking

import (
	"errors"
	"musaferBox/internal/http-server/handlers/booking/cancelBooking/mocks"
	"musaferBox/internal/http-server/middleware/mwauth"
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

func TestCancelBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	client := &models.User{ID: 21, Role: models.RoleClient}

	testCases := []struct {
		name           string
		bookingID      string
		mockSetup      func(m *mocks.BookingCanceller)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:      "Success",
			bookingID: "9",
			mockSetup: func(m *mocks.BookingCanceller) {
				m.On("CancelBooking", int64(9), int64(21)).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:           "Invalid booking ID format",
			bookingID:      "nine",
			mockSetup:      func(m *mocks.BookingCanceller) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid id format"}`,
		},
		{
			name:      "Booking not found",
			bookingID: "9",
			mockSetup: func(m *mocks.BookingCanceller) {
				m.On("CancelBooking", int64(9), int64(21)).Return(storage.ErrBookingNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"booking not found"}`,
		},
		{
			name:      "Already rejected",
			bookingID: "9",
			mockSetup: func(m *mocks.BookingCanceller) {
				m.On("CancelBooking", int64(9), int64(21)).Return(storage.ErrBookingState)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"booking cannot change state"}`,
		},
		{
			name:      "Storage failure",
			bookingID: "9",
			mockSetup: func(m *mocks.BookingCanceller) {
				m.On("CancelBooking", int64(9), int64(21)).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to cancel booking"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			canceller := mocks.NewBookingCanceller(t)
			tc.mockSetup(canceller)

			router := chi.NewRouter()
			router.Use(func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					next.ServeHTTP(w, r.WithContext(mwauth.WithUser(r.Context(), client)))
				})
			})
			router.Post("/bookings/{id}/cancel", New(logger, canceller))

			req, err := http.NewRequest(http.MethodPost, "/bookings/"+tc.bookingID+"/cancel", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
