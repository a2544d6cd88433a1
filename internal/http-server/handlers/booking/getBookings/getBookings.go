package getBookings

import (
	"log/slog"
	"musaferBox/internal/http-server/middleware/mwauth"
	"musaferBox/internal/lib/api/response"
	"musaferBox/internal/lib/logger/sl"
	"musaferBox/internal/models"
	"net/http"

	"github.com/go-chi/render"
)

type BookingsResponse struct {
	response.Response
	Bookings []models.Booking `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsLister
type BookingsLister interface {
	ListBookings() ([]models.Booking, error)
	ListBookingsByClient(clientID int64) ([]models.Booking, error)
	ListBookingsByAgency(ownerID int64) ([]models.Booking, error)
}

// New lists the bookings the caller may see: own bookings for clients,
// bookings of its offers for an agency, everything for admins.
func New(log *slog.Logger, lister BookingsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getBookings.New"

		log := log.With(slog.String("op", op))

		user, ok := mwauth.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		var (
			bookings []models.Booking
			err      error
		)

		switch user.Role {
		case models.RoleAdmin:
			bookings, err = lister.ListBookings()
		case models.RoleAgency:
			bookings, err = lister.ListBookingsByAgency(user.ID)
		default:
			bookings, err = lister.ListBookingsByClient(user.ID)
		}
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings"))
			return
		}

		log.Info("bookings retrieved successfully", slog.String("role", user.Role), slog.Int("count", len(bookings)))

		render.JSON(w, r, BookingsResponse{
			Response: response.OK(),
			Bookings: bookings,
		})
	}
}
