package getBooking

import (
	"errors"
	"log/slog"
	"musaferBox/internal/http-server/middleware/mwauth"
	"musaferBox/internal/lib/api/response"
	"musaferBox/internal/lib/api/urlparam"
	"musaferBox/internal/lib/logger/sl"
	"musaferBox/internal/models"
	"musaferBox/internal/storage"
	"net/http"

	"github.com/go-chi/render"
)

type BookingResponse struct {
	response.Response
	Booking *models.Booking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingGetter
type BookingGetter interface {
	BookingByID(id int64) (*models.Booking, error)
}

func New(log *slog.Logger, getter BookingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getBooking.New"

		log := log.With(slog.String("op", op))

		user, ok := mwauth.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		bookingID, err := urlparam.ID(r, "id")
		if err != nil {
			log.Error("invalid booking id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		log = log.With(slog.Int64("booking_id", bookingID))

		booking, err := getter.BookingByID(bookingID)
		if err != nil && !errors.Is(err, storage.ErrBookingNotFound) {
			log.Error("failed to get booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get booking"))
			return
		}

		// foreign bookings are reported as missing
		if err != nil || !booking.VisibleTo(user) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("booking not found"))
			return
		}

		render.JSON(w, r, BookingResponse{
			Response: response.OK(),
			Booking:  booking,
		})
	}
}
