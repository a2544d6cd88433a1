package cancelBooking

import (
	"errors"
	"log/slog"
	"musaferBox/internal/http-server/middleware/mwauth"
	"musaferBox/internal/lib/api/response"
	"musaferBox/internal/lib/api/urlparam"
	"musaferBox/internal/lib/logger/sl"
	"musaferBox/internal/storage"
	"net/http"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCanceller
type BookingCanceller interface {
	CancelBooking(id, clientID int64) error
}

func New(log *slog.Logger, canceller BookingCanceller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.cancelBooking.New"

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

		err = canceller.CancelBooking(bookingID, user.ID)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrBookingNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
			case errors.Is(err, storage.ErrBookingState):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("booking cannot change state"))
			default:
				log.Error("failed to cancel booking", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to cancel booking"))
			}
			return
		}

		log.Info("booking cancelled")

		render.JSON(w, r, response.OK())
	}
}
