package decideBooking

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingDecider
type BookingDecider interface {
	DecideBooking(id, ownerID int64, status string) error
}

// New moves a pending booking of the agency's offers to status
// (models.BookingConfirmed or models.BookingRejected).
func New(log *slog.Logger, decider BookingDecider, status string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.decideBooking.New"

		log := log.With(slog.String("op", op), slog.String("decision", status))

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

		err = decider.DecideBooking(bookingID, user.ID, status)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrBookingNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
			case errors.Is(err, storage.ErrBookingState):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("booking cannot change state"))
			default:
				log.Error("failed to update booking", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update booking"))
			}
			return
		}

		log.Info("booking status updated")

		render.JSON(w, r, response.OK())
	}
}
