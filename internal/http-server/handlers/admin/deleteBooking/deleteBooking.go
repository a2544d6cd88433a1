package deleteBooking

import (
	"errors"
	"log/slog"
	"musaferBox/internal/lib/api/response"
	"musaferBox/internal/lib/api/urlparam"
	"musaferBox/internal/lib/logger/sl"
	"musaferBox/internal/storage"
	"net/http"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingDeleter
type BookingDeleter interface {
	DeleteBooking(id int64) error
}

func New(log *slog.Logger, deleter BookingDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.deleteBooking.New"

		log := log.With(slog.String("op", op))

		bookingID, err := urlparam.ID(r, "id")
		if err != nil {
			log.Error("invalid booking id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		if err = deleter.DeleteBooking(bookingID); err != nil {
			if errors.Is(err, storage.ErrBookingNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
				return
			}

			log.Error("failed to delete booking", sl.Err(err), slog.Int64("booking_id", bookingID))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete booking"))
			return
		}

		log.Info("booking deleted", slog.Int64("booking_id", bookingID))

		render.JSON(w, r, response.OK())
	}
}
