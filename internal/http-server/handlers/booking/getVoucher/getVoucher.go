package getVoucher

import (
	"errors"
	"log/slog"
	"musaferBox/internal/http-server/middleware/mwauth"
	"musaferBox/internal/lib/api/response"
	"musaferBox/internal/lib/api/urlparam"
	"musaferBox/internal/lib/logger/sl"
	"musaferBox/internal/models"
	"musaferBox/internal/storage"
	"musaferBox/internal/voucher"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingGetter
type BookingGetter interface {
	BookingByID(id int64) (*models.Booking, error)
}

func New(log *slog.Logger, getter BookingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getVoucher.New"

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
		if err != nil || !booking.VisibleTo(user) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("booking not found"))
			return
		}

		if booking.Status != models.BookingConfirmed {
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error("voucher is available for confirmed bookings only"))
			return
		}

		pdf, err := voucher.Render(booking, time.Now())
		if err != nil {
			log.Error("failed to render voucher", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to render voucher"))
			return
		}

		log.Info("voucher rendered", slog.Int("bytes", len(pdf)))

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="musaferbox-voucher-`+booking.Reference+`.pdf"`)
		w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(pdf)
	}
}
