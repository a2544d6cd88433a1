package createBooking

import (
	"errors"
	"log/slog"
	"musaferBox/internal/http-server/middleware/mwauth"
	"musaferBox/internal/lib/api/response"
	"musaferBox/internal/lib/logger/sl"
	"musaferBox/internal/models"
	"musaferBox/internal/storage"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

type BookingRequest struct {
	OfferID      int64  `json:"offer_id" validate:"required,gt=0"`
	Travelers    int    `json:"travelers" validate:"required,gte=1,lte=50"`
	TravelDate   string `json:"travel_date" validate:"required,datetime=2006-01-02"`
	ContactName  string `json:"contact_name" validate:"required,max=200"`
	ContactPhone string `json:"contact_phone" validate:"required,max=32"`
	Notes        string `json:"notes" validate:"max=2000"`
}

type BookingResponse struct {
	response.Response
	Booking *models.Booking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	CreateBooking(booking models.Booking) (*models.Booking, error)
}

func New(log *slog.Logger, creator BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log := log.With(slog.String("op", op))

		user, ok := mwauth.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		var req BookingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Int64("offer_id", req.OfferID), slog.Int("travelers", req.Travelers))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		travelDate, _ := time.Parse(dateLayout, req.TravelDate)
		today := time.Now().UTC().Truncate(24 * time.Hour)
		if travelDate.Before(today) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("travel date is in the past"))
			return
		}

		booking, err := creator.CreateBooking(models.Booking{
			OfferID:      req.OfferID,
			ClientID:     user.ID,
			Travelers:    req.Travelers,
			TravelDate:   travelDate,
			ContactName:  strings.TrimSpace(req.ContactName),
			ContactPhone: strings.TrimSpace(req.ContactPhone),
			Notes:        req.Notes,
		})
		if err != nil {
			log.Error("failed to create booking", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrOfferNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("offer not found"))
			case errors.Is(err, storage.ErrReferenceExhausted):
				render.Status(r, http.StatusServiceUnavailable)
				render.JSON(w, r, response.Error("no booking reference available, try again later"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create booking"))
			}
			return
		}

		log.Info("offer booked successfully",
			slog.Int64("booking_id", booking.ID),
			slog.String("reference", booking.Reference),
		)

		responseOK(w, r, booking)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, booking *models.Booking) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Booking:  booking,
	})
}
