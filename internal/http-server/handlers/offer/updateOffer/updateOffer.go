package updateOffer

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
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type OfferRequest struct {
	Title        string   `json:"title" validate:"required,max=200"`
	Description  string   `json:"description" validate:"max=5000"`
	Destination  string   `json:"destination" validate:"required,max=200"`
	Price        float64  `json:"price" validate:"required,gte=0.01,max=100000000"`
	DurationDays int      `json:"duration_days" validate:"required,gte=1,lte=365"`
	Tags         []string `json:"tags" validate:"max=20,dive,max=32"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OfferUpdater
type OfferUpdater interface {
	UpdateOffer(ownerID int64, offer models.Offer) error
}

func New(log *slog.Logger, updater OfferUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.offer.updateOffer.New"

		log := log.With(slog.String("op", op))

		user, ok := mwauth.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		offerID, err := urlparam.ID(r, "id")
		if err != nil {
			log.Error("invalid offer id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		log = log.With(slog.Int64("offer_id", offerID))

		var req OfferRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		err = updater.UpdateOffer(user.ID, models.Offer{
			ID:           offerID,
			Title:        strings.TrimSpace(req.Title),
			Description:  req.Description,
			Destination:  strings.TrimSpace(req.Destination),
			Price:        req.Price,
			DurationDays: req.DurationDays,
			Tags:         req.Tags,
		})
		if err != nil {
			if errors.Is(err, storage.ErrOfferNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("offer not found"))
				return
			}

			log.Error("failed to update offer", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update offer"))
			return
		}

		log.Info("offer updated")

		render.JSON(w, r, response.OK())
	}
}
