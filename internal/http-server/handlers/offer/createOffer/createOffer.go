package createOffer

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

type OfferResponse struct {
	response.Response
	OfferID int64 `json:"offer_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OfferCreator
type OfferCreator interface {
	CreateOffer(ownerID int64, offer models.Offer) (int64, error)
}

func New(log *slog.Logger, creator OfferCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.offer.createOffer.New"

		log := log.With(slog.String("op", op))

		user, ok := mwauth.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		var req OfferRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		offerID, err := creator.CreateOffer(user.ID, models.Offer{
			Title:        strings.TrimSpace(req.Title),
			Description:  req.Description,
			Destination:  strings.TrimSpace(req.Destination),
			Price:        req.Price,
			DurationDays: req.DurationDays,
			Tags:         req.Tags,
		})
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrAgencyNotApproved):
				log.Info("agency is not approved", slog.Int64("user_id", user.ID))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("agency is not approved"))
			case errors.Is(err, storage.ErrAgencyNotFound):
				log.Warn("agency user without agency", slog.Int64("user_id", user.ID))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("agency not found"))
			default:
				log.Error("failed to add offer", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to add offer"))
			}
			return
		}

		log.Info("offer added", slog.Int64("id", offerID))

		responseOK(w, r, offerID)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, offerID int64) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, OfferResponse{
		Response: response.OK(),
		OfferID:  offerID,
	})
}
