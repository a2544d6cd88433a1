package getOffer

import (
	"errors"
	"log/slog"
	"musaferBox/internal/lib/api/response"
	"musaferBox/internal/lib/api/urlparam"
	"musaferBox/internal/lib/logger/sl"
	"musaferBox/internal/models"
	"musaferBox/internal/storage"
	"net/http"

	"github.com/go-chi/render"
)

type OfferResponse struct {
	response.Response
	Offer *models.Offer `json:"offer"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OfferGetter
type OfferGetter interface {
	OfferByID(id int64) (*models.Offer, error)
}

func New(log *slog.Logger, offerGetter OfferGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.offer.getOffer.New"

		log := log.With(slog.String("op", op))

		offerID, err := urlparam.ID(r, "id")
		if err != nil {
			log.Error("invalid offer id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		log = log.With(slog.Int64("offer_id", offerID))

		offer, err := offerGetter.OfferByID(offerID)
		if err != nil {
			if errors.Is(err, storage.ErrOfferNotFound) {
				log.Info("offer not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("offer not found"))
				return
			}

			log.Error("failed to get offer", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get offer"))
			return
		}

		render.JSON(w, r, OfferResponse{
			Response: response.OK(),
			Offer:    offer,
		})
	}
}
