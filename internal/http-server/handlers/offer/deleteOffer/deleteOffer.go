package deleteOffer

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OfferDeleter
type OfferDeleter interface {
	DeleteOffer(id, ownerID int64) error
}

// New removes an offer. Agencies may remove only their own offers, admins any offer.
func New(log *slog.Logger, deleter OfferDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.offer.deleteOffer.New"

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

		var ownerID int64
		if user.Role != models.RoleAdmin {
			ownerID = user.ID
		}

		if err = deleter.DeleteOffer(offerID, ownerID); err != nil {
			if errors.Is(err, storage.ErrOfferNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("offer not found"))
				return
			}

			log.Error("failed to delete offer", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete offer"))
			return
		}

		log.Info("offer deleted", slog.Int64("offer_id", offerID), slog.Int64("user_id", user.ID))

		render.JSON(w, r, response.OK())
	}
}
