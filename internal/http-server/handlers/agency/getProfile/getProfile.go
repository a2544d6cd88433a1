package getProfile

import (
	"errors"
	"log/slog"
	"musaferBox/internal/http-server/middleware/mwauth"
	"musaferBox/internal/lib/api/response"
	"musaferBox/internal/lib/logger/sl"
	"musaferBox/internal/models"
	"musaferBox/internal/storage"
	"net/http"

	"github.com/go-chi/render"
)

type ProfileResponse struct {
	response.Response
	Agency *models.Agency `json:"agency"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ProfileGetter
type ProfileGetter interface {
	AgencyByOwner(ownerID int64) (*models.Agency, error)
}

func New(log *slog.Logger, getter ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.agency.getProfile.New"

		log := log.With(slog.String("op", op))

		user, ok := mwauth.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		agency, err := getter.AgencyByOwner(user.ID)
		if err != nil {
			if errors.Is(err, storage.ErrAgencyNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("agency not found"))
				return
			}

			log.Error("failed to get agency profile", sl.Err(err), slog.Int64("user_id", user.ID))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get agency profile"))
			return
		}

		render.JSON(w, r, ProfileResponse{
			Response: response.OK(),
			Agency:   agency,
		})
	}
}
