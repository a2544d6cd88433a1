package getAgency

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

type AgencyResponse struct {
	response.Response
	Agency *models.Agency `json:"agency"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AgencyGetter
type AgencyGetter interface {
	AgencyByID(id int64) (*models.Agency, error)
}

// New returns the public profile of an approved agency.
func New(log *slog.Logger, getter AgencyGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.agency.getAgency.New"

		log := log.With(slog.String("op", op))

		agencyID, err := urlparam.ID(r, "id")
		if err != nil {
			log.Error("invalid agency id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		agency, err := getter.AgencyByID(agencyID)
		if err != nil && !errors.Is(err, storage.ErrAgencyNotFound) {
			log.Error("failed to get agency", sl.Err(err), slog.Int64("agency_id", agencyID))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get agency"))
			return
		}
		if err != nil || agency.Status != models.AgencyApproved {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("agency not found"))
			return
		}

		render.JSON(w, r, AgencyResponse{
			Response: response.OK(),
			Agency:   agency,
		})
	}
}
