package moderateAgency

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AgencyModerator
type AgencyModerator interface {
	SetAgencyStatus(id int64, status string) error
}

// New sets the agency status (models.AgencyApproved or models.AgencyRejected).
func New(log *slog.Logger, moderator AgencyModerator, status string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.moderateAgency.New"

		log := log.With(slog.String("op", op), slog.String("status", status))

		agencyID, err := urlparam.ID(r, "id")
		if err != nil {
			log.Error("invalid agency id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		log = log.With(slog.Int64("agency_id", agencyID))

		if err = moderator.SetAgencyStatus(agencyID, status); err != nil {
			if errors.Is(err, storage.ErrAgencyNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("agency not found"))
				return
			}

			log.Error("failed to moderate agency", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to moderate agency"))
			return
		}

		log.Info("agency moderated")

		render.JSON(w, r, response.OK())
	}
}
