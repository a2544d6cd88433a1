package getAgencies

import (
	"log/slog"
	"musaferBox/internal/lib/api/response"
	"musaferBox/internal/lib/logger/sl"
	"musaferBox/internal/models"
	"net/http"

	"github.com/go-chi/render"
)

type AgenciesResponse struct {
	response.Response
	Agencies []models.Agency `json:"agencies"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AgenciesGetter
type AgenciesGetter interface {
	ListAgencies(status string) ([]models.Agency, error)
}

// New lists agencies in every status, optionally filtered by ?status=.
func New(log *slog.Logger, getter AgenciesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.getAgencies.New"

		log := log.With(slog.String("op", op))

		status := r.URL.Query().Get("status")
		switch status {
		case "", models.AgencyPending, models.AgencyApproved, models.AgencyRejected:
		default:
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid status filter"))
			return
		}

		agencies, err := getter.ListAgencies(status)
		if err != nil {
			log.Error("failed to get agencies", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get agencies"))
			return
		}

		log.Info("agencies retrieved successfully", slog.String("status", status), slog.Int("count", len(agencies)))

		render.JSON(w, r, AgenciesResponse{
			Response: response.OK(),
			Agencies: agencies,
		})
	}
}
