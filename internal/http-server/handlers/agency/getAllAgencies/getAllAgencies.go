package getAllAgencies

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

// New lists approved agencies.
func New(log *slog.Logger, getter AgenciesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.agency.getAllAgencies.New"

		log := log.With(slog.String("op", op))

		agencies, err := getter.ListAgencies(models.AgencyApproved)
		if err != nil {
			log.Error("failed to get agencies", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get agencies"))
			return
		}

		log.Info("agencies retrieved successfully", slog.Int("count", len(agencies)))

		render.JSON(w, r, AgenciesResponse{
			Response: response.OK(),
			Agencies: agencies,
		})
	}
}
