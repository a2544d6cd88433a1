package dashboard

import (
	"log/slog"
	"musaferBox/internal/lib/api/response"
	"musaferBox/internal/lib/logger/sl"
	"musaferBox/internal/models"
	"net/http"

	"github.com/go-chi/render"
)

type DashboardResponse struct {
	response.Response
	Stats *models.DashboardStats `json:"stats"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StatsGetter
type StatsGetter interface {
	DashboardStats() (*models.DashboardStats, error)
}

func New(log *slog.Logger, getter StatsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.dashboard.New"

		stats, err := getter.DashboardStats()
		if err != nil {
			log.Error("failed to get dashboard stats", slog.String("op", op), sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get dashboard stats"))
			return
		}

		render.JSON(w, r, DashboardResponse{
			Response: response.OK(),
			Stats:    stats,
		})
	}
}
