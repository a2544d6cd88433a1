package getPlans

import (
	"log/slog"
	"musaferBox/internal/http-server/middleware/mwauth"
	"musaferBox/internal/lib/api/response"
	"musaferBox/internal/lib/logger/sl"
	"musaferBox/internal/models"
	"net/http"

	"github.com/go-chi/render"
)

type PlansResponse struct {
	response.Response
	Plans []models.TravelPlan `json:"plans"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PlansGetter
type PlansGetter interface {
	ListPlans(userID int64) ([]models.TravelPlan, error)
}

func New(log *slog.Logger, getter PlansGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.plan.getPlans.New"

		log := log.With(slog.String("op", op))

		user, ok := mwauth.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		plans, err := getter.ListPlans(user.ID)
		if err != nil {
			log.Error("failed to get travel plans", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get travel plans"))
			return
		}

		render.JSON(w, r, PlansResponse{
			Response: response.OK(),
			Plans:    plans,
		})
	}
}
