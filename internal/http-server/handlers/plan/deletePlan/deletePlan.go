package deletePlan

import (
	"errors"
	"log/slog"
	"musaferBox/internal/http-server/middleware/mwauth"
	"musaferBox/internal/lib/api/response"
	"musaferBox/internal/lib/api/urlparam"
	"musaferBox/internal/lib/logger/sl"
	"musaferBox/internal/storage"
	"net/http"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PlanDeleter
type PlanDeleter interface {
	DeletePlan(id, userID int64) error
}

func New(log *slog.Logger, deleter PlanDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.plan.deletePlan.New"

		log := log.With(slog.String("op", op))

		user, ok := mwauth.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		planID, err := urlparam.ID(r, "id")
		if err != nil {
			log.Error("invalid plan id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		if err = deleter.DeletePlan(planID, user.ID); err != nil {
			if errors.Is(err, storage.ErrPlanNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("travel plan not found"))
				return
			}

			log.Error("failed to delete travel plan", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete travel plan"))
			return
		}

		log.Info("travel plan deleted", slog.Int64("plan_id", planID))

		render.JSON(w, r, response.OK())
	}
}
