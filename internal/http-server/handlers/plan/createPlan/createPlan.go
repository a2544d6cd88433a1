package createPlan

import (
	"errors"
	"log/slog"
	"musaferBox/internal/http-server/middleware/mwauth"
	"musaferBox/internal/lib/api/response"
	"musaferBox/internal/lib/logger/sl"
	"musaferBox/internal/models"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

type PlanRequest struct {
	Destination string  `json:"destination" validate:"required,max=200"`
	StartDate   string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	Budget      float64 `json:"budget" validate:"gte=0,max=1000000000"`
	Travelers   int     `json:"travelers" validate:"required,gte=1,lte=50"`
	Notes       string  `json:"notes" validate:"max=5000"`
}

type PlanResponse struct {
	response.Response
	PlanID int64 `json:"plan_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PlanCreator
type PlanCreator interface {
	CreatePlan(plan models.TravelPlan) (int64, error)
}

func New(log *slog.Logger, creator PlanCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.plan.createPlan.New"

		log := log.With(slog.String("op", op))

		user, ok := mwauth.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		var req PlanRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		start, _ := time.Parse(dateLayout, req.StartDate)
		end, _ := time.Parse(dateLayout, req.EndDate)
		if end.Before(start) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("end date is before start date"))
			return
		}

		planID, err := creator.CreatePlan(models.TravelPlan{
			UserID:      user.ID,
			Destination: strings.TrimSpace(req.Destination),
			StartDate:   start,
			EndDate:     end,
			Budget:      req.Budget,
			Travelers:   req.Travelers,
			Notes:       req.Notes,
		})
		if err != nil {
			log.Error("failed to add travel plan", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add travel plan"))
			return
		}

		log.Info("travel plan added", slog.Int64("id", planID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, PlanResponse{
			Response: response.OK(),
			PlanID:   planID,
		})
	}
}
