package updateProfile

import (
	"errors"
	"log/slog"
	"musaferBox/internal/http-server/middleware/mwauth"
	"musaferBox/internal/lib/api/response"
	"musaferBox/internal/lib/logger/sl"
	"musaferBox/internal/models"
	"musaferBox/internal/storage"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type ProfileRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=5000"`
	Phone       string `json:"phone" validate:"max=32"`
	Website     string `json:"website" validate:"omitempty,url"`
	City        string `json:"city" validate:"max=100"`
}

type ProfileResponse struct {
	response.Response
	Agency *models.Agency `json:"agency"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ProfileUpdater
type ProfileUpdater interface {
	UpdateAgencyProfile(ownerID int64, profile models.AgencyProfile) (*models.Agency, error)
}

func New(log *slog.Logger, updater ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.agency.updateProfile.New"

		log := log.With(slog.String("op", op))

		user, ok := mwauth.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		var req ProfileRequest

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

		agency, err := updater.UpdateAgencyProfile(user.ID, models.AgencyProfile{
			Name:        strings.TrimSpace(req.Name),
			Description: req.Description,
			Phone:       strings.TrimSpace(req.Phone),
			Website:     strings.TrimSpace(req.Website),
			City:        strings.TrimSpace(req.City),
		})
		if err != nil {
			if errors.Is(err, storage.ErrAgencyNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("agency not found"))
				return
			}

			log.Error("failed to update agency profile", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update agency profile"))
			return
		}

		log.Info("agency profile updated", slog.Int64("agency_id", agency.ID))

		render.JSON(w, r, ProfileResponse{
			Response: response.OK(),
			Agency:   agency,
		})
	}
}
