package register

import (
	"errors"
	"log/slog"
	"musaferBox/internal/lib/api/response"
	"musaferBox/internal/lib/logger/sl"
	"musaferBox/internal/lib/password"
	"musaferBox/internal/models"
	"musaferBox/internal/storage"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6,max=72"`
	FullName   string `json:"full_name" validate:"required"`
	Role       string `json:"role" validate:"required,oneof=client agency"`
	AgencyName string `json:"agency_name" validate:"required_if=Role agency"`
}

type Response struct {
	response.Response
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Registrar
type Registrar interface {
	CreateUser(email, passHash, fullName, role string) (int64, error)
	CreateAgencyAccount(email, passHash, fullName, agencyName string) (int64, error)
}

func New(log *slog.Logger, registrar Registrar, bcryptCost int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.register.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		// never log the password
		log.Info("request body decoded", slog.String("email", req.Email), slog.String("role", req.Role))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		hash, err := password.Hash(req.Password, bcryptCost)
		if errors.Is(err, password.ErrTooLong) {
			log.Info("password too long", slog.Int("bytes", len(req.Password)))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("field Password must be at most 72 bytes"))
			return
		}
		if err != nil {
			log.Error("failed to hash password", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register user"))
			return
		}

		var userID int64
		if req.Role == models.RoleAgency {
			userID, err = registrar.CreateAgencyAccount(email, hash, req.FullName, strings.TrimSpace(req.AgencyName))
		} else {
			userID, err = registrar.CreateUser(email, hash, req.FullName, models.RoleClient)
		}
		if err != nil {
			if errors.Is(err, storage.ErrUserExists) {
				log.Info("user already exists", slog.String("email", email))
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("user already exists"))
				return
			}

			log.Error("failed to register user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register user"))
			return
		}

		log.Info("user registered", slog.Int64("user_id", userID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.OK(),
			UserID:   userID,
			Role:     req.Role,
		})
	}
}
