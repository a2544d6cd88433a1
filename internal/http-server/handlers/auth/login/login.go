package login

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
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type Request struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Response struct {
	response.Response
	Token     string    `json:"token"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Authenticator
type Authenticator interface {
	UserByEmail(email string) (*models.User, error)
	CreateSession(token string, userID int64, expiresAt time.Time) error
}

func New(log *slog.Logger, auth Authenticator, sessionTTL time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.login.New"

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

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))
		log = log.With(slog.String("email", email))

		user, err := auth.UserByEmail(email)
		if err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				log.Info("unknown email")
				invalidCredentials(w, r)
				return
			}

			log.Error("failed to get user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to login"))
			return
		}

		ok, err := password.Matches(user.PasswordHash, req.Password)
		if err != nil {
			log.Error("failed to check password", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to login"))
			return
		}
		if !ok {
			log.Info("wrong password")
			invalidCredentials(w, r)
			return
		}

		token := uuid.NewString()
		expiresAt := time.Now().Add(sessionTTL).UTC()

		if err = auth.CreateSession(token, user.ID, expiresAt); err != nil {
			log.Error("failed to create session", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to login"))
			return
		}

		log.Info("user logged in", slog.Int64("user_id", user.ID), slog.String("role", user.Role))

		render.JSON(w, r, Response{
			Response:  response.OK(),
			Token:     token,
			Role:      user.Role,
			ExpiresAt: expiresAt,
		})
	}
}

func invalidCredentials(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, response.Error("invalid credentials"))
}
