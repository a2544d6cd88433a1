package me

import (
	"log/slog"
	"musaferBox/internal/http-server/middleware/mwauth"
	"musaferBox/internal/lib/api/response"
	"musaferBox/internal/models"
	"net/http"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	User *models.User `json:"user"`
}

func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.me.New"

		user, ok := mwauth.UserFromContext(r.Context())
		if !ok {
			log.Warn("no user in context", slog.String("op", op))
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
			User:     user,
		})
	}
}
