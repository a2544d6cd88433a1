package logout

import (
	"log/slog"
	"musaferBox/internal/http-server/middleware/mwauth"
	"musaferBox/internal/lib/api/response"
	"musaferBox/internal/lib/logger/sl"
	"net/http"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionDeleter
type SessionDeleter interface {
	DeleteSession(token string) error
}

func New(log *slog.Logger, sessions SessionDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.logout.New"

		log := log.With(slog.String("op", op))

		token, ok := mwauth.BearerToken(r)
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		if err := sessions.DeleteSession(token); err != nil {
			log.Error("failed to delete session", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to logout"))
			return
		}

		log.Info("session closed")

		render.JSON(w, r, response.OK())
	}
}
