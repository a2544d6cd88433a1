package deleteUser

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserDeleter
type UserDeleter interface {
	DeleteUser(id int64) error
}

func New(log *slog.Logger, deleter UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.deleteUser.New"

		log := log.With(slog.String("op", op))

		admin, ok := mwauth.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		userID, err := urlparam.ID(r, "id")
		if err != nil {
			log.Error("invalid user id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		if userID == admin.ID {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("cannot delete own account"))
			return
		}

		if err = deleter.DeleteUser(userID); err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))
				return
			}

			log.Error("failed to delete user", sl.Err(err), slog.Int64("user_id", userID))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete user"))
			return
		}

		log.Info("user deleted", slog.Int64("user_id", userID))

		render.JSON(w, r, response.OK())
	}
}
