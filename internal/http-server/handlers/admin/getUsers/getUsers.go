package getUsers

import (
	"log/slog"
	"musaferBox/internal/lib/api/response"
	"musaferBox/internal/lib/logger/sl"
	"musaferBox/internal/models"
	"net/http"

	"github.com/go-chi/render"
)

type UsersResponse struct {
	response.Response
	Users []models.User `json:"users"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UsersGetter
type UsersGetter interface {
	ListUsers() ([]models.User, error)
}

func New(log *slog.Logger, getter UsersGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.getUsers.New"

		log := log.With(slog.String("op", op))

		users, err := getter.ListUsers()
		if err != nil {
			log.Error("failed to get users", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get users"))
			return
		}

		log.Info("users retrieved successfully", slog.Int("count", len(users)))

		render.JSON(w, r, UsersResponse{
			Response: response.OK(),
			Users:    users,
		})
	}
}
