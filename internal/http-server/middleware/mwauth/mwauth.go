// Package mwauth authenticates requests by session token and guards routes by role.
package mwauth

import (
	"context"
	"errors"
	"log/slog"
	"musaferBox/internal/lib/api/response"
	"musaferBox/internal/lib/logger/sl"
	"musaferBox/internal/models"
	"musaferBox/internal/storage"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type ctxKey struct{}

var userKey ctxKey

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionResolver
type SessionResolver interface {
	UserBySession(token string) (*models.User, error)
}

// New rejects requests without a valid "Authorization: Bearer <token>" header
// and stores the session user in the request context.
func New(log *slog.Logger, sessions SessionResolver) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(slog.String("component", "middleware/auth"))

		fn := func(w http.ResponseWriter, r *http.Request) {
			token, ok := BearerToken(r)
			if !ok {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authorization required"))
				return
			}

			user, err := sessions.UserBySession(token)
			if err != nil {
				if errors.Is(err, storage.ErrSessionNotFound) {
					render.Status(r, http.StatusUnauthorized)
					render.JSON(w, r, response.Error("invalid or expired session"))
					return
				}

				log.Error("failed to resolve session",
					sl.Err(err),
					slog.String("request_id", middleware.GetReqID(r.Context())),
				)
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to authorize request"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		}

		return http.HandlerFunc(fn)
	}
}

// RequireRole lets through only users with one of the roles. It must run after New.
func RequireRole(roles ...string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authorization required"))
				return
			}

			for _, role := range roles {
				if user.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("forbidden"))
		}

		return http.HandlerFunc(fn)
	}
}

func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok && user != nil
}

func BearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}
