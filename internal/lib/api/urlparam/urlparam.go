package urlparam

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

var (
	ErrMissing = errors.New("id is required")
	ErrInvalid = errors.New("invalid id format")
)

// ID parses a positive numeric chi URL parameter.
func ID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, ErrMissing
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalid
	}

	return id, nil
}
