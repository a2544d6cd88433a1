package response

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email   string `validate:"required,email"`
	Role    string `validate:"oneof=client agency"`
	Count   int    `validate:"gte=1,lte=5"`
	Website string `validate:"omitempty,url"`
	Day     string `validate:"datetime=2006-01-02"`
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := validator.New().Struct(sample{
		Role:    "admin",
		Count:   9,
		Website: "nope",
		Day:     "01.02.2026",
	})
	require.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t,
		"field Email is a required field, field Role must be one of [client agency], field Count must be at most 5, "+
			"field Website is not a valid URL, field Day must be a date in format 2006-01-02",
		resp.Error,
	)
}

func TestValidationErrorBounds(t *testing.T) {
	t.Parallel()

	type bounds struct {
		ID    int64   `validate:"gt=0"`
		Price float64 `validate:"gte=0.01"`
		Name  string  `validate:"min=2"`
	}

	err := validator.New().Struct(bounds{ID: -3, Price: 0.001, Name: "a"})
	require.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))

	assert.Equal(t,
		"field ID must be greater than 0, field Price must be at least 0.01, field Name must be at least 2",
		resp.Error,
	)
}

func TestOKAndError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Response{Status: StatusOK}, OK())
	assert.Equal(t, Response{Status: StatusError, Error: "boom"}, Error("boom"))
}
