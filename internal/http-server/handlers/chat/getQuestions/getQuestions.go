package getQuestions

import (
	"net/http"

	"musaferBox/internal/lib/api/response"

	"github.com/go-chi/render"
)

type QuestionsResponse struct {
	response.Response
	Questions []string `json:"questions"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=QuestionsGetter
type QuestionsGetter interface {
	Questions() []string
}

// New lists the questions the assistant knows, for suggestion chips.
func New(getter QuestionsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, QuestionsResponse{
			Response:  response.OK(),
			Questions: getter.Questions(),
		})
	}
}
