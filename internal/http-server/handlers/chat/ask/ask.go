package ask

import (
	"errors"
	"log/slog"
	"musaferBox/internal/chatbot"
	"musaferBox/internal/lib/api/response"
	"musaferBox/internal/lib/logger/sl"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type AskRequest struct {
	Message string `json:"message" validate:"required,max=1000"`
}

type AskResponse struct {
	response.Response
	Answer   string  `json:"answer"`
	Matched  bool    `json:"matched"`
	Question string  `json:"question,omitempty"`
	Score    float64 `json:"score"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Answerer
type Answerer interface {
	Answer(message string) chatbot.Reply
}

func New(log *slog.Logger, bot Answerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.chat.ask.New"

		log := log.With(slog.String("op", op))

		var req AskRequest

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

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		reply := bot.Answer(req.Message)

		log.Debug("chat message answered",
			slog.Bool("matched", reply.Matched),
			slog.Float64("score", reply.Score),
		)

		render.JSON(w, r, AskResponse{
			Response: response.OK(),
			Answer:   reply.Answer,
			Matched:  reply.Matched,
			Question: reply.Question,
			Score:    reply.Score,
		})
	}
}
