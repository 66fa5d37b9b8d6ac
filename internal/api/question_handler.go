package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog"
)

const maxQuestionBytes = 1 << 20

func (router *Router) questionHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxQuestionBytes))
	if err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("Failed to read question body")
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			respondWithText(w, http.StatusRequestEntityTooLarge, msgQuestionTooLarge)
			return
		}
		respondWithText(w, http.StatusBadRequest, err.Error())
		return
	}

	question, err := parseQuestion(body)
	if err != nil {
		switch {
		case errors.Is(err, errQuestionBlank):
			respondWithText(w, http.StatusBadRequest, msgQuestionBlank)
		case errors.Is(err, errQuestionType):
			respondWithText(w, http.StatusBadRequest, msgQuestionType)
		default:
			respondWithText(w, http.StatusBadRequest, msgQuestionMissing)
		}
		return
	}

	respondWithResult(w, r, router.relay.AnswerQuestion(r.Context(), question))
}
