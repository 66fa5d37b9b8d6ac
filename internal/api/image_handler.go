package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/cheahjs/problem-solver-relay/internal/relay"
	"github.com/rs/zerolog"
)

func (router *Router) promptHandler(w http.ResponseWriter, r *http.Request) {
	router.serveImage(w, r, router.relay.TranscribeImage)
}

func (router *Router) titleHandler(w http.ResponseWriter, r *http.Request) {
	router.serveImage(w, r, router.relay.TitleImage)
}

func (router *Router) serveImage(w http.ResponseWriter, r *http.Request, call func(context.Context, []byte) relay.Result[string]) {
	imageData, err := readImageField(w, r, router.maxUploadBytes)
	if err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("Rejected image upload")
		if errors.Is(err, errImageTooLarge) {
			respondWithText(w, http.StatusRequestEntityTooLarge, msgImageTooLarge)
			return
		}
		respondWithText(w, http.StatusBadRequest, msgImageMissing)
		return
	}

	respondWithResult(w, r, call(r.Context(), imageData))
}
