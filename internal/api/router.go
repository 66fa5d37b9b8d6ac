package api

import (
	"context"
	"net/http"

	"github.com/cheahjs/problem-solver-relay/internal/relay"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// DefaultMaxUploadBytes caps multipart bodies when no limit is configured.
const DefaultMaxUploadBytes = 20 << 20

// Relay is the part of relay.Service the HTTP layer depends on.
type Relay interface {
	TranscribeImage(ctx context.Context, image []byte) relay.Result[string]
	TitleImage(ctx context.Context, image []byte) relay.Result[string]
	AnswerQuestion(ctx context.Context, question string) relay.Result[string]
}

type Router struct {
	router         *mux.Router
	handler        http.Handler
	relay          Relay
	maxUploadBytes int64
}

func NewRouter(service Relay, maxUploadBytes int64) *Router {
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}

	r := mux.NewRouter()
	router := &Router{
		router:         r,
		relay:          service,
		maxUploadBytes: maxUploadBytes,
	}

	r.HandleFunc("/healthz", router.healthHandler).Methods("GET")

	relayRoutes := r.PathPrefix("/relay").Subrouter()
	relayRoutes.HandleFunc("/prompt", router.promptHandler).Methods("POST")
	relayRoutes.HandleFunc("/title", router.titleHandler).Methods("POST")
	relayRoutes.HandleFunc("/question", router.questionHandler).Methods("POST")

	router.handler = withLogging(log.Logger, r)

	return router
}

func (router *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	router.handler.ServeHTTP(w, r)
}

func (router *Router) healthHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, HealthResponse{Status: "ok"})
}
