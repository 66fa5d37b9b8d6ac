package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/cheahjs/problem-solver-relay/internal/relay"
	"github.com/rs/zerolog"
)

func respondWithJSON(w http.ResponseWriter, data interface{}) {
	jsonBody, err := json.Marshal(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(jsonBody)
}

func respondWithText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	io.WriteString(w, text)
}

// respondWithResult writes the answer on success. Input validation failures
// map to 400, everything else to 500.
func respondWithResult(w http.ResponseWriter, r *http.Request, result relay.Result[string]) {
	if result.OK() {
		respondWithText(w, http.StatusOK, result.Data)
		return
	}

	status := http.StatusInternalServerError
	if relay.IsKind(result.Err, relay.InvalidInput) {
		status = http.StatusBadRequest
	}

	zerolog.Ctx(r.Context()).Warn().
		Str("error_kind", result.Err.Kind.String()).
		Str("error", result.Message()).
		Msg("Relay request failed")

	respondWithText(w, status, result.Message())
}
