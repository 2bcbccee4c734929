package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"mindwell/pkg/errors"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError replies with the client form of err. Unexpected errors are
// logged since the client only sees a generic message.
func writeError(w http.ResponseWriter, logger zerolog.Logger, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Msg("request failed")
	}
	writeJSON(w, status, errors.ToFrontendError(err))
}

func decodeJSON(w http.ResponseWriter, r *http.Request, logger zerolog.Logger, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, logger, errors.Wrap(err, errors.ErrTypeValidation, "INVALID_JSON", "invalid JSON body").
			WithUserMessage("The request could not be read"))
		return false
	}
	return true
}
