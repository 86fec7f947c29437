package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"tabadigit-esl/internal/apperr"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps an error kind to its status and {detail} envelope.
func writeError(w http.ResponseWriter, err error) {
	var v *apperr.Validation
	if errors.As(err, &v) {
		writeJSON(w, apperr.Status(err), v)
		return
	}
	writeJSON(w, apperr.Status(err), map[string]string{"detail": err.Error()})
}

// parseLimit reads ?limit=, falling back to 0 (service default) when absent
// or unparsable.
func parseLimit(r *http.Request) int64 {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return limit
}
