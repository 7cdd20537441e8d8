package controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/GeraldTgit/magingwais/models"
	"github.com/GeraldTgit/magingwais/service"
)

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("❌ writeJSON: Error encoding response: %v", err)
	}
}

// writeServiceError maps the error taxonomy to HTTP status codes
func writeServiceError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, models.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrStoreUnavailable):
		status = http.StatusBadGateway
	}
	http.Error(w, err.Error(), status)
}

// actorFromRequest resolves the request's actor from the Bearer session
// token. Writes a 401 and returns false when the token is missing or
// invalid; core operations never see an unauthenticated actor.
func actorFromRequest(auth service.AuthServiceInterface, w http.ResponseWriter, r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		http.Error(w, "Missing bearer token", http.StatusUnauthorized)
		return "", false
	}

	actorID, err := auth.ParseSessionToken(token)
	if err != nil {
		log.Printf("❌ actorFromRequest: %v", err)
		http.Error(w, "Invalid session token", http.StatusUnauthorized)
		return "", false
	}
	return actorID, true
}

// pathID parses the numeric id segment that follows prefix, ignoring
// any trailing sub-path (e.g. "/api/lists/42/items" with prefix
// "/api/lists/" yields 42).
func pathID(path, prefix string) (int64, error) {
	rest := strings.TrimPrefix(path, prefix)
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	return strconv.ParseInt(rest, 10, 64)
}
