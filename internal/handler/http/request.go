package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/fastep-work/fastep-backend-go/internal/handler/http/response"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

// currentWorkerID returns the caller's worker id from the verified token.
func currentWorkerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return "", false
	}

	workerID, ok := claims["user_id"].(string)
	if !ok || workerID == "" {
		response.Unauthorized(w, "Worker ID not found in token")
		return "", false
	}
	return workerID, true
}

// pathID reads the {id} URL parameter and rejects anything that is not a row id.
func pathID(w http.ResponseWriter, r *http.Request, label string) (string, bool) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Invalid "+label+" ID", nil)
		return "", false
	}
	return strings.ToLower(id), true
}

func optionalQuery(r *http.Request, key string) *string {
	if v := strings.TrimSpace(r.URL.Query().Get(key)); v != "" {
		return &v
	}
	return nil
}

func queryLimit(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		return 0
	}
	return limit
}
