package middleware

import (
	"net/http"

	"github.com/fastep-work/fastep-backend-go/internal/domain/auth"
	"github.com/fastep-work/fastep-backend-go/internal/handler/http/response"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests without a verified, unrevoked access token.
// It expects jwtauth.Verifier to have run first.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			if workerID, ok := claims["user_id"].(string); !ok || workerID == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			revoked, err := jwtService.IsTokenRevoked(r.Context(), jwtauth.TokenFromHeader(r))
			if err != nil {
				response.HandleError(w, err)
				return
			}
			if revoked {
				response.Unauthorized(w, "Token has been revoked")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
