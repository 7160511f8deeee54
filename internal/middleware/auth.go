package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/logging"
)

type contextKey string

const clientKey contextKey = "client"

const authRealm = `Bearer realm="passgen"`

// JWTAuth rejects API requests that do not carry a valid passgen bearer token
// and stores the token subject as the client name on the request context.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scheme, token, _ := strings.Cut(r.Header.Get("Authorization"), " ")
			switch {
			case scheme == "":
				unauthorized(w, "", "bearer token required")
				return
			case !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "":
				unauthorized(w, "invalid_request", "authorization header must be: Bearer <token>")
				return
			}

			claims, err := crypto.ValidateToken(strings.TrimSpace(token), secret)
			if err != nil {
				logging.L.Debug("rejected api token",
					zap.String("path", r.URL.Path),
					zap.Error(err),
				)
				unauthorized(w, "invalid_token", "token is invalid or expired")
				return
			}

			ctx := context.WithValue(r.Context(), clientKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClientFromContext returns the API client name set by JWTAuth.
func ClientFromContext(ctx context.Context) (string, bool) {
	client, ok := ctx.Value(clientKey).(string)
	return client, ok
}

// unauthorized writes a 401 with the WWW-Authenticate challenge from RFC 6750.
// code is omitted from the challenge when the request had no credentials.
func unauthorized(w http.ResponseWriter, code, msg string) {
	challenge := authRealm
	if code != "" {
		challenge += `, error="` + code + `"`
	}
	w.Header().Set("WWW-Authenticate", challenge)
	writeJSONError(w, http.StatusUnauthorized, msg)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
