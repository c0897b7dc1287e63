package auth

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"ProductAPI/pkg/kit"
)

const (
	HeaderAPIKey = "X-Api-Key"

	msgUnauthorized = "Unauthorized: Invalid or missing API key"
)

// Require rejects any request whose x-api-key header the checker does not
// accept. Nothing behind it runs for a rejected request.
func Require(c Checker, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !c.Check(r.Header.Get(HeaderAPIKey)) {
				if log != nil {
					log.Debug("api key rejected",
						zap.String("request_id", chimw.GetReqID(r.Context())),
						zap.String("path", r.URL.Path),
						zap.Bool("present", r.Header.Get(HeaderAPIKey) != ""),
					)
				}
				kit.WriteError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
