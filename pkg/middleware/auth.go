package middleware

import (
	"net/http"

	"organic-store/internal/data/repository"
	"organic-store/pkg/utils"

	"go.uber.org/zap"
)

// SessionCookieName is the cookie carrying the bearer session token.
const SessionCookieName = "sessionId"

// AdminSession gates admin-only routes. A missing, unknown, or non-admin
// token all get the same 401 so the response never reveals how close a
// token came to matching.
func AdminSession(sessionRepo repository.SessionRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				utils.ResponseUnauthorized(w, "Not authenticated")
				return
			}

			session, ok := sessionRepo.Find(r.Context(), cookie.Value)
			if !ok || !session.IsAdmin {
				logger.Warn("Admin gate rejected request",
					zap.String("path", r.URL.Path),
					zap.String("method", r.Method),
				)
				utils.ResponseUnauthorized(w, "Not authenticated")
				return
			}

			ctx := utils.SetSessionContext(r.Context(), session.Token, session.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
