package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/CleanClick-BookingService/internal/api/handlers"
)

const msgUnauthorized = "missing or invalid bearer token"

type userIDKey struct{}

// TokenVerifier определяет id пользователя по bearer токену
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Logger printf-логгер
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth требует "Authorization: Bearer <token>" и кладет id пользователя в контекст запроса
func Auth(verifier TokenVerifier, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				log.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			userID, err := verifier.Verify(token)
			if err != nil {
				log.Warn("%s %s - Invalid bearer token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// WithUserID сохраняет id аутентифицированного пользователя
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserID id аутентифицированного пользователя; false вне Auth
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey{}).(string)
	return userID, ok && userID != ""
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
