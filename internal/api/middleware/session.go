package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// HeaderSessionID заголовок с ID сессии для клиентов без cookie
const HeaderSessionID = "X-Session-ID"

// Ограничение совпадает с session_records.session_id VARCHAR(64)
const maxSessionIDLength = 64

type contextKey string

const sessionIDKey contextKey = "sessionID"

// Session определяет сессию запроса по cookie или заголовку X-Session-ID
// Если сессии нет, выдается новый ID: он ставится в cookie и возвращается в заголовке
func Session(cookieName string, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := sessionFromRequest(r, cookieName)
			if sessionID == "" {
				sessionID = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Value:    sessionID,
					Path:     "/",
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}
			w.Header().Set(HeaderSessionID, sessionID)

			ctx := WithSessionID(r.Context(), sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionFromRequest(r *http.Request, cookieName string) string {
	if cookie, err := r.Cookie(cookieName); err == nil && validSessionID(cookie.Value) {
		return cookie.Value
	}
	if header := strings.TrimSpace(r.Header.Get(HeaderSessionID)); validSessionID(header) {
		return header
	}
	return ""
}

func validSessionID(id string) bool {
	return id != "" && len(id) <= maxSessionIDLength
}

// WithSessionID кладет ID сессии в контекст
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// GetSessionID извлекает ID сессии из контекста
func GetSessionID(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(sessionIDKey).(string)
	return sessionID, ok && sessionID != ""
}
