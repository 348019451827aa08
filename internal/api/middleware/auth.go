package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/frizerhub/Barber-BookingService/internal/api/handlers"
)

// userIDHeader заголовок с идентификатором аутентифицированного пользователя.
// Аутентификацию (телефонный OTP) выполняет внешний слой; сервис доверяет
// заголовку как непрозрачному идентификатору.
const userIDHeader = "X-User-ID"

type userIDContextKey struct{}

// Auth проверяет наличие X-User-ID и кладёт его в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(userIDHeader))
		if userID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "missing "+userIDHeader+" header")
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID извлекает идентификатор пользователя из контекста запроса
func UserID(ctx context.Context) string {
	userID, _ := ctx.Value(userIDContextKey{}).(string)
	return userID
}

// AdminOnly пропускает только пользователей из списка администраторов
func AdminOnly(adminUserIDs []string) func(http.Handler) http.Handler {
	admins := make(map[string]struct{}, len(adminUserIDs))
	for _, id := range adminUserIDs {
		admins[id] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := admins[UserID(r.Context())]; !ok {
				handlers.RespondForbidden(w, "pristup dozvoljen samo administratoru")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IsAdmin сообщает, входит ли пользователь в список администраторов
func IsAdmin(adminUserIDs []string, userID string) bool {
	for _, id := range adminUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}
