package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-PetCareScheduler/internal/domain"
)

// HeaderUserID заголовок с идентификатором вызывающего.
// Это не аутентификация: значение только попадает в createdBy.
const HeaderUserID = "X-User-ID"

type contextKey string

const userIDKey contextKey = "user_id"

// Identity кладет X-User-ID в контекст запроса
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(HeaderUserID))
		if userID != "" {
			r = r.WithContext(WithUserID(r.Context(), userID))
		}
		next.ServeHTTP(w, r)
	})
}

// WithUserID возвращает контекст с идентификатором вызывающего
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserID идентификатор вызывающего или domain.DefaultCreatedBy, если заголовка не было
func UserID(ctx context.Context) string {
	if userID, ok := ctx.Value(userIDKey).(string); ok && userID != "" {
		return userID
	}
	return domain.DefaultCreatedBy
}
