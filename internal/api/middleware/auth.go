package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FacilityBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
)

// UserHeader заголовок с именем пользователя
const UserHeader = "X-User-ID"

const (
	msgMissingUser = "отсутствует заголовок " + UserHeader
	msgUnknownUser = "неизвестный пользователь"
	msgForbidden   = "доступ запрещен"
)

// UserResolver источник пользователей (Accounts)
type UserResolver interface {
	GetUser(ctx context.Context, username string) (*domain.User, error)
}

type userKey struct{}

// WithUser кладет пользователя в контекст
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// UserFromContext достает пользователя, установленного Auth
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey{}).(*domain.User)
	return user, ok && user != nil
}

// Auth определяет пользователя по заголовку X-User-ID и его роль по таблице учетных записей
func Auth(resolver UserResolver) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username := strings.TrimSpace(r.Header.Get(UserHeader))
			if username == "" {
				handlers.RespondUnauthorized(w, msgMissingUser)
				return
			}

			user, err := resolver.GetUser(r.Context(), username)
			if err != nil {
				handlers.RespondUnauthorized(w, msgUnknownUser)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// RequireRole пропускает только пользователей с указанной ролью
// Должен стоять после Auth
func RequireRole(role domain.Role) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok || user.Role != role {
				handlers.RespondForbidden(w, msgForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
