package middleware

import (
	"context"
	"net/http"

	"petpal/internal/domain/users"
)

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// SessionContext resuelve la sesión UNA vez por request y la deja en el
// context: los handlers preguntan por el usuario al context, nunca al
// storage ambiente directamente.
//
// Si no hay sesión (o el valor persistido está malformado), el request sigue
// igual sin usuario; cada handler decide si exige auth.
func SessionContext(svc *users.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok, err := svc.Current(r.Context())
			if err != nil || !ok {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), currentUserKey, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetCurrentUser devuelve el usuario logueado del context, si hay.
func GetCurrentUser(ctx context.Context) (users.User, bool) {
	v := ctx.Value(currentUserKey)
	if v == nil {
		return users.User{}, false
	}
	u, ok := v.(users.User)
	return u, ok
}
