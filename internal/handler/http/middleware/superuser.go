package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/zeitgrid/worktime-backend-go/internal/domain/user"
	"github.com/zeitgrid/worktime-backend-go/internal/handler/http/response"
)

func SuperuserOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, errInvalidToken.Error())
			return
		}

		superuser, ok := claims["is_superuser"].(bool)
		if !superuser || !ok {
			response.HandleError(w, user.ErrSuperuserPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
