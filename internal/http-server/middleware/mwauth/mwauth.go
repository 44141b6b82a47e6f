// Package mwauth authenticates requests by the Authorization bearer token
// and makes the resolved user available to downstream handlers.
package mwauth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"fitnessBooker/internal/lib/api/response"
	"fitnessBooker/internal/lib/jwt"
	"fitnessBooker/internal/lib/logger/sl"
	"fitnessBooker/internal/models"

	"github.com/go-chi/render"
	"github.com/google/uuid"
)

type ctxKey struct{}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserProvider
type UserProvider interface {
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

func New(log *slog.Logger, secret string, provider UserProvider) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/auth"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				unauthorized(w, r, "authorization header is required")
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				unauthorized(w, r, "authorization header must be a bearer token")
				return
			}

			claims, err := jwt.ParseToken(token, secret)
			if err != nil {
				log.Warn("failed to parse token", sl.Err(err))
				unauthorized(w, r, "invalid or expired token")
				return
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				log.Warn("invalid user id in token", sl.Err(err))
				unauthorized(w, r, "invalid or expired token")
				return
			}

			user, err := provider.UserByID(r.Context(), userID)
			if err != nil {
				log.Warn("failed to resolve token user", sl.Err(err))
				unauthorized(w, r, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
		}

		return http.HandlerFunc(fn)
	}
}

func ContextWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, user)
}

// UserFromContext returns the user resolved by the middleware.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(ctxKey{}).(*models.User)
	return user, ok
}

func unauthorized(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, response.Error(msg))
}
