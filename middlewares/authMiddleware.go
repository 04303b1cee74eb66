package middleware

import (
	"context"
	"net/http"
	"strings"

	helper "github.com/lequochuy12012k4/ChillingCoffee/helper"
)

// Context keys to store session information
type contextKey string

const (
	EmailKey contextKey = "email"
	NameKey  contextKey = "name"
	UidKey   contextKey = "uid"
)

// Authentication rejects requests without a valid bearer token.
func Authentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientToken := r.Header.Get("Authorization")
		if clientToken == "" {
			http.Error(w, "No Authorization header provided", http.StatusUnauthorized)
			return
		}

		tokenParts := strings.Split(clientToken, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			http.Error(w, "Invalid Authorization format", http.StatusUnauthorized)
			return
		}

		claims, errMsg := helper.ValidateToken(tokenParts[1])
		if errMsg != "" {
			http.Error(w, errMsg, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
	})
}

// OptionalAuthentication parses a bearer token when one is present but lets
// anonymous requests through. Review submission uses it: the handler resolves
// the submitter from whatever session details made it into the context.
func OptionalAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientToken := r.Header.Get("Authorization")
		if clientToken != "" {
			tokenParts := strings.Split(clientToken, " ")
			if len(tokenParts) == 2 && tokenParts[0] == "Bearer" {
				if claims, errMsg := helper.ValidateToken(tokenParts[1]); errMsg == "" {
					r = r.WithContext(withClaims(r.Context(), claims))
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}

func withClaims(ctx context.Context, claims *helper.SignedDetails) context.Context {
	ctx = context.WithValue(ctx, EmailKey, claims.Email)
	ctx = context.WithValue(ctx, NameKey, claims.Name)
	return context.WithValue(ctx, UidKey, claims.Uid)
}

// GetSessionFromContext retrieves session data from the request context
func GetSessionFromContext(r *http.Request) (email, name, uid string) {
	email, _ = r.Context().Value(EmailKey).(string)
	name, _ = r.Context().Value(NameKey).(string)
	uid, _ = r.Context().Value(UidKey).(string)
	return
}
