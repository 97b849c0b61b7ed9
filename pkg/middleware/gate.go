package middleware

import (
	"context"
	"net/http"
	"strings"

	"projectboard/pkg/claims"
	"projectboard/pkg/session"
)

const (
	apiPrefix = "/api/projects"
	homePath  = "/"
	loginPath = "/login"

	HeaderUserID    = "x-user-id"
	HeaderUserEmail = "x-user-email"
)

// Gate enforces the session policy on every request, in priority order:
//
//  1. /api/projects* needs a valid session cookie; otherwise 401 with a
//     JSON body, never a redirect.
//  2. The home page needs a valid session; otherwise redirect to /login.
//  3. The login page redirects home while a session is live.
//  4. Everything else passes through untouched.
//
// A missing, malformed or expired cookie is the same thing: no session.
// On success the user id and email travel to handlers in the request
// context and as x-user-id / x-user-email request headers.
func Gate(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, authed := authenticate(sessions, r)

			switch {
			case strings.HasPrefix(r.URL.Path, apiPrefix):
				if !authed {
					writeUnauthorized(w)
					return
				}
				r.Header.Set(HeaderUserID, c.UserID())
				r.Header.Set(HeaderUserEmail, c.Email)
				ctx := context.WithValue(r.Context(), claims.TokenContextKey, c)
				next.ServeHTTP(w, r.WithContext(ctx))

			case r.URL.Path == homePath:
				if !authed {
					http.Redirect(w, r, loginPath, http.StatusSeeOther)
					return
				}
				next.ServeHTTP(w, r)

			case r.URL.Path == loginPath:
				if authed {
					http.Redirect(w, r, homePath, http.StatusSeeOther)
					return
				}
				next.ServeHTTP(w, r)

			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

func authenticate(sessions *session.Manager, r *http.Request) (*claims.Claims, bool) {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}

	c, err := sessions.Validate(cookie.Value)
	if err != nil {
		return nil, false
	}
	return c, true
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"Unauthorized"}`))
}
