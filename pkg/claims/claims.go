package claims

import (
	"context"

	jwt "github.com/dgrijalva/jwt-go"
)

type contextKey string

const (
	TokenContextKey contextKey = "token"
)

// Claims is the session token payload. Subject carries the user id;
// both fields stay strings end to end, even for numeric ids.
type Claims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

func (c *Claims) UserID() string {
	return c.Subject
}

// FromContext returns the claims attached to the request by the gating
// middleware, or false if the request never passed authentication.
func FromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(TokenContextKey).(*Claims)
	if !ok || c == nil || c.Subject == "" {
		return nil, false
	}
	return c, true
}
