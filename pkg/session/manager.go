package session

import (
	"errors"
	"time"

	"projectboard/pkg/claims"

	jwt "github.com/dgrijalva/jwt-go"
)

// TokenTTL is the only session lifetime; there is no refresh, the
// client logs in again to extend a session.
const TokenTTL = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid session token")

// Manager issues and validates stateless session tokens. Sessions are
// not stored server-side: a token is valid iff its HMAC signature
// verifies and its expiry has not passed, which also means a copied
// token stays valid until it expires (logout only clears the cookie).
type Manager struct {
	secret []byte
}

// NewManager wraps the signing secret loaded once at startup. The
// secret is never read from the environment here.
func NewManager(secret []byte) *Manager {
	return &Manager{secret: secret}
}

func (m *Manager) Issue(userID, email string) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims.Claims{
		Email: email,
		StandardClaims: jwt.StandardClaims{
			Subject:   userID,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(TokenTTL).Unix(),
		},
	})
	return token.SignedString(m.secret)
}

// Validate parses and verifies a raw token string. Any parse,
// signature or expiry fault comes back as ErrInvalidToken; callers
// never see partially-parsed claims.
func (m *Manager) Validate(raw string) (*claims.Claims, error) {
	c := &claims.Claims{}

	hashSecretGetter := func(token *jwt.Token) (interface{}, error) {
		method, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok || method.Alg() != "HS256" {
			return nil, errors.New("bad sign method")
		}
		return m.secret, nil
	}

	token, err := jwt.ParseWithClaims(raw, c, hashSecretGetter)
	if err != nil || !token.Valid || c.Subject == "" {
		return nil, ErrInvalidToken
	}
	return c, nil
}
