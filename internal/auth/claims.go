package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrUnauthorized = errors.New("unauthorized")

// User is the signed-in account as described by the identity provider.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email,omitempty"`
	Name      string    `json:"name,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Provider  string    `json:"provider,omitempty"`
}

// Claims are the access token claims issued by the identity provider.
type Claims struct {
	Email        string                 `json:"email"`
	Role         string                 `json:"role"`
	AppMetadata  map[string]interface{} `json:"app_metadata"`
	UserMetadata map[string]interface{} `json:"user_metadata"`
	jwt.RegisteredClaims
}

// Verifier checks HS256 access tokens signed with the provider's JWT secret.
type Verifier struct {
	secret []byte
	parser *jwt.Parser
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(30*time.Second),
		),
	}
}

// Verify parses token and returns the user it was issued to.
func (v *Verifier) Verify(token string) (*User, error) {
	if len(v.secret) == 0 {
		return nil, errors.Wrap(ErrUnauthorized, "token verification is not configured")
	}

	var claims Claims
	_, err := v.parser.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(ErrUnauthorized, err.Error())
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(ErrUnauthorized, "subject is not a user id")
	}
	return claims.User(id), nil
}

func (c *Claims) User(id uuid.UUID) *User {
	u := &User{ID: id, Email: c.Email}
	u.Name = metaString(c.UserMetadata, "full_name", "name", "user_name")
	u.AvatarURL = metaString(c.UserMetadata, "avatar_url", "picture")
	u.Provider = metaString(c.AppMetadata, "provider")
	return u
}

func metaString(m map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// Sign issues an access token for u. Used by tests and local tooling; real
// tokens come from the identity provider.
func Sign(secret string, u User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email:        u.Email,
		Role:         "authenticated",
		AppMetadata:  map[string]interface{}{"provider": u.Provider},
		UserMetadata: map[string]interface{}{"full_name": u.Name, "avatar_url": u.AvatarURL},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
