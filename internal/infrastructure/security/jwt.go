package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ulysse/cms-api/internal/core/domain"
)

const DefaultTokenTTL = 30 * time.Minute

// claims is the bearer token payload: {email, role, exp}.
type claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer issues and verifies HS256 bearer tokens with a single
// process-wide secret. There is no key versioning: changing the secret
// invalidates every token issued before.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret []byte, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenIssuer{secret: secret, ttl: ttl, now: time.Now}
}

// WithClock returns a copy of the issuer that reads time from now.
func (t *TokenIssuer) WithClock(now func() time.Time) *TokenIssuer {
	c := *t
	c.now = now
	return &c
}

func (t *TokenIssuer) Issue(id domain.Identity) (string, error) {
	if id.Email == "" {
		return "", errors.New("issue token: empty email")
	}
	if !domain.ValidRole(id.Role) {
		return "", fmt.Errorf("issue token: %w %q", domain.ErrInvalidRole, id.Role)
	}

	c := claims{
		Email: id.Email,
		Role:  id.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(t.now().Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(t.secret)
}

// Verify checks signature, algorithm and expiry. Every failure collapses to
// domain.ErrInvalidToken; the parser's reason is kept in the chain.
func (t *TokenIssuer) Verify(token string) (domain.Identity, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if c.Email == "" {
		return domain.Identity{}, fmt.Errorf("%w: missing email claim", domain.ErrInvalidToken)
	}
	return domain.Identity{Email: c.Email, Role: c.Role}, nil
}
