// Package token issues and verifies the signed, time-limited identity
// tokens transported in the `token` cookie. Validity is solely signature +
// expiry; there is no revocation list.
package token

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Skanda2852b/payrollmanagement/internal/policy"
	"github.com/Skanda2852b/payrollmanagement/internal/repository"
)

// Claims binds a token to a single user id.
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

type Service struct {
	secret []byte
	ttl    time.Duration
	users  repository.UserRepository
}

func NewService(secret string, ttl time.Duration, users repository.UserRepository) *Service {
	return &Service{secret: []byte(secret), ttl: ttl, users: users}
}

// TTL reports the configured validity window (used by the boundary to set
// the cookie Max-Age to the same value).
func (s *Service) TTL() time.Duration { return s.ttl }

// Issue produces an HS256 token bound to userID with an absolute expiry of
// now + TTL.
func (s *Service) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature and expiry, then resolves the bound user id to a
// full identity (password hash excluded). It returns nil uniformly on a
// malformed token, bad signature, expiry, or an unknown user — callers must
// not learn which sub-reason applied.
func (s *Service) Verify(ctx context.Context, tokenStr string) *policy.Identity {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil
	}

	uid, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil
	}
	u, err := s.users.FindByID(ctx, uid)
	if err != nil {
		return nil
	}
	return &policy.Identity{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
