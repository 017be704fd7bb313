// Package auth implements the mocked back-office login: bcrypt-checked demo
// credentials exchanged for an HS256 bearer token whose subject is the team
// member id.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	team "github.com/light-bringer/storefront-service/internal/app/team/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

const issuer = "storefront-service"

// MemberLookup finds members by login email.
type MemberLookup interface {
	ByEmail(email string) (*team.TeamMember, bool)
}

// Token is a signed bearer token.
type Token struct {
	Value     string
	MemberID  string
	ExpiresAt time.Time
}

// Service issues and verifies tokens.
type Service struct {
	members MemberLookup
	secret  []byte
	ttl     time.Duration
	clock   clock.Clock
}

// NewService creates an auth service. ttl is the lifetime of issued tokens.
func NewService(members MemberLookup, secret string, ttl time.Duration, clock clock.Clock) *Service {
	return &Service{
		members: members,
		secret:  []byte(secret),
		ttl:     ttl,
		clock:   clock,
	}
}

// HashPassword returns the bcrypt hash of a demo password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Login checks the credentials and issues a token. Unknown emails, members
// without a password and wrong passwords all fail the same way.
func (s *Service) Login(_ context.Context, email, password string) (*Token, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	member, ok := s.members.ByEmail(email)
	if !ok || member.PasswordHash() == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash()), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.Issue(member.ID())
}

// Issue signs a token for memberID.
func (s *Service) Issue(memberID string) (*Token, error) {
	now := s.clock.Now()
	expiresAt := now.Add(s.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   memberID,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &Token{Value: signed, MemberID: memberID, ExpiresAt: expiresAt}, nil
}

// Verify checks the signature and expiry and returns the member id.
func (s *Service) Verify(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
