// Package auth authenticates dashboard operators against a fixed account
// list and issues signed bearer tokens.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chain-dashboard/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// Operator roles.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

const issuer = "chain-dashboard"

// Credentials is a plaintext account definition used to seed the authenticator.
type Credentials struct {
	Username string
	Password string
	Name     string
	Email    string
	Role     string
}

// DefaultCredentials are the built-in demo operators.
func DefaultCredentials() []Credentials {
	return []Credentials{
		{Username: "admin", Password: "admin123", Name: "Administrator", Email: "admin@example.com", Role: RoleAdmin},
		{Username: "manager", Password: "manager123", Name: "Store Manager", Email: "manager@example.com", Role: RoleManager},
		{Username: "staff", Password: "staff123", Name: "Staff Member", Email: "staff@example.com", Role: RoleStaff},
	}
}

// Operator is the public view of an account.
type Operator struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Claims are the JWT claims carried by an access token.
type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Operator returns the operator described by the claims.
func (c *Claims) Operator() Operator {
	return Operator{Username: c.Subject, Name: c.Name, Email: c.Email, Role: c.Role}
}

// Token is the result of a successful login.
type Token struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
	Operator    Operator  `json:"operator"`
}

// Authenticator verifies operator credentials and tokens.
type Authenticator interface {
	// Login checks credentials and issues a signed token.
	Login(ctx context.Context, username, password string) (*Token, error)

	// Verify parses and validates a token.
	Verify(token string) (*Claims, error)
}

type account struct {
	operator Operator
	hash     []byte
}

type jwtAuthenticator struct {
	accounts map[string]account
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
	logger   zerolog.Logger
}

// NewAuthenticator hashes the given credentials with bcrypt at the given cost.
func NewAuthenticator(secret string, ttl time.Duration, creds []Credentials, cost int, logger zerolog.Logger) (Authenticator, error) {
	if secret == "" {
		return nil, errors.New("JWT secret is required")
	}

	accounts := make(map[string]account, len(creds))
	for _, c := range creds {
		hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), cost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password for %s: %w", c.Username, err)
		}
		accounts[c.Username] = account{
			operator: Operator{Username: c.Username, Name: c.Name, Email: c.Email, Role: c.Role},
			hash:     hash,
		}
	}

	return &jwtAuthenticator{
		accounts: accounts,
		secret:   []byte(secret),
		ttl:      ttl,
		now:      time.Now,
		logger:   logger.With().Str("component", "auth").Logger(),
	}, nil
}

// Login checks credentials and issues a signed token.
func (a *jwtAuthenticator) Login(ctx context.Context, username, password string) (*Token, error) {
	acc, ok := a.accounts[username]
	if !ok {
		a.logger.Warn().Str("username", username).Msg("login for unknown operator")
		return nil, model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(acc.hash, []byte(password)); err != nil {
		a.logger.Warn().Str("username", username).Msg("login with wrong password")
		return nil, model.ErrInvalidCredentials
	}

	now := a.now()
	expiresAt := now.Add(a.ttl)
	claims := Claims{
		Name:  acc.operator.Name,
		Email: acc.operator.Email,
		Role:  acc.operator.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   acc.operator.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		a.logger.Error().Err(err).Str("username", username).Msg("failed to sign token")
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	a.logger.Info().Str("username", username).Str("role", acc.operator.Role).Msg("operator logged in")

	return &Token{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		Operator:    acc.operator,
	}, nil
}

// Verify parses and validates a token.
func (a *jwtAuthenticator) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil || !parsed.Valid {
		return nil, model.ErrInvalidToken
	}
	return claims, nil
}

type claimsKey struct{}

// WithClaims returns a context carrying the caller's claims.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFrom returns the caller's claims, if any.
func ClaimsFrom(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*Claims)
	return claims, ok
}
