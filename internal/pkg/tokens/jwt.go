package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const purposeReset = "reset"

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	UserID  string `json:"id"`
	Role    string `json:"role,omitempty"`
	Purpose string `json:"purpose,omitempty"`
	jwt.RegisteredClaims
}

// Manager signs and verifies HS256 tokens with a shared secret.
type Manager struct {
	secret   []byte
	ttl      time.Duration
	resetTTL time.Duration
	now      func() time.Time
}

// NewManager creates a Manager. ttl <= 0 issues session tokens without exp.
func NewManager(secret string, ttl, resetTTL time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	if resetTTL <= 0 {
		resetTTL = 15 * time.Minute
	}
	return &Manager{secret: []byte(secret), ttl: ttl, resetTTL: resetTTL, now: time.Now}, nil
}

// Issue returns a session token carrying the user id and role.
func (m *Manager) Issue(userID uuid.UUID, role string) (string, error) {
	claims := Claims{UserID: userID.String(), Role: role}
	claims.IssuedAt = jwt.NewNumericDate(m.now())
	if m.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(m.now().Add(m.ttl))
	}
	return m.sign(claims)
}

// Parse validates a session token. Reset tokens are rejected.
func (m *Manager) Parse(raw string) (uuid.UUID, string, error) {
	claims, err := m.parse(raw)
	if err != nil {
		return uuid.Nil, "", err
	}
	if claims.Purpose != "" {
		return uuid.Nil, "", ErrInvalidToken
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, "", ErrInvalidToken
	}
	return id, claims.Role, nil
}

// IssueReset returns a short-lived token that only authorises a password reset.
func (m *Manager) IssueReset(userID uuid.UUID) (string, error) {
	claims := Claims{UserID: userID.String(), Purpose: purposeReset}
	claims.IssuedAt = jwt.NewNumericDate(m.now())
	claims.ExpiresAt = jwt.NewNumericDate(m.now().Add(m.resetTTL))
	return m.sign(claims)
}

func (m *Manager) ParseReset(raw string) (uuid.UUID, error) {
	claims, err := m.parse(raw)
	if err != nil {
		return uuid.Nil, err
	}
	if claims.Purpose != purposeReset {
		return uuid.Nil, ErrInvalidToken
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return id, nil
}

func (m *Manager) sign(claims Claims) (string, error) {
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return s, nil
}

func (m *Manager) parse(raw string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	tok, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
