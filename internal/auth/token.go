package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("the token is invalid or has expired")
	ErrMissingToken = errors.New("authorization token required")
)

// Token purposes. A token issued for one purpose is not accepted for the
// other.
const (
	purposeSession       = "session"
	purposePasswordReset = "password-reset"
)

// resetTokenValidity is how long a password reset link stays valid.
const resetTokenValidity = time.Hour

type claims struct {
	Purpose string `json:"purpose"`
	Email   string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates the HMAC-signed tokens used for
// sessions and password resets.
type TokenManager struct {
	secret          []byte
	sessionValidity time.Duration
}

// NewTokenManager returns a TokenManager. The secret should be a strong
// random string; sessionValidity is how long session tokens stay valid.
func NewTokenManager(secret string, sessionValidity time.Duration) *TokenManager {
	return &TokenManager{
		secret:          []byte(secret),
		sessionValidity: sessionValidity,
	}
}

// NewSession issues a session token for the user.
func (m *TokenManager) NewSession(userID uuid.UUID) (string, error) {
	return m.sign(claims{
		Purpose: purposeSession,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.sessionValidity)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	})
}

// ParseSession validates a session token and returns the user ID it was
// issued for.
func (m *TokenManager) ParseSession(token string) (uuid.UUID, error) {
	parsed, err := m.parse(token)
	if err != nil || parsed.Purpose != purposeSession {
		return uuid.Nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(parsed.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return userID, nil
}

// NewPasswordReset issues a reset token for the email address. The token
// expires after one hour.
func (m *TokenManager) NewPasswordReset(email string) (string, error) {
	return m.sign(claims{
		Purpose: purposePasswordReset,
		Email:   email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(resetTokenValidity)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	})
}

// ParsePasswordReset validates a reset token and returns the email address
// it was issued for.
func (m *TokenManager) ParsePasswordReset(token string) (string, error) {
	parsed, err := m.parse(token)
	if err != nil || parsed.Purpose != purposePasswordReset || parsed.Email == "" {
		return "", ErrInvalidToken
	}

	return parsed.Email, nil
}

func (m *TokenManager) sign(c claims) (string, error) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return token, nil
}

func (m *TokenManager) parse(token string) (*claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	c, ok := parsed.Claims.(*claims)
	if !ok {
		return nil, ErrInvalidToken
	}

	return c, nil
}
