package ws

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenInvalid is returned when the handshake token fails verification.
	ErrTokenInvalid = errors.New("token is invalid")

	// ErrIdentityMismatch is returned when the token's embedded identity does
	// not match the identity claimed in the handshake frame.
	ErrIdentityMismatch = errors.New("token identity does not match claimed identity")
)

// Claims is the token payload carried by every authenticated actor. The
// issuing auth service embeds the actor's type and member id; the gateway
// trusts these over anything the handshake frame claims.
type Claims struct {
	UserType         string `json:"userType"`
	DeliveryPersonID *int64 `json:"deliveryPersonId,omitempty"`
	CustomerID       *int64 `json:"customerId,omitempty"`
	jwt.RegisteredClaims
}

// TokenVerifier validates handshake tokens with a shared HMAC secret.
type TokenVerifier struct {
	secret []byte
}

// NewTokenVerifier creates a verifier for HS256-signed tokens.
func NewTokenVerifier(secret string) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret)}
}

// Verify parses and validates the token and returns its claims.
func (v *TokenVerifier) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// matchesIdentity checks the claimed handshake identity against the token.
// A client may only join the rooms its token entitles it to.
func (c *Claims) matchesIdentity(userType string, deliveryPersonID, customerID *int64) bool {
	if c.UserType != userType {
		return false
	}

	switch userType {
	case userTypeDelivery:
		return deliveryPersonID != nil && c.DeliveryPersonID != nil &&
			*deliveryPersonID == *c.DeliveryPersonID
	case userTypeCustomer:
		return customerID != nil && c.CustomerID != nil &&
			*customerID == *c.CustomerID
	default:
		return true
	}
}
