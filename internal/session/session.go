// Package session mints and validates the signed tokens carried by the
// resident and admin cookies. Tokens are stateless; logout is an
// expired cookie.
package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrWrongRole    = errors.New("session role mismatch")
)

const (
	RoleResident = "resident"
	RoleAdmin    = "admin"
)

// Claims is the session payload. Role discriminates resident and admin
// tokens; a token of one role never satisfies the other's check.
type Claims struct {
	Role       string `json:"role"`
	ResidentID string `json:"resident_id,omitempty"`
	Mobile     string `json:"mobile,omitempty"`
	AdminID    string `json:"admin_id,omitempty"`
	jwt.RegisteredClaims
}

// ResidentSession is the identity decoded from a resident token.
type ResidentSession struct {
	ResidentID string `json:"residentId"`
	Mobile     string `json:"mobile"`
}

// AdminSession is the identity decoded from an admin token.
type AdminSession struct {
	AdminID string `json:"adminId"`
}

// Manager signs and parses session tokens with a shared HMAC secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// TTL is the token lifetime, used for cookie Max-Age.
func (m *Manager) TTL() time.Duration { return m.ttl }

// ResidentToken mints a resident session token.
func (m *Manager) ResidentToken(residentID, mobile string) (string, error) {
	return m.sign(Claims{
		Role:       RoleResident,
		ResidentID: residentID,
		Mobile:     mobile,
	})
}

// AdminToken mints an admin session token.
func (m *Manager) AdminToken(adminID string) (string, error) {
	return m.sign(Claims{
		Role:    RoleAdmin,
		AdminID: adminID,
	})
}

func (m *Manager) sign(claims Claims) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		Issuer:    "docuprint",
		ID:        uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseResident validates a resident token. Any failure (absent,
// malformed, expired, wrong role) comes back as an error; callers
// treat it as unauthenticated.
func (m *Manager) ParseResident(tokenString string) (*ResidentSession, error) {
	claims, err := m.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Role != RoleResident || claims.ResidentID == "" {
		return nil, ErrWrongRole
	}
	return &ResidentSession{ResidentID: claims.ResidentID, Mobile: claims.Mobile}, nil
}

// ParseAdmin validates an admin token.
func (m *Manager) ParseAdmin(tokenString string) (*AdminSession, error) {
	claims, err := m.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Role != RoleAdmin || claims.AdminID == "" {
		return nil, ErrWrongRole
	}
	return &AdminSession{AdminID: claims.AdminID}, nil
}

func (m *Manager) parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
