package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rogerio-castellano/paintchain/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidToken    = errors.New("invalid token")
)

// Issuer signs and verifies role session tokens.
type Issuer struct {
	secret            []byte
	ttl               time.Duration
	adminPasswordHash []byte
	now               func() time.Time
}

func NewIssuer(secret string, ttl time.Duration, adminPasswordHash string) *Issuer {
	return &Issuer{
		secret:            []byte(secret),
		ttl:               ttl,
		adminPasswordHash: []byte(adminPasswordHash),
		now:               time.Now,
	}
}

// SessionFor builds the session a role selection yields.
func SessionFor(role string) models.Session {
	return models.Session{
		ID:   "u_" + strings.ToLower(role),
		Name: role + " User",
		Role: role,
	}
}

// Login validates the role (and the admin password when one is configured)
// and returns a signed token for the session.
func (i *Issuer) Login(role, password string) (string, models.Session, error) {
	if !models.ValidRole(role) {
		return "", models.Session{}, ErrInvalidRole
	}
	if role == models.RoleAdmin && len(i.adminPasswordHash) > 0 {
		if bcrypt.CompareHashAndPassword(i.adminPasswordHash, []byte(password)) != nil {
			return "", models.Session{}, ErrInvalidPassword
		}
	}

	s := SessionFor(role)
	token, err := i.Sign(s)
	return token, s, err
}

func (i *Issuer) Sign(s models.Session) (string, error) {
	claims := jwt.MapClaims{
		"sub":  s.ID,
		"name": s.Name,
		"role": s.Role,
		"exp":  i.now().Add(i.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Parse verifies a token (with or without the "Bearer " prefix) and returns
// its session.
func (i *Issuer) Parse(tokenStr string) (models.Session, error) {
	tokenStr = strings.TrimPrefix(tokenStr, "Bearer ")
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(i.now))
	if err != nil || !token.Valid {
		return models.Session{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Session{}, ErrInvalidToken
	}
	s := models.Session{}
	s.ID, _ = claims["sub"].(string)
	s.Name, _ = claims["name"].(string)
	s.Role, _ = claims["role"].(string)
	if !models.ValidRole(s.Role) {
		return models.Session{}, ErrInvalidToken
	}
	return s, nil
}

// HashPassword returns a bcrypt hash suitable for auth.admin_password_hash.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}
