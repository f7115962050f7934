// Package secret implementa auth.AuthVerifier contra un secreto compartido,
// el esquema que usan los uploaders estilo Nightscout: el cliente manda el
// API secret en claro o su SHA-1 en hex.
package secret

import (
	"context"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"os"
	"strings"

	"glucose-iob/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("api secret not configured")
	ErrUnauthorized  = errors.New("api secret mismatch")
)

// DefaultUserID es la identidad que asumen los uploaders con secreto
// compartido (un solo usuario por despliegue, como en Nightscout).
const DefaultUserID = "uploader"

type Verifier struct {
	// secretHash es el SHA-1 hex del secreto configurado; nunca guardamos
	// el secreto en claro más allá del arranque.
	secretHash string
	userID     string
	minLength  int
}

type Config struct {
	// Secret es el API secret en claro (mínimo 12 caracteres, como exige
	// el ecosistema de uploaders).
	Secret string

	// UserID opcional; si está vacío se usa DefaultUserID.
	UserID string
}

func NewVerifier(cfg Config) (*Verifier, error) {
	s := strings.TrimSpace(cfg.Secret)
	if s == "" {
		return nil, ErrNotConfigured
	}
	if len(s) < 12 {
		return nil, errors.New("api secret must be at least 12 characters")
	}

	uid := strings.TrimSpace(cfg.UserID)
	if uid == "" {
		uid = DefaultUserID
	}

	return &Verifier{
		secretHash: sha1Hex(s),
		userID:     uid,
		minLength:  12,
	}, nil
}

// NewVerifierFromEnv arma el verifier desde env:
// - API_SECRET (requerido; si falta devuelve nil y el server queda en modo dev)
// - API_SECRET_USER_ID (opcional)
func NewVerifierFromEnv() (*Verifier, error) {
	s := strings.TrimSpace(os.Getenv("API_SECRET"))
	if s == "" {
		return nil, nil
	}
	return NewVerifier(Config{
		Secret: s,
		UserID: os.Getenv("API_SECRET_USER_ID"),
	})
}

// Verify acepta el secreto en claro o ya hasheado (SHA-1 hex), que es lo
// que mandan los uploaders viejos.
func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.secretHash == "" {
		return auth.Claims{}, ErrNotConfigured
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrUnauthorized
	}

	candidate := token
	if !looksHashed(token) {
		candidate = sha1Hex(token)
	}

	if subtle.ConstantTimeCompare([]byte(strings.ToLower(candidate)), []byte(v.secretHash)) != 1 {
		return auth.Claims{}, ErrUnauthorized
	}

	return auth.Claims{UserID: v.userID}, nil
}

func sha1Hex(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// looksHashed detecta un SHA-1 hex (40 chars hex).
func looksHashed(s string) bool {
	if len(s) != 40 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
