// Package session issues and verifies the bearer token stored in the auth
// cookie. A token proves that the shared employee password was presented
// within the last 24 hours; nothing is stored server-side.
//
// Format: "<unix millis>:<hex nonce>:<hex HMAC-SHA256(secret, "<unix millis>:<hex nonce>")>"
package session

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"
)

const (
	// CookieName is the name of the cookie carrying the token.
	CookieName = "chlm_auth"
	// MaxAge is the lifetime of a token and of its cookie.
	MaxAge = 24 * time.Hour

	nonceBytes = 16
)

// Status is the outcome of Verify.
type Status int

const (
	StatusInvalid Status = iota
	StatusValid
	StatusExpired
)

func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusExpired:
		return "expired"
	default:
		return "invalid"
	}
}

// OK reports whether the token grants access.
func (s Status) OK() bool { return s == StatusValid }

// ErrEmptySecret is returned by NewSigner when no signing key is configured.
var ErrEmptySecret = errors.New("session: empty signing secret")

// Signer issues and verifies tokens with a single process-wide secret.
type Signer struct {
	secret []byte
	now    func() time.Time
}

// Option configures a Signer.
type Option func(*Signer)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Signer) { s.now = now }
}

// NewSigner builds a Signer. The secret is copied.
func NewSigner(secret string, opts ...Option) (*Signer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	s := &Signer{secret: []byte(secret), now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

// Issue returns a fresh token stamped with the current time.
func (s *Signer) Issue() (string, error) {
	nonce := make([]byte, nonceBytes)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	payload := strconv.FormatInt(s.now().UnixMilli(), 10) + ":" + hex.EncodeToString(nonce)
	return payload + ":" + hex.EncodeToString(s.sign(payload)), nil
}

// Verify checks a token. It never panics; every malformed input is
// StatusInvalid.
func (s *Signer) Verify(token string) Status {
	parts := strings.Split(token, ":")
	if len(parts) != 3 {
		return StatusInvalid
	}
	// Compared as text so the signature has exactly one valid spelling.
	want := hex.EncodeToString(s.sign(parts[0] + ":" + parts[1]))
	if !hmac.Equal([]byte(parts[2]), []byte(want)) {
		return StatusInvalid
	}
	ms, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return StatusInvalid
	}
	if s.now().Sub(time.UnixMilli(ms)) >= MaxAge {
		return StatusExpired
	}
	return StatusValid
}

func (s *Signer) sign(payload string) []byte {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return mac.Sum(nil)
}
