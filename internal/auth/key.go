package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Checker decides whether a presented API key is acceptable.
type Checker interface {
	Check(key string) bool
}

// StaticKey accepts exactly one shared secret.
type StaticKey string

func (k StaticKey) Check(key string) bool {
	if k == "" || key == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(key), []byte(k)) == 1
}

// HashedKey accepts the secret whose bcrypt hash it holds.
type HashedKey struct {
	hash []byte
}

func NewHashedKey(hash string) (*HashedKey, error) {
	if hash == "" {
		return nil, errors.New("empty bcrypt hash")
	}
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, fmt.Errorf("invalid bcrypt hash: %w", err)
	}
	return &HashedKey{hash: []byte(hash)}, nil
}

func (k *HashedKey) Check(key string) bool {
	if key == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(k.hash, []byte(key)) == nil
}

// AnyOf accepts a key if any of its checkers does. Useful while rotating keys.
type AnyOf []Checker

func (a AnyOf) Check(key string) bool {
	for _, c := range a {
		if c != nil && c.Check(key) {
			return true
		}
	}
	return false
}

// NewChecker builds the checker for the configured credentials. Either
// value may be empty, but not both.
func NewChecker(plain, bcryptHash string) (Checker, error) {
	var out AnyOf
	if plain != "" {
		out = append(out, StaticKey(plain))
	}
	if bcryptHash != "" {
		h, err := NewHashedKey(bcryptHash)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}

	switch len(out) {
	case 0:
		return nil, errors.New("no api key configured")
	case 1:
		return out[0], nil
	}
	return out, nil
}
