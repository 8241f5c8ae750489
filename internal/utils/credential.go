package utils

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Credential turns a submitted ownership password into its stored form and
// checks later submissions against it.
type Credential interface {
	Seal(password string) (string, error)
	Matches(stored, submitted string) bool
}

func NewCredential(scheme string) (Credential, error) {
	switch scheme {
	case "", "plaintext":
		return PlaintextCredential{}, nil
	case "bcrypt":
		return BcryptCredential{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", scheme)
	}
}

// PlaintextCredential stores the password as submitted.
type PlaintextCredential struct{}

func (PlaintextCredential) Seal(password string) (string, error) {
	return password, nil
}

func (PlaintextCredential) Matches(stored, submitted string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(submitted)) == 1
}

type BcryptCredential struct {
	Cost int
}

func (b BcryptCredential) Seal(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), b.Cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func (BcryptCredential) Matches(stored, submitted string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(submitted)) == nil
}
