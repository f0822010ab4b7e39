package services

import (
	"crypto/subtle"
	"fmt"

	apperrors "qrattendance/errors"

	"golang.org/x/crypto/bcrypt"
)

// AdminAuthenticator checks the single shared admin credential.
type AdminAuthenticator struct {
	username     string
	passwordHash []byte
}

// NewAdminAuthenticator accepts either a plain password, hashed once at
// startup, or a ready bcrypt hash. The hash wins when both are set.
func NewAdminAuthenticator(username, password, passwordHash string) (*AdminAuthenticator, error) {
	if username == "" {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidConfig, "admin username is empty", nil)
	}

	var hash []byte
	switch {
	case passwordHash != "":
		if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidConfig, "ADMIN_PASSWORD_HASH is not a bcrypt hash", err)
		}
		hash = []byte(passwordHash)
	case password != "":
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash admin password: %w", err)
		}
	default:
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidConfig, "admin password is not configured", nil)
	}

	return &AdminAuthenticator{username: username, passwordHash: hash}, nil
}

func (a *AdminAuthenticator) Username() string {
	return a.username
}

// Authenticate returns ErrInvalidCredentials unless both values match.
func (a *AdminAuthenticator) Authenticate(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)) == nil
	if !userOK || !passOK {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidCredentials,
			"Incorrect Username or Password", apperrors.ErrInvalidCredentials)
	}
	return nil
}
