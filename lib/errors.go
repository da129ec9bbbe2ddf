package lib

import (
	"errors"

	"github.com/uptrace/bun/driver/pgdriver"
)

// Database errors
var (
	ErrConflict = errors.New("conflict")
	ErrNotFound = errors.New("not found")
)

// Auth errors
var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("expired token")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Cart and order errors
var (
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrUnavailable       = errors.New("product design not available")
	ErrNothingToOrder    = errors.New("no items to order")
	ErrInvalidPayment    = errors.New("invalid payment method")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsUniqueViolation(err error) bool {
	return errors.Is(err, ErrConflict)
}

// GetDetailForLogging returns the error text for structured log fields
// without risking a nil dereference.
func GetDetailForLogging(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func MapPgError(err error) error {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		switch pgErr.Field('C') { // SQLSTATE
		case "23505": // unique_violation
			return ErrConflict
		case "P0002": // no_data_found
			return ErrNotFound
		}
	}
	return err
}
