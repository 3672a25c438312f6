// server/id/id.go

// Package id validates resource identifiers before they reach the store.
package id

import (
	"github.com/google/uuid"

	apperrors "github.com/ViniZap4/noteful-server/errors"
)

// Valid reports whether s is a well-formed identifier. It never touches storage.
func Valid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// Parse converts s to an identifier, or returns an invalid-identifier error
// carrying msg.
func Parse(s, msg string) (uuid.UUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, apperrors.InvalidID(msg)
	}
	return u, nil
}

// ParseOptional is Parse for optional references: an empty string yields nil.
func ParseOptional(s, msg string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	u, err := Parse(s, msg)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ParseAll converts every entry of ss, stopping at the first malformed one.
func ParseAll(ss []string, msg string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(ss))
	for _, s := range ss {
		u, err := Parse(s, msg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, u)
	}
	return ids, nil
}

// New returns a fresh random identifier.
func New() uuid.UUID {
	return uuid.New()
}
