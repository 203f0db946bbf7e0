package ids

import "github.com/google/uuid"

// New generates a fresh random UUID string, suitable as an Object or
// Morphism ID when the caller has no natural identifier of its own.
func New() string {
	return uuid.NewString()
}

// OrNew returns id unchanged if it is non-empty, otherwise generates a fresh
// UUID via New. This is the pattern a caller building Objects or Morphisms
// in bulk typically wants: honor a caller-supplied ID when present, fall
// back to a generated one when it is not.
func OrNew(id string) string {
	if id != "" {
		return id
	}

	return New()
}
