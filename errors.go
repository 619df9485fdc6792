package vaultindex

import "errors"

var (
	// ErrKindMismatch is returned when a field is registered twice with
	// different index kinds. The kind of a field, and with it the set of
	// operations its index can answer, is fixed at first registration.
	ErrKindMismatch = errors.New("field already registered with a different index kind")

	// ErrInvalidKind is returned when registering a field with a kind
	// outside the known set.
	ErrInvalidKind = errors.New("invalid index kind")
)
