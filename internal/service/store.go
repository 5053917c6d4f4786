package service

import (
	"context"
	"errors"

	"jhris/internal/repository"
)

// storeError translates repository constraint failures raised by a write.
// dup is the entity-specific duplicate error, if the entity has a unique key.
// Concurrent writers can pass the existence pre-check; the constraint still
// catches them here.
func storeError(err error, dup *DuplicateKeyError) error {
	switch {
	case dup != nil && errors.Is(err, repository.ErrDuplicateKey):
		return dup
	case errors.Is(err, repository.ErrForeignKey):
		return &InvalidReferenceError{}
	}
	return err
}

// exists checks that a referenced row is present, turning a missing row into
// an InvalidReferenceError for field.
func exists(ctx context.Context, field string, id uint, find func(context.Context, uint) error) error {
	err := find(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return &InvalidReferenceError{Field: field, ID: id}
	}
	return err
}

// updateError is storeError for updates. A row deleted between read and
// write surfaces as the entity's not-found error.
func updateError(err error, dup *DuplicateKeyError, missing *NotFoundError) error {
	if errors.Is(err, repository.ErrNotFound) {
		return missing
	}
	return storeError(err, dup)
}
