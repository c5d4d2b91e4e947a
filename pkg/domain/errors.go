package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEntityNotFound = errors.New("entity not found")
	ErrNoUpdateFields = errors.New("no fields to update")
)

type notFoundError struct {
	EntityType string
	ID         string
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("%s with ID '%s' not found", e.EntityType, e.ID)
}

func (e *notFoundError) Unwrap() error {
	return ErrEntityNotFound
}

func NewNotFoundError(entityType string, id string) error {
	return &notFoundError{
		EntityType: entityType,
		ID:         id,
	}
}

func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var nf *notFoundError
	return errors.As(err, &nf)
}
