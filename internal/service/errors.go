package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound means a referenced row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrCascadeWriteFailed means an activation cascade was rolled back;
	// none of its writes were kept.
	ErrCascadeWriteFailed = errors.New("cascade write failed")
	// ErrInvalidInput covers references to missing parents and bad values
	// that passed tag validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrConflict is a uniqueness violation (vendor name, driver workday).
	ErrConflict = errors.New("already exists")
	// ErrInvalidCredentials is returned by Login on a wrong password.
	ErrInvalidCredentials = errors.New("invalid password")
)

// lookupErr turns gorm.ErrRecordNotFound into ErrNotFound, naming the entity.
func lookupErr(entity string, id uint, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d %w", entity, id, ErrNotFound)
	}
	return err
}

// refErr is lookupErr for foreign keys supplied in a request body.
func refErr(entity string, id uint, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s %d does not exist", ErrInvalidInput, entity, id)
	}
	return err
}
