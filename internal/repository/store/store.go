// Package store holds the gorm repositories for the relational store. The
// same code serves both backends (embedded sqlite file or networked
// postgres); the dialector is chosen at startup and nothing here may rely on
// driver-specific behavior.
package store

import (
	"errors"
	"fmt"

	"ballisticmarket/domain"

	"gorm.io/gorm"
)

// wrapErr translates gorm failures into the shared error taxonomy.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%w: %v", domain.ErrStorage, err)
}
