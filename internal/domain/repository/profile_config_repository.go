// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"biolink/internal/domain/entity"
)

// ProfileConfigRepository reads the authored profile configuration document.
// It is read-only from the service's perspective.
type ProfileConfigRepository interface {
	// List returns every configured profile in document order.
	// Failures wrap domainerrors.ErrStorageUnavailable.
	List(ctx context.Context) ([]entity.ProfileConfig, error)
}
