package interfaces

import (
	"context"

	"azhub/internal/domain/entities"
)

// IPropertyRepository abstracts persistence for Property aggregates (the
// property record plus its owned bids and log entries).
//
// A zero-value Property with an empty ID means "not found"; repositories do
// not return a not-found error themselves.

//go:generate mockgen -source=property_repository_interface.go -destination=mocks/mock_property_repository.go -package=mocks

type IPropertyRepository interface {
	List(ctx context.Context) ([]entities.Property, error)
	GetByID(ctx context.Context, id string) (entities.Property, error)
	Create(ctx context.Context, p entities.Property) (entities.Property, error)
	Update(ctx context.Context, p entities.Property) (entities.Property, error)
}
