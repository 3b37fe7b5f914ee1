package catalog

import (
	"context"

	"instrufix/models"
)

// CatalogService exposes the instrument reference catalog used to populate
// selectable groups and to reverse-look-up a service's family.
type CatalogService interface {
	GetFamilies(ctx context.Context) ([]models.InstrumentFamily, error)
	GetFamiliesByType(ctx context.Context, typeName string) ([]models.InstrumentFamily, error)
	FamilyForType(ctx context.Context, typeName string) (string, error)
}
