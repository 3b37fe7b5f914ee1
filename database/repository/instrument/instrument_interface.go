package instrumentRepo

import (
	"instrufix/models"
)

// InstrumentRepository defines read access to the instrument reference
// catalog. The catalog is managed by the admin tooling; this service only
// reads it.
type InstrumentRepository interface {
	GetAll() ([]models.InstrumentFamily, error)
	GetByTypeName(typeName string) ([]models.InstrumentFamily, error)
}
