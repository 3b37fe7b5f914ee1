package businessRepo

import (
	"instrufix/models"
)

// SearchCriteria narrows listing queries.
type SearchCriteria struct {
	Status           string
	OwnerID          string
	InstrumentGroup  string
	InstrumentFamily string
	Limit            int64
}

// BusinessRepository defines persistence for business listings.
type BusinessRepository interface {
	Create(business *models.Business) error
	Update(business *models.Business) error
	Delete(id string) error
	GetByID(id string) (*models.Business, error)
	GetByTrackingID(trackingID string) (*models.Business, error)
	GetByOwner(ownerID string) ([]models.Business, error)
	GetAll(criteria SearchCriteria) ([]models.Business, error)
}
