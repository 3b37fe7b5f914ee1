package listing

import (
	"context"

	businessRepo "instrufix/database/repository/business"
	"instrufix/models"
)

// GetByID fetches a single listing.
func (s *DefaultListingService) GetByID(ctx context.Context, id string) (*models.Business, error) {
	business, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return business, nil
}

// GetByTrackingID fetches a listing by the tracking id handed to a public
// submitter.
func (s *DefaultListingService) GetByTrackingID(ctx context.Context, trackingID string) (*models.Business, error) {
	business, err := s.Repo.GetByTrackingID(trackingID)
	if err != nil {
		return nil, ErrNotFound
	}
	return business, nil
}

// List returns listings matching the criteria.
func (s *DefaultListingService) List(ctx context.Context, criteria businessRepo.SearchCriteria) ([]models.Business, error) {
	return s.Repo.GetAll(criteria)
}
