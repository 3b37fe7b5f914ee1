package listing

import (
	"context"
	"fmt"
	"time"

	businessRepo "instrufix/database/repository/business"
	"instrufix/models"
	"instrufix/services/catalog"
	"instrufix/services/storage"
	"instrufix/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultListingService is the production implementation.
type DefaultListingService struct {
	Repo    businessRepo.BusinessRepository
	Catalog catalog.CatalogService
	Storage storage.StorageService
}

// Create persists a new pending listing. Image files already saved to local
// temp paths are uploaded to storage and their hosted URLs appended to the
// record. Public submissions get a tracking id so an unauthenticated
// submitter can follow up without a dashboard.
func (s *DefaultListingService) Create(ctx context.Context, business *models.Business, imagePaths []string, mode, ownerID string) (*models.Business, error) {
	if business.BusinessInfo.Name == "" {
		return nil, ErrMissingName
	}

	s.normalize(ctx, business)

	business.ID = uuid.NewString()
	business.OwnerID = ownerID
	if mode == ModePublic {
		business.TrackingID = uuid.NewString()
	}
	business.CreatedAt = time.Now()
	business.UpdatedAt = business.CreatedAt

	urls, err := s.uploadImages(ctx, imagePaths)
	if err != nil {
		return nil, err
	}
	business.BusinessInfo.Image = append(business.BusinessInfo.Image, urls...)

	if err := s.Repo.Create(business); err != nil {
		return nil, fmt.Errorf("failed to create business: %w", err)
	}

	utils.GetLogger().Info("business submitted",
		zap.String("businessId", business.ID),
		zap.String("mode", mode),
		zap.Int("services", len(business.Services)))
	return business, nil
}

// Update applies a resubmitted draft over an existing listing. The draft's
// businessInfo.image holds the remote URLs the owner chose to keep; freshly
// uploaded files are appended after them. Every update drops the listing back
// to pending review.
func (s *DefaultListingService) Update(ctx context.Context, id string, business *models.Business, imagePaths []string, ownerID string) (*models.Business, error) {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if existing.OwnerID != "" && existing.OwnerID != ownerID {
		return nil, ErrNotOwner
	}

	s.normalize(ctx, business)

	business.ID = existing.ID
	business.OwnerID = existing.OwnerID
	business.TrackingID = existing.TrackingID
	business.CreatedAt = existing.CreatedAt
	business.UpdatedAt = time.Now()

	urls, err := s.uploadImages(ctx, imagePaths)
	if err != nil {
		return nil, err
	}
	business.BusinessInfo.Image = append(business.BusinessInfo.Image, urls...)

	if err := s.Repo.Update(business); err != nil {
		return nil, fmt.Errorf("failed to update business: %w", err)
	}

	utils.GetLogger().Info("business updated", zap.String("businessId", business.ID))
	return business, nil
}

func (s *DefaultListingService) uploadImages(ctx context.Context, imagePaths []string) ([]string, error) {
	var urls []string
	for _, path := range imagePaths {
		url, err := s.Storage.UploadFile(ctx, path, storage.ListingImageFolder)
		if err != nil {
			return nil, fmt.Errorf("failed to upload listing image: %w", err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}
