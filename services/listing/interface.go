package listing

import (
	"context"

	businessRepo "instrufix/database/repository/business"
	"instrufix/models"
)

// SubmissionMode distinguishes who is sending a create request.
const (
	ModeDashboard = "dashboard"
	ModePublic    = "public"
)

// ListingService owns the server side of the listing submission workflow:
// decoding the multipart draft, normalizing it, uploading images, and
// persisting.
type ListingService interface {
	Create(ctx context.Context, business *models.Business, imagePaths []string, mode, ownerID string) (*models.Business, error)
	Update(ctx context.Context, id string, business *models.Business, imagePaths []string, ownerID string) (*models.Business, error)
	GetByID(ctx context.Context, id string) (*models.Business, error)
	GetByTrackingID(ctx context.Context, trackingID string) (*models.Business, error)
	List(ctx context.Context, criteria businessRepo.SearchCriteria) ([]models.Business, error)
}
