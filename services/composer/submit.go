package composer

import (
	"context"
	"errors"
	"sync/atomic"

	"instrufix/models"
)

// Mode selects which page hosts the form and therefore which submission path
// runs.
type Mode string

const (
	// ModeDashboard is the authenticated create path on the business
	// dashboard.
	ModeDashboard Mode = "dashboard"
	// ModePublic is the logged-out public entry point.
	ModePublic Mode = "public"
	// ModeUpdate is the owner editing an existing listing.
	ModeUpdate Mode = "update"
)

// ModalState is the dialog the UI should be showing after a submit attempt.
type ModalState string

const (
	// ModalNone means no dialog is due.
	ModalNone ModalState = ""
	// ModalLoginPrompt redirects an unauthenticated submitter into login.
	ModalLoginPrompt ModalState = "login"
	// ModalConfirmation is the single "submitted" dialog of the dashboard
	// path.
	ModalConfirmation ModalState = "confirmation"
	// ModalTrackSubmission is the first dialog of the public path's chain;
	// acknowledging it advances to the tracking info dialog.
	ModalTrackSubmission ModalState = "track-submission"
	// ModalTrackingInfo tells an unauthenticated submitter how to follow up,
	// since no dashboard will list the submission for them.
	ModalTrackingInfo ModalState = "tracking-info"
)

// Submitter orchestrates draft assembly, the single multipart request, and
// the success/failure transitions for one composer instance.
type Submitter struct {
	Composer *Composer
	Client   *Client
	Mode     Mode

	// BusinessID is required for ModeUpdate.
	BusinessID string

	session  models.Session
	modal    ModalState
	inFlight atomic.Bool
}

// NewSubmitter wires an orchestrator over a composer and API client.
func NewSubmitter(c *Composer, client *Client, mode Mode, session models.Session) *Submitter {
	return &Submitter{
		Composer: c,
		Client:   client,
		Mode:     mode,
		session:  session,
	}
}

// SetSession replaces the cached session snapshot.
func (s *Submitter) SetSession(session models.Session) {
	s.session = session
}

// Modal returns the dialog currently due.
func (s *Submitter) Modal() ModalState {
	return s.modal
}

// DismissModal clears the pending dialog.
func (s *Submitter) DismissModal() {
	s.modal = ModalNone
}

// AcknowledgeSubmitted advances the public path's dialog chain: confirming
// the "submitted" dialog opens the tracking-info dialog. On every other state
// it simply dismisses.
func (s *Submitter) AcknowledgeSubmitted() {
	if s.modal == ModalTrackSubmission {
		s.modal = ModalTrackingInfo
		return
	}
	s.modal = ModalNone
}

// Submit runs one submission attempt. The session gate is checked
// synchronously from the cached snapshot before anything is sent; failures
// leave the draft untouched so the user can retry. At most one submission is
// in flight at a time.
func (s *Submitter) Submit(ctx context.Context) (*models.Business, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSubmitInFlight
	}
	defer s.inFlight.Store(false)

	if s.Mode != ModePublic && !s.session.Authenticated() {
		s.modal = ModalLoginPrompt
		return nil, ErrNotAuthenticated
	}

	switch s.Mode {
	case ModeUpdate:
		return s.submitUpdate(ctx)
	default:
		return s.submitCreate(ctx)
	}
}

func (s *Submitter) submitCreate(ctx context.Context) (*models.Business, error) {
	draft := s.Composer.Draft(false)
	created, err := s.Client.CreateBusiness(ctx, draft, s.Composer.pendingImageFiles(), s.Mode)
	if err != nil {
		return nil, submitError(err)
	}

	if s.Mode == ModeDashboard {
		s.modal = ModalConfirmation
	} else {
		s.modal = ModalTrackSubmission
	}
	return created, nil
}

func (s *Submitter) submitUpdate(ctx context.Context) (*models.Business, error) {
	if s.BusinessID == "" {
		return nil, ErrMissingBusinessID
	}

	draft := s.Composer.Draft(true)
	if _, err := s.Client.UpdateBusiness(ctx, s.BusinessID, draft, s.Composer.pendingImageFiles()); err != nil {
		return nil, submitError(err)
	}

	// The update path shows no dialog; the edit page silently refetches and
	// reloads the draft from the server's view of the record.
	updated, err := s.Client.GetBusiness(ctx, s.BusinessID)
	if err != nil {
		return nil, submitError(err)
	}
	if updated != nil {
		s.Composer.LoadBusiness(updated)
	}
	s.modal = ModalNone
	return updated, nil
}

// submitError keeps the server's message when one came back and falls back to
// the generic string otherwise.
func submitError(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message == "" {
			apiErr.Message = submitFallbackMessage
		}
		return apiErr
	}
	return err
}
