package listing

import (
	"context"

	"instrufix/models"
)

// NormalizeHours folds whatever hours came in over the disabled defaults so
// the stored record always holds exactly seven rows in Monday..Sunday order.
// Unknown day names are dropped; missing days come back disabled.
func NormalizeHours(hours []models.BusinessHour) []models.BusinessHour {
	normalized := models.DefaultBusinessHours()
	for i, day := range models.DaysOfWeek {
		for _, h := range hours {
			if h.Day != day {
				continue
			}
			row := h
			if row.StartTime == "" {
				row.StartTime = normalized[i].StartTime
			}
			if row.StartMeridiem == "" {
				row.StartMeridiem = normalized[i].StartMeridiem
			}
			if row.EndTime == "" {
				row.EndTime = normalized[i].EndTime
			}
			if row.EndMeridiem == "" {
				row.EndMeridiem = normalized[i].EndMeridiem
			}
			normalized[i] = row
			break
		}
	}
	return normalized
}

// dedupeLessons keeps at most one lesson entry per group, last write wins,
// mirroring the composer's upsert semantics as a server-side backstop.
func dedupeLessons(lessons []models.LessonEntry) []models.LessonEntry {
	byGroup := make(map[string]int, len(lessons))
	var deduped []models.LessonEntry
	for _, l := range lessons {
		if i, seen := byGroup[l.SelectedInstrumentsGroupMusic]; seen {
			deduped[i] = l
			continue
		}
		byGroup[l.SelectedInstrumentsGroupMusic] = len(deduped)
		deduped = append(deduped, l)
	}
	return deduped
}

// normalize applies every submission-time invariant: a client can never set
// its own status or verification, hours are always a full week, lessons are
// unique per group, and service entries carry their resolved family.
func (s *DefaultListingService) normalize(ctx context.Context, b *models.Business) {
	b.Status = models.StatusPending
	b.IsVerified = false
	b.BusinessHours = NormalizeHours(b.BusinessHours)
	b.MusicLessons = dedupeLessons(b.MusicLessons)
	b.OfferMusicLessons = len(b.MusicLessons) > 0

	if b.Services == nil {
		b.Services = []models.ServiceEntry{}
	}
	if b.MusicLessons == nil {
		b.MusicLessons = []models.LessonEntry{}
	}

	// Resolve families the client failed to derive. Lookup failures leave
	// the field empty rather than rejecting the submission.
	if s.Catalog == nil {
		return
	}
	for i := range b.Services {
		if b.Services[i].InstrumentFamily != "" || b.Services[i].SelectedInstrumentsGroup == "" {
			continue
		}
		if family, err := s.Catalog.FamilyForType(ctx, b.Services[i].SelectedInstrumentsGroup); err == nil {
			b.Services[i].InstrumentFamily = family
		}
	}
}
