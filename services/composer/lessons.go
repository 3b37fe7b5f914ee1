package composer

import (
	"instrufix/models"
)

// ChooseLessonInstrument adds a group to the music-lesson selection.
func (c *Composer) ChooseLessonInstrument(name string) {
	c.selectedInstrumentsMusic = appendUnique(c.selectedInstrumentsMusic, name)
}

// SelectedLessonInstruments returns the chosen lesson groups.
func (c *Composer) SelectedLessonInstruments() []string {
	return c.selectedInstrumentsMusic
}

// SelectLessonGroup moves the active lesson-group pointer.
func (c *Composer) SelectLessonGroup(name string) {
	c.selectedGroupMusic = name
}

// SelectedLessonGroup returns the active lesson group pointer.
func (c *Composer) SelectedLessonGroup() string { return c.selectedGroupMusic }

// UpsertLessonPrice records pricing for the active lesson group. Unlike
// services, lessons hold at most one entry per group: an existing entry for
// the group is overwritten in place, otherwise exactly one is created.
func (c *Composer) UpsertLessonPrice(fields ServiceFields) {
	if c.selectedGroupMusic == "" {
		return
	}
	entry := models.LessonEntry{
		NewInstrumentName:             fields.Name,
		PricingType:                   fields.PricingType,
		Price:                         fields.Price,
		MinPrice:                      fields.MinPrice,
		MaxPrice:                      fields.MaxPrice,
		SelectedInstrumentsGroupMusic: c.selectedGroupMusic,
	}
	for i, existing := range c.musicLessons {
		if existing.SelectedInstrumentsGroupMusic == c.selectedGroupMusic {
			c.musicLessons[i] = entry
			return
		}
	}
	c.musicLessons = append(c.musicLessons, entry)
}

// RemoveLesson drops the entry for a lesson group, if any.
func (c *Composer) RemoveLesson(group string) {
	for i, existing := range c.musicLessons {
		if existing.SelectedInstrumentsGroupMusic == group {
			c.musicLessons = append(c.musicLessons[:i], c.musicLessons[i+1:]...)
			return
		}
	}
}

// MusicLessons returns every lesson entry in the draft.
func (c *Composer) MusicLessons() []models.LessonEntry {
	return c.musicLessons
}
