package composer

import (
	"instrufix/models"
)

// ChooseInstrument adds an instrument group to the chosen set. Choosing an
// already-chosen group is a no-op.
func (c *Composer) ChooseInstrument(name string) {
	c.selectedInstruments = appendUnique(c.selectedInstruments, name)
}

// UnchooseInstrument drops a group from the chosen set. Services already
// added under it are kept; they simply stop being reachable from the group
// bar until the group is chosen again.
func (c *Composer) UnchooseInstrument(name string) {
	for i, existing := range c.selectedInstruments {
		if existing == name {
			c.selectedInstruments = append(c.selectedInstruments[:i], c.selectedInstruments[i+1:]...)
			break
		}
	}
	if c.selectedGroup == name {
		c.selectedGroup = ""
		c.instrumentFamily = ""
	}
}

// SelectedInstruments returns the chosen instrument groups.
func (c *Composer) SelectedInstruments() []string {
	return c.selectedInstruments
}

// SelectGroup moves the single active-group pointer and resolves the group's
// parent family from the catalog. Entries added under other groups are not
// touched; only the visible subset changes.
func (c *Composer) SelectGroup(name string) {
	c.selectedGroup = name
	if family := models.FamilyForType(c.catalog, name); family != "" {
		c.instrumentFamily = family
	}
}

// SelectedGroup returns the active group pointer, "" when none is active.
func (c *Composer) SelectedGroup() string { return c.selectedGroup }

// InstrumentFamily returns the resolved family of the active group.
func (c *Composer) InstrumentFamily() string { return c.instrumentFamily }

// OpenAddServiceModal opens the add-service dialog. This is the only
// client-side validation gate in the whole form: it refuses when no instrument
// has been chosen or no group is active.
func (c *Composer) OpenAddServiceModal() error {
	if len(c.selectedInstruments) == 0 || c.selectedGroup == "" {
		return ErrNoInstrumentSelected
	}
	c.modalOpen = true
	return nil
}

// ModalOpen reports whether the add-service dialog is showing.
func (c *Composer) ModalOpen() bool { return c.modalOpen }

// CloseAddServiceModal abandons the dialog, clearing its transient fields.
func (c *Composer) CloseAddServiceModal() {
	c.modal = ServiceFields{}
	c.modalOpen = false
}

// SetServiceDraft stages the transient fields of the add-service dialog.
func (c *Composer) SetServiceDraft(fields ServiceFields) {
	c.modal = fields
}

// ConfirmAddService appends a new service entry tagged with the active group
// and its resolved family, then clears the transient fields and closes the
// dialog. Entries are never edited in place; remove and re-add is the only
// mutation path.
func (c *Composer) ConfirmAddService() models.ServiceEntry {
	entry := models.ServiceEntry{
		NewInstrumentName:        c.modal.Name,
		PricingType:              c.modal.PricingType,
		Price:                    c.modal.Price,
		MinPrice:                 c.modal.MinPrice,
		MaxPrice:                 c.modal.MaxPrice,
		SelectedInstrumentsGroup: c.selectedGroup,
		InstrumentFamily:         c.instrumentFamily,
	}
	c.services = append(c.services, entry)
	c.modal = ServiceFields{}
	c.modalOpen = false
	return entry
}

// RemoveService drops every entry whose display name matches, across all
// groups. The name is the implicit key; duplicate names under one group are
// removed together.
func (c *Composer) RemoveService(name string) {
	kept := c.services[:0]
	for _, s := range c.services {
		if s.NewInstrumentName != name {
			kept = append(kept, s)
		}
	}
	c.services = kept
}

// Services returns every entry in the draft regardless of the active group.
func (c *Composer) Services() []models.ServiceEntry {
	return c.services
}

// VisibleServices returns the subset of entries under the active group.
// Switching the pointer changes which subset is visible, not which exists.
func (c *Composer) VisibleServices() []models.ServiceEntry {
	var visible []models.ServiceEntry
	for _, s := range c.services {
		if s.SelectedInstrumentsGroup == c.selectedGroup {
			visible = append(visible, s)
		}
	}
	return visible
}
