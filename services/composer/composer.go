// Package composer implements the business-listing draft workflow: the
// multi-section form state (business info, priced services per instrument
// group, music lessons, weekly hours) and its submission to the listing API.
package composer

import (
	"instrufix/models"
)

// Offerings are the buy/sell/trade/rent toggles of a listing.
type Offerings struct {
	Buy   bool
	Sell  bool
	Trade bool
	Rent  bool
}

// ServiceFields are the transient fields of the add-service modal.
type ServiceFields struct {
	Name        string
	PricingType string
	Price       string
	MinPrice    string
	MaxPrice    string
}

// Composer owns a single in-memory listing draft for the lifetime of one
// editing session. The draft is never persisted locally; abandoning the
// composer discards it.
type Composer struct {
	catalog []models.InstrumentFamily

	info   models.BusinessInfo
	images []models.ImageRef

	// Chosen instrument groups and the single active pointers. The active
	// group gates which subset of services is visible; it never gates which
	// subset exists.
	selectedInstruments      []string
	selectedInstrumentsMusic []string
	selectedGroup            string
	selectedGroupMusic       string
	instrumentFamily         string

	services     []models.ServiceEntry
	musicLessons []models.LessonEntry
	hours        []models.BusinessHour
	offerings    Offerings

	modalOpen bool
	modal     ServiceFields

	// ReleasePreview, when set, is called with the preview handle of a
	// pending image that is removed from the draft.
	ReleasePreview func(previewURL string)
}

// New creates a composer over the given reference catalog with an empty draft
// and all seven hour rows disabled at their defaults.
func New(catalog []models.InstrumentFamily) *Composer {
	return &Composer{
		catalog: catalog,
		hours:   models.DefaultBusinessHours(),
	}
}

// Catalog returns the reference catalog the composer was created with.
func (c *Composer) Catalog() []models.InstrumentFamily {
	return c.catalog
}

// Business info setters. No client-side validation beyond what the backend
// rejects.

func (c *Composer) SetName(v string)        { c.info.Name = v }
func (c *Composer) SetAddress(v string)     { c.info.Address = v }
func (c *Composer) SetDescription(v string) { c.info.Description = v }
func (c *Composer) SetPhone(v string)       { c.info.Phone = v }
func (c *Composer) SetEmail(v string)       { c.info.Email = v }
func (c *Composer) SetWebsite(v string)     { c.info.Website = v }

// Info returns the current contact section of the draft.
func (c *Composer) Info() models.BusinessInfo { return c.info }

// SetOfferings replaces the buy/sell/trade/rent toggles.
func (c *Composer) SetOfferings(o Offerings) { c.offerings = o }

// Offerings returns the current toggles.
func (c *Composer) Offerings() Offerings { return c.offerings }

// LoadBusiness pre-populates the draft from an existing listing fetched from
// the server, reconstructing the services and lessons lists, the chosen
// groups, and the per-day hours merged over the disabled defaults. The first
// group of each list becomes the active pointer, matching the edit page.
func (c *Composer) LoadBusiness(b *models.Business) {
	c.info = models.BusinessInfo{
		Name:        b.BusinessInfo.Name,
		Address:     b.BusinessInfo.Address,
		Description: b.BusinessInfo.Description,
		Phone:       b.BusinessInfo.Phone,
		Email:       b.BusinessInfo.Email,
		Website:     b.BusinessInfo.Website,
	}

	c.images = c.images[:0]
	for _, url := range b.BusinessInfo.Image {
		c.images = append(c.images, models.RemoteImage(url))
	}

	c.services = append([]models.ServiceEntry(nil), b.Services...)
	c.selectedInstruments = c.selectedInstruments[:0]
	for _, s := range b.Services {
		if s.SelectedInstrumentsGroup != "" {
			c.selectedInstruments = appendUnique(c.selectedInstruments, s.SelectedInstrumentsGroup)
		}
	}
	if len(c.selectedInstruments) > 0 {
		c.SelectGroup(c.selectedInstruments[0])
	}

	c.musicLessons = append([]models.LessonEntry(nil), b.MusicLessons...)
	c.selectedInstrumentsMusic = c.selectedInstrumentsMusic[:0]
	for _, l := range b.MusicLessons {
		if l.SelectedInstrumentsGroupMusic != "" {
			c.selectedInstrumentsMusic = appendUnique(c.selectedInstrumentsMusic, l.SelectedInstrumentsGroupMusic)
		}
	}
	if len(c.selectedInstrumentsMusic) > 0 {
		c.selectedGroupMusic = c.selectedInstrumentsMusic[0]
	}

	c.hours = models.DefaultBusinessHours()
	for i, day := range models.DaysOfWeek {
		for _, h := range b.BusinessHours {
			if h.Day == day {
				row := h
				if row.StartTime == "" {
					row.StartTime = c.hours[i].StartTime
				}
				if row.StartMeridiem == "" {
					row.StartMeridiem = c.hours[i].StartMeridiem
				}
				if row.EndTime == "" {
					row.EndTime = c.hours[i].EndTime
				}
				if row.EndMeridiem == "" {
					row.EndMeridiem = c.hours[i].EndMeridiem
				}
				c.hours[i] = row
				break
			}
		}
	}

	c.offerings = Offerings{
		Buy:   b.BuyInstruments,
		Sell:  b.SellInstruments,
		Trade: b.TradeInstruments,
		Rent:  b.RentInstruments,
	}
}

func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}
