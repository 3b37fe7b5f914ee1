package composer

import (
	"instrufix/models"
)

// Draft serializes the composer state into the single JSON document submitted
// to the listing API. Status is always "pending" and isVerified always false
// on the way out; verification authority lives server-side. When
// includeRemoteImages is set (the update path), hosted URLs kept on the draft
// ride inside businessInfo.image so the server retains them alongside the
// freshly uploaded files.
func (c *Composer) Draft(includeRemoteImages bool) models.Business {
	info := c.info
	if includeRemoteImages {
		info.Image = c.remoteImageURLs()
	}

	return models.Business{
		BusinessInfo:      info,
		Services:          append([]models.ServiceEntry(nil), c.services...),
		MusicLessons:      append([]models.LessonEntry(nil), c.musicLessons...),
		BusinessHours:     append([]models.BusinessHour(nil), c.hours...),
		BuyInstruments:    c.offerings.Buy,
		SellInstruments:   c.offerings.Sell,
		TradeInstruments:  c.offerings.Trade,
		RentInstruments:   c.offerings.Rent,
		OfferMusicLessons: len(c.musicLessons) > 0,
		Status:            models.StatusPending,
		IsVerified:        false,
	}
}
