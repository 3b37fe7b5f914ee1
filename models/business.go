package models

import (
	"time"
)

// PricingType values accepted for a priced service entry.
const (
	PricingExact  = "exact"
	PricingRange  = "range"
	PricingHourly = "hourly"
)

// Listing status values. The server is the only authority allowed to move a
// listing out of "pending".
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// DaysOfWeek is the fixed ordering of the seven businessHours rows.
var DaysOfWeek = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// BusinessInfo holds the free-text contact section of a listing. None of the
// fields are enforced client-side; the backend rejects what it cannot accept.
type BusinessInfo struct {
	Name        string   `bson:"name" json:"name"`
	Address     string   `bson:"address" json:"address"`
	Description string   `bson:"description" json:"description"`
	Phone       string   `bson:"phone" json:"phone"`
	Email       string   `bson:"email" json:"email"`
	Website     string   `bson:"website" json:"website"`
	Image       []string `bson:"image,omitempty" json:"image,omitempty"`
}

// ServiceEntry is one priced service row under an instrument group.
// Exactly one of Price or the MinPrice/MaxPrice pair is meaningful, gated by
// PricingType. InstrumentFamily is derived by catalog lookup, never user input.
type ServiceEntry struct {
	NewInstrumentName        string `bson:"newInstrumentName" json:"newInstrumentName"`
	PricingType              string `bson:"pricingType" json:"pricingType"`
	Price                    string `bson:"price" json:"price"`
	MinPrice                 string `bson:"minPrice" json:"minPrice"`
	MaxPrice                 string `bson:"maxPrice" json:"maxPrice"`
	SelectedInstrumentsGroup string `bson:"selectedInstrumentsGroup" json:"selectedInstrumentsGroup"`
	InstrumentFamily         string `bson:"instrumentFamily,omitempty" json:"instrumentFamily,omitempty"`
}

// LessonEntry mirrors ServiceEntry for music lessons. Lessons are keyed by
// SelectedInstrumentsGroupMusic and hold at most one entry per group.
type LessonEntry struct {
	NewInstrumentName             string `bson:"newInstrumentName" json:"newInstrumentName"`
	PricingType                   string `bson:"pricingType" json:"pricingType"`
	Price                         string `bson:"price" json:"price"`
	MinPrice                      string `bson:"minPrice" json:"minPrice"`
	MaxPrice                      string `bson:"maxPrice" json:"maxPrice"`
	SelectedInstrumentsGroupMusic string `bson:"selectedInstrumentsGroupMusic" json:"selectedInstrumentsGroupMusic"`
}

// BusinessHour is one row of the seven-day hours table. Times are kept as the
// raw "hh:mm" strings plus meridiem, exactly as entered.
type BusinessHour struct {
	Day           string `bson:"day" json:"day"`
	Enabled       bool   `bson:"enabled" json:"enabled"`
	StartTime     string `bson:"startTime" json:"startTime"`
	StartMeridiem string `bson:"startMeridiem" json:"startMeridiem"`
	EndTime       string `bson:"endTime" json:"endTime"`
	EndMeridiem   string `bson:"endMeridiem" json:"endMeridiem"`
}

// DefaultBusinessHour returns the disabled default row for a weekday.
func DefaultBusinessHour(day string) BusinessHour {
	return BusinessHour{
		Day:           day,
		Enabled:       false,
		StartTime:     "09:00",
		StartMeridiem: "AM",
		EndTime:       "05:00",
		EndMeridiem:   "PM",
	}
}

// DefaultBusinessHours returns the full Monday..Sunday set, all disabled.
func DefaultBusinessHours() []BusinessHour {
	hours := make([]BusinessHour, 0, len(DaysOfWeek))
	for _, day := range DaysOfWeek {
		hours = append(hours, DefaultBusinessHour(day))
	}
	return hours
}

// Business is the full listing document, both the wire shape submitted by the
// composer and the persisted record. Status and IsVerified are forced to
// "pending"/false on every client submission.
type Business struct {
	ID                string         `bson:"id" json:"id,omitempty"`
	OwnerID           string         `bson:"ownerId,omitempty" json:"ownerId,omitempty"`
	TrackingID        string         `bson:"trackingId,omitempty" json:"trackingId,omitempty"`
	BusinessInfo      BusinessInfo   `bson:"businessInfo" json:"businessInfo"`
	Services          []ServiceEntry `bson:"services" json:"services"`
	MusicLessons      []LessonEntry  `bson:"musicLessons" json:"musicLessons"`
	BusinessHours     []BusinessHour `bson:"businessHours" json:"businessHours"`
	BuyInstruments    bool           `bson:"buyInstruments" json:"buyInstruments"`
	SellInstruments   bool           `bson:"sellInstruments" json:"sellInstruments"`
	TradeInstruments  bool           `bson:"tradeInstruments" json:"tradeInstruments"`
	RentInstruments   bool           `bson:"rentInstruments" json:"rentInstruments"`
	OfferMusicLessons bool           `bson:"offerMusicLessons" json:"offerMusicLessons"`
	Status            string         `bson:"status" json:"status"`
	IsVerified        bool           `bson:"isVerified" json:"isVerified"`
	CreatedAt         time.Time      `bson:"createdAt,omitempty" json:"createdAt,omitzero"`
	UpdatedAt         time.Time      `bson:"updatedAt,omitempty" json:"updatedAt,omitzero"`
}

// APIResponse is the envelope returned by every business endpoint.
type APIResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Data    *Business `json:"data,omitempty"`
}
