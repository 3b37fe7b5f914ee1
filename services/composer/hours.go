package composer

import (
	"fmt"

	"instrufix/models"
)

// Labels for disabled hour rows.
const (
	HourLabelClosed      = "Closed"
	HourLabelNotProvided = "Not Provided"
)

// SetDayEnabled toggles one weekday row. Unknown days are ignored.
func (c *Composer) SetDayEnabled(day string, enabled bool) {
	for i := range c.hours {
		if c.hours[i].Day == day {
			c.hours[i].Enabled = enabled
			return
		}
	}
}

// SetDayTimes replaces the start/end times of one weekday row. No cross-field
// invariant is enforced; nothing prevents start after end.
func (c *Composer) SetDayTimes(day, startTime, startMeridiem, endTime, endMeridiem string) {
	for i := range c.hours {
		if c.hours[i].Day == day {
			c.hours[i].StartTime = startTime
			c.hours[i].StartMeridiem = startMeridiem
			c.hours[i].EndTime = endTime
			c.hours[i].EndMeridiem = endMeridiem
			return
		}
	}
}

// BusinessHours returns the seven weekday rows in Monday..Sunday order.
func (c *Composer) BusinessHours() []models.BusinessHour {
	return c.hours
}

// HourLabel renders the display string for one weekday row. A disabled day
// reads "Closed" only when some other day is enabled; when every day is
// disabled the whole set counts as hours not yet provided.
func (c *Composer) HourLabel(day string) string {
	return HourLabel(c.hours, day)
}

// HourLabel is the display rule shared with the read-side listing views.
func HourLabel(hours []models.BusinessHour, day string) string {
	anyEnabled := false
	for _, h := range hours {
		if h.Enabled {
			anyEnabled = true
			break
		}
	}
	for _, h := range hours {
		if h.Day != day {
			continue
		}
		if h.Enabled {
			return fmt.Sprintf("%s %s - %s %s", h.StartTime, h.StartMeridiem, h.EndTime, h.EndMeridiem)
		}
		if anyEnabled {
			return HourLabelClosed
		}
		return HourLabelNotProvided
	}
	return HourLabelNotProvided
}
