package model

import (
	"fmt"
	"strings"
)

// TripType describes what kind of trip the user is packing for.
type TripType string

// Trip types available in the context picker.
const (
	TripTypeBeach    TripType = "Beach Vacation"
	TripTypeCamping  TripType = "Camping Trip"
	TripTypeBusiness TripType = "Business Trip"
	TripTypeTravel   TripType = "Travel / Sightseeing"
	TripTypeCollege  TripType = "College / School"
	TripTypeGym      TripType = "Gym / Workout"
	TripTypeRoadTrip TripType = "Road Trip"
	TripTypeHiking   TripType = "Hiking / Trekking"
	TripTypeFestival TripType = "Festival / Concert"
	TripTypeWinter   TripType = "Winter Sports"
)

// TripDuration buckets trip length.
type TripDuration string

// Trip duration buckets.
const (
	DurationDayTrip  TripDuration = "Day Trip"
	DurationWeekend  TripDuration = "Weekend (2-3 days)"
	DurationWeek     TripDuration = "1 Week"
	DurationExtended TripDuration = "2+ Weeks"
)

// TripClimate buckets expected weather.
type TripClimate string

// Trip climate buckets.
const (
	ClimateHot   TripClimate = "Hot & Sunny"
	ClimateWarm  TripClimate = "Warm & Mild"
	ClimateCold  TripClimate = "Cold & Snowy"
	ClimateRainy TripClimate = "Rainy"
	ClimateMixed TripClimate = "Mixed / Unpredictable"
)

// TripContext carries the three trip dimensions used to frame AI prompts.
// It is ephemeral: it lives for one chat session and is never persisted.
type TripContext struct {
	Type     TripType
	Duration TripDuration
	Climate  TripClimate
}

// PromptDescription renders the context as a natural-language fragment for
// prompt construction, e.g. "A 1 week beach vacation in hot & sunny weather".
func (c TripContext) PromptDescription() string {
	return fmt.Sprintf("A %s %s in %s weather",
		strings.ToLower(string(c.Duration)),
		strings.ToLower(string(c.Type)),
		strings.ToLower(string(c.Climate)))
}

// TripTypes returns all selectable trip types in display order.
func TripTypes() []TripType {
	return []TripType{
		TripTypeBeach, TripTypeCamping, TripTypeBusiness, TripTypeTravel,
		TripTypeCollege, TripTypeGym, TripTypeRoadTrip, TripTypeHiking,
		TripTypeFestival, TripTypeWinter,
	}
}

// TripDurations returns all duration buckets in display order.
func TripDurations() []TripDuration {
	return []TripDuration{DurationDayTrip, DurationWeekend, DurationWeek, DurationExtended}
}

// TripClimates returns all climate buckets in display order.
func TripClimates() []TripClimate {
	return []TripClimate{ClimateHot, ClimateWarm, ClimateCold, ClimateRainy, ClimateMixed}
}
