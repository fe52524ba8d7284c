package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketprep/pocketprep/internal/model"
)

func TestResolveTripDefaults(t *testing.T) {
	trip, err := resolveTrip("", "", "")
	require.NoError(t, err)
	assert.Equal(t, model.TripTypeTravel, trip.Type)
	assert.Equal(t, model.DurationWeekend, trip.Duration)
	assert.Equal(t, model.ClimateMixed, trip.Climate)
}

func TestResolveTripMatchesShorthand(t *testing.T) {
	trip, err := resolveTrip("beach", "week", "hot")
	require.NoError(t, err)
	assert.Equal(t, model.TripTypeBeach, trip.Type)
	assert.Equal(t, model.DurationWeek, trip.Duration)
	assert.Equal(t, model.ClimateHot, trip.Climate)
}

func TestResolveTripUnknownValues(t *testing.T) {
	_, err := resolveTrip("spelunking", "", "")
	assert.Error(t, err)

	_, err = resolveTrip("", "decade", "")
	assert.Error(t, err)

	_, err = resolveTrip("", "", "volcanic")
	assert.Error(t, err)
}

func TestMatchTripTypeTable(t *testing.T) {
	tests := []struct {
		in   string
		want model.TripType
	}{
		{in: "camping", want: model.TripTypeCamping},
		{in: "Business", want: model.TripTypeBusiness},
		{in: "gym", want: model.TripTypeGym},
		{in: "winter", want: model.TripTypeWinter},
		{in: "road", want: model.TripTypeRoadTrip},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := matchTripType(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
