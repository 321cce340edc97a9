package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStop_Coordinates(t *testing.T) {
	t.Run("parses string coordinates", func(t *testing.T) {
		s := &Stop{Latitude: " 55.7601 ", Longitude: "37.6186"}
		lat, lon, ok := s.Coordinates()
		assert.True(t, ok)
		assert.Equal(t, 55.7601, lat)
		assert.Equal(t, 37.6186, lon)
	})

	t.Run("empty or garbage values fail", func(t *testing.T) {
		for _, s := range []*Stop{
			{Latitude: "", Longitude: "37.6"},
			{Latitude: "north", Longitude: "37.6"},
			{Latitude: "55.7", Longitude: ""},
		} {
			_, _, ok := s.Coordinates()
			assert.False(t, ok)
		}
	})
}

func TestStop_HasValidCoordinates(t *testing.T) {
	assert.True(t, (&Stop{Latitude: "55.76", Longitude: "37.61"}).HasValidCoordinates())
	assert.False(t, (&Stop{Latitude: "95.0", Longitude: "37.61"}).HasValidCoordinates())
	assert.False(t, (&Stop{Latitude: "55.76", Longitude: "181.0"}).HasValidCoordinates())
}

func TestStop_IsComplete(t *testing.T) {
	assert.True(t, (&Stop{Name: "Театральная", Latitude: "55.76", Longitude: "37.61"}).IsComplete())
	assert.False(t, (&Stop{Name: " ", Latitude: "55.76", Longitude: "37.61"}).IsComplete())
	assert.False(t, (&Stop{Name: "Без координат"}).IsComplete())
}
