package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	// Москва - Санкт-Петербург, около 634 км
	d := HaversineDistance(55.7558, 37.6173, 59.9343, 30.3351)
	assert.InDelta(t, 634, d, 5)

	// Нулевое расстояние до самой себя
	assert.Equal(t, 0.0, HaversineDistance(55.7558, 37.6173, 55.7558, 37.6173))
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, ValidateCoordinates(55.75, 37.61))
	assert.True(t, ValidateCoordinates(-90, 180))
	assert.False(t, ValidateCoordinates(95, 37.61))
	assert.False(t, ValidateCoordinates(55.75, -181))
}

func TestPolylineLengthKm(t *testing.T) {
	t.Run("sums consecutive segments", func(t *testing.T) {
		points := [][2]float64{
			{55.7601, 37.6186},
			{55.7700, 37.6300},
			{55.7800, 37.6400},
		}
		expected := HaversineDistance(55.7601, 37.6186, 55.7700, 37.6300) +
			HaversineDistance(55.7700, 37.6300, 55.7800, 37.6400)
		assert.InDelta(t, expected, PolylineLengthKm(points), 1e-9)
	})

	t.Run("fewer than two points has zero length", func(t *testing.T) {
		assert.Equal(t, 0.0, PolylineLengthKm(nil))
		assert.Equal(t, 0.0, PolylineLengthKm([][2]float64{{55.76, 37.61}}))
	})
}
