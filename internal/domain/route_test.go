package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoute_Normalize(t *testing.T) {
	r := &Route{}
	r.Normalize()

	assert.Equal(t, []string{}, r.DepartureTimes)
	assert.Equal(t, []string{}, r.WeekendDepartureTimes)
	assert.Equal(t, []int{}, r.IntervalBetweenStops)
	assert.Equal(t, []string{}, r.Stops)
}

func TestRoute_HasScheduleChange(t *testing.T) {
	base := &Route{
		DepartureTimes:       []string{"08:00", "09:00"},
		IntervalBetweenStops: []int{5, 7},
	}

	t.Run("same schedule", func(t *testing.T) {
		other := &Route{
			DepartureTimes:       []string{"08:00", "09:00"},
			IntervalBetweenStops: []int{5, 7},
		}
		assert.False(t, base.HasScheduleChange(other))
	})

	t.Run("added departure", func(t *testing.T) {
		other := &Route{
			DepartureTimes:       []string{"08:00", "09:00", "10:00"},
			IntervalBetweenStops: []int{5, 7},
		}
		assert.True(t, base.HasScheduleChange(other))
	})

	t.Run("changed interval", func(t *testing.T) {
		other := &Route{
			DepartureTimes:       []string{"08:00", "09:00"},
			IntervalBetweenStops: []int{5, 10},
		}
		assert.True(t, base.HasScheduleChange(other))
	})

	t.Run("weekend schedule counts too", func(t *testing.T) {
		other := &Route{
			DepartureTimes:        []string{"08:00", "09:00"},
			WeekendDepartureTimes: []string{"10:00"},
			IntervalBetweenStops:  []int{5, 7},
		}
		assert.True(t, base.HasScheduleChange(other))
	})
}

func TestRoute_IsComplete(t *testing.T) {
	complete := &Route{
		Number:               "23",
		Title:                "Вокзал - Аэропорт",
		Fare:                 "30",
		DepartureTimes:       []string{"08:00"},
		IntervalBetweenStops: []int{5},
		Stops:                []string{"s1"},
	}
	assert.True(t, complete.IsComplete())

	incomplete := &Route{Number: "23", Title: "Без тарифа"}
	assert.False(t, incomplete.IsComplete())
}
