package domain

import (
	"github.com/google/uuid"
)

// starterSchedule is the fixed weekly template applied to every new user.
var starterSchedule = []struct {
	day   string
	items []string
}{
	{"Monday", []string{"Push-ups", "Squats", "Plank"}},
	{"Tuesday", []string{"Pull-ups", "Crunches", "Lunges"}},
	{"Wednesday", []string{"Dumbbell Rows", "Tricep Pushdowns", "Side Plank"}},
	{"Thursday", []string{"Jumping Jacks", "Mountain Climbers", "Burpees"}},
	{"Friday", []string{"Bench Press", "Bicep Curls", "Reverse Crunches"}},
	{"Saturday", []string{"Deadlifts", "Leg Press", "Calf Raises"}},
	{"Sunday", []string{"Cardio", "Stretching", "Yoga"}},
}

// DefaultWorkoutDays builds a fresh seven-day schedule from the starter
// template. Every day and item gets its own generated identifier.
func DefaultWorkoutDays() []WorkoutDay {
	days := make([]WorkoutDay, len(starterSchedule))
	for i, tpl := range starterSchedule {
		items := make([]WorkoutItem, len(tpl.items))
		for j, name := range tpl.items {
			items[j] = WorkoutItem{ID: uuid.New().String(), Name: name}
		}
		days[i] = WorkoutDay{ID: uuid.New().String(), Name: tpl.day, Items: items}
	}
	return days
}
