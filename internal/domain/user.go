package domain

import (
	"time"
)

// User represents one locally distinguished person using the planner.
// The weekly schedule is embedded: WorkoutDays are always persisted as part
// of their owning User document, never on their own.
type User struct {
	ID          string       `bson:"_id,omitempty" json:"id"`
	Name        string       `bson:"name" json:"name"`
	WorkoutDays []WorkoutDay `bson:"workoutDays" json:"workoutDays"`
	CreatedAt   time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// WorkoutDay is one calendar day's plan inside a User's schedule.
type WorkoutDay struct {
	ID    string        `bson:"id" json:"id"`
	Name  string        `bson:"name" json:"name"`
	Items []WorkoutItem `bson:"items" json:"items"`
}

// WorkoutItem is a single exercise/activity slot within a day.
type WorkoutItem struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// Day returns the WorkoutDay with the given id, or nil.
func (u *User) Day(dayID string) *WorkoutDay {
	for i := range u.WorkoutDays {
		if u.WorkoutDays[i].ID == dayID {
			return &u.WorkoutDays[i]
		}
	}
	return nil
}

// Item returns the WorkoutItem with the given id within the given day, or nil.
func (u *User) Item(dayID, itemID string) *WorkoutItem {
	day := u.Day(dayID)
	if day == nil {
		return nil
	}
	for i := range day.Items {
		if day.Items[i].ID == itemID {
			return &day.Items[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the user. Mutations always work on a copy so
// the in-memory state only changes from a persistence adapter's response.
func (u User) Clone() User {
	c := u
	c.WorkoutDays = make([]WorkoutDay, len(u.WorkoutDays))
	for i, d := range u.WorkoutDays {
		cd := d
		cd.Items = make([]WorkoutItem, len(d.Items))
		copy(cd.Items, d.Items)
		c.WorkoutDays[i] = cd
	}
	return c
}
