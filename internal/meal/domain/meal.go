package domain

import (
	"errors"
	"time"
)

// Tag classifies a meal. The set is advisory: the store accepts any value.
type Tag string

const (
	TagBreakfast Tag = "breakfast"
	TagLunch     Tag = "lunch"
	TagDinner    Tag = "dinner"
	TagSnack     Tag = "snack"
	TagCheat     Tag = "cheat"
)

// Tags lists the tags clients offer, in display order.
var Tags = []Tag{TagBreakfast, TagLunch, TagDinner, TagSnack, TagCheat}

func (t Tag) Known() bool {
	for _, known := range Tags {
		if t == known {
			return true
		}
	}
	return false
}

// Meal is one logged meal. UserID never changes after creation.
type Meal struct {
	ID        string    `json:"id" gorm:"primaryKey" bson:"_id"`
	UserID    string    `json:"user" gorm:"index:idx_meals_user_date,priority:1;not null" bson:"user"`
	Name      string    `json:"name" gorm:"not null" bson:"name"`
	Tag       Tag       `json:"tag" gorm:"not null" bson:"tag"`
	Note      string    `json:"note,omitempty" bson:"note,omitempty"`
	Date      time.Time `json:"date" gorm:"index:idx_meals_user_date,priority:2,sort:desc;not null" bson:"date"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

var ErrInvalidDate = errors.New("invalid date")

const dayLayout = "2006-01-02"

// ParseDate accepts a calendar day ("2024-05-21", midnight UTC) or an
// RFC 3339 timestamp, which keeps its offset.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dayLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}

// DayWindow returns the half-open interval [start, start+1 day) of the
// calendar day containing t, in t's location.
func DayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
