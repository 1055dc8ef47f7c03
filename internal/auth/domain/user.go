package domain

import "time"

type User struct {
	ID        string    `json:"id" gorm:"primaryKey" bson:"_id"`
	Name      string    `json:"name" gorm:"not null" bson:"name"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null" bson:"email"`
	Password  string    `json:"-" gorm:"not null" bson:"password"` // Never return password in JSON
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// Summary is the public part of a user returned after registration.
type Summary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *User) Summary() Summary {
	return Summary{ID: u.ID, Name: u.Name, Email: u.Email}
}
