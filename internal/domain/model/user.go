package model

import "time"

// User is the owner of a booking. Only the contact fields used for the
// gateway customer details are mapped here.
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:150;not null" json:"name"`
	Email     *string   `gorm:"size:255;uniqueIndex" json:"email,omitempty"`
	Phone     *string   `gorm:"size:30" json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
