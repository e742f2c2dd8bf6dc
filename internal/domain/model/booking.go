package model

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusPaid      BookingStatus = "PAID"
	BookingStatusExpired   BookingStatus = "EXPIRED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Booking is a reservation of a court for a time window.
type Booking struct {
	ID         int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     int64         `gorm:"not null;index" json:"user_id"`
	CourtID    int64         `gorm:"not null;index" json:"court_id"`
	StartTime  time.Time     `gorm:"not null" json:"start_time"`
	EndTime    time.Time     `gorm:"not null" json:"end_time"`
	TotalPrice *int64        `json:"total_price,omitempty"`
	Status     BookingStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`

	// Relations
	Court *Court `gorm:"foreignKey:CourtID" json:"court,omitempty"`
	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

// HasTotalPrice reports whether a non-zero total price is stored.
func (b *Booking) HasTotalPrice() bool {
	return b.TotalPrice != nil && *b.TotalPrice != 0
}
