package model

import "time"

// TransactionStatusPending is stored on every new or re-issued charge attempt.
const TransactionStatusPending = "PENDING"

// Payment is the single gateway transaction record of a booking. Re-issuing
// a charge overwrites the order id, amount and status of the same row.
type Payment struct {
	ID                int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	BookingID         int64      `gorm:"not null;uniqueIndex" json:"booking_id"`
	MidtransOrderID   string     `gorm:"column:midtrans_order_id;size:100;not null;uniqueIndex" json:"midtrans_order_id"`
	GrossAmount       int64      `gorm:"not null" json:"gross_amount"`
	TransactionStatus string     `gorm:"size:50;not null" json:"transaction_status"`
	PaymentType       *string    `gorm:"size:50" json:"payment_type,omitempty"`
	FraudStatus       *string    `gorm:"size:50" json:"fraud_status,omitempty"`
	TransactionTime   *time.Time `json:"transaction_time,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`

	// Relations
	Booking *Booking `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}
