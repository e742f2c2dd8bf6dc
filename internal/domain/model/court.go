package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Court is read-only from the payment flow.
type Court struct {
	ID           int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string          `gorm:"size:150;not null" json:"name"`
	PricePerHour decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price_per_hour"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (Court) TableName() string {
	return "courts"
}
