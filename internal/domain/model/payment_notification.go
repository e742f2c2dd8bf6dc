package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// NotificationStatus is the processing state of a stored gateway notification.
type NotificationStatus string

const (
	NotificationStatusReceived NotificationStatus = "received"
	NotificationStatusHandled  NotificationStatus = "handled"
	NotificationStatusIgnored  NotificationStatus = "ignored"
	NotificationStatusFailed   NotificationStatus = "failed"
)

// Scan implements sql.Scanner
func (s *NotificationStatus) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*s = NotificationStatus(v)
	case []byte:
		*s = NotificationStatus(v)
	case nil:
		*s = ""
	default:
		return fmt.Errorf("cannot scan %T into NotificationStatus", value)
	}
	return nil
}

// Value implements driver.Valuer
func (s NotificationStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// PaymentNotification is the audit record of one inbound gateway notification.
type PaymentNotification struct {
	ID                string             `gorm:"primaryKey;size:36" json:"id"`
	OrderID           string             `gorm:"size:100;not null;index" json:"order_id"`
	TransactionStatus *string            `gorm:"size:50" json:"transaction_status,omitempty"`
	Payload           datatypes.JSON     `gorm:"type:jsonb;not null" json:"payload"`
	Status            NotificationStatus `gorm:"type:varchar(20);not null;default:'received';index" json:"status"`
	RetryCount        int                `gorm:"not null;default:0" json:"retry_count"`
	LastError         *string            `json:"last_error,omitempty"`
	NextRetryAt       *time.Time         `json:"next_retry_at,omitempty"`
	RemoteIP          *string            `gorm:"size:45" json:"remote_ip,omitempty"`
	HandledAt         *time.Time         `json:"handled_at,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

func (PaymentNotification) TableName() string {
	return "payment_notifications"
}
