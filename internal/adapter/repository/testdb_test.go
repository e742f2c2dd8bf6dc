package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:  gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Court{},
		&model.Booking{},
		&model.Payment{},
		&model.PaymentNotification{},
	))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}

func strPtr(s string) *string { return &s }

// seedBooking creates a user, a court and a pending two hour booking.
func seedBooking(t *testing.T, db *gorm.DB) *model.Booking {
	t.Helper()

	user := &model.User{Name: "Budi", Email: strPtr(uuid.NewString() + "@example.com"), Phone: strPtr("08123")}
	require.NoError(t, db.Create(user).Error)

	court := &model.Court{Name: "Court A", PricePerHour: decimal.NewFromInt(100000)}
	require.NoError(t, db.Create(court).Error)

	start := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	booking := &model.Booking{
		UserID:    user.ID,
		CourtID:   court.ID,
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		Status:    model.BookingStatusPending,
	}
	require.NoError(t, db.Create(booking).Error)

	return booking
}
