package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/model"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/domain/repository"
)

// memoryStore implements the booking and payment repositories in memory so
// whole flows can be exercised without a database.
type memoryStore struct {
	mu       sync.Mutex
	bookings map[int64]*model.Booking
	courts   map[int64]*model.Court
	users    map[int64]*model.User
	payments map[int64]*model.Payment // keyed by booking id
	nextID   int64

	bookingWrites int
	paymentWrites int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		bookings: map[int64]*model.Booking{},
		courts:   map[int64]*model.Court{},
		users:    map[int64]*model.User{},
		payments: map[int64]*model.Payment{},
	}
}

func (s *memoryStore) addBooking(b model.Booking, court model.Court, user model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courts[court.ID] = &court
	s.users[user.ID] = &user
	b.CourtID = court.ID
	b.UserID = user.ID
	s.bookings[b.ID] = &b
}

func (s *memoryStore) booking(id int64) model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.bookings[id]
}

func (s *memoryStore) paymentFor(bookingID int64) (model.Payment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.payments[bookingID]
	if !ok {
		return model.Payment{}, false
	}
	return *p, true
}

func (s *memoryStore) paymentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.payments)
}

func (s *memoryStore) GetWithCourtAndUser(ctx context.Context, id int64) (*model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, nil
	}
	out := *b
	if c, ok := s.courts[b.CourtID]; ok {
		court := *c
		out.Court = &court
	}
	if u, ok := s.users[b.UserID]; ok {
		user := *u
		out.User = &user
	}
	return &out, nil
}

func (s *memoryStore) UpdateTotalPrice(ctx context.Context, id int64, totalPrice int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return fmt.Errorf("booking %d not found", id)
	}
	b.TotalPrice = &totalPrice
	s.bookingWrites++
	return nil
}

func (s *memoryStore) UpdateStatusIfCurrent(ctx context.Context, id int64, from, to model.BookingStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok || b.Status != from {
		return false, nil
	}
	b.Status = to
	s.bookingWrites++
	return true, nil
}

func (s *memoryStore) UpsertAttempt(ctx context.Context, attempt repository.PaymentAttempt) (*model.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.payments[attempt.BookingID]
	if !ok {
		s.nextID++
		p = &model.Payment{ID: s.nextID, BookingID: attempt.BookingID}
		s.payments[attempt.BookingID] = p
	}
	p.MidtransOrderID = attempt.OrderID
	p.GrossAmount = attempt.GrossAmount
	p.TransactionStatus = model.TransactionStatusPending
	s.paymentWrites++
	out := *p
	return &out, nil
}

func (s *memoryStore) GetByOrderIDWithBooking(ctx context.Context, orderID string) (*model.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.payments {
		if p.MidtransOrderID == orderID {
			out := *p
			booking := *s.bookings[p.BookingID]
			out.Booking = &booking
			return &out, nil
		}
	}
	return nil, nil
}

func (s *memoryStore) ApplyNotification(ctx context.Context, id int64, update repository.NotificationUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.payments {
		if p.ID != id {
			continue
		}
		if update.TransactionStatus != nil {
			p.TransactionStatus = *update.TransactionStatus
		}
		if update.PaymentType != nil {
			p.PaymentType = update.PaymentType
		}
		if update.FraudStatus != nil {
			p.FraudStatus = update.FraudStatus
		}
		if update.TransactionTime != nil {
			p.TransactionTime = update.TransactionTime
		}
		s.paymentWrites++
		return nil
	}
	return fmt.Errorf("payment %d not found", id)
}
