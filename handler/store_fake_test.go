package handler_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/handler"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"
)

var _ handler.Store = (*fakeStore)(nil)

// fakeStore keeps everything in maps and follows the database.Store rules.
type fakeStore struct {
	mu     sync.Mutex
	nextID uint
	now    func() time.Time

	users        map[uint]*model.User
	menu         map[uint]*model.MenuItem
	events       map[uint]*model.Event
	rsvps        map[uint]*model.EventRSVP
	promotions   map[uint]*model.Promotion
	reservations map[uint]*model.Reservation
	transactions map[uint]*model.Transaction
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		now:          time.Now,
		users:        map[uint]*model.User{},
		menu:         map[uint]*model.MenuItem{},
		events:       map[uint]*model.Event{},
		rsvps:        map[uint]*model.EventRSVP{},
		promotions:   map[uint]*model.Promotion{},
		reservations: map[uint]*model.Reservation{},
		transactions: map[uint]*model.Transaction{},
	}
}

func (s *fakeStore) id() uint {
	s.nextID++
	return s.nextID
}

func (s *fakeStore) stamp(dto *model.DTO) {
	if dto.ID == 0 {
		dto.ID = s.id()
		dto.CreatedAt = s.now()
	}
	dto.UpdatedAt = s.now()
}

func sortedIDs[T any](m map[uint]*T) []uint {
	ids := make([]uint, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func page[T any](rows []T, p model.Pagination) ([]T, int64, error) {
	return utils.Paginate(rows, p.Limit, p.Page), int64(len(rows)), nil
}

func (s *fakeStore) Ping(context.Context) error { return nil }

func (s *fakeStore) FindUserByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == strings.ToLower(email) {
			row := *u
			return &row, nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *fakeStore) CreateUser(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.Email = strings.ToLower(user.Email)
	for _, u := range s.users {
		if u.Email == user.Email {
			return database.ErrDuplicateEmail
		}
	}
	s.stamp(&user.DTO)
	row := *user
	s.users[user.ID] = &row
	return nil
}

func (s *fakeStore) ListMenuItems(_ context.Context, filter model.MenuFilter) ([]model.MenuItem, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := []model.MenuItem{}
	for _, id := range sortedIDs(s.menu) {
		item := s.menu[id]
		if filter.Category != nil && *filter.Category != "" && !strings.EqualFold(item.Category, *filter.Category) {
			continue
		}
		rows = append(rows, *item)
	}
	return page(rows, filter.Pagination)
}

func (s *fakeStore) GetMenuItem(_ context.Context, id uint) (*model.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.menu[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	row := *item
	return &row, nil
}

func (s *fakeStore) CreateMenuItem(_ context.Context, item *model.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	slug, err := helper.GenerateUniqueSlug(item.Name, func(slug string) (bool, error) {
		for _, m := range s.menu {
			if m.Slug == slug {
				return true, nil
			}
		}
		return false, nil
	})
	if err != nil {
		return err
	}
	item.Slug = slug
	s.stamp(&item.DTO)
	row := *item
	s.menu[item.ID] = &row
	return nil
}

func (s *fakeStore) UpdateMenuItem(_ context.Context, item *model.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stamp(&item.DTO)
	row := *item
	s.menu[item.ID] = &row
	return nil
}

func (s *fakeStore) DeleteMenuItem(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.menu[id]; !ok {
		return database.ErrNotFound
	}
	delete(s.menu, id)
	return nil
}

func (s *fakeStore) ListEvents(_ context.Context, p model.Pagination) ([]model.Event, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := []model.Event{}
	for _, id := range sortedIDs(s.events) {
		rows = append(rows, *s.events[id])
	}
	return page(rows, p)
}

func (s *fakeStore) GetEvent(_ context.Context, id uint) (*model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	event, ok := s.events[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	row := *event
	row.RSVPs = nil
	for _, rid := range sortedIDs(s.rsvps) {
		if r := s.rsvps[rid]; r.EventId == id {
			row.RSVPs = append(row.RSVPs, *r)
		}
	}
	return &row, nil
}

func (s *fakeStore) CreateEvent(_ context.Context, event *model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	event.Slug, _ = helper.GenerateUniqueSlug(event.Title, func(slug string) (bool, error) {
		for _, e := range s.events {
			if e.Slug == slug {
				return true, nil
			}
		}
		return false, nil
	})
	s.stamp(&event.DTO)
	row := *event
	s.events[event.ID] = &row
	return nil
}

func (s *fakeStore) UpdateEvent(_ context.Context, event *model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stamp(&event.DTO)
	row := *event
	row.RSVPs = nil
	s.events[event.ID] = &row
	return nil
}

func (s *fakeStore) DeleteEvent(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[id]; !ok {
		return database.ErrNotFound
	}
	delete(s.events, id)
	for rid, r := range s.rsvps {
		if r.EventId == id {
			delete(s.rsvps, rid)
		}
	}
	return nil
}

func (s *fakeStore) bookedGuests(eventID, exclude uint) int {
	booked := 0
	for _, r := range s.rsvps {
		if r.EventId == eventID && r.ID != exclude && r.Status != constants.STATUS_CANCELLED {
			booked += r.Guests
		}
	}
	return booked
}

func (s *fakeStore) CreateRSVP(_ context.Context, rsvp *model.EventRSVP) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	event, ok := s.events[rsvp.EventId]
	if !ok {
		return database.ErrNotFound
	}
	if !helper.FitsCapacity(event.Capacity, s.bookedGuests(event.ID, 0), rsvp.Guests) {
		return database.ErrEventFull
	}
	if rsvp.Status == "" {
		rsvp.Status = constants.STATUS_PENDING
	}
	s.stamp(&rsvp.DTO)
	row := *rsvp
	s.rsvps[rsvp.ID] = &row
	return nil
}

func (s *fakeStore) ListRSVPs(_ context.Context, filter model.RSVPFilter) ([]model.EventRSVP, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := []model.EventRSVP{}
	for _, id := range sortedIDs(s.rsvps) {
		r := s.rsvps[id]
		if filter.EventId != nil && r.EventId != *filter.EventId {
			continue
		}
		if filter.Status != nil && *filter.Status != "" && r.Status != *filter.Status {
			continue
		}
		rows = append(rows, *r)
	}
	return page(rows, filter.Pagination)
}

func (s *fakeStore) GetRSVP(_ context.Context, id uint) (*model.EventRSVP, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rsvps[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	row := *r
	return &row, nil
}

func (s *fakeStore) UpdateRSVPStatus(_ context.Context, id uint, status string) (*model.EventRSVP, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rsvps[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	if r.Status == constants.STATUS_CANCELLED && status != constants.STATUS_CANCELLED {
		event := s.events[r.EventId]
		if !helper.FitsCapacity(event.Capacity, s.bookedGuests(event.ID, r.ID), r.Guests) {
			return nil, database.ErrEventFull
		}
	}
	r.Status = status
	row := *r
	return &row, nil
}

func (s *fakeStore) DeleteRSVP(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rsvps[id]; !ok {
		return database.ErrNotFound
	}
	delete(s.rsvps, id)
	return nil
}

func (s *fakeStore) ListActivePromotions(_ context.Context, p model.Pagination) ([]model.Promotion, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := []model.Promotion{}
	ids := sortedIDs(s.promotions)
	for i := len(ids) - 1; i >= 0; i-- {
		if promo := s.promotions[ids[i]]; promo.IsActive {
			rows = append(rows, *promo)
		}
	}
	return page(rows, p)
}

func (s *fakeStore) GetPromotion(_ context.Context, id uint) (*model.Promotion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	promo, ok := s.promotions[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	row := *promo
	return &row, nil
}

func (s *fakeStore) FindPromotionByCode(_ context.Context, code string) (*model.Promotion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, promo := range s.promotions {
		if promo.Code == helper.NormalizeCode(code) {
			row := *promo
			return &row, nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *fakeStore) savePromotion(promo *model.Promotion) error {
	promo.Code = helper.NormalizeCode(promo.Code)
	for _, p := range s.promotions {
		if p.Code == promo.Code && p.ID != promo.ID {
			return database.ErrDuplicateCode
		}
	}
	s.stamp(&promo.DTO)
	row := *promo
	s.promotions[promo.ID] = &row
	return nil
}

func (s *fakeStore) CreatePromotion(_ context.Context, promo *model.Promotion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.savePromotion(promo)
}

func (s *fakeStore) UpdatePromotion(_ context.Context, promo *model.Promotion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.savePromotion(promo)
}

func (s *fakeStore) DeactivatePromotion(_ context.Context, id uint) (*model.Promotion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	promo, ok := s.promotions[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	promo.IsActive = false
	row := *promo
	return &row, nil
}

func (s *fakeStore) ListReservations(_ context.Context, filter model.ReservationFilter) ([]model.Reservation, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := []model.Reservation{}
	for _, id := range sortedIDs(s.reservations) {
		r := s.reservations[id]
		if filter.Date != nil && *filter.Date != "" && r.Date.String() != *filter.Date {
			continue
		}
		if filter.Status != nil && *filter.Status != "" && r.Status != *filter.Status {
			continue
		}
		rows = append(rows, *r)
	}
	return page(rows, filter.Pagination)
}

func (s *fakeStore) GetReservation(_ context.Context, id uint) (*model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reservations[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	row := *r
	return &row, nil
}

func (s *fakeStore) slotHeld(date utils.CustomDate, slot string, exclude uint) bool {
	for _, r := range s.reservations {
		if r.ID != exclude && r.Date.Equal(date.Time) && r.Time == slot && r.Status != constants.STATUS_CANCELLED {
			return true
		}
	}
	return false
}

func (s *fakeStore) BookedSlots(_ context.Context, date utils.CustomDate) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var slots []string
	for _, r := range s.reservations {
		if r.Date.Equal(date.Time) && r.Status != constants.STATUS_CANCELLED {
			slots = append(slots, r.Time)
		}
	}
	return slots, nil
}

func (s *fakeStore) CreateReservation(_ context.Context, reservation *model.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.slotHeld(reservation.Date, reservation.Time, 0) {
		return database.ErrSlotTaken
	}
	if reservation.Status == "" {
		reservation.Status = constants.STATUS_PENDING
	}
	s.stamp(&reservation.DTO)
	row := *reservation
	s.reservations[reservation.ID] = &row
	return nil
}

func (s *fakeStore) UpdateReservationStatus(_ context.Context, id uint, status string) (*model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reservations[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	if status != constants.STATUS_CANCELLED && s.slotHeld(r.Date, r.Time, r.ID) {
		return nil, database.ErrSlotTaken
	}
	r.Status = status
	row := *r
	return &row, nil
}

func (s *fakeStore) ListTransactions(_ context.Context, filter model.TransactionFilter) ([]model.Transaction, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := []model.Transaction{}
	for _, id := range sortedIDs(s.transactions) {
		txn := s.transactions[id]
		if filter.Status != nil && *filter.Status != "" && txn.Status != *filter.Status {
			continue
		}
		rows = append(rows, *txn)
	}
	return page(rows, filter.Pagination)
}

func (s *fakeStore) GetTransaction(_ context.Context, id uint) (*model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	txn, ok := s.transactions[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	row := *txn
	return &row, nil
}

func (s *fakeStore) CreateTransaction(_ context.Context, txn *model.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	txn.ID = s.id()
	txn.CreatedAt = s.now()
	txn.UpdatedAt = txn.CreatedAt
	if txn.Status == "" {
		txn.Status = constants.STATUS_PENDING
	}
	row := *txn
	s.transactions[txn.ID] = &row
	return nil
}

func (s *fakeStore) UpdateTransactionStatus(_ context.Context, id uint, status string) (*model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	txn, ok := s.transactions[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	txn.Status = status
	row := *txn
	return &row, nil
}
