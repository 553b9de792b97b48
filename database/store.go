package database

import (
	"context"
	"errors"

	"restaurant_manager/model"
	"restaurant_manager/utils"

	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrEventFull      = errors.New("event is at capacity")
	ErrSlotTaken      = errors.New("time slot is already booked")
	ErrDuplicateCode  = errors.New("promotion code already exists")
	ErrDuplicateEmail = errors.New("email already registered")
)

// Store is the gorm implementation of handler.Store.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// list counts query, then loads one page of it ordered by order. scopes (preloads)
// only apply to the page query.
func list[T any](query *gorm.DB, p model.Pagination, order string, scopes ...func(*gorm.DB) *gorm.DB) ([]T, int64, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	rows := []T{}
	err := utils.ApplyPagination(query, p.Limit, p.Page).Scopes(scopes...).Order(order).Find(&rows).Error
	return rows, total, err
}

func (s *Store) slugTaken(ctx context.Context, table any) func(string) (bool, error) {
	return func(slug string) (bool, error) {
		var count int64
		err := s.db.WithContext(ctx).Model(table).Where("slug = ?", slug).Count(&count).Error
		return count > 0, err
	}
}
