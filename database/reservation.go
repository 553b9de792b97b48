package database

import (
	"context"
	"errors"

	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"gorm.io/gorm"
)

func (s *Store) ListReservations(ctx context.Context, filter model.ReservationFilter) ([]model.Reservation, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.Reservation{})
	if filter.Date != nil && *filter.Date != "" {
		date, err := utils.ParseDate(*filter.Date)
		if err != nil {
			return nil, 0, err
		}
		query = query.Where("date = ?", date)
	}
	if filter.Status != nil && *filter.Status != "" {
		query = query.Where("status = ?", *filter.Status)
	}
	return list[model.Reservation](query, filter.Pagination, "date DESC, time ASC")
}

func (s *Store) GetReservation(ctx context.Context, id uint) (*model.Reservation, error) {
	var reservation model.Reservation
	if err := s.db.WithContext(ctx).First(&reservation, id).Error; err != nil {
		return nil, translate(err)
	}
	return &reservation, nil
}

// BookedSlots lists the times already held by live reservations on date.
func (s *Store) BookedSlots(ctx context.Context, date utils.CustomDate) ([]string, error) {
	var slots []string
	err := s.db.WithContext(ctx).Model(&model.Reservation{}).
		Where("date = ? AND status <> ?", date, constants.STATUS_CANCELLED).
		Pluck("time", &slots).Error
	return slots, err
}

// CreateReservation claims the (date, time) slot. idx_reservation_slot makes the
// insert itself fail for a second live booking.
func (s *Store) CreateReservation(ctx context.Context, reservation *model.Reservation) error {
	if reservation.Status == "" {
		reservation.Status = constants.STATUS_PENDING
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&model.Reservation{}).
			Where("date = ? AND time = ? AND status <> ?", reservation.Date, reservation.Time, constants.STATUS_CANCELLED).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrSlotTaken
		}

		err = tx.Create(reservation).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrSlotTaken
		}
		return err
	})
}

// UpdateReservationStatus fails with ErrSlotTaken when reviving a cancelled booking
// whose slot was taken meanwhile.
func (s *Store) UpdateReservationStatus(ctx context.Context, id uint, status string) (*model.Reservation, error) {
	var reservation model.Reservation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reservation, id).Error; err != nil {
			return translate(err)
		}
		if reservation.Status == constants.STATUS_CANCELLED && status != constants.STATUS_CANCELLED {
			var count int64
			err := tx.Model(&model.Reservation{}).
				Where("date = ? AND time = ? AND status <> ? AND id <> ?", reservation.Date, reservation.Time, constants.STATUS_CANCELLED, reservation.ID).
				Count(&count).Error
			if err != nil {
				return err
			}
			if count > 0 {
				return ErrSlotTaken
			}
		}
		reservation.Status = status
		err := tx.Model(&reservation).Update("status", status).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrSlotTaken
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}
