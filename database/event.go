package database

import (
	"context"

	"restaurant_manager/constants"
	"restaurant_manager/helper"
	"restaurant_manager/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Store) ListEvents(ctx context.Context, p model.Pagination) ([]model.Event, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.Event{})
	return list[model.Event](query, p, "date ASC, time ASC")
}

func (s *Store) GetEvent(ctx context.Context, id uint) (*model.Event, error) {
	var event model.Event
	err := s.db.WithContext(ctx).
		Preload("RSVPs", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		First(&event, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &event, nil
}

func (s *Store) CreateEvent(ctx context.Context, event *model.Event) error {
	slug, err := helper.GenerateUniqueSlug(event.Title, s.slugTaken(ctx, &model.Event{}))
	if err != nil {
		return err
	}
	event.Slug = slug
	return s.db.WithContext(ctx).Create(event).Error
}

func (s *Store) UpdateEvent(ctx context.Context, event *model.Event) error {
	return s.db.WithContext(ctx).Omit("RSVPs").Save(event).Error
}

// DeleteEvent removes the event; its RSVPs go with it through the foreign key.
func (s *Store) DeleteEvent(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&model.Event{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateRSVP inserts rsvp while holding a row lock on its event, so concurrent RSVPs
// for one event are checked against capacity one at a time.
func (s *Store) CreateRSVP(ctx context.Context, rsvp *model.EventRSVP) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		event, err := lockEvent(tx, rsvp.EventId)
		if err != nil {
			return err
		}
		booked, err := bookedGuests(tx, event.ID, 0)
		if err != nil {
			return err
		}
		if !helper.FitsCapacity(event.Capacity, booked, rsvp.Guests) {
			return ErrEventFull
		}
		if rsvp.Status == "" {
			rsvp.Status = constants.STATUS_PENDING
		}
		return tx.Create(rsvp).Error
	})
}

func (s *Store) ListRSVPs(ctx context.Context, filter model.RSVPFilter) ([]model.EventRSVP, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.EventRSVP{})
	if filter.EventId != nil {
		query = query.Where("event_id = ?", *filter.EventId)
	}
	if filter.Status != nil && *filter.Status != "" {
		query = query.Where("status = ?", *filter.Status)
	}
	return list[model.EventRSVP](query, filter.Pagination, "created_at DESC", withEventSummary)
}

func (s *Store) GetRSVP(ctx context.Context, id uint) (*model.EventRSVP, error) {
	var rsvp model.EventRSVP
	err := s.db.WithContext(ctx).Scopes(withEventSummary).First(&rsvp, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &rsvp, nil
}

// UpdateRSVPStatus changes the status of an RSVP. Bringing a cancelled RSVP back is
// checked against capacity like a new one.
func (s *Store) UpdateRSVPStatus(ctx context.Context, id uint, status string) (*model.EventRSVP, error) {
	var rsvp model.EventRSVP
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rsvp, id).Error; err != nil {
			return translate(err)
		}
		if rsvp.Status == constants.STATUS_CANCELLED && status != constants.STATUS_CANCELLED {
			event, err := lockEvent(tx, rsvp.EventId)
			if err != nil {
				return err
			}
			booked, err := bookedGuests(tx, event.ID, rsvp.ID)
			if err != nil {
				return err
			}
			if !helper.FitsCapacity(event.Capacity, booked, rsvp.Guests) {
				return ErrEventFull
			}
		}
		rsvp.Status = status
		return tx.Model(&rsvp).Update("status", status).Error
	})
	if err != nil {
		return nil, err
	}
	return &rsvp, nil
}

func (s *Store) DeleteRSVP(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&model.EventRSVP{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func withEventSummary(db *gorm.DB) *gorm.DB {
	return db.Preload("Event", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "title", "slug", "date", "time")
	})
}

func lockEvent(tx *gorm.DB, id uint) (*model.Event, error) {
	var event model.Event
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&event, id).Error; err != nil {
		return nil, translate(err)
	}
	return &event, nil
}

// bookedGuests sums guests of live RSVPs for the event, leaving out exclude.
func bookedGuests(tx *gorm.DB, eventID, exclude uint) (int, error) {
	var booked int64
	err := tx.Model(&model.EventRSVP{}).
		Where("event_id = ? AND status <> ? AND id <> ?", eventID, constants.STATUS_CANCELLED, exclude).
		Select("COALESCE(SUM(guests), 0)").
		Scan(&booked).Error
	return int(booked), err
}
