package model

import "restaurant_manager/utils"

// Reservation holds one table booking. idx_reservation_slot keeps a single live
// reservation per (date, time); cancelled rows fall out of the index.
type Reservation struct {
	DTO
	Name            string           `gorm:"size:150;not null" json:"name"`
	Email           string           `gorm:"size:255;not null" json:"email"`
	Phone           string           `gorm:"size:30;not null" json:"phone"`
	Date            utils.CustomDate `gorm:"type:date;not null;uniqueIndex:idx_reservation_slot,where:status <> 'cancelled'" json:"date"`
	Time            string           `gorm:"size:5;not null;uniqueIndex:idx_reservation_slot" json:"time"`
	Guests          int              `gorm:"not null" json:"guests"`
	SpecialRequests string           `gorm:"type:text" json:"specialRequests"`
	Status          string           `gorm:"size:20;not null;default:'pending';index" json:"status"`
}

type Reservations []Reservation

type CreateReservationInput struct {
	Name            string `json:"name" validate:"required,min=1,max=150"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,min=6,max=30"`
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	Time            string `json:"time" validate:"required,datetime=15:04"`
	Guests          int    `json:"guests" validate:"required,gte=1,lte=50"`
	SpecialRequests string `json:"specialRequests" validate:"omitempty,max=2000"`
}

type ReservationFilter struct {
	Pagination
	Date   *string `json:"date" query:"date"`
	Status *string `json:"status" query:"status"`
}

type AvailableTimes struct {
	Date           string   `json:"date"`
	AvailableSlots []string `json:"availableSlots"`
}
