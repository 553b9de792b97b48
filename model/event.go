package model

import "restaurant_manager/utils"

type Event struct {
	DTO
	Title       string           `gorm:"size:200;not null" json:"title"`
	Slug        string           `gorm:"uniqueIndex;size:220;not null" json:"slug"`
	Description string           `gorm:"type:text" json:"description"`
	Date        utils.CustomDate `gorm:"type:date;not null;index" json:"date"`
	Time        string           `gorm:"size:5;not null" json:"time"`
	Capacity    *int             `json:"capacity"` // nil = unlimited
	Image       string           `json:"image"`

	RSVPs []EventRSVP `gorm:"foreignKey:EventId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"rsvps,omitempty"`
}

type Events []Event

type EventRSVP struct {
	DTO
	EventId uint   `gorm:"not null;index" json:"eventId"`
	Name    string `gorm:"size:150;not null" json:"name"`
	Email   string `gorm:"size:255;not null" json:"email"`
	Guests  int    `gorm:"not null" json:"guests"`
	Status  string `gorm:"size:20;not null;default:'pending';index" json:"status"`

	Event *Event `gorm:"foreignKey:EventId" json:"event,omitempty"`
}

func (EventRSVP) TableName() string {
	return "event_rsvps"
}

type CreateEventInput struct {
	Title       string `json:"title" form:"title" validate:"required,min=2,max=200"`
	Description string `json:"description" form:"description" validate:"omitempty,max=5000"`
	Date        string `json:"date" form:"date" validate:"required,datetime=2006-01-02"`
	Time        string `json:"time" form:"time" validate:"required,datetime=15:04"`
	Capacity    *int   `json:"capacity" form:"capacity" validate:"omitempty,gt=0"`
	Image       string `json:"image" form:"-" validate:"omitempty,max=500"`
}

type UpdateEventInput struct {
	Title       *string `json:"title" form:"title" validate:"omitempty,min=2,max=200"`
	Description *string `json:"description" form:"description" validate:"omitempty,max=5000"`
	Date        *string `json:"date" form:"date" validate:"omitempty,datetime=2006-01-02"`
	Time        *string `json:"time" form:"time" validate:"omitempty,datetime=15:04"`
	Capacity    *int    `json:"capacity" form:"capacity" validate:"omitempty,gt=0"`
	Image       *string `json:"image" form:"-" validate:"omitempty,max=500"`
}

type CreateRSVPInput struct {
	Name   string `json:"name" validate:"required,min=1,max=150"`
	Email  string `json:"email" validate:"required,email"`
	Guests int    `json:"guests" validate:"required,gte=1,lte=100"`
}

type RSVPFilter struct {
	Pagination
	EventId *uint   `json:"eventId" query:"eventId"`
	Status  *string `json:"status" query:"status"`
}
