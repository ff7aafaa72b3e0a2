package models

import (
	"sams/src/types"
	"time"
)

type Booking struct {
	ID        uint                `gorm:"primarykey" json:"id"`
	UserID    uint                `json:"user_id,omitempty"`
	AmenityID uint                `json:"amenity_id,omitempty"`
	StartTime time.Time           `json:"start_time"`
	EndTime   time.Time           `json:"end_time"`
	Status    types.BookingStatus `json:"status,omitempty"`

	User    *User    `gorm:"foreignKey:user_id" json:"user,omitempty"`
	Amenity *Amenity `gorm:"foreignKey:amenity_id" json:"amenity,omitempty"`

	types.Timestamps
}
