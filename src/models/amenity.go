package models

import "sams/src/types"

type Amenity struct {
	ID          uint    `gorm:"primarykey" json:"id"`
	Name        string  `json:"name,omitempty"`
	Type        string  `json:"type,omitempty"`
	Description *string `json:"description,omitempty"`
	MaxCapacity *int    `json:"max_capacity,omitempty"`

	types.Timestamps
}
