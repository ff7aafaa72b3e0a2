package models

import "sams/src/types"

type Tower struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `json:"name,omitempty"`

	Apartments []Apartment `gorm:"foreignKey:tower_id" json:"apartments,omitempty"`

	types.Timestamps
}
