package models

import "sams/src/types"

type Apartment struct {
	ID            uint                  `gorm:"primarykey" json:"id"`
	Number        string                `json:"number,omitempty"`
	TowerID       uint                  `json:"tower_id,omitempty"`
	Floor         int                   `json:"floor"`
	Type          string                `json:"type,omitempty"`
	OwnerName     *string               `json:"owner_name,omitempty"`
	Status        types.ApartmentStatus `gorm:"default:'OCCUPIED'" json:"status,omitempty"`
	MonthlyRent   *float64              `json:"monthly_rent,omitempty"`
	SalePrice     *float64              `json:"sale_price,omitempty"`
	ContactNumber *string               `json:"contact_number,omitempty"`

	Tower *Tower `gorm:"foreignKey:tower_id" json:"tower,omitempty"`

	types.Timestamps
}
