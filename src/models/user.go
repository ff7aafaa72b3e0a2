package models

import "sams/src/types"

type User struct {
	ID          uint    `gorm:"primarykey" json:"id"`
	Username    string  `gorm:"uniqueIndex" json:"username,omitempty"`
	Name        string  `json:"name,omitempty"`
	Password    string  `json:"-"`
	IsAdmin     bool    `gorm:"default:false" json:"is_admin"`
	ApartmentID *uint   `json:"apartment_id,omitempty"`

	Apartment *Apartment `gorm:"foreignKey:apartment_id" json:"apartment,omitempty"`
	Bookings  []Booking  `gorm:"foreignKey:user_id" json:"bookings,omitempty"`

	types.Timestamps
}

// CanAdminister is the single permission predicate for the whole API.
// There are exactly two tiers: administrator or not.
func CanAdminister(u *User) bool {
	return u != nil && u.ID > 0 && u.IsAdmin
}
