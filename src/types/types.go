package types

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type BookingStatus string

const (
	BOOKING_PENDING  BookingStatus = "PENDING"
	BOOKING_APPROVED BookingStatus = "APPROVED"
	BOOKING_REJECTED BookingStatus = "REJECTED"
)

type NoticePriority string

const (
	NOTICE_PRIORITY_HIGH   NoticePriority = "HIGH"
	NOTICE_PRIORITY_NORMAL NoticePriority = "NORMAL"
	NOTICE_PRIORITY_LOW    NoticePriority = "LOW"
)

// PriorityWeight orders notice priorities for the board listing. Unknown
// values sort below LOW.
func PriorityWeight(p NoticePriority) int {
	switch p {
	case NOTICE_PRIORITY_HIGH:
		return 3
	case NOTICE_PRIORITY_NORMAL:
		return 2
	case NOTICE_PRIORITY_LOW:
		return 1
	}
	return 0
}

type ApartmentStatus string

const (
	APARTMENT_OCCUPIED       ApartmentStatus = "OCCUPIED"
	APARTMENT_AVAILABLE_RENT ApartmentStatus = "AVAILABLE_RENT"
	APARTMENT_AVAILABLE_SALE ApartmentStatus = "AVAILABLE_SALE"
)

type CreateBookingRequestBody struct {
	AmenityID uint   `json:"amenity_id" binding:"required"`
	StartTime string `json:"start_time" binding:"required" time_format:"2006-01-02 15:04:05 -07:00"`
	EndTime   string `json:"end_time" binding:"required" time_format:"2006-01-02 15:04:05 -07:00"`
}

type DecideBookingRequestBody struct {
	Status BookingStatus `json:"status" binding:"required,oneof=APPROVED REJECTED"`
}

type CreateNoticeRequestBody struct {
	Title     string         `json:"title" binding:"required"`
	Content   string         `json:"content" binding:"required"`
	Priority  NoticePriority `json:"priority,omitempty" binding:"omitempty,oneof=HIGH NORMAL LOW"`
	ExpiresAt *string        `json:"expires_at,omitempty" binding:"omitempty,futuredate" time_format:"2006-01-02 15:04:05 -07:00"`
}

type UpdateUserRequestBody struct {
	IsAdmin *bool `json:"is_admin" binding:"required"`
}

type UpdateApartmentRequestBody struct {
	OwnerName     *string         `json:"owner_name"`
	Status        ApartmentStatus `json:"status" binding:"required,oneof=OCCUPIED AVAILABLE_RENT AVAILABLE_SALE"`
	MonthlyRent   *float64        `json:"monthly_rent"`
	SalePrice     *float64        `json:"sale_price"`
	ContactNumber *string         `json:"contact_number"`
}

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type NoticeURIParams struct {
	ID string `uri:"id" binding:"required,uuid"`
}

type TowerApartmentsURIParams struct {
	TowerID uint `uri:"towerId" binding:"required"`
}

type BookingStatusCounts struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
