package scopes

import (
	"time"

	"gorm.io/gorm"
)

func WithID(id uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	}
}

func WithOwner(userId uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userId)
	}
}

func WithPendingStatus(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", "PENDING")
}

// StartedBefore matches bookings whose reserved slot began before the cutoff.
func StartedBefore(cutoff time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("start_time < ?", cutoff)
	}
}

// ExpiredBefore matches notices whose expiry has passed the cutoff. Notices
// without an expiry never match.
func ExpiredBefore(cutoff time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("expires_at IS NOT NULL AND expires_at < ?", cutoff)
	}
}
