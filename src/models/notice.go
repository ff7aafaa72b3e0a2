package models

import (
	"sams/src/types"
	"time"

	"github.com/google/uuid"
)

// Notice rows are hard-deleted on retract or purge, so no soft-delete
// column here. Expiry is derived from ExpiresAt at read time.
type Notice struct {
	ID        uuid.UUID            `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	Title     string               `json:"title"`
	Content   string               `json:"content"`
	Priority  types.NoticePriority `gorm:"default:'NORMAL'" json:"priority"`
	CreatedBy uint                 `json:"created_by"`
	ExpiresAt *time.Time           `json:"expires_at,omitempty"`
	CreatedAt time.Time            `gorm:"autoCreateTime:nano" json:"created_at"`
	UpdatedAt time.Time            `gorm:"autoUpdateTime:nano" json:"updated_at"`

	Author *User `gorm:"foreignKey:created_by" json:"author,omitempty"`
}

func (n *Notice) Expired(now time.Time) bool {
	return n.ExpiresAt != nil && n.ExpiresAt.Before(now)
}
