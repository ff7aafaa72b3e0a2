package models

import (
	"time"

	"github.com/google/uuid"
)

// SweepLog records one execution of a reconciliation sweep. End users never
// see these; admins can list them for operational visibility.
type SweepLog struct {
	ID           uuid.UUID `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	Job          string    `json:"job"`
	RowsAffected int64     `json:"rows_affected"`
	RanAt        time.Time `json:"ran_at"`
	Error        string    `json:"error,omitempty"`
}
