package entity

import (
	"time"

	"github.com/google/uuid"
)

// IdempotencyKey stores the response of a committing transaction initiation
// so that a resubmitted request replays the original outcome instead of
// initiating a second transaction
type IdempotencyKey struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Key          string    `gorm:"uniqueIndex:idx_key_endpoint;size:255;not null"`
	Endpoint     string    `gorm:"uniqueIndex:idx_key_endpoint;size:255;not null"` // e.g. "POST /api/initiate-privileged"
	ResponseCode int       `gorm:"not null"`
	ResponseBody string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	ExpiresAt    time.Time `gorm:"not null;index"`
}

// TableName returns the table name for IdempotencyKey
func (IdempotencyKey) TableName() string {
	return "idempotency_keys"
}

// IsExpired checks if the idempotency key has expired
func (i *IdempotencyKey) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}
