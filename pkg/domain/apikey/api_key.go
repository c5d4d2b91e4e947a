package apikey

import (
	"time"

	"github.com/google/uuid"
)

type APIKey struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Key       string    `json:"key" gorm:"uniqueIndex;not null"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a APIKey) TableName() string {
	return "public.api_keys"
}

// IsValid reports whether the key can identify a caller.
func (a APIKey) IsValid() bool {
	return a.Key != "" && a.UserID != ""
}
