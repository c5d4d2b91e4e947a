package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	NameMaxLength = 200
)

type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    string    `json:"user_id" gorm:"uniqueIndex;not null"`
	Name      string    `json:"name" gorm:"size:200;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u User) TableName() string {
	return "public.users"
}

// WithAPIKey is the create-user response: the user plus the only copy of the
// generated key the caller will ever see.
type WithAPIKey struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	APIKey    string    `json:"api_key"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
