package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Feedback struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	User      *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Rating    int            `gorm:"column:rating;not null" json:"rating"`
	Message   string         `gorm:"column:message" json:"message,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Feedback) TableName() string { return "feedback" }

// FeedbackStats is the admin aggregate: item count and mean rating rounded to
// one decimal place.
type FeedbackStats struct {
	Total     int64   `json:"total"`
	AvgRating float64 `json:"avgRating"`
}
