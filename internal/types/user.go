package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	USN           string         `gorm:"column:usn;uniqueIndex;not null" json:"usn"`
	Email         string         `gorm:"column:email;uniqueIndex;not null" json:"email"`
	Password      string         `gorm:"column:password;not null" json:"-"`
	Branch        string         `gorm:"column:branch;not null" json:"branch"`
	CurrentBranch string         `gorm:"column:current_branch;not null" json:"current_branch"`
	IsAdmin       bool           `gorm:"column:is_admin;not null;default:false" json:"is_admin"`
	ProgressID    *uuid.UUID     `gorm:"type:uuid;column:progress_id" json:"progress_id,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (User) TableName() string { return "user" }
