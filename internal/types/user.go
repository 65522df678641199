package types

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Username    string     `gorm:"uniqueIndex;not null;column:username" json:"username"`
	Email       string     `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password    string     `gorm:"not null;column:password" json:"-"`
	Progress    int        `gorm:"not null;default:0;column:progress" json:"progress"`
	LastLoginAt *time.Time `gorm:"column:last_login_at" json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (User) TableName() string { return "user" }
