// file: internals/features/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	UserName     string    `gorm:"column:user_name;type:varchar(50);not null;uniqueIndex:uq_users_name" json:"user_name"`
	UserPassword string    `gorm:"column:user_password;type:varchar(100);not null" json:"-"`
	UserRole     string    `gorm:"column:user_role;type:varchar(20);not null;default:'admin'" json:"user_role"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;not null" json:"user_created_at"`
}

func (User) TableName() string {
	return "users"
}

func (m *User) BeforeCreate(tx *gorm.DB) (err error) {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	if m.UserCreatedAt.IsZero() {
		m.UserCreatedAt = time.Now()
	}
	return nil
}
