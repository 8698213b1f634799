package models

import "time"

// UserModel represents the database model for User. Username is the primary
// key; there is no surrogate id.
type UserModel struct {
	Username     string    `gorm:"type:varchar(100);primaryKey"`
	Name         string    `gorm:"type:varchar(100);not null"`
	PasswordHash string    `gorm:"type:varchar(100);not null;column:password"`
	Token        *string   `gorm:"type:varchar(100);index"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}
