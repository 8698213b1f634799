package models

import "time"

// ContactModel represents the database model for Contact.
type ContactModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Username  string    `gorm:"type:varchar(100);not null;index"`
	FirstName string    `gorm:"type:varchar(100);not null"`
	LastName  *string   `gorm:"type:varchar(100)"`
	Email     *string   `gorm:"type:varchar(100)"`
	Phone     *string   `gorm:"type:varchar(20)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (ContactModel) TableName() string {
	return "contacts"
}
