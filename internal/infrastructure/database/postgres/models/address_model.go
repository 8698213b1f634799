package models

import "time"

// AddressModel represents the database model for Address.
type AddressModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	ContactID  int64     `gorm:"not null;index"`
	Street     *string   `gorm:"type:varchar(200)"`
	City       *string   `gorm:"type:varchar(100)"`
	Province   *string   `gorm:"type:varchar(100)"`
	Country    string    `gorm:"type:varchar(100);not null"`
	PostalCode string    `gorm:"type:varchar(10);not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (AddressModel) TableName() string {
	return "addresses"
}
