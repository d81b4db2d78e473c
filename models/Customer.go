package models

import "time"

type Customer struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Name         string    `json:"name" gorm:"default:guest"`
	PhoneNumber  string    `json:"phoneNumber" gorm:"uniqueIndex;not null"`
	Password     string    `json:"-" gorm:"not null"`
	Status       string    `json:"status" gorm:"type:varchar(10);default:active;index"`    // active, inactive
	CustomerType string    `json:"customerType" gorm:"type:varchar(10);default:customer"` // guest, customer
}
