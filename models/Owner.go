package models

import "time"

type Owner struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Name        string    `json:"name" gorm:"not null"`
	PhoneNumber string    `json:"phoneNumber" gorm:"uniqueIndex;not null"`
	Password    string    `json:"-" gorm:"not null"`
	Status      string    `json:"status" gorm:"type:varchar(10);default:active;index"` // active, inactive
	ProfilePic  string    `json:"profilePic"`

	Properties []Property `json:"-" gorm:"foreignKey:OwnerID;references:ID"`
}

// OwnerContact is the masked owner projection attached to property details
// for authenticated callers.
type OwnerContact struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
}
