package models

import (
	"time"

	"gorm.io/datatypes"
)

// Property does not embed gorm.Model: the listing lifecycle uses the status
// column as its soft-delete marker, and gorm's DeletedAt would shadow it with
// a second, query-filtering delete mechanism.
type Property struct {
	ID             uint           `json:"id" gorm:"primarykey"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	Title          string         `json:"title" gorm:"not null"`
	Description    string         `json:"description" gorm:"not null"`
	Price          int            `json:"price" gorm:"not null"`
	TopCities      string         `json:"topCities" gorm:"column:top_cities;type:varchar(30);not null;index"`
	Location       string         `json:"location" gorm:"not null"`
	Images         datatypes.JSON `json:"images" gorm:"not null"`
	PropertyType   string         `json:"propertyType" gorm:"type:varchar(20);not null"` // apartment, pg, plots, flats, house
	ListingType    string         `json:"listingType" gorm:"type:varchar(10);not null"`  // sale, rent
	Specifications datatypes.JSON `json:"specifications,omitempty"`                      // bedrooms, bathrooms, area (sqft)
	Status         string         `json:"status,omitempty" gorm:"type:varchar(10);default:active;index"` // active, inactive, delete
	OwnerID        uint           `json:"ownerID,omitempty" gorm:"not null;index"`

	Owner        Owner         `json:"-" gorm:"foreignKey:OwnerID;references:ID"`
	OwnerDetails *OwnerContact `json:"ownerDetails,omitempty" gorm:"-"`
}
