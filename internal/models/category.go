package models

import "time"

// Category groups products on the dashboard. Category IDs are supplied by
// the caller at creation time, not generated by the store.
type Category struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	IsDeleted bool      `json:"isDeleted" gorm:"default:false;index"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
