package models

import "time"

// Product is a catalog entry belonging to exactly one category. Rows are
// never removed; deletion flips the IsDeleted flag so the record stays
// available for audit and undelete.
type Product struct {
	ID         int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string    `json:"name" gorm:"type:varchar(100);not null"`
	CategoryID int       `json:"categoryId" gorm:"index;not null"`
	Category   Category  `json:"category" gorm:"foreignKey:CategoryID"`
	Price      float64   `json:"price" gorm:"not null"`
	Stock      int       `json:"stock" gorm:"default:0"`
	IsDeleted  bool      `json:"isDeleted" gorm:"default:false;index"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
