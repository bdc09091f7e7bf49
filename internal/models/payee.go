package models

import "time"

// Payee is a merchant, vendor, or other party involved in transactions.
type Payee struct {
	ID                uint      `gorm:"column:payee_id;primaryKey" json:"payee_id"`
	Name              string    `gorm:"column:payee_name;size:100;not null" json:"payee_name"`
	DefaultCategoryID *uint     `gorm:"column:default_category_id" json:"default_category_id"`
	Notes             *string   `gorm:"column:notes" json:"notes"`
	IsActive          bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt         time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at" json:"updated_at"`

	DefaultCategory *Category `gorm:"foreignKey:DefaultCategoryID;references:ID" json:"-"`
}

func (Payee) TableName() string { return "payees" }
