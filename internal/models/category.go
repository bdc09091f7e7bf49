package models

import "time"

// CategoryType classifies a category. Matches the CHECK constraint on
// categories.category_type.
type CategoryType string

const (
	CategoryTypeIncome   CategoryType = "income"
	CategoryTypeExpense  CategoryType = "expense"
	CategoryTypeTransfer CategoryType = "transfer"
)

// Category classifies transactions (groceries, salary, utilities, ...).
type Category struct {
	ID        uint         `gorm:"column:category_id;primaryKey" json:"category_id"`
	Name      string       `gorm:"column:category_name;size:100;not null" json:"category_name"`
	Type      CategoryType `gorm:"column:category_type;size:20;not null" json:"category_type"`
	Group     *string      `gorm:"column:category_group;size:50" json:"category_group"`
	ColorCode *string      `gorm:"column:color_code;size:7" json:"color_code"`
	IconName  *string      `gorm:"column:icon_name;size:50" json:"icon_name"`
	IsActive  bool         `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt time.Time    `gorm:"column:created_at" json:"created_at"`
}

func (Category) TableName() string { return "categories" }
