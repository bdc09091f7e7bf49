package models

// Currency is read-only reference data: supported ISO 4217 currencies
// seeded at database initialization.
type Currency struct {
	Code          string  `gorm:"column:currency_code;primaryKey;size:3" json:"currency_code"`
	Name          string  `gorm:"column:currency_name;size:50;not null" json:"currency_name"`
	Symbol        *string `gorm:"column:currency_symbol;size:10" json:"currency_symbol"`
	DecimalPlaces int16   `gorm:"column:decimal_places;not null;default:2" json:"decimal_places"`
	IsActive      bool    `gorm:"column:is_active;not null;default:true" json:"is_active"`
}

func (Currency) TableName() string { return "currencies" }
