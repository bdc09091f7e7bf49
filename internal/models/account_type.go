package models

// AccountType is read-only reference data: kinds of financial accounts
// (checking, savings, credit card, ...).
type AccountType struct {
	ID          uint    `gorm:"column:account_type_id;primaryKey" json:"account_type_id"`
	TypeName    string  `gorm:"column:type_name;size:50;not null;unique" json:"type_name"`
	IsAsset     bool    `gorm:"column:is_asset;not null;default:true" json:"is_asset"`
	Description *string `gorm:"column:description" json:"description"`
}

func (AccountType) TableName() string { return "account_types" }
