package services

import (
	"gorm.io/gorm"

	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/models"
)

// ColumnDefinition describes one column as reported by
// information_schema.columns.
type ColumnDefinition struct {
	ColumnName             string  `json:"column_name"`
	DataType               string  `json:"data_type"`
	IsNullable             string  `json:"is_nullable"`
	ColumnDefault          *string `json:"column_default"`
	CharacterMaximumLength *int    `json:"character_maximum_length"`
	NumericPrecision       *int    `json:"numeric_precision"`
	NumericScale           *int    `json:"numeric_scale"`
}

// ConstraintDefinition describes one table constraint. The foreign table
// and column fields are populated for foreign keys only.
type ConstraintDefinition struct {
	ConstraintName    string  `json:"constraint_name"`
	ConstraintType    string  `json:"constraint_type"`
	ColumnName        *string `json:"column_name"`
	ForeignTableName  *string `json:"foreign_table_name"`
	ForeignColumnName *string `json:"foreign_column_name"`
}

// TableInfo is a table's name and kind (BASE TABLE or VIEW).
type TableInfo struct {
	TableName string `json:"table_name"`
	TableType string `json:"table_type"`
}

// TableSchema is the full definition of a single table.
type TableSchema struct {
	Name        string                 `json:"name"`
	Type        string                 `json:"type"`
	Columns     []ColumnDefinition     `json:"columns"`
	Constraints []ConstraintDefinition `json:"constraints"`
}

// TableRelationship is one foreign key edge between two tables.
type TableRelationship struct {
	FromTable      string `json:"from_table"`
	FromColumn     string `json:"from_column"`
	ToTable        string `json:"to_table"`
	ToColumn       string `json:"to_column"`
	ConstraintName string `json:"constraint_name"`
}

// DatabaseSchema is the complete catalog: every table plus every foreign
// key relationship.
type DatabaseSchema struct {
	Tables        []TableSchema       `json:"tables"`
	Relationships []TableRelationship `json:"relationships"`
}

// ReferenceData wraps a dump of one or all lookup tables.
type ReferenceData struct {
	DataType string      `json:"data_type"`
	Data     interface{} `json:"data"`
}

// schemaService reads catalog metadata from PostgreSQL's
// information_schema views. The catalog queries assume a Postgres backend;
// ReferenceData works against any dialect.
type schemaService struct {
	db *gorm.DB
}

// NewSchemaService creates a new SchemaServicer.
func NewSchemaService(db *gorm.DB) SchemaServicer {
	return &schemaService{db: db}
}

// Schema returns every public table with its columns and constraints,
// plus all foreign key relationships.
func (s *schemaService) Schema() (*DatabaseSchema, error) {
	tables, err := s.Tables()
	if err != nil {
		return nil, err
	}

	schemas := make([]TableSchema, 0, len(tables))
	for _, table := range tables {
		columns, err := s.columns(table.TableName)
		if err != nil {
			return nil, err
		}
		constraints, err := s.constraints(table.TableName)
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, TableSchema{
			Name:        table.TableName,
			Type:        table.TableType,
			Columns:     columns,
			Constraints: constraints,
		})
	}

	relationships, err := s.Relationships()
	if err != nil {
		return nil, err
	}

	return &DatabaseSchema{Tables: schemas, Relationships: relationships}, nil
}

// Tables lists all tables in the public schema ordered by name.
func (s *schemaService) Tables() ([]TableInfo, error) {
	var tables []TableInfo
	err := s.db.Raw(`
		SELECT table_name, table_type
		FROM information_schema.tables
		WHERE table_schema = 'public'
		ORDER BY table_name`).Scan(&tables).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return tables, nil
}

// Table returns the schema of a single table, or ErrTableNotFound when no
// such table exists in the public schema.
func (s *schemaService) Table(name string) (*TableSchema, error) {
	var table TableInfo
	err := s.db.Raw(`
		SELECT table_name, table_type
		FROM information_schema.tables
		WHERE table_schema = 'public' AND table_name = ?`, name).Scan(&table).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if table.TableName == "" {
		return nil, apperrors.ErrTableNotFound
	}

	columns, err := s.columns(name)
	if err != nil {
		return nil, err
	}
	constraints, err := s.constraints(name)
	if err != nil {
		return nil, err
	}

	return &TableSchema{
		Name:        table.TableName,
		Type:        table.TableType,
		Columns:     columns,
		Constraints: constraints,
	}, nil
}

// Relationships lists every foreign key edge in the public schema, ordered
// by referencing table then column.
func (s *schemaService) Relationships() ([]TableRelationship, error) {
	var relationships []TableRelationship
	err := s.db.Raw(`
		SELECT
			tc.table_name AS from_table,
			kcu.column_name AS from_column,
			ccu.table_name AS to_table,
			ccu.column_name AS to_column,
			tc.constraint_name
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
			ON tc.constraint_name = kcu.constraint_name
			AND tc.table_schema = kcu.table_schema
		JOIN information_schema.constraint_column_usage ccu
			ON tc.constraint_name = ccu.constraint_name
			AND tc.table_schema = ccu.table_schema
		WHERE tc.table_schema = 'public'
		AND tc.constraint_type = 'FOREIGN KEY'
		ORDER BY tc.table_name, kcu.column_name`).Scan(&relationships).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return relationships, nil
}

// ReferenceData dumps one of the lookup tables, or all of them keyed by
// name when dataType is "all". Currencies and categories are filtered to
// active rows.
func (s *schemaService) ReferenceData(dataType string) (*ReferenceData, error) {
	switch dataType {
	case "currencies", "account_types", "categories", "all":
	default:
		return nil, apperrors.WithMessage(apperrors.ErrBadRequest,
			"Invalid data_type '"+dataType+"'. Must be one of: currencies, account_types, categories, all")
	}

	result := &ReferenceData{DataType: dataType}
	all := map[string]interface{}{}

	if dataType == "currencies" || dataType == "all" {
		var currencies []models.Currency
		err := s.db.Where("is_active = ?", true).
			Order("currency_code ASC").
			Find(&currencies).Error
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if dataType == "all" {
			all["currencies"] = currencies
		} else {
			result.Data = currencies
		}
	}

	if dataType == "account_types" || dataType == "all" {
		var accountTypes []models.AccountType
		err := s.db.Order("type_name ASC").Find(&accountTypes).Error
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if dataType == "all" {
			all["account_types"] = accountTypes
		} else {
			result.Data = accountTypes
		}
	}

	if dataType == "categories" || dataType == "all" {
		var categories []models.Category
		err := s.db.Where("is_active = ?", true).
			Order("category_group ASC, category_name ASC").
			Find(&categories).Error
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if dataType == "all" {
			all["categories"] = categories
		} else {
			result.Data = categories
		}
	}

	if dataType == "all" {
		result.Data = all
	}
	return result, nil
}

// columns lists a table's columns in ordinal order.
func (s *schemaService) columns(tableName string) ([]ColumnDefinition, error) {
	var columns []ColumnDefinition
	err := s.db.Raw(`
		SELECT
			column_name,
			data_type,
			is_nullable,
			column_default,
			character_maximum_length,
			numeric_precision,
			numeric_scale
		FROM information_schema.columns
		WHERE table_schema = 'public' AND table_name = ?
		ORDER BY ordinal_position`, tableName).Scan(&columns).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return columns, nil
}

// constraints lists a table's constraints. The left joins keep constraints
// that have no key column usage rows, such as CHECK constraints.
func (s *schemaService) constraints(tableName string) ([]ConstraintDefinition, error) {
	var constraints []ConstraintDefinition
	err := s.db.Raw(`
		SELECT
			tc.constraint_name,
			tc.constraint_type,
			kcu.column_name,
			ccu.table_name AS foreign_table_name,
			ccu.column_name AS foreign_column_name
		FROM information_schema.table_constraints tc
		LEFT JOIN information_schema.key_column_usage kcu
			ON tc.constraint_name = kcu.constraint_name
			AND tc.table_schema = kcu.table_schema
		LEFT JOIN information_schema.constraint_column_usage ccu
			ON tc.constraint_name = ccu.constraint_name
			AND tc.table_schema = ccu.table_schema
		WHERE tc.table_schema = 'public' AND tc.table_name = ?
		ORDER BY tc.constraint_name`, tableName).Scan(&constraints).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return constraints, nil
}
