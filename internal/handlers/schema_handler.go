package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendtrack/internal/services"
)

// SchemaHandler serves database catalog metadata.
type SchemaHandler struct {
	schemaService services.SchemaServicer
}

// NewSchemaHandler creates a new SchemaHandler.
func NewSchemaHandler(schemaService services.SchemaServicer) *SchemaHandler {
	return &SchemaHandler{schemaService: schemaService}
}

// GetSchema handles retrieving the complete database schema.
// @Summary     Get database schema
// @Description Get every table with columns, constraints, and relationships
// @Tags        schema
// @Accept      json
// @Produce     json
// @Success     200 {object} services.DatabaseSchema "Complete schema"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /schema [get]
func (h *SchemaHandler) GetSchema(c *gin.Context) {
	schema, err := h.schemaService.Schema()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, schema)
}

// GetTables handles listing all tables.
// @Summary     List tables
// @Description Get all tables in the public schema
// @Tags        schema
// @Accept      json
// @Produce     json
// @Success     200 {array} services.TableInfo "Tables"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /schema/tables [get]
func (h *SchemaHandler) GetTables(c *gin.Context) {
	tables, err := h.schemaService.Tables()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, tables)
}

// GetTable handles retrieving one table's schema.
// @Summary     Get table schema
// @Description Get a single table's columns and constraints
// @Tags        schema
// @Accept      json
// @Produce     json
// @Param       name path string true "Table name"
// @Success     200 {object} services.TableSchema "Table schema"
// @Failure     404 {object} ErrorResponse "Table not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /schema/tables/{name} [get]
func (h *SchemaHandler) GetTable(c *gin.Context) {
	table, err := h.schemaService.Table(c.Param("name"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, table)
}

// GetRelationships handles listing all foreign key relationships.
// @Summary     List relationships
// @Description Get every foreign key edge in the database
// @Tags        schema
// @Accept      json
// @Produce     json
// @Success     200 {array} services.TableRelationship "Relationships"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /schema/relationships [get]
func (h *SchemaHandler) GetRelationships(c *gin.Context) {
	relationships, err := h.schemaService.Relationships()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, relationships)
}

// GetReferenceData handles dumping the lookup tables.
// @Summary     Get reference data
// @Description Dump one or all lookup tables (currencies/account_types/categories/all)
// @Tags        schema
// @Accept      json
// @Produce     json
// @Param       type query string true "Data type (currencies/account_types/categories/all)"
// @Success     200 {object} services.ReferenceData "Reference data"
// @Failure     400 {object} ErrorResponse "Missing or invalid data type"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /schema/reference-data [get]
func (h *SchemaHandler) GetReferenceData(c *gin.Context) {
	var query struct {
		Type string `form:"type" binding:"required"`
	}
	if err := bindQuery(c, &query); err != nil {
		respondWithError(c, err)
		return
	}

	data, err := h.schemaService.ReferenceData(query.Type)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}
