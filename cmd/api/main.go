package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"spendtrack/internal/config"
	"spendtrack/internal/database"
	"spendtrack/internal/handlers"
	"spendtrack/internal/logger"
	"spendtrack/internal/middleware"
	"spendtrack/internal/services"
	"spendtrack/internal/validator"
)

// @title           SpendTrack API
// @version         1.0
// @description     SpendTrack is a personal expense tracking API for managing accounts, transactions, categories, and payees, with analytics over spending history.

// @host      localhost:8000
// @BasePath  /

func main() {
	logger.Init(os.Getenv("ENV"), os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	db := dbManager.DB()
	accountService := services.NewAccountService(db)
	transactionService := services.NewTransactionService(db)
	categoryService := services.NewCategoryService(db)
	payeeService := services.NewPayeeService(db)
	referenceService := services.NewReferenceService(db)
	analyticsService := services.NewAnalyticsService(db)
	schemaService := services.NewSchemaService(db)

	accountHandler := handlers.NewAccountHandler(accountService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	payeeHandler := handlers.NewPayeeHandler(payeeService)
	referenceHandler := handlers.NewReferenceHandler(referenceService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	schemaHandler := handlers.NewSchemaHandler(schemaService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "healthy",
			"environment": appConfig.Env,
			"version":     config.Version,
		})
	})

	// Account routes
	accounts := router.Group("/accounts")
	accounts.POST("", accountHandler.CreateAccount)
	accounts.GET("", accountHandler.GetAccounts)
	accounts.GET("/:id", accountHandler.GetAccount)
	accounts.PUT("/:id", accountHandler.UpdateAccount)
	accounts.PATCH("/:id", accountHandler.UpdateAccount)
	accounts.DELETE("/:id", accountHandler.DeleteAccount)

	// Transaction routes
	transactions := router.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.PATCH("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Category routes
	categories := router.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetCategories)
	categories.GET("/:id", categoryHandler.GetCategory)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.PATCH("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Payee routes
	payees := router.Group("/payees")
	payees.POST("", payeeHandler.CreatePayee)
	payees.GET("", payeeHandler.GetPayees)
	payees.GET("/:id", payeeHandler.GetPayee)
	payees.PUT("/:id", payeeHandler.UpdatePayee)
	payees.PATCH("/:id", payeeHandler.UpdatePayee)
	payees.DELETE("/:id", payeeHandler.DeletePayee)

	// Read-only reference data
	reference := router.Group("/reference")
	reference.GET("/account-types", referenceHandler.GetAccountTypes)
	reference.GET("/currencies", referenceHandler.GetCurrencies)

	// Analytics routes
	analytics := router.Group("/analytics")
	analytics.GET("/summary", analyticsHandler.GetSummary)
	analytics.GET("/breakdown", analyticsHandler.GetBreakdown)
	analytics.GET("/trend", analyticsHandler.GetTrend)

	// Schema introspection routes
	schema := router.Group("/schema")
	schema.GET("", schemaHandler.GetSchema)
	schema.GET("/tables", schemaHandler.GetTables)
	schema.GET("/tables/:name", schemaHandler.GetTable)
	schema.GET("/relationships", schemaHandler.GetRelationships)
	schema.GET("/reference-data", schemaHandler.GetReferenceData)

	log.Infof("Starting SpendTrack API server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
