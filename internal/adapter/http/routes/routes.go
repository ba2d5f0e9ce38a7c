package routes

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/qwhomes/proposal-service/docs" // This will be auto-generated
	"github.com/qwhomes/proposal-service/internal/adapter/http/handlers"
	"github.com/qwhomes/proposal-service/internal/adapter/persistence/repository"
	"github.com/qwhomes/proposal-service/internal/infrastructure/database"
	"github.com/qwhomes/proposal-service/internal/infrastructure/export"
	"github.com/qwhomes/proposal-service/internal/usecase"
	"github.com/qwhomes/proposal-service/internal/usecase/interfaces"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	db := database.ConnectPostgres()

	proposalRepo := repository.NewProposalPostgresRepository(db)
	productRepo := repository.NewProductPostgresRepository(db)
	catalog := repository.NewCatalogPostgresRepository(db)

	excelRenderer := export.NewExcelRenderer()
	renderers := []interfaces.IProposalRenderer{export.NewPDFRenderer(), excelRenderer}

	proposalUseCase := usecase.NewProposalUseCase(proposalRepo, catalog, renderers, excelRenderer, export.NewFileStore())
	productUseCase := usecase.NewProductUseCase(productRepo)

	proposalHandler := handlers.NewProposalHandler(proposalUseCase)
	productHandler := handlers.NewProductHandler(productUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addProposalRoutes(v1, proposalHandler)
	addProductRoutes(v1, productHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(identityMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
