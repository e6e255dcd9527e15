package routes

import (
	"log"
	"net/http"
	"os"
	"strconv"

	_ "azhub/docs" // This will be auto-generated
	"azhub/internal/adapter/http/handlers"
	repository2 "azhub/internal/adapter/persistence/repository"
	"azhub/internal/infrastructure/database"
	"azhub/internal/usecase"
	"azhub/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
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
	var (
		propertyRepo     interfaces.IPropertyRepository
		notificationRepo interfaces.INotificationRepository
	)

	// PERSISTENCE_MOCK=true runs against seeded in-memory stores, which is
	// what local dev and demos use. Anything else goes to DynamoDB.
	if mock, _ := strconv.ParseBool(os.Getenv("PERSISTENCE_MOCK")); mock {
		log.Printf("[startup][persistence] PERSISTENCE_MOCK enabled, using seeded in-memory repositories")
		propertyRepo = repository2.NewPropertyMemoryRepository(repository2.SeedProperties())
		notificationRepo = repository2.NewNotificationMemoryRepository(repository2.SeedNotifications())
	} else {
		ddb := database.ConnectDynamoDB()
		propertyRepo = repository2.NewPropertyDynamoRepository(ddb)
		notificationRepo = repository2.NewNotificationDynamoRepository(ddb)
	}

	clock := usecase.SystemClock{}
	propertyUseCase := usecase.NewPropertyUseCase(propertyRepo, clock)
	bidUseCase := usecase.NewBidUseCase(propertyRepo, clock)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)
	confirmationUseCase := usecase.NewConfirmationUseCase(propertyUseCase, bidUseCase)

	propertyHandler := handlers.NewPropertyHandler(propertyUseCase)
	bidHandler := handlers.NewBidHandler(bidUseCase, propertyUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)
	confirmationHandler := handlers.NewConfirmationHandler(confirmationUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addListingRoutes(v1, propertyHandler, bidHandler, notificationHandler, confirmationHandler)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
