package routes

import (
	"log"
	"strconv"

	_ "carmasters/docs" // This will be auto-generated
	"carmasters/internal/adapter/http/handlers"
	"carmasters/internal/adapter/http/middleware"
	repository2 "carmasters/internal/adapter/persistence/repository"
	"carmasters/internal/infrastructure/auth"
	"carmasters/internal/infrastructure/database"
	"carmasters/internal/infrastructure/qr"
	"carmasters/internal/infrastructure/uploads"
	"carmasters/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := defaultPort
	if v, err := strconv.Atoi(getenvDefault("PORT", "")); err == nil && v > 0 {
		port = v
	}
	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	store := database.Connect()

	uploadsDir := getenvDefault("UPLOADS_DIR", "./uploads")
	baseURL := getenvDefault("BASE_URL", "http://localhost:8080")
	tokens := auth.NewTokenManager(getenvDefault("JWT_SECRET", "dev_secret_change"))

	customerRepo := repository2.NewCustomerSQLRepository(store)
	vehicleRepo := repository2.NewVehicleSQLRepository(store)
	orderRepo := repository2.NewOrderSQLRepository(store)
	costRepo := repository2.NewCostLineSQLRepository(store)
	userRepo := repository2.NewUserSQLRepository(store)
	auditLog := repository2.NewAuditSQLRepository(store)

	tracking := qr.NewGenerator(baseURL, uploadsDir)
	imageStore := uploads.NewDiskStorage(uploadsDir)

	customerUseCase := usecase.NewCustomerUseCase(customerRepo, auditLog)
	vehicleUseCase := usecase.NewVehicleUseCase(vehicleRepo, customerRepo, auditLog)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, customerRepo, vehicleRepo, costRepo, tracking, auditLog)
	userUseCase := usecase.NewUserUseCase(userRepo, tokens)

	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	vehicleHandler := handlers.NewVehicleHandler(vehicleUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase, imageStore)
	authHandler := handlers.NewAuthHandler(userUseCase)

	authRequired := middleware.AuthRequired(tokens)

	// Evidence images and tracking QRs are served straight from disk.
	router.Static("/uploads", uploadsDir)

	root := router.Group("")
	addPingRoutes(root)
	addAuthRoutes(root, authHandler)
	addShopRoutes(root, authRequired, customerHandler, vehicleHandler, orderHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
