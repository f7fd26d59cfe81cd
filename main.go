package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"pethotel-backend/config"
	"pethotel-backend/controllers"
	"pethotel-backend/jobs"
	"pethotel-backend/routes"
	"pethotel-backend/services"
	"pethotel-backend/services/logger"
)

// @title Pet Hotel Reservation API
// @version 1.0
// @description Reservation management backend with availability reconciliation
// @BasePath /api/v1
func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file, falling back to the environment: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	snapshotStore := services.NewSnapshotStore(services.NewGormRoomUpdater(config.DB))
	reconciler := services.NewReconciler(services.ReconcilerOptions{
		DB:     config.DB,
		Store:  snapshotStore,
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
	})
	reconciler.RefreshSnapshots()
	jobs.SetReconciler(reconciler)

	paymentClient := services.NewPaymentClient(
		config.GetEnvOrDefault("PAYMENT_API_URL", "https://payments.example.com/v1"),
		config.GetEnv("PAYMENT_API_KEY"),
	)

	controllers.Init(snapshotStore, paymentClient)

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
