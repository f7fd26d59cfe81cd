package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pethotel-backend/constants"
	"pethotel-backend/controllers"
	middlewares "pethotel-backend/middleware"

	_ "pethotel-backend/docs"
)

func SetupRoutes(router *gin.Engine, m *melody.Melody) {

	router.Use(middlewares.ErrorHandler())

	v1 := router.Group("/api/v1")

	v1.GET("/profile", controllers.GetCustomerProfile)

	v1.GET("/customers", controllers.GetCustomers)
	v1.GET("/customers/search", controllers.SearchCustomers)
	v1.GET("/customers/:id", controllers.GetCustomerDetail)
	v1.POST("/customers", middlewares.AuthMiddleware(), controllers.CreateCustomer)
	v1.PUT("/customers/:id", middlewares.AuthMiddleware(), controllers.UpdateCustomer)
	v1.DELETE("/customers/:id", middlewares.AuthMiddleware(constants.RoleManager, constants.RoleAdmin), controllers.DeleteCustomer)
	v1.POST("/customers/:id/pets", middlewares.AuthMiddleware(), controllers.CreatePet)
	v1.PUT("/pets/:id", middlewares.AuthMiddleware(), controllers.UpdatePet)
	v1.DELETE("/pets/:id", middlewares.AuthMiddleware(), controllers.DeletePet)

	v1.GET("/employees", middlewares.AuthMiddleware(constants.RoleManager, constants.RoleAdmin), controllers.GetEmployees)
	v1.GET("/employees/:id", middlewares.AuthMiddleware(constants.RoleManager, constants.RoleAdmin), controllers.GetEmployeeDetail)
	v1.POST("/employees", middlewares.AuthMiddleware(constants.RoleManager, constants.RoleAdmin), controllers.CreateEmployee)
	v1.PUT("/employees/:id", middlewares.AuthMiddleware(constants.RoleManager, constants.RoleAdmin), controllers.UpdateEmployee)
	v1.DELETE("/employees/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.DeleteEmployee)

	v1.GET("/services", controllers.GetServices)
	v1.GET("/services/:id", controllers.GetServiceDetail)
	v1.POST("/services", middlewares.AuthMiddleware(constants.RoleManager, constants.RoleAdmin), controllers.CreateService)
	v1.PUT("/services/:id", middlewares.AuthMiddleware(constants.RoleManager, constants.RoleAdmin), controllers.UpdateService)
	v1.DELETE("/services/:id", middlewares.AuthMiddleware(constants.RoleManager, constants.RoleAdmin), controllers.DeleteService)

	v1.GET("/rooms", controllers.GetRooms)
	v1.GET("/rooms/available", controllers.GetAvailableRooms)
	v1.GET("/rooms/:id", controllers.GetRoomDetail)
	v1.POST("/rooms", middlewares.AuthMiddleware(constants.RoleManager, constants.RoleAdmin), controllers.CreateRoom)
	v1.PUT("/rooms/:id", middlewares.AuthMiddleware(constants.RoleManager, constants.RoleAdmin), controllers.UpdateRoom)
	v1.DELETE("/rooms/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.DeleteRoom)
	v1.PUT("/roomAvailability", middlewares.AuthMiddleware(), controllers.ChangeRoomAvailability)
	v1.GET("/roomMismatches", middlewares.AuthMiddleware(), controllers.GetRoomMismatches)
	v1.POST("/rooms/img/upload/:id", middlewares.AuthMiddleware(constants.RoleManager, constants.RoleAdmin), controllers.UploadRoomImage)

	v1.GET("/reservations", controllers.GetReservations)
	v1.GET("/reservations/active", controllers.GetActiveReservations)
	v1.GET("/reservations/reports", middlewares.AuthMiddleware(constants.RoleManager, constants.RoleAdmin), controllers.GetReservationReports)
	v1.GET("/reservations/customer/:id", controllers.GetReservationsByCustomer)
	v1.GET("/reservations/room/:id", controllers.GetReservationsByRoom)
	v1.GET("/reservations/:id", controllers.GetReservationDetail)
	v1.POST("/reservations", middlewares.AuthMiddleware(), controllers.CreateReservation)
	v1.PUT("/reservations/:id", middlewares.AuthMiddleware(), controllers.UpdateReservation)
	v1.DELETE("/reservations/:id", middlewares.AuthMiddleware(constants.RoleManager, constants.RoleAdmin), controllers.DeleteReservation)
	v1.PUT("/reservationStatus", middlewares.AuthMiddleware(), controllers.ChangeReservationStatus)
	v1.POST("/reservations/:id/checkin", middlewares.AuthMiddleware(), controllers.CheckInReservation)
	v1.POST("/reservations/:id/checkout", middlewares.AuthMiddleware(), controllers.CheckOutReservation)

	v1.GET("/dashboard/stats", middlewares.AuthMiddleware(), controllers.GetDashboardStats)
	v1.GET("/dashboard/recent-reservations", middlewares.AuthMiddleware(), controllers.GetRecentReservations)

	v1.POST("/payments/intent", middlewares.AuthMiddleware(), controllers.CreatePaymentIntent)
	v1.POST("/payments/confirm", middlewares.AuthMiddleware(), controllers.ConfirmPayment)

	//ws
	v1.GET("/test-broadcast", middlewares.AuthMiddleware(constants.RoleAdmin), func(c *gin.Context) {
		m.Broadcast([]byte("availability check requested"))
		c.String(200, "Broadcast message sent!")
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
