package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"desawisata/cmd/fx/account_fx"
	"desawisata/cmd/fx/booking_fx"
	"desawisata/cmd/fx/dashboard_fx"
	"desawisata/cmd/fx/db_fx"
	"desawisata/cmd/fx/destination_fx"
	"desawisata/cmd/fx/mail_fx"
	"desawisata/cmd/fx/payment_fx"
	"desawisata/cmd/fx/ticket_fx"
	"desawisata/internal/api/controllers"
	"desawisata/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	app := fx.New(
		db_fx.Module,
		destination_fx.Module,
		booking_fx.Module,
		payment_fx.Module,
		ticket_fx.Module,
		account_fx.Module,
		mail_fx.Module,
		dashboard_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	destinationController *controllers.DestinationController,
	bookingController *controllers.BookingController,
	paymentController *controllers.PaymentController,
	ticketController *controllers.TicketController,
	accountController *controllers.AccountController,
	dashboardController *controllers.DashboardController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		destinationController,
		bookingController,
		paymentController,
		ticketController,
		accountController,
		dashboardController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	destinationController *controllers.DestinationController,
	bookingController *controllers.BookingController,
	paymentController *controllers.PaymentController,
	ticketController *controllers.TicketController,
	accountController *controllers.AccountController,
	dashboardController *controllers.DashboardController) {

	destinationsGroup := r.Group("/destinations")
	destinationsGroup.GET("", destinationController.ListDestinations)
	destinationsGroup.GET("/:id", destinationController.GetDestination)

	// Guest checkout: no auth on the booking flow.
	bookingsGroup := r.Group("/bookings")
	bookingsGroup.POST("", bookingController.CreateOrder)
	bookingsGroup.POST("/:orderId/token", bookingController.RetryToken)

	paymentsGroup := r.Group("/payments")
	paymentsGroup.POST("/notification", paymentController.HandleNotification)
	paymentsGroup.POST("/:orderId/sync", paymentController.SyncStatus)
	paymentsGroup.GET("/:orderId/status", paymentController.GetStatus)

	ticketsGroup := r.Group("/tickets")
	ticketsGroup.GET("/:transactionId", ticketController.GetTicket)
	ticketsGroup.GET("/:transactionId/qr.png", ticketController.GetTicketQR)

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", accountController.Register)
	accountsGroup.POST("/login", accountController.Login)

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	adminGroup.GET("/dashboard", dashboardController.GetSummary)
	adminGroup.GET("/transactions", dashboardController.ListTransactions)
	adminGroup.POST("/destinations", destinationController.CreateDestination)
	adminGroup.PUT("/destinations/:id", destinationController.UpdateDestination)
}
