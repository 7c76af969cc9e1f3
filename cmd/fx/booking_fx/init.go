package booking_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"desawisata/internal/api/controllers"
	"desawisata/internal/gateway"
	"desawisata/internal/repositories"
	"desawisata/internal/services"
)

var Module = fx.Provide(
	provideTransactionRepo, provideOrderValidator, provideBookingService, provideBookingController)

func provideTransactionRepo(db *gorm.DB) repositories.TransactionRepository {
	return repositories.NewTransactionRepository(db)
}

func provideOrderValidator() *services.OrderValidator {
	return services.NewOrderValidator()
}

func provideBookingService(
	orderValidator *services.OrderValidator,
	destinations repositories.DestinationRepository,
	transactions repositories.TransactionRepository,
	gw gateway.PaymentGateway) services.BookingServiceInterface {
	return services.NewBookingService(orderValidator, destinations, transactions, gw)
}

func provideBookingController(bookingService services.BookingServiceInterface) *controllers.BookingController {
	return controllers.NewBookingController(bookingService)
}
