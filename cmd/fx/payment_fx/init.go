package payment_fx

import (
	"os"

	"go.uber.org/fx"

	"desawisata/internal/api/controllers"
	"desawisata/internal/gateway"
	"desawisata/internal/repositories"
	"desawisata/internal/services"
)

var Module = fx.Provide(
	provideGateway, provideConfirmationService, providePaymentController,
)

func provideGateway() gateway.PaymentGateway {
	return gateway.NewSnapGateway(gateway.Config{
		ServerKey:    os.Getenv("MIDTRANS_SERVER_KEY"),
		ClientKey:    os.Getenv("MIDTRANS_CLIENT_KEY"),
		Production:   os.Getenv("MIDTRANS_ENV") == "production",
		ProviderName: "midtrans",
	})
}

func provideConfirmationService(
	transactions repositories.TransactionRepository,
	gw gateway.PaymentGateway,
	mailService services.IMailService) services.ConfirmationServiceInterface {
	return services.NewConfirmationService(transactions, gw, mailService)
}

func providePaymentController(
	confirmationService services.ConfirmationServiceInterface,
	bookingService services.BookingServiceInterface,
	gw gateway.PaymentGateway) *controllers.PaymentController {
	return controllers.NewPaymentController(confirmationService, bookingService, gw)
}
