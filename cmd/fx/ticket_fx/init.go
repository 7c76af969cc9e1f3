package ticket_fx

import (
	"os"

	"go.uber.org/fx"

	"desawisata/internal/api/controllers"
	"desawisata/internal/repositories"
	"desawisata/internal/services"
)

var Module = fx.Provide(
	provideTicketService, provideTicketController)

func provideTicketService(transactions repositories.TransactionRepository) services.TicketServiceInterface {
	return services.NewTicketService(transactions, os.Getenv("APP_BASE_URL"))
}

func provideTicketController(ticketService services.TicketServiceInterface) *controllers.TicketController {
	return controllers.NewTicketController(ticketService)
}
