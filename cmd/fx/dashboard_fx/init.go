package dashboard_fx

import (
	"go.uber.org/fx"

	"desawisata/internal/api/controllers"
	"desawisata/internal/repositories"
	"desawisata/internal/services"
)

var Module = fx.Provide(
	provideDashboardService, provideDashboardController)

func provideDashboardService(transactions repositories.TransactionRepository) services.DashboardServiceInterface {
	return services.NewDashboardService(transactions)
}

func provideDashboardController(dashboardService services.DashboardServiceInterface) *controllers.DashboardController {
	return controllers.NewDashboardController(dashboardService)
}
