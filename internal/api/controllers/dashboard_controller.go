package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"desawisata/internal/services"
	"desawisata/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetSummary godoc
// @Summary Booking summary for the admin dashboard
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/dashboard [get]
func (d *DashboardController) GetSummary(c *gin.Context) {
	summary, err := d.dashboardService.BuildSummary(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Dashboard summary fetched successfully")
}

// ListTransactions godoc
// @Summary List transactions
// @Description Read-only projection of the transaction store
// @Tags Dashboard
// @Produce json
// @Param status query string false "Filter by status (PENDING, PAID, CANCELLED)"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 20, max: 100)"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/transactions [get]
func (d *DashboardController) ListTransactions(c *gin.Context) {

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size")
		return
	}

	rows, err := d.dashboardService.ListTransactions(c.Request.Context(), c.Query("status"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, rows, "Transactions fetched successfully")
}
