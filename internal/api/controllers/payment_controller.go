package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"desawisata/internal/gateway"
	"desawisata/internal/services"
	"desawisata/pkg/utils"
)

type PaymentController struct {
	confirmationService services.ConfirmationServiceInterface
	bookingService      services.BookingServiceInterface
	gw                  gateway.PaymentGateway
}

func NewPaymentController(
	confirmationService services.ConfirmationServiceInterface,
	bookingService services.BookingServiceInterface,
	gw gateway.PaymentGateway) *PaymentController {
	return &PaymentController{
		confirmationService: confirmationService,
		bookingService:      bookingService,
		gw:                  gw,
	}
}

// HandleNotification godoc
// @Summary Payment gateway webhook
// @Description Server-to-server payment notification; signature is verified before any field is trusted
// @Tags Payments
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /payments/notification [post]
func (p *PaymentController) HandleNotification(c *gin.Context) {

	var notification gateway.Notification
	if err := c.ShouldBindJSON(&notification); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid notification payload")
		return
	}

	if err := p.gw.VerifySignature(&notification); err != nil {
		// Potential forgery; nothing reaches the confirmation handler.
		utils.HandleServiceError(c, err)
		return
	}

	result, err := p.confirmationService.ApplyNotification(c.Request.Context(), &notification)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"order_id": notification.OrderID, "result": string(result)},
		"Notification processed")
}

// SyncStatus godoc
// @Summary Reconcile an order after the payment popup closes
// @Description Advisory client callback; the gateway is queried directly and only that verified answer can change state
// @Tags Payments
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} utils.APIResponse
// @Router /payments/{orderId}/sync [post]
func (p *PaymentController) SyncStatus(c *gin.Context) {
	orderID := c.Param("orderId")

	if _, err := p.confirmationService.SyncFromGateway(c.Request.Context(), orderID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	status, err := p.bookingService.GetStatus(c.Request.Context(), orderID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, status, "Order status synchronized")
}

// GetStatus godoc
// @Summary Poll order status
// @Description Read-only status for the waiting page
// @Tags Payments
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} utils.APIResponse
// @Router /payments/{orderId}/status [get]
func (p *PaymentController) GetStatus(c *gin.Context) {
	orderID := c.Param("orderId")

	status, err := p.bookingService.GetStatus(c.Request.Context(), orderID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, status, "Order status fetched")
}
