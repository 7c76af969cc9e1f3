package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"desawisata/internal/models/request_models"
	"desawisata/internal/services"
	"desawisata/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingController(bookingService services.BookingServiceInterface) *BookingController {
	return &BookingController{
		bookingService: bookingService,
	}
}

// CreateOrder godoc
// @Summary Create a booking order
// @Description Validate the order, snapshot the ticket price and open a payment session
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body request_models.CreateOrderRequest true "Create Order Request"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /bookings [post]
func (b *BookingController) CreateOrder(c *gin.Context) {

	var req request_models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	order, err := b.bookingService.CreateOrder(c.Request.Context(), req)
	if errors.Is(err, utils.ErrGatewayUnavailable) {
		// The PENDING order exists; the caller retries the token with the
		// order id instead of placing the order again.
		utils.RespondErrorWithData(c, http.StatusBadGateway,
			"Order saved but the payment service is unavailable, retry the payment", order)
		return
	}
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, order, "Order created successfully")
}

// RetryToken godoc
// @Summary Retry payment token acquisition
// @Description Request a new payment session for an existing pending order
// @Tags Bookings
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} utils.APIResponse
// @Router /bookings/{orderId}/token [post]
func (b *BookingController) RetryToken(c *gin.Context) {
	orderID := c.Param("orderId")

	order, err := b.bookingService.RetryToken(c.Request.Context(), orderID)
	if errors.Is(err, utils.ErrGatewayUnavailable) {
		utils.RespondErrorWithData(c, http.StatusBadGateway,
			"Payment service is unavailable, please try again", order)
		return
	}
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, order, "Payment token refreshed")
}
