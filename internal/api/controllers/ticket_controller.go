package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"desawisata/internal/services"
	"desawisata/pkg/utils"
)

type TicketController struct {
	ticketService services.TicketServiceInterface
}

func NewTicketController(ticketService services.TicketServiceInterface) *TicketController {
	return &TicketController{
		ticketService: ticketService,
	}
}

// GetTicket godoc
// @Summary Get the e-ticket of a paid transaction
// @Description Returns the ticket view; refused while payment is not completed
// @Tags Tickets
// @Produce json
// @Param transactionId path string true "Transaction ID"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /tickets/{transactionId} [get]
func (t *TicketController) GetTicket(c *gin.Context) {
	transactionID := c.Param("transactionId")

	ticket, err := t.ticketService.GetTicket(c.Request.Context(), transactionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ticket, "Ticket fetched successfully")
}

// GetTicketQR godoc
// @Summary Get the ticket QR code
// @Description Renders the ticket verification payload as a PNG QR code
// @Tags Tickets
// @Produce png
// @Param transactionId path string true "Transaction ID"
// @Router /tickets/{transactionId}/qr.png [get]
func (t *TicketController) GetTicketQR(c *gin.Context) {
	transactionID := c.Param("transactionId")

	png, err := t.ticketService.GetTicketQR(c.Request.Context(), transactionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
