package request_models

type UpsertDestinationRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=120"`
	Village     string `json:"village" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	ContactInfo string `json:"contact_info"`
	TicketPrice int64  `json:"ticket_price" binding:"required,gt=0"`
	IsOpen      *bool  `json:"is_open"`
}
