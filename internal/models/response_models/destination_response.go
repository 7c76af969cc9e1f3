package response_models

type DestinationResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Village     string `json:"village"`
	Description string `json:"description,omitempty"`
	Address     string `json:"address,omitempty"`
	ContactInfo string `json:"contact_info,omitempty"`
	TicketPrice int64  `json:"ticket_price"`
	IsOpen      bool   `json:"is_open"`
}
