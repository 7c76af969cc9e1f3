package response_models

type TicketResponse struct {
	TransactionID string `json:"transaction_id"`
	OrderID       string `json:"order_id"`
	Destination   string `json:"destination"`
	Village       string `json:"village"`
	BuyerName     string `json:"buyer_name"`
	Quantity      int    `json:"quantity"`
	VisitDate     string `json:"visit_date"`
	Total         int64  `json:"total"`
	QRPayload     string `json:"qr_payload"`
}
