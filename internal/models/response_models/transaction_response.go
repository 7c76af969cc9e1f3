package response_models

// TransactionRow is the read-only admin projection of a transaction.
type TransactionRow struct {
	TransactionID string `json:"transaction_id"`
	OrderID       string `json:"order_id"`
	Destination   string `json:"destination"`
	BuyerName     string `json:"buyer_name"`
	BuyerEmail    string `json:"buyer_email"`
	Quantity      int    `json:"quantity"`
	Total         int64  `json:"total"`
	VisitDate     string `json:"visit_date"`
	Status        string `json:"status"`
	PaymentMethod string `json:"payment_method,omitempty"`
	CreatedAt     string `json:"created_at"`
	ConfirmedAt   string `json:"confirmed_at,omitempty"`
}
