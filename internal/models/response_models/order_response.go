package response_models

type OrderResponse struct {
	TransactionID string `json:"transaction_id"`
	OrderID       string `json:"order_id"`
	Status        string `json:"status"`
	Quantity      int    `json:"quantity"`
	UnitPrice     int64  `json:"unit_price"`
	Total         int64  `json:"total"`
	VisitDate     string `json:"visit_date"`
	PaymentToken  string `json:"payment_token,omitempty"`
	RedirectURL   string `json:"redirect_url,omitempty"`
}

type OrderStatusResponse struct {
	OrderID       string `json:"order_id"`
	Status        string `json:"status"`
	PaymentMethod string `json:"payment_method,omitempty"`
	ConfirmedAt   string `json:"confirmed_at,omitempty"`
}
