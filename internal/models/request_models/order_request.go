package request_models

type BuyerDetail struct {
	Name  string `json:"name" binding:"required" validate:"required,min=2,max=100"`
	Email string `json:"email" binding:"required" validate:"required,email"`
	Phone string `json:"phone" binding:"required" validate:"required,idphone"`
}

type CreateOrderRequest struct {
	DestinationID string      `json:"destination_id" binding:"required" validate:"required,uuid4"`
	Quantity      int         `json:"quantity" binding:"required" validate:"gte=1,lte=10"`
	VisitDate     string      `json:"visit_date" binding:"required" validate:"required,visitdate"`
	Buyer         BuyerDetail `json:"buyer" binding:"required"`
}
