package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/datatypes"

	"desawisata/internal/gateway"
	"desawisata/internal/models/db_models"
	"desawisata/internal/models/request_models"
	"desawisata/internal/models/response_models"
	"desawisata/internal/repositories"
	"desawisata/pkg/utils"
)

type BookingServiceInterface interface {
	// CreateOrder validates, snapshots the destination price, persists a
	// PENDING transaction and requests a payment token. On a gateway
	// failure the response still carries the order id (transaction stays
	// PENDING) together with ErrGatewayUnavailable so the caller can
	// retry token acquisition instead of creating a duplicate order.
	CreateOrder(ctx context.Context, req request_models.CreateOrderRequest) (*response_models.OrderResponse, error)

	// RetryToken re-requests a payment token for an existing PENDING
	// transaction. Idempotent retry key is the order id.
	RetryToken(ctx context.Context, orderID string) (*response_models.OrderResponse, error)

	GetStatus(ctx context.Context, orderID string) (*response_models.OrderStatusResponse, error)
}

type BookingService struct {
	orderValidator *OrderValidator
	destinations   repositories.DestinationRepository
	transactions   repositories.TransactionRepository
	gw             gateway.PaymentGateway
}

func NewBookingService(
	orderValidator *OrderValidator,
	destinations repositories.DestinationRepository,
	transactions repositories.TransactionRepository,
	gw gateway.PaymentGateway) BookingServiceInterface {
	return &BookingService{
		orderValidator: orderValidator,
		destinations:   destinations,
		transactions:   transactions,
		gw:             gw,
	}
}

func (b *BookingService) CreateOrder(ctx context.Context, req request_models.CreateOrderRequest) (*response_models.OrderResponse, error) {

	if err := b.orderValidator.ValidateOrder(req); err != nil {
		return nil, err
	}

	destination, err := b.destinations.GetByID(ctx, req.DestinationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if destination == nil {
		return nil, utils.ErrDestinationNotFound
	}

	visitDate, err := utils.ParseVisitDate(req.VisitDate)
	if err != nil {
		return nil, utils.ValidationErrors{{Field: "visit_date", Reason: "must be a date (YYYY-MM-DD) later than today"}}
	}

	txn := &db_models.Transaction{
		OrderID:       newOrderID(),
		DestinationID: destination.ID,
		BuyerName:     req.Buyer.Name,
		BuyerEmail:    req.Buyer.Email,
		BuyerPhone:    req.Buyer.Phone,
		Quantity:      req.Quantity,
		UnitPrice:     destination.TicketPrice,
		Total:         destination.TicketPrice * int64(req.Quantity),
		VisitDate:     datatypes.Date(visitDate),
		Status:        db_models.TxnStatusPending,
	}

	if err := b.transactions.Create(ctx, txn); err != nil {
		if err == utils.ErrOrderAlreadyExists {
			// Order id collision is a freak event; one fresh id is enough.
			txn.OrderID = newOrderID()
			if err := b.transactions.Create(ctx, txn); err != nil {
				return nil, utils.ErrDatabaseError
			}
		} else {
			return nil, utils.ErrDatabaseError
		}
	}

	resp := orderResponse(txn)

	token, err := b.requestAndSaveToken(ctx, txn, destination)
	if err != nil {
		// Transaction stays PENDING without a token; never assume an
		// outcome from a failed or timed-out gateway call.
		log.Printf("Token request failed for order %s: %v", txn.OrderID, err)
		return resp, utils.ErrGatewayUnavailable
	}

	resp.PaymentToken = token.Token
	resp.RedirectURL = token.RedirectURL
	return resp, nil
}

func (b *BookingService) RetryToken(ctx context.Context, orderID string) (*response_models.OrderResponse, error) {
	txn, err := b.transactions.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if txn == nil {
		return nil, utils.ErrTransactionNotFound
	}
	if txn.Status.Terminal() {
		return nil, utils.ErrTicketNotPaid
	}

	resp := orderResponse(txn)

	token, err := b.requestAndSaveToken(ctx, txn, &txn.Destination)
	if err != nil {
		log.Printf("Token retry failed for order %s: %v", txn.OrderID, err)
		return resp, utils.ErrGatewayUnavailable
	}

	resp.PaymentToken = token.Token
	resp.RedirectURL = token.RedirectURL
	return resp, nil
}

func (b *BookingService) GetStatus(ctx context.Context, orderID string) (*response_models.OrderStatusResponse, error) {
	txn, err := b.transactions.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if txn == nil {
		return nil, utils.ErrTransactionNotFound
	}

	resp := &response_models.OrderStatusResponse{
		OrderID: txn.OrderID,
		Status:  string(txn.Status),
	}
	if meta := decodePaymentMeta(txn.PaymentMeta); meta != nil {
		resp.PaymentMethod = meta.Method
	}
	if txn.ConfirmedAt != nil {
		resp.ConfirmedAt = utils.FormatRFC3339Jakarta(utils.FromUnixSecondsJakarta(*txn.ConfirmedAt))
	}
	return resp, nil
}

func (b *BookingService) requestAndSaveToken(ctx context.Context, txn *db_models.Transaction, destination *db_models.Destination) (*gateway.TokenResult, error) {
	token, err := b.gw.RequestToken(ctx, txn.OrderID, txn.Total,
		gateway.Customer{
			Name:  txn.BuyerName,
			Email: txn.BuyerEmail,
			Phone: txn.BuyerPhone,
		},
		gateway.OrderLine{
			DestinationID:   txn.DestinationID.String(),
			DestinationName: destination.Name,
			UnitPrice:       txn.UnitPrice,
			Quantity:        txn.Quantity,
		})
	if err != nil {
		return nil, err
	}

	if err := b.transactions.SavePaymentToken(ctx, txn.OrderID, token.Token); err != nil {
		log.Printf("Failed to store payment token for order %s: %v", txn.OrderID, err)
	}
	txn.PaymentToken = token.Token
	return token, nil
}

// newOrderID builds a time-sortable order id with a short random buyer
// reference, e.g. DW-20260115103015-9F41A2.
func newOrderID() string {
	suffix, err := utils.GenerateOrderSuffix(3)
	if err != nil {
		suffix = "000000"
	}
	stamp := time.Now().In(utils.JakartaLocation()).Format("20060102150405")
	return fmt.Sprintf("DW-%s-%s", stamp, strings.ToUpper(suffix))
}

func orderResponse(txn *db_models.Transaction) *response_models.OrderResponse {
	return &response_models.OrderResponse{
		TransactionID: txn.ID.String(),
		OrderID:       txn.OrderID,
		Status:        string(txn.Status),
		Quantity:      txn.Quantity,
		UnitPrice:     txn.UnitPrice,
		Total:         txn.Total,
		VisitDate:     time.Time(txn.VisitDate).Format("2006-01-02"),
		PaymentToken:  txn.PaymentToken,
	}
}
