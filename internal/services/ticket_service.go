package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/skip2/go-qrcode"

	"desawisata/internal/models/db_models"
	"desawisata/internal/models/response_models"
	"desawisata/internal/repositories"
	"desawisata/pkg/utils"
)

type TicketServiceInterface interface {
	// GetTicket derives the e-ticket view of a PAID transaction. It never
	// mutates state and refuses anything not yet confirmed.
	GetTicket(ctx context.Context, transactionID string) (*response_models.TicketResponse, error)

	// GetTicketQR renders the ticket's QR payload as PNG bytes.
	GetTicketQR(ctx context.Context, transactionID string) ([]byte, error)
}

type TicketService struct {
	transactions repositories.TransactionRepository
	baseURL      string
}

func NewTicketService(transactions repositories.TransactionRepository, baseURL string) TicketServiceInterface {
	return &TicketService{
		transactions: transactions,
		baseURL:      strings.TrimRight(baseURL, "/"),
	}
}

func (t *TicketService) GetTicket(ctx context.Context, transactionID string) (*response_models.TicketResponse, error) {
	txn, err := t.transactions.FindByID(ctx, transactionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if txn == nil {
		return nil, utils.ErrTransactionNotFound
	}
	if txn.Status != db_models.TxnStatusPaid {
		return nil, utils.ErrTicketNotPaid
	}

	return &response_models.TicketResponse{
		TransactionID: txn.ID.String(),
		OrderID:       txn.OrderID,
		Destination:   txn.Destination.Name,
		Village:       txn.Destination.Village,
		BuyerName:     txn.BuyerName,
		Quantity:      txn.Quantity,
		VisitDate:     time.Time(txn.VisitDate).Format("2006-01-02"),
		Total:         txn.Total,
		QRPayload:     t.qrPayload(txn.OrderID, txn.BuyerName),
	}, nil
}

func (t *TicketService) GetTicketQR(ctx context.Context, transactionID string) ([]byte, error) {
	ticket, err := t.GetTicket(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	png, err := qrcode.Encode(ticket.QRPayload, qrcode.Medium, 256)
	if err != nil {
		return nil, err
	}
	return png, nil
}

// qrPayload binds the verification URL, order id and buyer name so a
// door-check scanner can show the identifying fields without a network
// call.
func (t *TicketService) qrPayload(orderID, buyerName string) string {
	return fmt.Sprintf("%s/tickets/verify?order=%s&name=%s",
		t.baseURL, url.QueryEscape(orderID), url.QueryEscape(buyerName))
}
