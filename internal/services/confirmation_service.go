package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"gorm.io/datatypes"

	"desawisata/internal/gateway"
	"desawisata/internal/models/db_models"
	"desawisata/internal/repositories"
	"desawisata/pkg/utils"
)

type ConfirmationResult string

const (
	// ResultApplied means this call won the PENDING -> terminal transition.
	ResultApplied ConfirmationResult = "applied"
	// ResultIgnored means the transaction was already terminal, a
	// concurrent notification won the race, or the external status maps
	// to no transition. Safe to acknowledge either way.
	ResultIgnored ConfirmationResult = "ignored"
)

type ConfirmationServiceInterface interface {
	// ApplyNotification reconciles one verified gateway notification into
	// the transaction store. It is re-entrant: redeliveries and races all
	// collapse onto a single compare-and-set on the PENDING status.
	ApplyNotification(ctx context.Context, n *gateway.Notification) (ConfirmationResult, error)

	// SyncFromGateway handles the advisory client callback: the client's
	// claim is never trusted, the provider is queried directly and only
	// that verified answer may transition state.
	SyncFromGateway(ctx context.Context, orderID string) (ConfirmationResult, error)
}

type ConfirmationService struct {
	transactions repositories.TransactionRepository
	gw           gateway.PaymentGateway
	mail         IMailService
}

func NewConfirmationService(
	transactions repositories.TransactionRepository,
	gw gateway.PaymentGateway,
	mail IMailService) ConfirmationServiceInterface {
	return &ConfirmationService{
		transactions: transactions,
		gw:           gw,
		mail:         mail,
	}
}

func (s *ConfirmationService) ApplyNotification(ctx context.Context, n *gateway.Notification) (ConfirmationResult, error) {

	txn, err := s.transactions.FindByOrderID(ctx, n.OrderID)
	if err != nil {
		return ResultIgnored, utils.ErrDatabaseError
	}
	if txn == nil {
		// Never create a transaction from a notification.
		log.Printf("Notification for unknown order %s rejected", n.OrderID)
		return ResultIgnored, utils.ErrTransactionNotFound
	}

	if txn.Status.Terminal() {
		// Duplicate or out-of-order redelivery. The stored terminal
		// status and meta are never overwritten.
		return ResultIgnored, nil
	}

	outcome := mapExternalStatus(n.TransactionStatus, n.FraudStatus)
	if outcome == db_models.TxnStatusPending {
		// Ambiguous (pending / fraud challenge): no edge, wait for the
		// next authoritative notification.
		return ResultIgnored, nil
	}

	meta := paymentMetaJSON(n)
	applied, err := s.transactions.MarkTerminal(ctx, n.OrderID, outcome, time.Now().Unix(), meta)
	if err != nil {
		return ResultIgnored, utils.ErrDatabaseError
	}
	if !applied {
		// A concurrent notification won the transition.
		return ResultIgnored, nil
	}

	log.Printf("Order %s transitioned to %s (%s/%s)", n.OrderID, outcome, n.TransactionStatus, n.PaymentType)

	if outcome == db_models.TxnStatusPaid {
		// Best effort; a mail failure never affects the transition.
		go s.sendTicketIssuedMail(txn)
	}

	return ResultApplied, nil
}

func (s *ConfirmationService) SyncFromGateway(ctx context.Context, orderID string) (ConfirmationResult, error) {
	txn, err := s.transactions.FindByOrderID(ctx, orderID)
	if err != nil {
		return ResultIgnored, utils.ErrDatabaseError
	}
	if txn == nil {
		return ResultIgnored, utils.ErrTransactionNotFound
	}
	if txn.Status.Terminal() {
		return ResultIgnored, nil
	}

	n, err := s.gw.CheckStatus(ctx, orderID)
	if err != nil {
		log.Printf("Status query failed for order %s: %v", orderID, err)
		return ResultIgnored, utils.ErrGatewayUnavailable
	}

	return s.ApplyNotification(ctx, n)
}

// mapExternalStatus maps the provider's transaction status onto the
// internal state machine. Returning TxnStatusPending means "no edge".
func mapExternalStatus(transactionStatus, fraudStatus string) db_models.TransactionStatus {
	switch transactionStatus {
	case "settlement":
		return db_models.TxnStatusPaid
	case "capture":
		if fraudStatus == "challenge" {
			return db_models.TxnStatusPending
		}
		if fraudStatus == "" || fraudStatus == "accept" {
			return db_models.TxnStatusPaid
		}
		return db_models.TxnStatusCancelled
	case "deny", "cancel", "expire", "failure":
		return db_models.TxnStatusCancelled
	default: // pending, authorize, anything unknown
		return db_models.TxnStatusPending
	}
}

func paymentMetaJSON(n *gateway.Notification) datatypes.JSON {
	meta := db_models.PaymentMeta{
		Method:        n.PaymentType,
		ProviderTxnID: n.TransactionID,
	}
	if len(n.VANumbers) > 0 {
		meta.Bank = n.VANumbers[0].Bank
		meta.VANumber = n.VANumbers[0].VANumber
	}

	bytes, err := json.Marshal(meta)
	if err != nil {
		return nil
	}
	return bytes
}

func decodePaymentMeta(raw datatypes.JSON) *db_models.PaymentMeta {
	if len(raw) == 0 {
		return nil
	}
	var meta db_models.PaymentMeta
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil
	}
	return &meta
}

func (s *ConfirmationService) sendTicketIssuedMail(txn *db_models.Transaction) {
	if s.mail == nil || txn.BuyerEmail == "" {
		return
	}

	err := s.mail.SendTicketIssued(txn.BuyerEmail, TicketEmailData{
		BuyerName:   txn.BuyerName,
		OrderID:     txn.OrderID,
		Destination: txn.Destination.Name,
		VisitDate:   time.Time(txn.VisitDate).Format("2006-01-02"),
		Quantity:    txn.Quantity,
		Total:       txn.Total,
	})
	if err != nil {
		log.Printf("Failed to send ticket mail for order %s: %v", txn.OrderID, err)
	}
}
