package gateway

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"

	"desawisata/pkg/utils"
)

type Config struct {
	ServerKey    string
	ClientKey    string
	Production   bool
	ProviderName string        // "midtrans" (stored on Transaction.PaymentMeta)
	RetryBackoff time.Duration // wait before the single retry on token requests
}

// Customer is the buyer detail forwarded to the hosted payment UI.
type Customer struct {
	Name  string
	Email string
	Phone string
}

// OrderLine is the single line item of a booking.
type OrderLine struct {
	DestinationID   string
	DestinationName string
	UnitPrice       int64
	Quantity        int
}

type TokenResult struct {
	Token       string
	RedirectURL string
}

// Notification is the provider payload, either delivered to the webhook
// or rebuilt from a status query. Fields mirror the Midtrans HTTP schema.
type Notification struct {
	TransactionTime   string     `json:"transaction_time"`
	TransactionStatus string     `json:"transaction_status"` // settlement, capture, pending, deny, cancel, expire, failure
	StatusCode        string     `json:"status_code"`
	SignatureKey      string     `json:"signature_key"`
	OrderID           string     `json:"order_id"`
	GrossAmount       string     `json:"gross_amount"`
	PaymentType       string     `json:"payment_type"`
	FraudStatus       string     `json:"fraud_status"` // accept / challenge / deny
	TransactionID     string     `json:"transaction_id"`
	SettlementTime    string     `json:"settlement_time"`
	VANumbers         []VANumber `json:"va_numbers"`
}

type VANumber struct {
	Bank     string `json:"bank"`
	VANumber string `json:"va_number"`
}

// PaymentGateway is the boundary to the external payment provider.
// It holds no transaction state; all coordination happens through the
// persisted transaction record.
type PaymentGateway interface {
	RequestToken(ctx context.Context, orderID string, total int64, customer Customer, line OrderLine) (*TokenResult, error)
	VerifySignature(n *Notification) error
	CheckStatus(ctx context.Context, orderID string) (*Notification, error)
}

type SnapGateway struct {
	cfg  Config
	snap snap.Client
	core coreapi.Client
}

func NewSnapGateway(cfg Config) *SnapGateway {
	env := midtrans.Sandbox
	if cfg.Production {
		env = midtrans.Production
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = 2 * time.Second
	}

	g := &SnapGateway{cfg: cfg}
	g.snap.New(cfg.ServerKey, env)
	g.core.New(cfg.ServerKey, env)
	return g
}

// RequestToken asks Snap for a payment session scoped to one order.
// A timed-out or failed call means "unknown outcome": the caller keeps
// the transaction PENDING and may retry against the same order id.
func (g *SnapGateway) RequestToken(ctx context.Context, orderID string, total int64, customer Customer, line OrderLine) (*TokenResult, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: total,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: customer.Name,
			Email: customer.Email,
			Phone: customer.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    line.DestinationID,
				Name:  truncateItemName(line.DestinationName),
				Price: line.UnitPrice,
				Qty:   int32(line.Quantity),
			},
		},
		Expiry: &snap.ExpiryDetails{
			Unit:     "minutes",
			Duration: 30,
		},
	}

	resp, err := g.createTransaction(req)
	if err != nil {
		// One retry with backoff, then surface the failure.
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(g.cfg.RetryBackoff):
		}

		resp, err = g.createTransaction(req)
		if err != nil {
			return nil, fmt.Errorf("snap create transaction for %s: %w", orderID, err)
		}
	}

	return &TokenResult{Token: resp.Token, RedirectURL: resp.RedirectURL}, nil
}

func (g *SnapGateway) createTransaction(req *snap.Request) (*snap.Response, error) {
	resp, err := g.snap.CreateTransaction(req)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// VerifySignature recomputes SHA512(order_id + status_code + gross_amount
// + server_key) and compares it against the signature the provider sent.
// Anything that fails here never reaches the confirmation handler.
func (g *SnapGateway) VerifySignature(n *Notification) error {
	want := strings.ToLower(n.SignatureKey)
	raw := n.OrderID + n.StatusCode + n.GrossAmount + g.cfg.ServerKey
	got := sha512sum(raw)

	if want == "" || got != want {
		return utils.ErrInvalidSignature
	}
	return nil
}

// CheckStatus queries the provider directly for the authoritative state
// of an order. Used by the advisory client-callback path so that a
// client-reported outcome is never trusted on its own.
func (g *SnapGateway) CheckStatus(ctx context.Context, orderID string) (*Notification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := g.core.CheckTransaction(orderID)
	if err != nil {
		return nil, fmt.Errorf("check transaction %s: %w", orderID, err)
	}

	n := &Notification{
		TransactionTime:   resp.TransactionTime,
		TransactionStatus: resp.TransactionStatus,
		StatusCode:        resp.StatusCode,
		SignatureKey:      resp.SignatureKey,
		OrderID:           resp.OrderID,
		GrossAmount:       resp.GrossAmount,
		PaymentType:       resp.PaymentType,
		FraudStatus:       resp.FraudStatus,
		TransactionID:     resp.TransactionID,
		SettlementTime:    resp.SettlementTime,
	}
	for _, va := range resp.VaNumbers {
		n.VANumbers = append(n.VANumbers, VANumber{Bank: va.Bank, VANumber: va.VANumber})
	}
	return n, nil
}

func sha512sum(s string) string {
	h := sha512.Sum512([]byte(s))
	return hex.EncodeToString(h[:])
}

// Midtrans rejects item names longer than 50 characters.
func truncateItemName(name string) string {
	if len(name) > 50 {
		return name[:50]
	}
	return name
}
