package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"desawisata/internal/models/db_models"
	"desawisata/pkg/utils"
)

func testDestination(price int64) *db_models.Destination {
	d := &db_models.Destination{
		Name:        "Air Terjun Banyu Anjlok",
		Village:     "Desa Purwodadi",
		TicketPrice: price,
		IsOpen:      true,
	}
	d.ID = uuid.New()
	return d
}

func newBookingFixture(price int64, gw *fakeGateway) (*BookingService, *fakeTransactionRepo, *fakeDestinationRepo, *db_models.Destination) {
	destination := testDestination(price)
	destinations := newFakeDestinationRepo(destination)
	transactions := newFakeTransactionRepo()
	svc := NewBookingService(NewOrderValidator(), destinations, transactions, gw).(*BookingService)
	return svc, transactions, destinations, destination
}

func TestCreateOrder(t *testing.T) {
	svc, transactions, _, destination := newBookingFixture(10000, &fakeGateway{})

	req := validOrderRequest()
	req.DestinationID = destination.ID.String()

	resp, err := svc.CreateOrder(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateOrder() error = %v", err)
	}

	if resp.Total != 20000 {
		t.Errorf("total = %d, want 20000", resp.Total)
	}
	if resp.Status != "PENDING" {
		t.Errorf("status = %s, want PENDING", resp.Status)
	}
	if resp.PaymentToken == "" {
		t.Error("expected a payment token")
	}
	if resp.OrderID == "" {
		t.Error("expected an order id")
	}

	stored, _ := transactions.FindByOrderID(context.Background(), resp.OrderID)
	if stored == nil {
		t.Fatal("transaction was not persisted")
	}
	if stored.UnitPrice != 10000 || stored.Total != 20000 {
		t.Errorf("stored price snapshot = %d/%d, want 10000/20000", stored.UnitPrice, stored.Total)
	}
	if stored.PaymentToken != resp.PaymentToken {
		t.Errorf("stored token = %q, want %q", stored.PaymentToken, resp.PaymentToken)
	}
}

func TestCreateOrderValidationFailureCreatesNothing(t *testing.T) {
	svc, transactions, _, destination := newBookingFixture(10000, &fakeGateway{})

	req := validOrderRequest()
	req.DestinationID = destination.ID.String()
	req.Quantity = 0

	_, err := svc.CreateOrder(context.Background(), req)

	var verrs utils.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if transactions.count() != 0 {
		t.Errorf("expected no persisted transaction, got %d", transactions.count())
	}
}

func TestCreateOrderUnknownDestination(t *testing.T) {
	svc, transactions, _, _ := newBookingFixture(10000, &fakeGateway{})

	req := validOrderRequest() // destination id not in the repo

	_, err := svc.CreateOrder(context.Background(), req)
	if !errors.Is(err, utils.ErrDestinationNotFound) {
		t.Fatalf("expected ErrDestinationNotFound, got %v", err)
	}
	if transactions.count() != 0 {
		t.Errorf("expected no persisted transaction, got %d", transactions.count())
	}
}

func TestCreateOrderGatewayFailureKeepsPendingShell(t *testing.T) {
	gw := &fakeGateway{failCount: 1}
	svc, transactions, _, destination := newBookingFixture(10000, gw)

	req := validOrderRequest()
	req.DestinationID = destination.ID.String()

	resp, err := svc.CreateOrder(context.Background(), req)
	if !errors.Is(err, utils.ErrGatewayUnavailable) {
		t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
	}
	if resp == nil || resp.OrderID == "" {
		t.Fatal("expected the pending order id in the response for retry")
	}

	stored, _ := transactions.FindByOrderID(context.Background(), resp.OrderID)
	if stored == nil {
		t.Fatal("expected the PENDING shell to be persisted")
	}
	if stored.Status != db_models.TxnStatusPending || stored.PaymentToken != "" {
		t.Errorf("shell = %s token=%q, want PENDING with no token", stored.Status, stored.PaymentToken)
	}

	// Retrying against the same order id must not create a second row.
	retry, err := svc.RetryToken(context.Background(), resp.OrderID)
	if err != nil {
		t.Fatalf("RetryToken() error = %v", err)
	}
	if retry.PaymentToken == "" {
		t.Error("expected a token after retry")
	}
	if transactions.count() != 1 {
		t.Errorf("transaction count = %d, want 1", transactions.count())
	}
}

func TestCreateOrderPriceSnapshotIsFixed(t *testing.T) {
	svc, transactions, destinations, destination := newBookingFixture(10000, &fakeGateway{})

	req := validOrderRequest()
	req.DestinationID = destination.ID.String()

	resp, err := svc.CreateOrder(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateOrder() error = %v", err)
	}

	// A later catalog price change never affects the existing order.
	destinations.setPrice(destination.ID.String(), 99999)

	stored, _ := transactions.FindByOrderID(context.Background(), resp.OrderID)
	if stored.UnitPrice != 10000 || stored.Total != 20000 {
		t.Errorf("snapshot after price change = %d/%d, want 10000/20000", stored.UnitPrice, stored.Total)
	}
}

func TestRetryTokenUnknownOrder(t *testing.T) {
	svc, _, _, _ := newBookingFixture(10000, &fakeGateway{})

	_, err := svc.RetryToken(context.Background(), "DW-20260101000000-FFFFFF")
	if !errors.Is(err, utils.ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound, got %v", err)
	}
}

func TestGetStatus(t *testing.T) {
	svc, _, _, destination := newBookingFixture(10000, &fakeGateway{})

	req := validOrderRequest()
	req.DestinationID = destination.ID.String()
	resp, err := svc.CreateOrder(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateOrder() error = %v", err)
	}

	status, err := svc.GetStatus(context.Background(), resp.OrderID)
	if err != nil {
		t.Fatalf("GetStatus() error = %v", err)
	}
	if status.Status != "PENDING" {
		t.Errorf("status = %s, want PENDING", status.Status)
	}
}
