package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"desawisata/internal/gateway"
	"desawisata/internal/models/db_models"
	"desawisata/internal/repositories"
	"desawisata/pkg/utils"
)

// fakeTransactionRepo is an in-memory TransactionRepository with the
// same compare-and-set semantics on MarkTerminal as the real one.
type fakeTransactionRepo struct {
	mu      sync.Mutex
	byOrder map[string]*db_models.Transaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{byOrder: make(map[string]*db_models.Transaction)}
}

func copyTxn(t *db_models.Transaction) *db_models.Transaction {
	cp := *t
	return &cp
}

func (f *fakeTransactionRepo) Create(ctx context.Context, txn *db_models.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.byOrder[txn.OrderID]; exists {
		return utils.ErrOrderAlreadyExists
	}
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	f.byOrder[txn.OrderID] = copyTxn(txn)
	return nil
}

func (f *fakeTransactionRepo) FindByOrderID(ctx context.Context, orderID string) (*db_models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	txn, ok := f.byOrder[orderID]
	if !ok {
		return nil, nil
	}
	return copyTxn(txn), nil
}

func (f *fakeTransactionRepo) FindByID(ctx context.Context, id string) (*db_models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, txn := range f.byOrder {
		if txn.ID.String() == id {
			return copyTxn(txn), nil
		}
	}
	return nil, nil
}

func (f *fakeTransactionRepo) SavePaymentToken(ctx context.Context, orderID, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	txn, ok := f.byOrder[orderID]
	if !ok {
		return fmt.Errorf("order %s not found", orderID)
	}
	txn.PaymentToken = token
	return nil
}

func (f *fakeTransactionRepo) MarkTerminal(ctx context.Context, orderID string, status db_models.TransactionStatus, confirmedAt int64, meta datatypes.JSON) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	txn, ok := f.byOrder[orderID]
	if !ok || txn.Status != db_models.TxnStatusPending {
		return false, nil
	}
	txn.Status = status
	txn.ConfirmedAt = &confirmedAt
	if meta != nil {
		txn.PaymentMeta = meta
	}
	return true, nil
}

func (f *fakeTransactionRepo) List(ctx context.Context, status string, page, pageSize int) ([]db_models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []db_models.Transaction
	for _, txn := range f.byOrder {
		if status == "" || string(txn.Status) == status {
			out = append(out, *copyTxn(txn))
		}
	}
	return out, nil
}

func (f *fakeTransactionRepo) Summarize(ctx context.Context) (*repositories.TransactionSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	summary := &repositories.TransactionSummary{}
	for _, txn := range f.byOrder {
		summary.TotalOrders++
		switch txn.Status {
		case db_models.TxnStatusPending:
			summary.PendingOrders++
		case db_models.TxnStatusPaid:
			summary.PaidOrders++
			summary.PaidRevenue += txn.Total
		case db_models.TxnStatusCancelled:
			summary.CancelledOrders++
		}
	}
	return summary, nil
}

func (f *fakeTransactionRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byOrder)
}

type fakeDestinationRepo struct {
	mu   sync.Mutex
	byID map[string]*db_models.Destination
}

func newFakeDestinationRepo(destinations ...*db_models.Destination) *fakeDestinationRepo {
	f := &fakeDestinationRepo{byID: make(map[string]*db_models.Destination)}
	for _, d := range destinations {
		f.byID[d.ID.String()] = d
	}
	return f
}

func (f *fakeDestinationRepo) Create(ctx context.Context, destination *db_models.Destination) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if destination.ID == uuid.Nil {
		destination.ID = uuid.New()
	}
	f.byID[destination.ID.String()] = destination
	return destination.ID, nil
}

func (f *fakeDestinationRepo) Update(ctx context.Context, destination *db_models.Destination) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[destination.ID.String()] = destination
	return nil
}

func (f *fakeDestinationRepo) GetByID(ctx context.Context, id string) (*db_models.Destination, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDestinationRepo) List(ctx context.Context, page, pageSize int) ([]db_models.Destination, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db_models.Destination
	for _, d := range f.byID {
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeDestinationRepo) setPrice(id string, price int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if d, ok := f.byID[id]; ok {
		d.TicketPrice = price
	}
}

// fakeGateway fails the first failCount token requests, then succeeds.
type fakeGateway struct {
	mu         sync.Mutex
	tokenCalls int
	failCount  int

	checkResp  *gateway.Notification
	checkErr   error
	checkCalls int
}

func (f *fakeGateway) RequestToken(ctx context.Context, orderID string, total int64, customer gateway.Customer, line gateway.OrderLine) (*gateway.TokenResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.tokenCalls++
	if f.tokenCalls <= f.failCount {
		return nil, fmt.Errorf("gateway timeout")
	}
	return &gateway.TokenResult{
		Token:       fmt.Sprintf("snap-token-%d", f.tokenCalls),
		RedirectURL: "https://app.sandbox.midtrans.com/snap/v3/redirection/" + orderID,
	}, nil
}

func (f *fakeGateway) VerifySignature(n *gateway.Notification) error {
	return nil
}

func (f *fakeGateway) CheckStatus(ctx context.Context, orderID string) (*gateway.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.checkCalls++
	if f.checkErr != nil {
		return nil, f.checkErr
	}
	return f.checkResp, nil
}

// fakeMailService signals on sent so tests can wait for the async send.
type fakeMailService struct {
	sent chan TicketEmailData
}

func newFakeMailService() *fakeMailService {
	return &fakeMailService{sent: make(chan TicketEmailData, 8)}
}

func (f *fakeMailService) SendTicketIssued(to string, data TicketEmailData) error {
	f.sent <- data
	return nil
}
