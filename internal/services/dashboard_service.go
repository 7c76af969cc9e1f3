package services

import (
	"context"
	"time"

	"desawisata/internal/models/response_models"
	"desawisata/internal/repositories"
	"desawisata/pkg/utils"
)

type DashboardServiceInterface interface {
	BuildSummary(ctx context.Context) (*response_models.DashboardSummary, error)
	ListTransactions(ctx context.Context, status string, page, pageSize int) ([]response_models.TransactionRow, error)
}

type DashboardService struct {
	transactions repositories.TransactionRepository
}

func NewDashboardService(transactions repositories.TransactionRepository) DashboardServiceInterface {
	return &DashboardService{transactions: transactions}
}

func (s *DashboardService) BuildSummary(ctx context.Context) (*response_models.DashboardSummary, error) {
	summary, err := s.transactions.Summarize(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.DashboardSummary{
		TotalOrders:     summary.TotalOrders,
		PendingOrders:   summary.PendingOrders,
		PaidOrders:      summary.PaidOrders,
		CancelledOrders: summary.CancelledOrders,
		PaidRevenue:     summary.PaidRevenue,
	}, nil
}

func (s *DashboardService) ListTransactions(ctx context.Context, status string, page, pageSize int) ([]response_models.TransactionRow, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	txns, err := s.transactions.List(ctx, status, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	rows := make([]response_models.TransactionRow, 0, len(txns))
	for i := range txns {
		txn := &txns[i]

		row := response_models.TransactionRow{
			TransactionID: txn.ID.String(),
			OrderID:       txn.OrderID,
			Destination:   txn.Destination.Name,
			BuyerName:     txn.BuyerName,
			BuyerEmail:    txn.BuyerEmail,
			Quantity:      txn.Quantity,
			Total:         txn.Total,
			VisitDate:     time.Time(txn.VisitDate).Format("2006-01-02"),
			Status:        string(txn.Status),
			CreatedAt:     utils.FormatRFC3339Jakarta(utils.FromUnixSecondsJakarta(txn.CreatedAt)),
		}
		if meta := decodePaymentMeta(txn.PaymentMeta); meta != nil {
			row.PaymentMethod = meta.Method
		}
		if txn.ConfirmedAt != nil {
			row.ConfirmedAt = utils.FormatRFC3339Jakarta(utils.FromUnixSecondsJakarta(*txn.ConfirmedAt))
		}
		rows = append(rows, row)
	}
	return rows, nil
}
