package repositories

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"desawisata/internal/models/db_models"
	"desawisata/pkg/utils"
)

type TransactionSummary struct {
	TotalOrders     int64
	PendingOrders   int64
	PaidOrders      int64
	CancelledOrders int64
	PaidRevenue     int64
}

type TransactionRepository interface {
	Create(ctx context.Context, txn *db_models.Transaction) error
	FindByOrderID(ctx context.Context, orderID string) (*db_models.Transaction, error)
	FindByID(ctx context.Context, id string) (*db_models.Transaction, error)
	SavePaymentToken(ctx context.Context, orderID, token string) error

	// MarkTerminal performs the PENDING -> terminal transition as a single
	// conditional update. Returns false when the row was not PENDING
	// anymore, i.e. a concurrent notification already won.
	MarkTerminal(ctx context.Context, orderID string, status db_models.TransactionStatus, confirmedAt int64, meta datatypes.JSON) (bool, error)

	List(ctx context.Context, status string, page, pageSize int) ([]db_models.Transaction, error)
	Summarize(ctx context.Context) (*TransactionSummary, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, txn *db_models.Transaction) error {
	if err := r.db.WithContext(ctx).Create(txn).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return utils.ErrOrderAlreadyExists
		}
		return err
	}
	return nil
}

func (r *transactionRepository) FindByOrderID(ctx context.Context, orderID string) (*db_models.Transaction, error) {
	var txn db_models.Transaction
	err := r.db.WithContext(ctx).
		Preload("Destination").
		First(&txn, "order_id = ?", orderID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

func (r *transactionRepository) FindByID(ctx context.Context, id string) (*db_models.Transaction, error) {
	var txn db_models.Transaction
	err := r.db.WithContext(ctx).
		Preload("Destination").
		First(&txn, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

func (r *transactionRepository) SavePaymentToken(ctx context.Context, orderID, token string) error {
	res := r.db.WithContext(ctx).
		Model(&db_models.Transaction{}).
		Where("order_id = ?", orderID).
		Update("payment_token", token)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *transactionRepository) MarkTerminal(ctx context.Context, orderID string, status db_models.TransactionStatus, confirmedAt int64, meta datatypes.JSON) (bool, error) {
	updates := map[string]interface{}{
		"status":       status,
		"confirmed_at": confirmedAt,
	}
	if meta != nil {
		updates["payment_meta"] = meta
	}

	res := r.db.WithContext(ctx).
		Model(&db_models.Transaction{}).
		Where("order_id = ? AND status = ?", orderID, db_models.TxnStatusPending).
		Updates(updates)

	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *transactionRepository) List(ctx context.Context, status string, page, pageSize int) ([]db_models.Transaction, error) {
	var txns []db_models.Transaction
	offset := (page - 1) * pageSize

	query := r.db.WithContext(ctx).
		Preload("Destination").
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize)

	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&txns).Error; err != nil {
		return nil, err
	}
	return txns, nil
}

func (r *transactionRepository) Summarize(ctx context.Context) (*TransactionSummary, error) {
	var summary TransactionSummary

	err := r.db.WithContext(ctx).
		Model(&db_models.Transaction{}).
		Select(
			"COUNT(*) AS total_orders, " +
				"COUNT(*) FILTER (WHERE status = 'PENDING') AS pending_orders, " +
				"COUNT(*) FILTER (WHERE status = 'PAID') AS paid_orders, " +
				"COUNT(*) FILTER (WHERE status = 'CANCELLED') AS cancelled_orders, " +
				"COALESCE(SUM(total) FILTER (WHERE status = 'PAID'), 0) AS paid_revenue").
		Scan(&summary).Error

	if err != nil {
		return nil, err
	}
	return &summary, nil
}
