package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TransactionStatus string

const (
	TxnStatusPending   TransactionStatus = "PENDING"
	TxnStatusPaid      TransactionStatus = "PAID"
	TxnStatusCancelled TransactionStatus = "CANCELLED"
)

// Terminal reports whether the status can never change again.
func (s TransactionStatus) Terminal() bool {
	return s == TxnStatusPaid || s == TxnStatusCancelled
}

type Transaction struct {
	BaseModel
	OrderID       string    `gorm:"size:40;uniqueIndex"` // gateway correlation key
	DestinationID uuid.UUID `gorm:"type:uuid;index"`

	// Buyer contact, captured at order time and immutable afterwards.
	// Guest and authenticated checkouts look the same here.
	BuyerName  string
	BuyerEmail string
	BuyerPhone string

	Quantity  int
	UnitPrice int64 // price snapshot at order time, never re-read
	Total     int64 // UnitPrice * Quantity, fixed at creation
	VisitDate datatypes.Date

	Status TransactionStatus `gorm:"size:16;index"`

	// Gateway fields
	PaymentToken string         // opaque Snap token, used once to open the payment UI
	PaymentMeta  datatypes.JSON `gorm:"type:jsonb;default:'{}'"` // populated on confirmation

	ConfirmedAt *int64 // unix seconds, set once on the first terminal transition

	Destination Destination `gorm:"foreignKey:DestinationID"`
}

// PaymentMeta is the confirmation detail reported by the gateway.
type PaymentMeta struct {
	Method        string `json:"method"`
	Bank          string `json:"bank,omitempty"`
	VANumber      string `json:"va_number,omitempty"`
	ProviderTxnID string `json:"provider_txn_id"`
}
