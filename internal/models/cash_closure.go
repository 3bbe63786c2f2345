package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CashClosure is an immutable record of a completed cash-register session.
// Difference is computed once on creation as ClosingAmount - ExpectedBalance
// and never recomputed afterwards.
type CashClosure struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           uuid.UUID `gorm:"index" json:"user_id"`
	UserName         string    `json:"user_name"`
	WarehouseID      uuid.UUID `gorm:"index" json:"warehouse_id"`
	WarehouseName    string    `json:"warehouse_name"`
	OpeningAmount    float64   `json:"opening_amount"`
	ClosingAmount    float64   `json:"closing_amount"`
	ExpectedBalance  float64   `json:"expected_balance"`
	Difference       float64   `gorm:"index" json:"difference"`
	TotalSales       float64   `json:"total_sales"`
	Status           string    `gorm:"index" json:"status"` // exact | surplus | shortage
	PaymentBreakdown datatypes.JSON `json:"payment_breakdown"`
	OpenedAt         *time.Time `json:"opened_at"`
	ClosedAt         *time.Time `json:"closed_at"`
	CreatedAt        time.Time  `json:"created_at"`
}
