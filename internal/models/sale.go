package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Sale is a single point-of-sale transaction.
// RawTotal keeps the total exactly as it arrived on the wire; upstream
// clients have been seen sending it as a string, a number, or garbage,
// so the analytics layer re-parses it defensively instead of trusting
// the normalized Total column.
type Sale struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	WarehouseID uuid.UUID `gorm:"index" json:"warehouse_id"`
	Total       float64   `gorm:"index" json:"total"`
	RawTotal    string    `json:"raw_total"`
	Items       datatypes.JSON `json:"items"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}
