package repository

import (
	"time"

	"pos-analytics-backend/internal/models"

	"gorm.io/gorm"
)

type CashClosureRepository struct {
	db *gorm.DB
}

func NewCashClosureRepository(db *gorm.DB) *CashClosureRepository {
	return &CashClosureRepository{db: db}
}

// Expose DB if needed
func (r *CashClosureRepository) DB() *gorm.DB {
	return r.db
}

// Create inserts a single closure row
func (r *CashClosureRepository) Create(closure *models.CashClosure) error {
	return r.db.Create(closure).Error
}

// GetByID fetch a single closure by ID
func (r *CashClosureRepository) GetByID(id string) (*models.CashClosure, error) {
	var closure models.CashClosure
	err := r.db.First(&closure, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &closure, nil
}

// SearchClosures used for the dashboard list with optional filters.
// Results come back oldest first; the statistics chart relies on that order.
func (r *CashClosureRepository) SearchClosures(warehouseID string, status string, from, to *time.Time, limit int) ([]models.CashClosure, error) {
	var closures []models.CashClosure

	dbQuery := r.db.Model(&models.CashClosure{}).Order("created_at ASC")

	if warehouseID != "" {
		dbQuery = dbQuery.Where("warehouse_id = ?", warehouseID)
	}
	if status != "" && status != "all" {
		dbQuery = dbQuery.Where("status = ?", status)
	}
	if from != nil {
		dbQuery = dbQuery.Where("created_at >= ?", *from)
	}
	if to != nil {
		dbQuery = dbQuery.Where("created_at <= ?", *to)
	}
	if limit > 0 {
		dbQuery = dbQuery.Limit(limit)
	}

	err := dbQuery.Find(&closures).Error
	return closures, err
}
