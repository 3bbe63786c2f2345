package repository

import (
	"time"

	"pos-analytics-backend/internal/models"

	"gorm.io/gorm"
)

type SaleRepository struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) *SaleRepository {
	return &SaleRepository{db: db}
}

func (r *SaleRepository) DB() *gorm.DB {
	return r.db
}

// Create inserts a single sale row
func (r *SaleRepository) Create(sale *models.Sale) error {
	return r.db.Create(sale).Error
}

// SearchSales lists sales with optional warehouse and date-range filters
func (r *SaleRepository) SearchSales(warehouseID string, from, to *time.Time) ([]models.Sale, error) {
	var sales []models.Sale

	dbQuery := r.db.Model(&models.Sale{}).Order("created_at ASC")

	if warehouseID != "" {
		dbQuery = dbQuery.Where("warehouse_id = ?", warehouseID)
	}
	if from != nil {
		dbQuery = dbQuery.Where("created_at >= ?", *from)
	}
	if to != nil {
		dbQuery = dbQuery.Where("created_at <= ?", *to)
	}

	err := dbQuery.Find(&sales).Error
	return sales, err
}
