package handler

import (
	"time"

	"pos-analytics-backend/internal/repository"
)

type AnalyticsHandler struct {
	closureRepo *repository.CashClosureRepository
	saleRepo    *repository.SaleRepository
}

func NewAnalyticsHandler(
	closureRepo *repository.CashClosureRepository,
	saleRepo *repository.SaleRepository,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		closureRepo: closureRepo,
		saleRepo:    saleRepo,
	}
}

// parseTimeQuery accepts either a full RFC3339 timestamp or a plain date.
func parseTimeQuery(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
