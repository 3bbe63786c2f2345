package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"pos-analytics-backend/internal/models"
	"pos-analytics-backend/internal/services/salesperiods"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func (h *AnalyticsHandler) CreateSale(c *gin.Context) {
	var payload struct {
		WarehouseID string          `json:"warehouse_id"`
		Total       json.RawMessage `json:"total"` // string or number
		Items       datatypes.JSON  `json:"items"`
		CreatedAt   string          `json:"created_at"` // optional
	}

	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	warehouseID, err := parseOptionalUUID(payload.WarehouseID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid warehouse ID"})
		return
	}

	rawTotal := strings.Trim(strings.TrimSpace(string(payload.Total)), `"`)

	createdAt := time.Now()
	if t := parseOptionalTime(payload.CreatedAt); t != nil {
		createdAt = *t
	}

	sale := &models.Sale{
		ID:          uuid.New(),
		WarehouseID: warehouseID,
		Total:       salesperiods.ParseAmount(rawTotal),
		RawTotal:    rawTotal,
		Items:       payload.Items,
		CreatedAt:   createdAt,
	}

	if err := h.saleRepo.Create(sale); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "sale recorded", "sale": sale})
}

func (h *AnalyticsHandler) ListSales(c *gin.Context) {
	from, err := parseTimeQuery(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
		return
	}
	to, err := parseTimeQuery(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
		return
	}

	sales, err := h.saleRepo.SearchSales(c.Query("warehouse_id"), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var totalAmount float64
	for _, s := range sales {
		totalAmount += salesperiods.ParseAmount(s.RawTotal)
	}

	c.JSON(http.StatusOK, gin.H{
		"data":         sales,
		"count":        len(sales),
		"total_amount": totalAmount,
	})
}

func (h *AnalyticsHandler) GetSalesPeriods(c *gin.Context) {
	from, err := parseTimeQuery(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
		return
	}
	to, err := parseTimeQuery(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
		return
	}

	sales, err := h.saleRepo.SearchSales(c.Query("warehouse_id"), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	records := make([]salesperiods.SaleRecord, 0, len(sales))
	for _, s := range sales {
		records = append(records, salesperiods.SaleRecord{
			Total:     s.RawTotal,
			CreatedAt: s.CreatedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, salesperiods.Summarize(records))
}
