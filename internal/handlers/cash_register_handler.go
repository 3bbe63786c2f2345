package handler

import (
	"net/http"
	"strconv"
	"time"

	"pos-analytics-backend/internal/models"
	"pos-analytics-backend/internal/services/cashstats"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func (h *AnalyticsHandler) CreateClosure(c *gin.Context) {
	var payload struct {
		UserID           string         `json:"user_id"`
		UserName         string         `json:"user_name"`
		WarehouseID      string         `json:"warehouse_id"`
		WarehouseName    string         `json:"warehouse_name"`
		OpeningAmount    float64        `json:"opening_amount"`
		ClosingAmount    float64        `json:"closing_amount"`
		ExpectedBalance  float64        `json:"expected_balance"`
		TotalSales       float64        `json:"total_sales"`
		PaymentBreakdown datatypes.JSON `json:"payment_breakdown"`
		OpenedAt         string         `json:"opened_at"` // RFC3339, optional
		ClosedAt         string         `json:"closed_at"` // RFC3339, optional
	}

	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if payload.OpeningAmount < 0 || payload.ClosingAmount < 0 || payload.ExpectedBalance < 0 || payload.TotalSales < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amounts must be non-negative"})
		return
	}

	userID, err := parseOptionalUUID(payload.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}
	warehouseID, err := parseOptionalUUID(payload.WarehouseID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid warehouse ID"})
		return
	}

	difference := payload.ClosingAmount - payload.ExpectedBalance

	closure := &models.CashClosure{
		ID:               uuid.New(),
		UserID:           userID,
		UserName:         payload.UserName,
		WarehouseID:      warehouseID,
		WarehouseName:    payload.WarehouseName,
		OpeningAmount:    payload.OpeningAmount,
		ClosingAmount:    payload.ClosingAmount,
		ExpectedBalance:  payload.ExpectedBalance,
		Difference:       difference,
		TotalSales:       payload.TotalSales,
		Status:           cashstats.Classify(difference),
		PaymentBreakdown: payload.PaymentBreakdown,
		OpenedAt:         parseOptionalTime(payload.OpenedAt),
		ClosedAt:         parseOptionalTime(payload.ClosedAt),
		CreatedAt:        time.Now(),
	}

	if err := h.closureRepo.Create(closure); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "closure recorded", "closure": closure})
}

func (h *AnalyticsHandler) ListClosures(c *gin.Context) {
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

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	closures, err := h.closureRepo.SearchClosures(c.Query("warehouse_id"), c.Query("status"), from, to, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": closures, "count": len(closures)})
}

func (h *AnalyticsHandler) GetClosureStatistics(c *gin.Context) {
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

	closures, err := h.closureRepo.SearchClosures(c.Query("warehouse_id"), "", from, to, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cashstats.ComputeStatistics(closures))
}

// parseOptionalTime tolerates absent or malformed session timestamps: they
// become nil and only the time-of-day statistics skip the record.
func parseOptionalTime(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil
	}
	return &t
}

func parseOptionalUUID(value string) (uuid.UUID, error) {
	if value == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(value)
}
