package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bellamoda/salon-booking/internal/audit"
	dealdomain "github.com/bellamoda/salon-booking/internal/domain/deal"
	"github.com/bellamoda/salon-booking/internal/httperr"
	"github.com/bellamoda/salon-booking/internal/models"
	"github.com/bellamoda/salon-booking/internal/timezone"
)

type DealHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewDealHandler(db *gorm.DB, audit *audit.Dispatcher) *DealHandler {
	return &DealHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateDealRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	DiscountPct int    `json:"discount_pct" binding:"required,min=1,max=100"`
	StartDate   string `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate     string `json:"end_date" binding:"required"`   // YYYY-MM-DD
}

type UpdateDealRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	DiscountPct *int    `json:"discount_pct,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
}

type dealResponse struct {
	models.Deal
	State dealdomain.State `json:"state"`
}

// --------- Handlers ---------

func (h *DealHandler) List(c *gin.Context) {
	var deals []models.Deal
	if err := h.db.Preload("Service").Order("start_date DESC").Find(&deals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_deals"})
		return
	}

	now := timezone.Now()
	out := make([]dealResponse, 0, len(deals))
	for _, d := range deals {
		out = append(out, dealResponse{
			Deal:  d,
			State: dealdomain.StateAt(&d, now),
		})
	}

	c.JSON(http.StatusOK, out)
}

func (h *DealHandler) Create(c *gin.Context) {
	var req CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	start, err1 := parseDate(req.StartDate)
	end, err2 := parseDate(req.EndDate)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date"})
		return
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_before_start"})
		return
	}

	deal := models.Deal{
		Title:       req.Title,
		Description: req.Description,
		ServiceID:   req.ServiceID,
		DiscountPct: req.DiscountPct,
		StartDate:   start,
		EndDate:     end,
	}

	if err := h.saveDealGuarded(c, &deal, 0); err != nil {
		return
	}

	actorID := actor(c)
	h.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "deal_created",
		Entity:   "deal",
		EntityID: &deal.ID,
	})

	c.JSON(http.StatusCreated, deal)
}

func (h *DealHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var deal models.Deal
	if err := h.db.First(&deal, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "deal_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_deal"})
		return
	}

	var req UpdateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Title != nil {
		deal.Title = *req.Title
	}
	if req.Description != nil {
		deal.Description = *req.Description
	}
	if req.DiscountPct != nil {
		if *req.DiscountPct < 1 || *req.DiscountPct > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_discount"})
			return
		}
		deal.DiscountPct = *req.DiscountPct
	}
	if req.StartDate != nil {
		start, err := parseDate(*req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date"})
			return
		}
		deal.StartDate = start
	}
	if req.EndDate != nil {
		end, err := parseDate(*req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date"})
			return
		}
		deal.EndDate = end
	}
	if deal.EndDate.Before(deal.StartDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_before_start"})
		return
	}

	if err := h.saveDealGuarded(c, &deal, deal.ID); err != nil {
		return
	}

	actorID := actor(c)
	h.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "deal_updated",
		Entity:   "deal",
		EntityID: &deal.ID,
	})

	c.JSON(http.StatusOK, deal)
}

// saveDealGuarded enforces the one-deal-per-service-per-day rule at write
// time, inside the write transaction, so two admins cannot race past the
// form-level check. Responds on error and returns it for flow control.
func (h *DealHandler) saveDealGuarded(c *gin.Context, deal *models.Deal, excludeID uint) error {
	err := h.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		q := tx.Model(&models.Deal{}).
			Where(
				"service_id = ? AND start_date <= ? AND end_date >= ?",
				deal.ServiceID, deal.EndDate, deal.StartDate,
			)
		if excludeID != 0 {
			q = q.Where("id <> ?", excludeID)
		}
		if err := q.Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusiness("deal_overlap")
		}

		var service models.Service
		if err := tx.First(&service, deal.ServiceID).Error; err != nil {
			return httperr.ErrBusiness("service_not_found")
		}

		return tx.Save(deal).Error
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "deal_overlap"):
			c.JSON(http.StatusBadRequest, gin.H{"error": "deal_overlap"})
		case httperr.IsBusiness(err, "service_not_found"):
			c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_deal"})
		}
	}

	return err
}
