package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/bellamoda/salon-booking/internal/domain/booking"
	dealdomain "github.com/bellamoda/salon-booking/internal/domain/deal"
	"github.com/bellamoda/salon-booking/internal/dto"
	"github.com/bellamoda/salon-booking/internal/httperr"
	"github.com/bellamoda/salon-booking/internal/models"
	"github.com/bellamoda/salon-booking/internal/timezone"
	ucBooking "github.com/bellamoda/salon-booking/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler serves the unauthenticated browse/booking flow: catalog,
// deals, employees and the slot picker.
type PublicHandler struct {
	db             *gorm.DB
	availabilityUC *ucBooking.GetAvailability
}

func NewPublicHandler(db *gorm.DB, availabilityUC *ucBooking.GetAvailability) *PublicHandler {
	return &PublicHandler{
		db:             db,
		availabilityUC: availabilityUC,
	}
}

////////////////////////////////////////////////////////
// CATALOG
////////////////////////////////////////////////////////

type publicServiceResponse struct {
	models.Service
	// EffectivePrice reflects any deal active today, rounded for display.
	EffectivePrice float64      `json:"effective_price"`
	Deal           *models.Deal `json:"deal,omitempty"`
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	category := strings.TrimSpace(strings.ToLower(c.Query("category")))
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.Where("active = true")

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not load services.")
		return
	}

	now := timezone.Now()
	today := midnight(now)

	// One query for all deals covering today, keyed by service.
	var deals []models.Deal
	h.db.
		Where("start_date <= ? AND end_date >= ?", today, today).
		Find(&deals)

	dealByService := make(map[uint]*models.Deal, len(deals))
	for i := range deals {
		dealByService[deals[i].ServiceID] = &deals[i]
	}

	out := make([]publicServiceResponse, 0, len(services))
	for _, svc := range services {
		d := dealByService[svc.ID]
		out = append(out, publicServiceResponse{
			Service:        svc,
			EffectivePrice: dto.Price2(dealdomain.EffectivePrice(&svc, d, now)),
			Deal:           d,
		})
	}

	c.JSON(http.StatusOK, out)
}

func (h *PublicHandler) ListDeals(c *gin.Context) {
	today := midnight(timezone.Now())

	var deals []models.Deal
	if err := h.db.
		Preload("Service").
		Where("start_date <= ? AND end_date >= ?", today, today).
		Order("end_date ASC").
		Find(&deals).Error; err != nil {
		httperr.Internal(c, "failed_to_list_deals", "Could not load deals.")
		return
	}

	c.JSON(http.StatusOK, deals)
}

func (h *PublicHandler) ListEmployees(c *gin.Context) {
	var employees []models.User
	if err := h.db.
		Where("role = ?", models.RoleEmployee).
		Order("id ASC").
		Find(&employees).Error; err != nil {
		httperr.Internal(c, "failed_to_list_employees", "Could not load employees.")
		return
	}

	out := make([]gin.H, 0, len(employees))
	for _, e := range employees {
		out = append(out, gin.H{
			"id":            e.ID,
			"name":          e.FullName(),
			"position":      e.Position,
			"profile_image": e.ProfileImage,
		})
	}

	c.JSON(http.StatusOK, out)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")
	employeeIDStr := c.Query("employee_id")

	if dateStr == "" || serviceIDStr == "" || employeeIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Date, service and employee are required.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service.")
		return
	}

	employeeID, err := strconv.ParseUint(employeeIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_employee_id", "Invalid employee.")
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	// Past dates are rejected here; the slot engine itself only ever
	// narrows to an empty list.
	if isPastDate(date) {
		httperr.BadRequest(c, "date_in_past", "Date is in the past.")
		return
	}

	slots, err := h.availabilityUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			EmployeeID: uint(employeeID),
			ServiceID:  uint(serviceID),
			Date:       date,
		},
	)
	if err != nil {
		switch httperr.BusinessCode(err) {
		case "service_not_found":
			httperr.BadRequest(c, "service_not_found", "Unknown service.")
		case "employee_not_found":
			httperr.BadRequest(c, "employee_not_found", "Unknown employee.")
		default:
			httperr.Internal(c, "availability_failed", "Could not compute time slots.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}
