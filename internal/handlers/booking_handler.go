package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bellamoda/salon-booking/internal/httperr"
	"github.com/bellamoda/salon-booking/internal/httpresp"
	"github.com/bellamoda/salon-booking/internal/middleware"
	"github.com/bellamoda/salon-booking/internal/models"
	ucBooking "github.com/bellamoda/salon-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC   *ucBooking.CreateBooking
	updateUC   *ucBooking.UpdateBooking
	confirmUC  *ucBooking.ConfirmBooking
	completeUC *ucBooking.CompleteBooking
	cancelUC   *ucBooking.CancelBooking

	listByDateUC  *ucBooking.ListBookingsByDate
	listForUserUC *ucBooking.ListBookingsForCustomer
	countsUC      *ucBooking.DashboardCounts
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	updateUC *ucBooking.UpdateBooking,
	confirmUC *ucBooking.ConfirmBooking,
	completeUC *ucBooking.CompleteBooking,
	cancelUC *ucBooking.CancelBooking,
	listByDateUC *ucBooking.ListBookingsByDate,
	listForUserUC *ucBooking.ListBookingsForCustomer,
	countsUC *ucBooking.DashboardCounts,
) *BookingHandler {
	return &BookingHandler{
		createUC:      createUC,
		updateUC:      updateUC,
		confirmUC:     confirmUC,
		completeUC:    completeUC,
		cancelUC:      cancelUC,
		listByDateUC:  listByDateUC,
		listForUserUC: listForUserUC,
		countsUC:      countsUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ServiceID  uint   `json:"service_id" binding:"required"`
	EmployeeID uint   `json:"employee_id" binding:"required"`
	Date       string `json:"date" binding:"required"` // YYYY-MM-DD
	Time       string `json:"time" binding:"required"` // HH:mm
	DealID     *uint  `json:"deal_id,omitempty"`
	Notes      string `json:"notes" binding:"max=255"`
}

type UpdateBookingRequest struct {
	ServiceID  uint   `json:"service_id" binding:"required"`
	EmployeeID uint   `json:"employee_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	DealID     *uint  `json:"deal_id,omitempty"`
	Notes      string `json:"notes" binding:"max=255"`
}

// ======================================================
// CUSTOMER FLOW
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	customerID := middleware.UserID(c)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		CustomerID: customerID,
		ServiceID:  req.ServiceID,
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Time:       req.Time,
		DealID:     req.DealID,
		Notes:      req.Notes,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.Created(c, b)
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	customerID := middleware.UserID(c)

	bookings, err := h.listForUserUC.Execute(c.Request.Context(), customerID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not load bookings.")
		return
	}

	httpresp.List(c, bookings)
}

// CancelMine lets a customer cancel their own pending/confirmed booking.
func (h *BookingHandler) CancelMine(c *gin.Context) {
	customerID := middleware.UserID(c)

	id, ok := paramID(c)
	if !ok {
		return
	}

	b, err := h.cancelUC.Execute(c.Request.Context(), customerID, id, &customerID)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// EMPLOYEE SCHEDULE
// ======================================================

func (h *BookingHandler) MySchedule(c *gin.Context) {
	employeeID := middleware.UserID(c)

	date, ok := queryDate(c)
	if !ok {
		return
	}

	bookings, err := h.listByDateUC.Execute(c.Request.Context(), &employeeID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not load schedule.")
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// ADMIN DASHBOARD
// ======================================================

func (h *BookingHandler) ListByDate(c *gin.Context) {
	date, ok := queryDate(c)
	if !ok {
		return
	}

	var employeeID *uint
	if s := c.Query("employee_id"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_employee_id", "Invalid employee.")
			return
		}
		eid := uint(id)
		employeeID = &eid
	}

	bookings, err := h.listByDateUC.Execute(c.Request.Context(), employeeID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not load bookings.")
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) Counts(c *gin.Context) {
	counts, err := h.countsUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_count_bookings", "Could not load counts.")
		return
	}

	httpresp.OK(c, counts)
}

func (h *BookingHandler) Update(c *gin.Context) {
	actorID := middleware.UserID(c)

	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	b, err := h.updateUC.Execute(c.Request.Context(), actorID, ucBooking.UpdateBookingInput{
		BookingID:  id,
		ServiceID:  req.ServiceID,
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Time:       req.Time,
		DealID:     req.DealID,
		Notes:      req.Notes,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, func(actorID, id uint) (*models.Booking, error) {
		return h.confirmUC.Execute(c.Request.Context(), actorID, id)
	})
}

func (h *BookingHandler) Complete(c *gin.Context) {
	h.transition(c, func(actorID, id uint) (*models.Booking, error) {
		return h.completeUC.Execute(c.Request.Context(), actorID, id)
	})
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, func(actorID, id uint) (*models.Booking, error) {
		return h.cancelUC.Execute(c.Request.Context(), actorID, id, nil)
	})
}

func (h *BookingHandler) transition(
	c *gin.Context,
	run func(actorID, id uint) (*models.Booking, error),
) {
	actorID := middleware.UserID(c)

	id, ok := paramID(c)
	if !ok {
		return
	}

	b, err := run(actorID, id)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// HELPERS
// ======================================================

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid identifier.")
		return 0, false
	}
	return uint(id), true
}

func queryDate(c *gin.Context) (time.Time, bool) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return time.Time{}, false
	}

	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return time.Time{}, false
	}

	return date, true
}

func mapBookingError(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case "slot_unavailable":
		httperr.BadRequest(c, "slot_unavailable", "Time slot is no longer available, please choose another time.")
	case "invalid_transition":
		httperr.BadRequest(c, "invalid_transition", "Booking status does not allow this change.")
	case "booking_not_editable":
		httperr.BadRequest(c, "booking_not_editable", "Completed or cancelled bookings cannot be edited.")
	case "date_in_past":
		httperr.BadRequest(c, "date_in_past", "Bookings cannot be placed in the past.")
	case "invalid_date_or_time":
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
	case "outside_opening_hours":
		httperr.BadRequest(c, "outside_opening_hours", "Outside salon opening hours.")
	case "deal_not_found", "deal_not_applicable", "deal_not_active":
		httperr.BadRequest(c, httperr.BusinessCode(err), "Deal cannot be applied to this booking.")
	case "service_not_found":
		httperr.NotFound(c, "service_not_found", "Service not found.")
	case "employee_not_found":
		httperr.NotFound(c, "employee_not_found", "Employee not found.")
	case "booking_not_found":
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
	default:
		httperr.Internal(c, "failed_to_save_booking", "Failed to save, try again.")
	}
}
