package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/semanticallynull/motorent-backend/booking"
	"github.com/semanticallynull/motorent-backend/internal/middleware"
)

type bookingResponse struct {
	ID          int64        `json:"id"`
	CustomerID  int64        `json:"customerId"`
	BookingType booking.Type `json:"bookingType"`
	ItemID      int64        `json:"itemId"`
	StartDate   string       `json:"startDate"`
	EndDate     string       `json:"endDate"`
	TotalPrice  float64      `json:"totalPrice"`
	Status      string       `json:"status"`
	Notes       *string      `json:"notes,omitempty"`
}

func toBookingResponse(b booking.Booking) bookingResponse {
	resp := bookingResponse{
		ID:          b.ID,
		CustomerID:  b.CustomerID,
		BookingType: b.Type,
		ItemID:      b.ItemID,
		StartDate:   b.StartDate.Format(time.DateOnly),
		EndDate:     b.EndDate.Format(time.DateOnly),
		TotalPrice:  b.TotalPrice,
		Status:      b.Status,
	}
	if b.Notes.Valid {
		resp.Notes = &b.Notes.String
	}
	return resp
}

type createBookingRequest struct {
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerEmail string `json:"customerEmail" binding:"required"`
	CustomerPhone string `json:"customerPhone" binding:"required"`
	CustomerID    string `json:"customerId" binding:"required"`
	BookingType   string `json:"bookingType" binding:"required,oneof=bike tour"`
	// ItemID and TotalPrice are pointers so "required" means the key is
	// present, not that the value is non-zero. Their values are stored
	// verbatim: item existence, date ordering and price are not checked.
	ItemID     *int64   `json:"itemId" binding:"required"`
	StartDate  string   `json:"startDate" binding:"required"`
	EndDate    string   `json:"endDate" binding:"required"`
	TotalPrice *float64 `json:"totalPrice" binding:"required"`
	Notes      string   `json:"notes"`
}

func (a *API) createBookingHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}

	bookingType, err := booking.ParseType(req.BookingType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}

	startDate, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "Invalid startDate format"})
		return
	}
	endDate, err := time.Parse(time.DateOnly, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "Invalid endDate format"})
		return
	}

	b, err := a.bkr.Create(c, booking.CreateParams{
		CustomerName:     req.CustomerName,
		CustomerEmail:    req.CustomerEmail,
		CustomerPhone:    req.CustomerPhone,
		CustomerIDNumber: req.CustomerID,
		Type:             bookingType,
		ItemID:           *req.ItemID,
		StartDate:        startDate,
		EndDate:          endDate,
		TotalPrice:       *req.TotalPrice,
		Notes:            req.Notes,
	})
	if err != nil {
		logger.ErrorContext(c, "failed to create booking", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(b))
}

func (a *API) getBookingsHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	bookings, err := a.bkr.GetBookings(c)
	if err != nil {
		logger.ErrorContext(c, "failed to list bookings", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	responses := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, toBookingResponse(b))
	}

	c.JSON(http.StatusOK, gin.H{"bookings": responses})
}
