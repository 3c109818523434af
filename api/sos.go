package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/semanticallynull/motorent-backend/internal/middleware"
	"github.com/semanticallynull/motorent-backend/sos"
)

type sosRequestResponse struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	Phone         string            `json:"phone"`
	Location      string            `json:"location"`
	EmergencyType sos.EmergencyType `json:"emergencyType"`
	Description   string            `json:"description"`
	Latitude      *float64          `json:"latitude,omitempty"`
	Longitude     *float64          `json:"longitude,omitempty"`
	Status        string            `json:"status"`
	ResponderName *string           `json:"responderName,omitempty"`
	ResponseTime  *time.Time        `json:"responseTime,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
}

func toSOSRequestResponse(r sos.Request) sosRequestResponse {
	resp := sosRequestResponse{
		ID:            r.ID,
		Name:          r.Name,
		Phone:         r.Phone,
		Location:      r.Location,
		EmergencyType: r.EmergencyType,
		Description:   r.Description,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt,
	}
	if r.Latitude.Valid {
		resp.Latitude = &r.Latitude.Float64
	}
	if r.Longitude.Valid {
		resp.Longitude = &r.Longitude.Float64
	}
	if r.ResponderName.Valid {
		resp.ResponderName = &r.ResponderName.String
	}
	if r.ResponseTime.Valid {
		resp.ResponseTime = &r.ResponseTime.Time
	}
	return resp
}

type createSOSRequestRequest struct {
	Name          string   `json:"name" binding:"required"`
	Phone         string   `json:"phone" binding:"required"`
	Location      string   `json:"location" binding:"required"`
	EmergencyType string   `json:"emergencyType" binding:"required,oneof=breakdown accident medical security other"`
	Description   string   `json:"description" binding:"required"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
}

func (a *API) createSOSRequestHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	var req createSOSRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}

	emergencyType, err := sos.ParseEmergencyType(req.EmergencyType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}

	created, err := a.sr.Create(c, sos.CreateParams{
		Name:          req.Name,
		Phone:         req.Phone,
		Location:      req.Location,
		EmergencyType: emergencyType,
		Description:   req.Description,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
	})
	if err != nil {
		logger.ErrorContext(c, "failed to create sos request", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, toSOSRequestResponse(created))
}

func (a *API) getSOSRequestsHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	reqs, err := a.sr.GetRequests(c)
	if err != nil {
		logger.ErrorContext(c, "failed to list sos requests", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	responses := make([]sosRequestResponse, 0, len(reqs))
	for _, r := range reqs {
		responses = append(responses, toSOSRequestResponse(r))
	}

	c.JSON(http.StatusOK, gin.H{"requests": responses})
}
