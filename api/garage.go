package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/semanticallynull/motorent-backend/garage"
	"github.com/semanticallynull/motorent-backend/internal/middleware"
)

type garageRequestResponse struct {
	ID               int64          `json:"id"`
	CustomerName     string         `json:"customerName"`
	CustomerPhone    string         `json:"customerPhone"`
	BikeModel        string         `json:"bikeModel"`
	IssueDescription string         `json:"issueDescription"`
	Location         string         `json:"location"`
	Urgency          garage.Urgency `json:"urgency"`
	Status           string         `json:"status"`
	EstimatedCost    *float64       `json:"estimatedCost,omitempty"`
	AssignedMechanic *string        `json:"assignedMechanic,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
}

func toGarageRequestResponse(r garage.Request) garageRequestResponse {
	resp := garageRequestResponse{
		ID:               r.ID,
		CustomerName:     r.CustomerName,
		CustomerPhone:    r.CustomerPhone,
		BikeModel:        r.BikeModel,
		IssueDescription: r.IssueDescription,
		Location:         r.Location,
		Urgency:          r.Urgency,
		Status:           r.Status,
		CreatedAt:        r.CreatedAt,
	}
	if r.EstimatedCost.Valid {
		resp.EstimatedCost = &r.EstimatedCost.Float64
	}
	if r.AssignedMechanic.Valid {
		resp.AssignedMechanic = &r.AssignedMechanic.String
	}
	return resp
}

type createGarageRequestRequest struct {
	CustomerName     string `json:"customerName" binding:"required"`
	CustomerPhone    string `json:"customerPhone" binding:"required"`
	BikeModel        string `json:"bikeModel" binding:"required"`
	IssueDescription string `json:"issueDescription" binding:"required"`
	Location         string `json:"location" binding:"required"`
	Urgency          string `json:"urgency" binding:"required,oneof=low medium high"`
}

func (a *API) createGarageRequestHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	var req createGarageRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}

	urgency, err := garage.ParseUrgency(req.Urgency)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}

	created, err := a.gr.Create(c, garage.CreateParams{
		CustomerName:     req.CustomerName,
		CustomerPhone:    req.CustomerPhone,
		BikeModel:        req.BikeModel,
		IssueDescription: req.IssueDescription,
		Location:         req.Location,
		Urgency:          urgency,
	})
	if err != nil {
		logger.ErrorContext(c, "failed to create garage request", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, toGarageRequestResponse(created))
}

func (a *API) getGarageRequestsHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	reqs, err := a.gr.GetRequests(c)
	if err != nil {
		logger.ErrorContext(c, "failed to list garage requests", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	responses := make([]garageRequestResponse, 0, len(reqs))
	for _, r := range reqs {
		responses = append(responses, toGarageRequestResponse(r))
	}

	c.JSON(http.StatusOK, gin.H{"requests": responses})
}
