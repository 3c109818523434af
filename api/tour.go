package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/semanticallynull/motorent-backend/internal/middleware"
	"github.com/semanticallynull/motorent-backend/tour"
)

type tourResponse struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Destination     string   `json:"destination"`
	Description     string   `json:"description"`
	DurationDays    int      `json:"durationDays"`
	Price           float64  `json:"price"`
	ImageURL        string   `json:"imageUrl"`
	Highlights      []string `json:"highlights"`
	Difficulty      string   `json:"difficulty"`
	MaxParticipants int      `json:"maxParticipants"`
	Available       bool     `json:"available"`
}

func toTourResponse(t tour.Tour) tourResponse {
	return tourResponse{
		ID:              t.ID,
		Name:            t.Name,
		Destination:     t.Destination,
		Description:     t.Description,
		DurationDays:    t.DurationDays,
		Price:           t.Price,
		ImageURL:        t.ImageURL,
		Highlights:      t.Highlights,
		Difficulty:      t.Difficulty,
		MaxParticipants: t.MaxParticipants,
		Available:       t.Available,
	}
}

func (a *API) toursHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	tours, err := a.tr.GetTours(c)
	if err != nil {
		logger.ErrorContext(c, "failed to list tours", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	responses := make([]tourResponse, 0, len(tours))
	for _, t := range tours {
		responses = append(responses, toTourResponse(t))
	}

	c.JSON(http.StatusOK, gin.H{"tours": responses})
}

func (a *API) tourHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "Invalid tour id"})
		return
	}

	t, err := a.tr.GetTour(c, id)
	if err != nil {
		if errors.Is(err, tour.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.ErrorContext(c, "failed to get tour", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, toTourResponse(t))
}
