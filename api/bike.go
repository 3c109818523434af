package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/semanticallynull/motorent-backend/bike"
	"github.com/semanticallynull/motorent-backend/internal/middleware"
)

type bikeResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	PricePerDay float64  `json:"pricePerDay"`
	ImageURL    string   `json:"imageUrl"`
	Features    []string `json:"features"`
	Available   bool     `json:"available"`
	Location    string   `json:"location"`
}

func toBikeResponse(b bike.Bike) bikeResponse {
	return bikeResponse{
		ID:          b.ID,
		Name:        b.Name,
		Type:        b.Type,
		Description: b.Description,
		PricePerDay: b.PricePerDay,
		ImageURL:    b.ImageURL,
		Features:    b.Features,
		Available:   b.Available,
		Location:    b.Location,
	}
}

func (a *API) bikesHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	bikes, err := a.br.GetBikes(c)
	if err != nil {
		logger.ErrorContext(c, "failed to list bikes", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	responses := make([]bikeResponse, 0, len(bikes))
	for _, b := range bikes {
		responses = append(responses, toBikeResponse(b))
	}

	c.JSON(http.StatusOK, gin.H{"bikes": responses})
}

func (a *API) bikeHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "Invalid bike id"})
		return
	}

	b, err := a.br.GetBike(c, id)
	if err != nil {
		if errors.Is(err, bike.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.ErrorContext(c, "failed to get bike", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, toBikeResponse(b))
}
