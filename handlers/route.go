package handlers

import (
	"net/http"
	"strconv"
	"time"

	"moveboard/models"
	"moveboard/services/route"
	"moveboard/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouteHandler exposes route planning and address lookup.
type RouteHandler struct {
	Service route.RouteService
}

func NewRouteHandler(svc route.RouteService) *RouteHandler {
	return &RouteHandler{Service: svc}
}

// PlanRouteHandler handles POST /api/routes/plan. Waypoints are visited in
// the order given; an optional RFC3339 departure adds traffic estimates.
func (h *RouteHandler) PlanRouteHandler(c *gin.Context) {
	var req struct {
		Waypoints []models.Waypoint `json:"waypoints" binding:"required"`
		Departure *time.Time        `json:"departure"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Waypoints) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A route needs at least two stops"})
		return
	}
	plan, err := h.Service.PlanRoute(c.Request.Context(), req.Waypoints, req.Departure)
	if err != nil {
		utils.GetLogger().Error("route planning failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to plan route"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// AutocompleteHandler handles GET /api/routes/autocomplete?q=prefix.
func (h *RouteHandler) AutocompleteHandler(c *gin.Context) {
	prefix := c.Query("q")
	if prefix == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing query parameter q"})
		return
	}
	suggestions, err := h.Service.Autocomplete(c.Request.Context(), prefix)
	if err != nil {
		utils.GetLogger().Error("place autocomplete failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch suggestions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// StreetViewHandler handles GET /api/routes/streetview?lat=..&lng=.. and
// returns the static image URL for the coordinate.
func (h *RouteHandler) StreetViewHandler(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lat/lng"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": h.Service.StreetViewURL(lat, lng)})
}
