package handlers

import (
	"net/http"
	"time"

	"moveboard/services/schedule"

	"github.com/gin-gonic/gin"
)

// pointerEventRequest mirrors schedule.PointerEvent with an optional
// timestamp; clients that omit it get server time.
type pointerEventRequest struct {
	Source  string     `json:"source" binding:"required"`
	TouchID int        `json:"touchId"`
	X       float64    `json:"x"`
	Y       float64    `json:"y"`
	At      *time.Time `json:"at"`
}

func (r pointerEventRequest) toEvent() (schedule.PointerEvent, bool) {
	src := schedule.PointerSource(r.Source)
	if src != schedule.PointerMouse && src != schedule.PointerTouch {
		return schedule.PointerEvent{}, false
	}
	ev := schedule.PointerEvent{Source: src, TouchID: r.TouchID, X: r.X, Y: r.Y}
	if r.At != nil {
		ev.At = *r.At
	} else {
		ev.At = time.Now()
	}
	return ev, true
}

// BeginGestureHandler handles POST /api/board/:date/blocks/:blockID/gesture.
func (h *ScheduleHandler) BeginGestureHandler(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	date, ok := boardDate(c)
	if !ok {
		return
	}
	var req struct {
		Kind    string              `json:"kind" binding:"required"`
		Pointer pointerEventRequest `json:"pointer" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	kind := schedule.GestureKind(req.Kind)
	if kind != schedule.GestureMove && kind != schedule.GestureResize && kind != schedule.GesturePrep {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown gesture kind"})
		return
	}
	ev, ok := req.Pointer.toEvent()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown pointer source"})
		return
	}
	g, err := h.Board.BeginGesture(owner, date, c.Param("blockID"), kind, ev)
	if err != nil {
		c.JSON(engineStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, g)
}

// UpdateGestureHandler handles PUT /api/board/:date/gesture.
func (h *ScheduleHandler) UpdateGestureHandler(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	date, ok := boardDate(c)
	if !ok {
		return
	}
	var req pointerEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ev, ok := req.toEvent()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown pointer source"})
		return
	}
	g, err := h.Board.UpdateGesture(owner, date, ev)
	if err != nil {
		c.JSON(engineStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, g)
}

// EndGestureHandler handles POST /api/board/:date/gesture/end. The response
// reports whether the interaction resolved to a tap or a drag, plus the
// resulting board so the client can reconcile in one round trip.
func (h *ScheduleHandler) EndGestureHandler(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	date, ok := boardDate(c)
	if !ok {
		return
	}
	var req pointerEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ev, ok := req.toEvent()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown pointer source"})
		return
	}
	phase, board, err := h.Board.EndGesture(owner, date, ev)
	if err != nil {
		c.JSON(engineStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"phase": phase, "board": board})
}

// CancelGestureHandler handles DELETE /api/board/:date/gesture.
func (h *ScheduleHandler) CancelGestureHandler(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	date, ok := boardDate(c)
	if !ok {
		return
	}
	if err := h.Board.CancelGesture(owner, date); err != nil {
		c.JSON(engineStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Gesture cancelled"})
}
