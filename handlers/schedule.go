package handlers

import (
	"errors"
	"net/http"
	"time"

	"moveboard/models"
	"moveboard/services/schedule"
	"moveboard/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler exposes the day-board engine over HTTP. The owner is the
// authenticated account; the day comes from the :date path parameter.
type ScheduleHandler struct {
	Board schedule.BoardService
}

func NewScheduleHandler(board schedule.BoardService) *ScheduleHandler {
	return &ScheduleHandler{Board: board}
}

// ownerID pulls the authenticated account id set by the auth middleware.
func ownerID(c *gin.Context) (string, bool) {
	id, ok := c.Get("userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing authenticated account"})
		return "", false
	}
	idStr, ok := id.(string)
	if !ok || idStr == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid account ID type"})
		return "", false
	}
	return idStr, true
}

// boardDate validates the :date path parameter.
func boardDate(c *gin.Context) (string, bool) {
	date := c.Param("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return "", false
	}
	return date, true
}

// engineStatus maps engine errors onto HTTP codes. A full lane refuses the
// operation; a missing block is a stale client.
func engineStatus(err error) int {
	switch {
	case errors.Is(err, schedule.ErrBlockNotFound), errors.Is(err, schedule.ErrMoverNotFound):
		return http.StatusNotFound
	case errors.Is(err, schedule.ErrNoFreeColumn),
		errors.Is(err, schedule.ErrNoActiveGesture),
		errors.Is(err, schedule.ErrStalePointer):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// GetBoardHandler handles GET /api/board/:date.
func (h *ScheduleHandler) GetBoardHandler(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	date, ok := boardDate(c)
	if !ok {
		return
	}
	board, err := h.Board.GetBoard(owner, date)
	if err != nil {
		utils.GetLogger().Error("failed to load board", zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load board"})
		return
	}
	c.JSON(http.StatusOK, board)
}

// ClearBoardHandler handles DELETE /api/board/:date.
func (h *ScheduleHandler) ClearBoardHandler(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	date, ok := boardDate(c)
	if !ok {
		return
	}
	if err := h.Board.ClearBoard(owner, date); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear board"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Board cleared"})
}

// CreateBlockHandler handles POST /api/board/:date/blocks. The payload is the
// grid tap's vertical pixel offset.
func (h *ScheduleHandler) CreateBlockHandler(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	date, ok := boardDate(c)
	if !ok {
		return
	}
	var req struct {
		Y float64 `json:"y"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	blk, err := h.Board.CreateBlockAt(owner, date, req.Y)
	if err != nil {
		c.JSON(engineStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, blk)
}

// MoveBlockHandler handles PUT /api/board/:date/blocks/:blockID/move.
func (h *ScheduleHandler) MoveBlockHandler(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	date, ok := boardDate(c)
	if !ok {
		return
	}
	var req struct {
		DeltaX float64 `json:"deltaX"`
		DeltaY float64 `json:"deltaY"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	blk, err := h.Board.MoveBlock(owner, date, c.Param("blockID"), req.DeltaX, req.DeltaY)
	if err != nil {
		c.JSON(engineStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, blk)
}

// ResizeBlockHandler handles PUT /api/board/:date/blocks/:blockID/resize.
func (h *ScheduleHandler) ResizeBlockHandler(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	date, ok := boardDate(c)
	if !ok {
		return
	}
	var req struct {
		InitialHeight float64 `json:"initialHeight"`
		DeltaY        float64 `json:"deltaY"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	blk, err := h.Board.ResizeBlock(owner, date, c.Param("blockID"), req.InitialHeight, req.DeltaY)
	if err != nil {
		c.JSON(engineStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, blk)
}

// AdjustPrepHandler handles PUT /api/board/:date/blocks/:blockID/prep.
func (h *ScheduleHandler) AdjustPrepHandler(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	date, ok := boardDate(c)
	if !ok {
		return
	}
	var req struct {
		DeltaY float64 `json:"deltaY"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	blk, err := h.Board.AdjustPrep(owner, date, c.Param("blockID"), req.DeltaY)
	if err != nil {
		c.JSON(engineStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, blk)
}

// DeleteBlockHandler handles DELETE /api/board/:date/blocks/:blockID.
func (h *ScheduleHandler) DeleteBlockHandler(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	date, ok := boardDate(c)
	if !ok {
		return
	}
	if err := h.Board.DeleteBlock(owner, date, c.Param("blockID")); err != nil {
		c.JSON(engineStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Block deleted"})
}

// CommitEditHandler handles PUT /api/board/:date/blocks/:blockID. The editor
// form commits atomically; a closed editor simply never calls this.
func (h *ScheduleHandler) CommitEditHandler(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	date, ok := boardDate(c)
	if !ok {
		return
	}
	var draft models.BlockDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	draft.ID = c.Param("blockID")
	blk, err := h.Board.CommitEdit(owner, date, draft)
	if err != nil {
		c.JSON(engineStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, blk)
}

// ToggleMoverHandler handles PUT /api/board/:date/blocks/:blockID/movers/:moverID.
func (h *ScheduleHandler) ToggleMoverHandler(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	date, ok := boardDate(c)
	if !ok {
		return
	}
	blk, err := h.Board.ToggleMover(owner, date, c.Param("blockID"), c.Param("moverID"))
	if err != nil {
		c.JSON(engineStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, blk)
}

// AddMoverHandler handles POST /api/board/:date/movers.
func (h *ScheduleHandler) AddMoverHandler(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	date, ok := boardDate(c)
	if !ok {
		return
	}
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m, err := h.Board.AddMover(owner, date, req.Name)
	if err != nil {
		c.JSON(engineStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, m)
}

// RemoveMoverHandler handles DELETE /api/board/:date/movers/:moverID.
func (h *ScheduleHandler) RemoveMoverHandler(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	date, ok := boardDate(c)
	if !ok {
		return
	}
	if err := h.Board.RemoveMover(owner, date, c.Param("moverID")); err != nil {
		c.JSON(engineStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Mover removed"})
}
