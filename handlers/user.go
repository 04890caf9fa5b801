package handlers

import (
	"net/http"

	"moveboard/models"
	userService "moveboard/services/user"
	"moveboard/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes account registration and session management.
type UserHandler struct {
	Service userService.UserService
}

func NewUserHandler(svc userService.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// RegisterHandler handles POST /api/auth/register.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Email       string `json:"email" binding:"required,email"`
		Password    string `json:"password" binding:"required"`
		CompanyName string `json:"companyName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := h.Service.RegisterUser(models.User{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /api/auth/login.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := h.Service.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MeHandler handles GET /api/auth/me.
func (h *UserHandler) MeHandler(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	usr, err := h.Service.GetUserByID(owner)
	if err != nil {
		utils.GetLogger().Error("failed to fetch account", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch account"})
		return
	}
	if usr == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// SessionHandler handles GET /api/auth/session, the dashboard shell's cheap
// "am I still signed in" probe.
func (h *UserHandler) SessionHandler(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"active": h.Service.HasSession(owner)})
}

// LogoutHandler handles POST /api/auth/logout.
func (h *UserHandler) LogoutHandler(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	if err := h.Service.RevokeAuthToken(owner); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
