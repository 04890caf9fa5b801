package routes

import (
	"net/http"
	"time"

	"moveboard/handlers"
	"moveboard/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.MeHandler)
		api.GET("/session", hb.SessionHandler)
		api.POST("/logout", hb.LogoutHandler)
	}
}

// RegisterBoardRoutes sets up the endpoints for the schedule board engine.
func RegisterBoardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	board := r.Group("/api/board")
	{
		board.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		board.GET("/:date", hb.GetBoardHandler)
		board.DELETE("/:date", hb.ClearBoardHandler)

		board.POST("/:date/blocks", hb.CreateBlockHandler)
		board.PUT("/:date/blocks/:blockID", hb.CommitEditHandler)
		board.PUT("/:date/blocks/:blockID/move", hb.MoveBlockHandler)
		board.PUT("/:date/blocks/:blockID/resize", hb.ResizeBlockHandler)
		board.PUT("/:date/blocks/:blockID/prep", hb.AdjustPrepHandler)
		board.DELETE("/:date/blocks/:blockID", hb.DeleteBlockHandler)
		board.PUT("/:date/blocks/:blockID/movers/:moverID", hb.ToggleMoverHandler)

		board.POST("/:date/movers", hb.AddMoverHandler)
		board.DELETE("/:date/movers/:moverID", hb.RemoveMoverHandler)

		board.POST("/:date/blocks/:blockID/gesture", hb.BeginGestureHandler)
		board.PUT("/:date/gesture", hb.UpdateGestureHandler)
		board.POST("/:date/gesture/end", hb.EndGestureHandler)
		board.DELETE("/:date/gesture", hb.CancelGestureHandler)
	}
}

// RegisterLeadRoutes registers lead CRM endpoints.
func RegisterLeadRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	leads := r.Group("/api/leads")
	{
		leads.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		leads.POST("", hb.CreateLeadHandler)
		leads.GET("", hb.ListLeadsHandler)
		leads.POST("/import", hb.ImportLeadsHandler)
		leads.GET("/export", hb.ExportLeadsHandler)
		leads.GET("/:id", hb.GetLeadHandler)
		leads.PUT("/:id", hb.UpdateLeadHandler)
		leads.POST("/:id/contacted", hb.MarkContactedHandler)
		leads.DELETE("/:id", hb.DeleteLeadHandler)
	}
}

// RegisterRouteRoutes registers route planning endpoints.
func RegisterRouteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	rt := r.Group("/api/routes")
	{
		rt.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		rt.POST("/plan", hb.PlanRouteHandler)
		rt.GET("/autocomplete", hb.AutocompleteHandler)
		rt.GET("/streetview", hb.StreetViewHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm MoveBoard"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterBoardRoutes(r, hb)
	RegisterLeadRoutes(r, hb)
	RegisterRouteRoutes(r, hb)
}
