package handlers

import (
	userRepoPkg "moveboard/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Auth endpoints
	RegisterHandler gin.HandlerFunc
	LoginHandler    gin.HandlerFunc
	MeHandler       gin.HandlerFunc
	SessionHandler  gin.HandlerFunc
	LogoutHandler   gin.HandlerFunc

	// Board endpoints
	GetBoardHandler      gin.HandlerFunc
	ClearBoardHandler    gin.HandlerFunc
	CreateBlockHandler   gin.HandlerFunc
	MoveBlockHandler     gin.HandlerFunc
	ResizeBlockHandler   gin.HandlerFunc
	AdjustPrepHandler    gin.HandlerFunc
	DeleteBlockHandler   gin.HandlerFunc
	CommitEditHandler    gin.HandlerFunc
	ToggleMoverHandler   gin.HandlerFunc
	AddMoverHandler      gin.HandlerFunc
	RemoveMoverHandler   gin.HandlerFunc
	BeginGestureHandler  gin.HandlerFunc
	UpdateGestureHandler gin.HandlerFunc
	EndGestureHandler    gin.HandlerFunc
	CancelGestureHandler gin.HandlerFunc

	// Lead endpoints
	CreateLeadHandler    gin.HandlerFunc
	ListLeadsHandler     gin.HandlerFunc
	GetLeadHandler       gin.HandlerFunc
	UpdateLeadHandler    gin.HandlerFunc
	MarkContactedHandler gin.HandlerFunc
	DeleteLeadHandler    gin.HandlerFunc
	ImportLeadsHandler   gin.HandlerFunc
	ExportLeadsHandler   gin.HandlerFunc

	// Route endpoints
	PlanRouteHandler    gin.HandlerFunc
	AutocompleteHandler gin.HandlerFunc
	StreetViewHandler   gin.HandlerFunc
}

// NewHandlerBundle wires the typed handlers into the flat bundle consumed by
// route registration.
func NewHandlerBundle(
	userRepo userRepoPkg.UserRepository,
	uh *UserHandler,
	sh *ScheduleHandler,
	lh *LeadHandler,
	rh *RouteHandler,
) *HandlerBundle {
	return &HandlerBundle{
		UserRepo: userRepo,

		RegisterHandler: uh.RegisterHandler,
		LoginHandler:    uh.LoginHandler,
		MeHandler:       uh.MeHandler,
		SessionHandler:  uh.SessionHandler,
		LogoutHandler:   uh.LogoutHandler,

		GetBoardHandler:      sh.GetBoardHandler,
		ClearBoardHandler:    sh.ClearBoardHandler,
		CreateBlockHandler:   sh.CreateBlockHandler,
		MoveBlockHandler:     sh.MoveBlockHandler,
		ResizeBlockHandler:   sh.ResizeBlockHandler,
		AdjustPrepHandler:    sh.AdjustPrepHandler,
		DeleteBlockHandler:   sh.DeleteBlockHandler,
		CommitEditHandler:    sh.CommitEditHandler,
		ToggleMoverHandler:   sh.ToggleMoverHandler,
		AddMoverHandler:      sh.AddMoverHandler,
		RemoveMoverHandler:   sh.RemoveMoverHandler,
		BeginGestureHandler:  sh.BeginGestureHandler,
		UpdateGestureHandler: sh.UpdateGestureHandler,
		EndGestureHandler:    sh.EndGestureHandler,
		CancelGestureHandler: sh.CancelGestureHandler,

		CreateLeadHandler:    lh.CreateLeadHandler,
		ListLeadsHandler:     lh.ListLeadsHandler,
		GetLeadHandler:       lh.GetLeadHandler,
		UpdateLeadHandler:    lh.UpdateLeadHandler,
		MarkContactedHandler: lh.MarkContactedHandler,
		DeleteLeadHandler:    lh.DeleteLeadHandler,
		ImportLeadsHandler:   lh.ImportLeadsHandler,
		ExportLeadsHandler:   lh.ExportLeadsHandler,

		PlanRouteHandler:    rh.PlanRouteHandler,
		AutocompleteHandler: rh.AutocompleteHandler,
		StreetViewHandler:   rh.StreetViewHandler,
	}
}
