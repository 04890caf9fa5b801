// File: moveboard/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moveboard/config"
	"moveboard/cron"
	"moveboard/database"
	leadRepoPkg "moveboard/database/repository/lead"
	userRepoPkg "moveboard/database/repository/user"
	"moveboard/handlers"
	"moveboard/middleware"
	"moveboard/routes"
	leadService "moveboard/services/lead"
	routeService "moveboard/services/route"
	"moveboard/services/schedule"
	"moveboard/services/tasks"
	userService "moveboard/services/user"
	"moveboard/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitBoardCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	leadRepo := leadRepoPkg.NewMongoLeadRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	usrSvc := &userService.DefaultUserService{
		Repo: userRepo,
	}

	reminderClient := tasks.NewReminderClient()
	defer reminderClient.Close()

	leadSvc := &leadService.DefaultLeadService{
		Repo:          leadRepo,
		Scheduler:     reminderClient,
		FollowUpDelay: time.Duration(config.AppConfig.FollowUpDays) * 24 * time.Hour,
	}

	boardStore := schedule.NewBoardStore(utils.GetBoardCacheClient(), 12*time.Hour)
	boardSvc := &schedule.DefaultBoardService{Store: boardStore}

	routeSvc := routeService.NewDefaultRouteService(config.AppConfig.GoogleAPIKey)

	// Background worker that fires follow-up reminders.
	go cron.InitReminderWorker(leadSvc)

	// Assemble the handler bundle.
	handlerBundle := handlers.NewHandlerBundle(
		userRepo,
		handlers.NewUserHandler(usrSvc),
		handlers.NewScheduleHandler(boardSvc),
		handlers.NewLeadHandler(leadSvc),
		handlers.NewRouteHandler(routeSvc),
	)

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
