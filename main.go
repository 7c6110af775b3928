// File: campusroom/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campusroom/config"
	"campusroom/cron"
	"campusroom/database"
	campusRepo "campusroom/database/repository/campus"
	teacherRepo "campusroom/database/repository/teacher"
	timetableRepo "campusroom/database/repository/timetable"
	"campusroom/handlers"
	"campusroom/middleware"
	"campusroom/routes"
	"campusroom/services/campus"
	"campusroom/services/display"
	"campusroom/services/timetable"
	"campusroom/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	campRepo := campusRepo.NewMongoCampusRepo()
	tchRepo := teacherRepo.NewMongoTeacherRepo()
	ttRepo := timetableRepo.NewMongoTimetableRepo()

	if err := ttRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure timetable indexes: %v", err)
	}

	// services.
	campusService := &campus.DefaultCampusService{
		Repo:      campRepo,
		Teachers:  tchRepo,
		Timetable: ttRepo,
	}

	timetableService := &timetable.DefaultTimetableService{
		Repo:      ttRepo,
		Directory: campRepo,
		Teachers:  tchRepo,
	}

	displayService := &display.DefaultDisplayService{
		Classrooms: campRepo,
		Entries:    ttRepo,
		Cache:      utils.GetCacheClient(),
		Logger:     logger,
	}

	hub := display.NewHub(utils.GetCacheClient(), logger)

	rootCtx, cancelRoot := context.WithCancel(context.Background())
	defer cancelRoot()

	go hub.Run(rootCtx)
	go displayService.RunWatcher(rootCtx, ttRepo)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)
	cron.InitBoardWorker(displayService)

	campusHandler := handlers.NewCampusHandler(campusService)
	timetableHandler := handlers.NewTimetableHandler(timetableService)
	displayHandler := handlers.NewDisplayHandler(displayService, hub)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Campus directory endpoints.
		CreateBuildingHandler: campusHandler.CreateBuildingHandler,
		UpdateBuildingHandler: campusHandler.UpdateBuildingHandler,
		DeleteBuildingHandler: campusHandler.DeleteBuildingHandler,
		GetBuildingsHandler:   campusHandler.GetBuildingsHandler,

		CreateFloorHandler: campusHandler.CreateFloorHandler,
		UpdateFloorHandler: campusHandler.UpdateFloorHandler,
		DeleteFloorHandler: campusHandler.DeleteFloorHandler,
		GetFloorsHandler:   campusHandler.GetFloorsHandler,

		CreateClassroomHandler: campusHandler.CreateClassroomHandler,
		UpdateClassroomHandler: campusHandler.UpdateClassroomHandler,
		DeleteClassroomHandler: campusHandler.DeleteClassroomHandler,
		GetClassroomsHandler:   campusHandler.GetClassroomsHandler,

		CreateDepartmentHandler: campusHandler.CreateDepartmentHandler,
		UpdateDepartmentHandler: campusHandler.UpdateDepartmentHandler,
		DeleteDepartmentHandler: campusHandler.DeleteDepartmentHandler,
		GetDepartmentsHandler:   campusHandler.GetDepartmentsHandler,

		CreateTeacherHandler: campusHandler.CreateTeacherHandler,
		UpdateTeacherHandler: campusHandler.UpdateTeacherHandler,
		DeleteTeacherHandler: campusHandler.DeleteTeacherHandler,
		GetTeachersHandler:   campusHandler.GetTeachersHandler,

		// Timetable endpoints.
		CreateEntryHandler:       timetableHandler.CreateEntryHandler,
		UpdateEntryHandler:       timetableHandler.UpdateEntryHandler,
		DeleteEntryHandler:       timetableHandler.DeleteEntryHandler,
		SetStatusHandler:         timetableHandler.SetStatusHandler,
		CheckAvailabilityHandler: timetableHandler.CheckAvailabilityHandler,
		GetRoomDayHandler:        timetableHandler.GetRoomDayHandler,
		GetTeacherDayHandler:     timetableHandler.GetTeacherDayHandler,
		ImportHandler:            timetableHandler.ImportHandler,

		// Display endpoints.
		GetBoardHandler:    displayHandler.GetBoardHandler,
		StreamBoardHandler: displayHandler.StreamBoardHandler,
	}

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

	cancelRoot()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
