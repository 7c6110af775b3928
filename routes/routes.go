package routes

import (
	"net/http"
	"time"

	"campusroom/handlers"
	"campusroom/middleware"
	"campusroom/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAdminRoutes registers the campus directory management endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.RequireRole("admin"))

		api.POST("/buildings", hb.CreateBuildingHandler)
		api.PUT("/buildings/:id", hb.UpdateBuildingHandler)
		api.DELETE("/buildings/:id", hb.DeleteBuildingHandler)
		api.GET("/buildings", hb.GetBuildingsHandler)
		api.GET("/buildings/:buildingId/floors", hb.GetFloorsHandler)

		api.POST("/floors", hb.CreateFloorHandler)
		api.PUT("/floors/:id", hb.UpdateFloorHandler)
		api.DELETE("/floors/:id", hb.DeleteFloorHandler)

		api.POST("/classrooms", hb.CreateClassroomHandler)
		api.PUT("/classrooms/:id", hb.UpdateClassroomHandler)
		api.DELETE("/classrooms/:id", hb.DeleteClassroomHandler)
		api.GET("/classrooms", hb.GetClassroomsHandler)

		api.POST("/departments", hb.CreateDepartmentHandler)
		api.PUT("/departments/:id", hb.UpdateDepartmentHandler)
		api.DELETE("/departments/:id", hb.DeleteDepartmentHandler)
		api.GET("/departments", hb.GetDepartmentsHandler)

		api.POST("/teachers", hb.CreateTeacherHandler)
		api.PUT("/teachers/:id", hb.UpdateTeacherHandler)
		api.DELETE("/teachers/:id", hb.DeleteTeacherHandler)
		api.GET("/teachers", hb.GetTeachersHandler)
	}
}

// RegisterTimetableRoutes registers the booking endpoints. Admins and
// teachers can book; the availability probe is open to both as well.
func RegisterTimetableRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/timetable")
	{
		api.Use(middleware.RequireRole("admin", "teacher"))
		api.POST("/entries", hb.CreateEntryHandler)
		api.PUT("/entries/:id", hb.UpdateEntryHandler)
		api.DELETE("/entries/:id", hb.DeleteEntryHandler)
		api.PATCH("/entries/:id/status", hb.SetStatusHandler)
		api.GET("/check", hb.CheckAvailabilityHandler)
		api.GET("/classrooms/:classroomId", hb.GetRoomDayHandler)
		api.GET("/teachers/:teacherId", hb.GetTeacherDayHandler)
		api.POST("/import", hb.ImportHandler)
	}
}

// RegisterDisplayRoutes registers the public occupancy board endpoints.
func RegisterDisplayRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/display")
	{
		api.GET("/board", hb.GetBoardHandler)
		api.GET("/stream", hb.StreamBoardHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAdminRoutes(r, hb)
	RegisterTimetableRoutes(r, hb)
	RegisterDisplayRoutes(r, hb)
	RegisterHealthRoute(r)
}
