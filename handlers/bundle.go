// File: campusroom/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Campus directory endpoints
	CreateBuildingHandler gin.HandlerFunc
	UpdateBuildingHandler gin.HandlerFunc
	DeleteBuildingHandler gin.HandlerFunc
	GetBuildingsHandler   gin.HandlerFunc

	CreateFloorHandler gin.HandlerFunc
	UpdateFloorHandler gin.HandlerFunc
	DeleteFloorHandler gin.HandlerFunc
	GetFloorsHandler   gin.HandlerFunc

	CreateClassroomHandler gin.HandlerFunc
	UpdateClassroomHandler gin.HandlerFunc
	DeleteClassroomHandler gin.HandlerFunc
	GetClassroomsHandler   gin.HandlerFunc

	CreateDepartmentHandler gin.HandlerFunc
	UpdateDepartmentHandler gin.HandlerFunc
	DeleteDepartmentHandler gin.HandlerFunc
	GetDepartmentsHandler   gin.HandlerFunc

	CreateTeacherHandler gin.HandlerFunc
	UpdateTeacherHandler gin.HandlerFunc
	DeleteTeacherHandler gin.HandlerFunc
	GetTeachersHandler   gin.HandlerFunc

	// Timetable endpoints
	CreateEntryHandler       gin.HandlerFunc
	UpdateEntryHandler       gin.HandlerFunc
	DeleteEntryHandler       gin.HandlerFunc
	SetStatusHandler         gin.HandlerFunc
	CheckAvailabilityHandler gin.HandlerFunc
	GetRoomDayHandler        gin.HandlerFunc
	GetTeacherDayHandler     gin.HandlerFunc
	ImportHandler            gin.HandlerFunc

	// Display endpoints
	GetBoardHandler    gin.HandlerFunc
	StreamBoardHandler gin.HandlerFunc
}
