package handlers

import (
	"net/http"

	"campusroom/models"
	"campusroom/services/campus"
	"campusroom/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CampusHandler serves the admin directory endpoints.
type CampusHandler struct {
	Svc campus.CampusService
}

// NewCampusHandler constructs a CampusHandler.
func NewCampusHandler(svc campus.CampusService) *CampusHandler {
	return &CampusHandler{Svc: svc}
}

// Buildings.

func (h *CampusHandler) CreateBuildingHandler(c *gin.Context) {
	var b models.Building
	if err := c.ShouldBindJSON(&b); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	created, err := h.Svc.CreateBuilding(c.Request.Context(), b)
	if err != nil {
		getLogger(c).Error("Failed to create building", zap.Error(err))
		utils.JSONError(c, statusForError(err), "Failed to create building", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CampusHandler) UpdateBuildingHandler(c *gin.Context) {
	var b models.Building
	if err := c.ShouldBindJSON(&b); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	b.ID = c.Param("id")
	updated, err := h.Svc.UpdateBuilding(c.Request.Context(), b)
	if err != nil {
		getLogger(c).Error("Failed to update building", zap.String("id", b.ID), zap.Error(err))
		utils.JSONError(c, statusForError(err), "Failed to update building", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *CampusHandler) DeleteBuildingHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.DeleteBuilding(c.Request.Context(), id); err != nil {
		getLogger(c).Error("Failed to delete building", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, statusForError(err), "Failed to delete building", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Building deleted"})
}

func (h *CampusHandler) GetBuildingsHandler(c *gin.Context) {
	buildings, err := h.Svc.GetBuildings(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to list buildings", zap.Error(err))
		utils.JSONError(c, statusForError(err), "Failed to list buildings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"buildings": buildings})
}

// Floors.

func (h *CampusHandler) CreateFloorHandler(c *gin.Context) {
	var f models.Floor
	if err := c.ShouldBindJSON(&f); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	created, err := h.Svc.CreateFloor(c.Request.Context(), f)
	if err != nil {
		getLogger(c).Error("Failed to create floor", zap.Error(err))
		utils.JSONError(c, statusForError(err), "Failed to create floor", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CampusHandler) UpdateFloorHandler(c *gin.Context) {
	var f models.Floor
	if err := c.ShouldBindJSON(&f); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	f.ID = c.Param("id")
	updated, err := h.Svc.UpdateFloor(c.Request.Context(), f)
	if err != nil {
		getLogger(c).Error("Failed to update floor", zap.String("id", f.ID), zap.Error(err))
		utils.JSONError(c, statusForError(err), "Failed to update floor", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *CampusHandler) DeleteFloorHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.DeleteFloor(c.Request.Context(), id); err != nil {
		getLogger(c).Error("Failed to delete floor", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, statusForError(err), "Failed to delete floor", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Floor deleted"})
}

func (h *CampusHandler) GetFloorsHandler(c *gin.Context) {
	floors, err := h.Svc.GetFloors(c.Request.Context(), c.Param("buildingId"))
	if err != nil {
		getLogger(c).Error("Failed to list floors", zap.Error(err))
		utils.JSONError(c, statusForError(err), "Failed to list floors", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"floors": floors})
}

// Classrooms.

func (h *CampusHandler) CreateClassroomHandler(c *gin.Context) {
	var room models.Classroom
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	created, err := h.Svc.CreateClassroom(c.Request.Context(), room)
	if err != nil {
		getLogger(c).Error("Failed to create classroom", zap.Error(err))
		utils.JSONError(c, statusForError(err), "Failed to create classroom", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CampusHandler) UpdateClassroomHandler(c *gin.Context) {
	var room models.Classroom
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	room.ID = c.Param("id")
	updated, err := h.Svc.UpdateClassroom(c.Request.Context(), room)
	if err != nil {
		getLogger(c).Error("Failed to update classroom", zap.String("id", room.ID), zap.Error(err))
		utils.JSONError(c, statusForError(err), "Failed to update classroom", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *CampusHandler) DeleteClassroomHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.DeleteClassroom(c.Request.Context(), id); err != nil {
		getLogger(c).Error("Failed to delete classroom", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, statusForError(err), "Failed to delete classroom", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Classroom deleted"})
}

func (h *CampusHandler) GetClassroomsHandler(c *gin.Context) {
	rooms, err := h.Svc.GetClassrooms(c.Request.Context(), c.Query("floorId"))
	if err != nil {
		getLogger(c).Error("Failed to list classrooms", zap.Error(err))
		utils.JSONError(c, statusForError(err), "Failed to list classrooms", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"classrooms": rooms})
}

// Departments.

func (h *CampusHandler) CreateDepartmentHandler(c *gin.Context) {
	var d models.Department
	if err := c.ShouldBindJSON(&d); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	created, err := h.Svc.CreateDepartment(c.Request.Context(), d)
	if err != nil {
		getLogger(c).Error("Failed to create department", zap.Error(err))
		utils.JSONError(c, statusForError(err), "Failed to create department", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CampusHandler) UpdateDepartmentHandler(c *gin.Context) {
	var d models.Department
	if err := c.ShouldBindJSON(&d); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	d.ID = c.Param("id")
	updated, err := h.Svc.UpdateDepartment(c.Request.Context(), d)
	if err != nil {
		getLogger(c).Error("Failed to update department", zap.String("id", d.ID), zap.Error(err))
		utils.JSONError(c, statusForError(err), "Failed to update department", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *CampusHandler) DeleteDepartmentHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.DeleteDepartment(c.Request.Context(), id); err != nil {
		getLogger(c).Error("Failed to delete department", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, statusForError(err), "Failed to delete department", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Department deleted"})
}

func (h *CampusHandler) GetDepartmentsHandler(c *gin.Context) {
	departments, err := h.Svc.GetDepartments(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to list departments", zap.Error(err))
		utils.JSONError(c, statusForError(err), "Failed to list departments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"departments": departments})
}

// Teachers.

func (h *CampusHandler) CreateTeacherHandler(c *gin.Context) {
	var t models.Teacher
	if err := c.ShouldBindJSON(&t); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	created, err := h.Svc.CreateTeacher(c.Request.Context(), t)
	if err != nil {
		getLogger(c).Error("Failed to create teacher", zap.Error(err))
		utils.JSONError(c, statusForError(err), "Failed to create teacher", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CampusHandler) UpdateTeacherHandler(c *gin.Context) {
	var t models.Teacher
	if err := c.ShouldBindJSON(&t); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	t.ID = c.Param("id")
	updated, err := h.Svc.UpdateTeacher(c.Request.Context(), t)
	if err != nil {
		getLogger(c).Error("Failed to update teacher", zap.String("id", t.ID), zap.Error(err))
		utils.JSONError(c, statusForError(err), "Failed to update teacher", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *CampusHandler) DeleteTeacherHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.DeleteTeacher(c.Request.Context(), id); err != nil {
		getLogger(c).Error("Failed to delete teacher", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, statusForError(err), "Failed to delete teacher", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Teacher deleted"})
}

func (h *CampusHandler) GetTeachersHandler(c *gin.Context) {
	teachers, err := h.Svc.GetTeachers(c.Request.Context(), c.Query("departmentId"))
	if err != nil {
		getLogger(c).Error("Failed to list teachers", zap.Error(err))
		utils.JSONError(c, statusForError(err), "Failed to list teachers", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"teachers": teachers})
}
