package controllers

import (
	"net/http"

	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MaintenanceController struct {
	MaintenanceSvc *services.MaintenanceService
	log            *zap.Logger
}

func NewMaintenanceController(svc *services.MaintenanceService, log *zap.Logger) *MaintenanceController {
	return &MaintenanceController{MaintenanceSvc: svc, log: log.Named("maintenance")}
}

// ----------------------------------------------------
// Reads
// ----------------------------------------------------

func (mc *MaintenanceController) GetTasks(c *gin.Context) {
	var f services.MaintenanceFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		bindError(c, err)
		return
	}

	tasks, err := mc.MaintenanceSvc.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, mc.log, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (mc *MaintenanceController) GetTask(c *gin.Context) {
	task, err := mc.MaintenanceSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mc.log, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (mc *MaintenanceController) GetRoomTasks(c *gin.Context) {
	tasks, err := mc.MaintenanceSvc.ListForRoom(c.Request.Context(), c.Param("roomId"))
	if err != nil {
		respondError(c, mc.log, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetGuestTasks lists the tasks a guest reported.
func (mc *MaintenanceController) GetGuestTasks(c *gin.Context) {
	tasks, err := mc.MaintenanceSvc.ListReportedBy(c.Request.Context(), c.Param("guestId"))
	if err != nil {
		respondError(c, mc.log, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// ----------------------------------------------------
// Writes
// ----------------------------------------------------

func (mc *MaintenanceController) CreateTask(c *gin.Context) {
	var in services.CreateTaskInput
	if err := c.ShouldBindJSON(&in); err != nil {
		bindError(c, err)
		return
	}

	task, err := mc.MaintenanceSvc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, mc.log, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (mc *MaintenanceController) UpdateTask(c *gin.Context) {
	var in services.UpdateTaskInput
	if err := c.ShouldBindJSON(&in); err != nil {
		bindError(c, err)
		return
	}

	task, err := mc.MaintenanceSvc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, mc.log, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (mc *MaintenanceController) DeleteTask(c *gin.Context) {
	if err := mc.MaintenanceSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mc.log, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Task removed")
}
