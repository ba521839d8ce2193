package controllers

import (
	"net/http"

	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServiceRequestController serves guest service requests under /api/services.
type ServiceRequestController struct {
	ServiceSvc *services.ServiceRequestService
	log        *zap.Logger
}

func NewServiceRequestController(svc *services.ServiceRequestService, log *zap.Logger) *ServiceRequestController {
	return &ServiceRequestController{ServiceSvc: svc, log: log.Named("services")}
}

// ---------------------------
// Queries
// ---------------------------

func (sc *ServiceRequestController) GetServices(c *gin.Context) {
	var f services.ServiceFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		bindError(c, err)
		return
	}

	list, err := sc.ServiceSvc.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, sc.log, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (sc *ServiceRequestController) GetService(c *gin.Context) {
	sr, err := sc.ServiceSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, sc.log, err)
		return
	}
	c.JSON(http.StatusOK, sr)
}

// ---------------------------
// Commands
// ---------------------------

func (sc *ServiceRequestController) CreateService(c *gin.Context) {
	var in services.CreateServiceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		bindError(c, err)
		return
	}

	sr, err := sc.ServiceSvc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, sc.log, err)
		return
	}
	c.JSON(http.StatusOK, sr)
}

func (sc *ServiceRequestController) UpdateService(c *gin.Context) {
	var in services.UpdateServiceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		bindError(c, err)
		return
	}

	sr, err := sc.ServiceSvc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, sc.log, err)
		return
	}
	c.JSON(http.StatusOK, sr)
}

func (sc *ServiceRequestController) DeleteService(c *gin.Context) {
	if err := sc.ServiceSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, sc.log, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Service request removed")
}
