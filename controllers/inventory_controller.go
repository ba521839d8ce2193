package controllers

import (
	"net/http"

	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type InventoryController struct {
	InventorySvc *services.InventoryService
	log          *zap.Logger
}

func NewInventoryController(svc *services.InventoryService, log *zap.Logger) *InventoryController {
	return &InventoryController{InventorySvc: svc, log: log.Named("inventory")}
}

func (ic *InventoryController) GetInventory(c *gin.Context) {
	items, err := ic.InventorySvc.List(c.Request.Context())
	if err != nil {
		respondError(c, ic.log, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (ic *InventoryController) CreateItem(c *gin.Context) {
	var in services.InventoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		bindError(c, err)
		return
	}

	item, err := ic.InventorySvc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, ic.log, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (ic *InventoryController) UpdateItem(c *gin.Context) {
	var in services.InventoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		bindError(c, err)
		return
	}

	item, err := ic.InventorySvc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, ic.log, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (ic *InventoryController) DeleteItem(c *gin.Context) {
	if err := ic.InventorySvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, ic.log, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Item deleted")
}
