package controllers

import (
	"net/http"

	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RoomController struct {
	RoomSvc *services.RoomService
	log     *zap.Logger
}

func NewRoomController(svc *services.RoomService, log *zap.Logger) *RoomController {
	return &RoomController{RoomSvc: svc, log: log.Named("rooms")}
}

// ----------------------------------------------------
// 1. Get Rooms (GET /api/rooms?type=&status=&minPrice=&maxPrice=)
// ----------------------------------------------------

func (rc *RoomController) GetRooms(c *gin.Context) {
	var f services.RoomFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		bindError(c, err)
		return
	}

	rooms, err := rc.RoomSvc.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, rc.log, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// ----------------------------------------------------
// 2. Get Room (GET /api/rooms/:id)
// ----------------------------------------------------

func (rc *RoomController) GetRoom(c *gin.Context) {
	room, err := rc.RoomSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, rc.log, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// ----------------------------------------------------
// 3. Rooms a guest currently holds (GET /api/rooms/guest/:guestId)
// ----------------------------------------------------

func (rc *RoomController) GetGuestRooms(c *gin.Context) {
	rooms, err := rc.RoomSvc.ListForGuest(c.Request.Context(), c.Param("guestId"))
	if err != nil {
		respondError(c, rc.log, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// ----------------------------------------------------
// 4. Create Room (POST /api/rooms)
// ----------------------------------------------------

func (rc *RoomController) CreateRoom(c *gin.Context) {
	var in services.CreateRoomInput
	if err := c.ShouldBindJSON(&in); err != nil {
		bindError(c, err)
		return
	}

	room, err := rc.RoomSvc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, rc.log, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// ----------------------------------------------------
// 5. Update Room (PUT /api/rooms/:id)
// ----------------------------------------------------

func (rc *RoomController) UpdateRoom(c *gin.Context) {
	var in services.UpdateRoomInput
	if err := c.ShouldBindJSON(&in); err != nil {
		bindError(c, err)
		return
	}

	room, err := rc.RoomSvc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, rc.log, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// ----------------------------------------------------
// 6. Delete Room (DELETE /api/rooms/:id)
// ----------------------------------------------------

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	if err := rc.RoomSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, rc.log, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Room removed")
}
