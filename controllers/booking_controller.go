package controllers

import (
	"net/http"

	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingController struct {
	BookingSvc *services.BookingService
	log        *zap.Logger
}

func NewBookingController(svc *services.BookingService, log *zap.Logger) *BookingController {
	return &BookingController{BookingSvc: svc, log: log.Named("bookings")}
}

// ----------------------------------------------------
// GET /api/bookings
// ----------------------------------------------------

func (bc *BookingController) GetBookings(c *gin.Context) {
	var f services.BookingFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		bindError(c, err)
		return
	}

	bookings, err := bc.BookingSvc.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, bc.log, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ----------------------------------------------------
// GET /api/bookings/:id
// ----------------------------------------------------

func (bc *BookingController) GetBooking(c *gin.Context) {
	booking, err := bc.BookingSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, bc.log, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// ----------------------------------------------------
// POST /api/bookings
// ----------------------------------------------------

func (bc *BookingController) CreateBooking(c *gin.Context) {
	var in services.CreateBookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		bindError(c, err)
		return
	}

	booking, err := bc.BookingSvc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, bc.log, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// ----------------------------------------------------
// PUT /api/bookings/:id
// ----------------------------------------------------

func (bc *BookingController) UpdateBooking(c *gin.Context) {
	var in services.UpdateBookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		bindError(c, err)
		return
	}

	booking, err := bc.BookingSvc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, bc.log, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// ----------------------------------------------------
// DELETE /api/bookings/:id
// ----------------------------------------------------

func (bc *BookingController) DeleteBooking(c *gin.Context) {
	if err := bc.BookingSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, bc.log, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Booking removed")
}
