package controllers

import (
	"net/http"

	"hotel-management/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AnalyticsController struct {
	AnalyticsSvc *services.AnalyticsService
	log          *zap.Logger
}

func NewAnalyticsController(svc *services.AnalyticsService, log *zap.Logger) *AnalyticsController {
	return &AnalyticsController{AnalyticsSvc: svc, log: log.Named("analytics")}
}

// GET /api/analytics/overview
func (ac *AnalyticsController) GetOverview(c *gin.Context) {
	o, err := ac.AnalyticsSvc.Overview(c.Request.Context())
	if err != nil {
		respondError(c, ac.log, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// GET /api/analytics/revenue?period=yearly|monthly|weekly
func (ac *AnalyticsController) GetRevenue(c *gin.Context) {
	points, err := ac.AnalyticsSvc.Revenue(c.Request.Context(), c.Query("period"))
	if err != nil {
		respondError(c, ac.log, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

// GET /api/analytics/bookings
func (ac *AnalyticsController) GetBookingReport(c *gin.Context) {
	report, err := ac.AnalyticsSvc.BookingReport(c.Request.Context())
	if err != nil {
		respondError(c, ac.log, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
