package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotel-management/config"
	"hotel-management/controllers"
	"hotel-management/logger"
	"hotel-management/routes"
	"hotel-management/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	gin.SetMode(cfg.Server.GinMode)

	db, err := config.ConnectDatabase(context.Background(), cfg, zl)
	if err != nil {
		zl.Fatal("database connect failed", zap.String("driver", cfg.Database.Driver), zap.Error(err))
	}

	// services
	userSvc := services.NewUserService(db, zl)
	roomSvc := services.NewRoomService(db, zl)
	bookingSvc := services.NewBookingService(db, zl)
	serviceSvc := services.NewServiceRequestService(db, zl)
	inventorySvc := services.NewInventoryService(db, zl)
	analyticsSvc := services.NewAnalyticsService(db, zl)
	maintenanceSvc := services.NewMaintenanceService(db, zl)

	auditor := services.NewStockAuditor(inventorySvc, zl)
	if err := auditor.Start(cfg.Jobs.StockAuditSchedule); err != nil {
		zl.Fatal("stock audit schedule rejected", zap.String("schedule", cfg.Jobs.StockAuditSchedule), zap.Error(err))
	}

	router := routes.SetupRouter(cfg.Server, zl, routes.Controllers{
		Users:       controllers.NewUserController(userSvc, zl),
		Rooms:       controllers.NewRoomController(roomSvc, zl),
		Bookings:    controllers.NewBookingController(bookingSvc, zl),
		Services:    controllers.NewServiceRequestController(serviceSvc, zl),
		Inventory:   controllers.NewInventoryController(inventorySvc, zl),
		Analytics:   controllers.NewAnalyticsController(analyticsSvc, zl),
		Maintenance: controllers.NewMaintenanceController(maintenanceSvc, zl),
	})

	addr := ":" + cfg.Server.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		zl.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Fatal("listen failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	zl.Info("shutdown signal received")

	auditor.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("forced shutdown", zap.Error(err))
		return
	}

	zl.Info("server stopped")
}
