package services

import (
	"context"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StockAuditor periodically re-derives inventory status and reports critical items.
type StockAuditor struct {
	inventory *InventoryService
	log       *zap.Logger
	cron      *cron.Cron
}

func NewStockAuditor(inventory *InventoryService, log *zap.Logger) *StockAuditor {
	return &StockAuditor{
		inventory: inventory,
		log:       log.Named("stock-audit"),
		cron:      cron.New(),
	}
}

// Start schedules the audit. An empty schedule leaves the job disabled.
func (a *StockAuditor) Start(schedule string) error {
	schedule = strings.TrimSpace(schedule)
	if schedule == "" {
		a.log.Info("stock audit disabled")
		return nil
	}

	if _, err := a.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		a.Run(ctx)
	}); err != nil {
		return err
	}

	a.cron.Start()
	a.log.Info("stock audit scheduled", zap.String("schedule", schedule))
	return nil
}

// Stop waits for a running audit to finish.
func (a *StockAuditor) Stop() {
	<-a.cron.Stop().Done()
}

func (a *StockAuditor) Run(ctx context.Context) AuditResult {
	res, err := a.inventory.RecomputeStatuses(ctx)
	if err != nil {
		a.log.Error("stock audit failed", zap.Error(err))
		return res
	}

	for _, item := range res.Critical {
		a.log.Warn("critical stock",
			zap.String("item", item.Name),
			zap.Int("stock", item.Stock),
			zap.Int("critical_threshold", item.CriticalThreshold),
		)
	}
	a.log.Info("stock audit done",
		zap.Int("checked", res.Checked),
		zap.Int("corrected", res.Corrected),
		zap.Int("critical", len(res.Critical)),
	)
	return res
}
