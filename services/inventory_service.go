package services

import (
	"context"
	"fmt"
	"strings"

	"hotel-management/models"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type InventoryService struct {
	DB  *gorm.DB
	log *zap.Logger
}

func NewInventoryService(db *gorm.DB, log *zap.Logger) *InventoryService {
	return &InventoryService{DB: db, log: log.Named("inventory")}
}

type InventoryInput struct {
	Name              *string `json:"name"`
	Stock             *int    `json:"stock"`
	LowThreshold      *int    `json:"lowThreshold"`
	CriticalThreshold *int    `json:"criticalThreshold"`
}

func (s *InventoryService) List(ctx context.Context) ([]models.Inventory, error) {
	var items []models.Inventory
	if err := s.DB.WithContext(ctx).Order("name ASC").Find(&items).Error; err != nil {
		return nil, errors.Wrap(err, "list inventory")
	}
	return items, nil
}

func (s *InventoryService) Create(ctx context.Context, in InventoryInput) (models.Inventory, error) {
	item := models.Inventory{
		LowThreshold:      models.DefaultLowThreshold,
		CriticalThreshold: models.DefaultCriticalThreshold,
	}
	if in.Name != nil {
		item.Name = strings.TrimSpace(*in.Name)
	}
	if item.Name == "" {
		return models.Inventory{}, invalid("Inventory validation failed: name is required")
	}
	if in.Stock != nil {
		item.Stock = *in.Stock
	}
	if in.LowThreshold != nil {
		item.LowThreshold = *in.LowThreshold
	}
	if in.CriticalThreshold != nil {
		item.CriticalThreshold = *in.CriticalThreshold
	}
	if item.Stock < 0 {
		return models.Inventory{}, invalid("Inventory validation failed: stock cannot be negative")
	}
	item.Refresh()

	if err := s.DB.WithContext(ctx).Create(&item).Error; err != nil {
		if isDuplicateKey(err) {
			return models.Inventory{}, conflict(fmt.Sprintf("Inventory item %s already exists", item.Name))
		}
		return models.Inventory{}, errors.Wrap(err, "create inventory item")
	}
	return item, nil
}

func (s *InventoryService) Update(ctx context.Context, id string, in InventoryInput) (models.Inventory, error) {
	var item models.Inventory
	if !models.IsValidID(id) {
		return item, notFound("Item not found")
	}
	err := s.DB.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if isRecordNotFound(err) {
		return item, notFound("Item not found")
	}
	if err != nil {
		return item, errors.Wrapf(err, "load inventory item %s", id)
	}

	if in.Stock != nil {
		item.Stock = *in.Stock
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		item.Name = strings.TrimSpace(*in.Name)
	}
	if in.LowThreshold != nil {
		item.LowThreshold = *in.LowThreshold
	}
	if in.CriticalThreshold != nil {
		item.CriticalThreshold = *in.CriticalThreshold
	}
	if item.Stock < 0 {
		return item, invalid("Inventory validation failed: stock cannot be negative")
	}
	item.Refresh()

	if err := s.DB.WithContext(ctx).Save(&item).Error; err != nil {
		if isDuplicateKey(err) {
			return item, conflict(fmt.Sprintf("Inventory item %s already exists", item.Name))
		}
		return item, errors.Wrap(err, "save inventory item")
	}
	return item, nil
}

func (s *InventoryService) Delete(ctx context.Context, id string) error {
	if !models.IsValidID(id) {
		return notFound("Item not found")
	}
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Inventory{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete inventory item")
	}
	if res.RowsAffected == 0 {
		return notFound("Item not found")
	}
	return nil
}

// AuditResult summarises one pass of RecomputeStatuses.
type AuditResult struct {
	Checked   int
	Corrected int
	Critical  []models.Inventory
}

// RecomputeStatuses rewrites any stored status that no longer matches the stock level.
func (s *InventoryService) RecomputeStatuses(ctx context.Context) (AuditResult, error) {
	var res AuditResult
	var items []models.Inventory
	if err := s.DB.WithContext(ctx).Find(&items).Error; err != nil {
		return res, errors.Wrap(err, "load inventory")
	}

	res.Checked = len(items)
	for i := range items {
		item := &items[i]
		if item.Refresh() {
			if err := s.DB.WithContext(ctx).Model(&models.Inventory{}).Where("id = ?", item.ID).
				Update("status", item.Status).Error; err != nil {
				return res, errors.Wrapf(err, "update status of %s", item.Name)
			}
			res.Corrected++
		}
		if item.Status == models.StockCritical {
			res.Critical = append(res.Critical, *item)
		}
	}
	return res, nil
}
