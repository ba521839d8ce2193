package models

const (
	StockSufficient = "Sufficient"
	StockLow        = "Low"
	StockCritical   = "Critical"
)

const (
	DefaultLowThreshold      = 50
	DefaultCriticalThreshold = 10
)

type Inventory struct {
	Base

	Name              string `gorm:"column:name;uniqueIndex;size:255;not null" json:"name"`
	Stock             int    `gorm:"column:stock;not null" json:"stock"`
	LowThreshold      int    `gorm:"column:low_threshold;not null" json:"lowThreshold"`
	CriticalThreshold int    `gorm:"column:critical_threshold;not null" json:"criticalThreshold"`
	Status            string `gorm:"column:status;size:32;index;not null" json:"status"`
}

func (Inventory) TableName() string {
	return "inventory"
}

// DeriveInventoryStatus maps a stock level onto its status. Both thresholds are inclusive.
func DeriveInventoryStatus(stock, low, critical int) string {
	switch {
	case stock <= critical:
		return StockCritical
	case stock <= low:
		return StockLow
	default:
		return StockSufficient
	}
}

// Refresh recomputes Status and reports whether it changed.
func (i *Inventory) Refresh() bool {
	next := DeriveInventoryStatus(i.Stock, i.LowThreshold, i.CriticalThreshold)
	changed := next != i.Status
	i.Status = next
	return changed
}
