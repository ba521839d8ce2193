package services

import (
	"time"

	"hotel-management/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Filters are bound from query strings; every present field narrows the result.

type RoomFilter struct {
	Type     string `form:"type"`
	Status   string `form:"status"`
	MinPrice *int   `form:"minPrice"`
	MaxPrice *int   `form:"maxPrice"`
}

func (f RoomFilter) Apply(q *gorm.DB) *gorm.DB {
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.MinPrice != nil {
		q = q.Where("base_price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("base_price <= ?", *f.MaxPrice)
	}
	return q
}

type UserFilter struct {
	Role string `form:"role"`
}

func (f UserFilter) Apply(q *gorm.DB) *gorm.DB {
	if f.Role != "" {
		q = q.Where("role = ?", f.Role)
	}
	return q
}

type BookingFilter struct {
	Status   string `form:"status"`
	GuestID  string `form:"guestId"`
	RoomID   string `form:"roomId"`
	FromDate string `form:"fromDate"`
	ToDate   string `form:"toDate"`
}

func (f BookingFilter) Apply(q *gorm.DB) (*gorm.DB, error) {
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.GuestID != "" {
		q = q.Where("guest_id = ?", f.GuestID)
	}
	if f.RoomID != "" {
		q = q.Where("room_id = ?", f.RoomID)
	}

	var from, to *time.Time
	if f.FromDate != "" {
		t, err := utils.ParseDate(f.FromDate)
		if err != nil {
			return nil, invalidf("Invalid fromDate: %s", f.FromDate)
		}
		from = &t
	}
	if f.ToDate != "" {
		t, err := utils.ParseDate(f.ToDate)
		if err != nil {
			return nil, invalidf("Invalid toDate: %s", f.ToDate)
		}
		to = &t
	}

	switch {
	case from != nil && to != nil:
		q = q.Where(stayOverlaps(*from, *to))
	case from != nil:
		q = q.Where(clause.Or(
			clause.Gte{Column: "check_in", Value: *from},
			clause.Gte{Column: "check_out", Value: *from},
		))
	case to != nil:
		q = q.Where(clause.Or(
			clause.Lte{Column: "check_in", Value: *to},
			clause.Lte{Column: "check_out", Value: *to},
		))
	}
	return q, nil
}

// stayOverlaps matches stays that start or end inside [from, to], or cover it entirely.
func stayOverlaps(from, to time.Time) clause.Expression {
	return clause.Or(
		clause.And(
			clause.Gte{Column: "check_in", Value: from},
			clause.Lte{Column: "check_in", Value: to},
		),
		clause.And(
			clause.Gte{Column: "check_out", Value: from},
			clause.Lte{Column: "check_out", Value: to},
		),
		clause.And(
			clause.Lte{Column: "check_in", Value: from},
			clause.Gte{Column: "check_out", Value: to},
		),
	)
}

type ServiceFilter struct {
	Type      string `form:"type"`
	Status    string `form:"status"`
	GuestID   string `form:"guestId"`
	RoomID    string `form:"roomId"`
	BookingID string `form:"bookingId"`
}

func (f ServiceFilter) Apply(q *gorm.DB) *gorm.DB {
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.GuestID != "" {
		q = q.Where("guest_id = ?", f.GuestID)
	}
	if f.RoomID != "" {
		q = q.Where("room_id = ?", f.RoomID)
	}
	if f.BookingID != "" {
		q = q.Where("booking_id = ?", f.BookingID)
	}
	return q
}

type MaintenanceFilter struct {
	Status   string `form:"status"`
	Priority string `form:"priority"`
	RoomID   string `form:"roomId"`
}

func (f MaintenanceFilter) Apply(q *gorm.DB) *gorm.DB {
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Priority != "" {
		q = q.Where("priority = ?", f.Priority)
	}
	if f.RoomID != "" {
		q = q.Where("room_id = ?", f.RoomID)
	}
	return q
}
