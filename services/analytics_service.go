package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"hotel-management/models"
	"hotel-management/utils"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type AnalyticsService struct {
	DB  *gorm.DB
	log *zap.Logger
	now func() time.Time
}

func NewAnalyticsService(db *gorm.DB, log *zap.Logger) *AnalyticsService {
	return &AnalyticsService{DB: db, log: log.Named("analytics"), now: time.Now}
}

type Overview struct {
	TotalRooms       int64  `json:"totalRooms"`
	OccupiedRooms    int64  `json:"occupiedRooms"`
	AvailableRooms   int64  `json:"availableRooms"`
	MaintenanceRooms int64  `json:"maintenanceRooms"`
	CleaningRooms    int64  `json:"cleaningRooms"`
	TotalGuests      int64  `json:"totalGuests"`
	TotalStaff       int64  `json:"totalStaff"`
	ActiveBookings   int64  `json:"activeBookings"`
	PendingServices  int64  `json:"pendingServices"`
	OccupancyRate    string `json:"occupancyRate"`
}

type RevenuePoint struct {
	Date          string  `json:"date"`
	Month         string  `json:"month"`
	Day           int     `json:"day"`
	Year          int     `json:"year"`
	Revenue       float64 `json:"revenue"`
	Bookings      int     `json:"bookings"`
	AvgStayLength float64 `json:"avgStayLength"`
}

type ChannelStat struct {
	Channel  string  `json:"channel" gorm:"column:channel"`
	Bookings int64   `json:"bookings" gorm:"column:booking_count"`
	Revenue  float64 `json:"revenue" gorm:"column:revenue"`
}

type RoomTypeStat struct {
	Type     string  `json:"type" gorm:"column:room_type"`
	Bookings int64   `json:"bookings" gorm:"column:booking_count"`
	Revenue  float64 `json:"revenue" gorm:"column:revenue"`
}

type BookingReport struct {
	BookingSources       []ChannelStat  `json:"bookingSources"`
	RoomTypeDistribution []RoomTypeStat `json:"roomTypeDistribution"`
}

func (s *AnalyticsService) Overview(ctx context.Context) (Overview, error) {
	var o Overview
	g, gctx := errgroup.WithContext(ctx)

	count := func(dst *int64, model interface{}, query string, args ...interface{}) {
		g.Go(func() error {
			q := s.DB.WithContext(gctx).Model(model)
			if query != "" {
				q = q.Where(query, args...)
			}
			return q.Count(dst).Error
		})
	}

	count(&o.TotalRooms, &models.Room{}, "")
	count(&o.OccupiedRooms, &models.Room{}, "status = ?", models.RoomOccupied)
	count(&o.AvailableRooms, &models.Room{}, "status = ?", models.RoomAvailable)
	count(&o.MaintenanceRooms, &models.Room{}, "status = ?", models.RoomMaintenance)
	count(&o.CleaningRooms, &models.Room{}, "status = ?", models.RoomCleaning)
	count(&o.TotalGuests, &models.User{}, "role = ?", models.RoleGuest)
	count(&o.TotalStaff, &models.User{}, "role <> ?", models.RoleGuest)
	count(&o.ActiveBookings, &models.Booking{}, "status IN ?",
		[]string{models.BookingConfirmed, models.BookingCheckedIn})
	count(&o.PendingServices, &models.ServiceRequest{}, "status IN ?",
		[]string{models.ServicePending, models.ServiceProcessing})

	if err := g.Wait(); err != nil {
		return Overview{}, errors.Wrap(err, "overview counters")
	}

	o.OccupancyRate = OccupancyRate(o.OccupiedRooms, o.TotalRooms)
	return o, nil
}

// OccupancyRate formats occupied/total as a percentage with two decimals.
func OccupancyRate(occupied, total int64) string {
	rate := 0.0
	if total > 0 {
		rate = float64(occupied) / float64(total) * 100
	}
	return fmt.Sprintf("%.2f", rate)
}

// RevenueWindow maps a period name onto the start of its lookback window.
func RevenueWindow(period string, now time.Time) time.Time {
	switch period {
	case "yearly":
		return now.AddDate(-1, 0, 0)
	case "monthly":
		return now.AddDate(0, -1, 0)
	case "weekly":
		return now.AddDate(0, 0, -7)
	default:
		return now.AddDate(0, -3, 0)
	}
}

func (s *AnalyticsService) Revenue(ctx context.Context, period string) ([]RevenuePoint, error) {
	now := s.now().UTC()
	start := RevenueWindow(period, now)

	var bookings []models.Booking
	if err := s.DB.WithContext(ctx).
		Select("id", "created_at", "check_in", "check_out", "total_price").
		Where("created_at >= ? AND created_at <= ?", start, now).
		Where("status <> ?", models.BookingCancelled).
		Find(&bookings).Error; err != nil {
		return nil, errors.Wrap(err, "load bookings for revenue")
	}

	return AggregateRevenue(bookings), nil
}

// AggregateRevenue buckets bookings by the calendar day they were created on
// and sums revenue per bucket. Output is sorted by day.
func AggregateRevenue(bookings []models.Booking) []RevenuePoint {
	type acc struct {
		day      time.Time
		revenue  float64
		bookings int
		stay     float64
	}

	buckets := map[time.Time]*acc{}
	for _, b := range bookings {
		key := utils.BeginningOfDay(b.CreatedAt.UTC())

		a, ok := buckets[key]
		if !ok {
			a = &acc{day: key}
			buckets[key] = a
		}
		a.revenue += b.TotalPrice
		a.bookings++
		a.stay += utils.StayDays(b.CheckIn, b.CheckOut)
	}

	out := make([]RevenuePoint, 0, len(buckets))
	for _, a := range buckets {
		out = append(out, RevenuePoint{
			Date:          a.day.Format("2006-01-02"),
			Month:         a.day.Month().String(),
			Day:           a.day.Day(),
			Year:          a.day.Year(),
			Revenue:       a.revenue,
			Bookings:      a.bookings,
			AvgStayLength: math.Round(a.stay/float64(a.bookings)*10) / 10,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func (s *AnalyticsService) BookingReport(ctx context.Context) (BookingReport, error) {
	report := BookingReport{
		BookingSources:       []ChannelStat{},
		RoomTypeDistribution: []RoomTypeStat{},
	}
	db := s.DB.WithContext(ctx)

	if err := db.Model(&models.Booking{}).
		Select("booking_source AS channel, COUNT(*) AS booking_count, COALESCE(SUM(total_price), 0) AS revenue").
		Group("booking_source").
		Order("booking_count DESC, channel ASC").
		Scan(&report.BookingSources).Error; err != nil {
		return report, errors.Wrap(err, "booking sources")
	}

	if err := db.Model(&models.Booking{}).
		Select("rooms.type AS room_type, COUNT(*) AS booking_count, COALESCE(SUM(bookings.total_price), 0) AS revenue").
		Joins("JOIN rooms ON rooms.id = bookings.room_id").
		Group("rooms.type").
		Order("booking_count DESC, room_type ASC").
		Scan(&report.RoomTypeDistribution).Error; err != nil {
		return report, errors.Wrap(err, "room type distribution")
	}

	return report, nil
}
