package services

import (
	"context"
	"regexp"
	"strings"
	"time"

	"hotel-management/models"
	"hotel-management/utils"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var leadingNumber = regexp.MustCompile(`^(\d+)`)

// BookingService owns the booking lifecycle and the room status changes it drives.
type BookingService struct {
	DB  *gorm.DB
	log *zap.Logger
	now func() time.Time
}

type BookingOption func(*BookingService)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) BookingOption {
	return func(s *BookingService) { s.now = now }
}

func NewBookingService(db *gorm.DB, log *zap.Logger, opts ...BookingOption) *BookingService {
	s := &BookingService{DB: db, log: log.Named("bookings"), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type CreateBookingInput struct {
	RoomID          string  `json:"roomId"`
	GuestID         string  `json:"guestId"`
	CheckIn         string  `json:"checkIn"`
	CheckOut        string  `json:"checkOut"`
	NumberOfGuests  int     `json:"numberOfGuests"`
	TotalPrice      float64 `json:"totalPrice"`
	SpecialRequests string  `json:"specialRequests"`
	BookingSource   string  `json:"bookingSource"`
}

type UpdateBookingInput struct {
	CheckIn         *string  `json:"checkIn"`
	CheckOut        *string  `json:"checkOut"`
	NumberOfGuests  *int     `json:"numberOfGuests"`
	Status          *string  `json:"status"`
	TotalPrice      *float64 `json:"totalPrice"`
	PaymentStatus   *string  `json:"paymentStatus"`
	SpecialRequests *string  `json:"specialRequests"`
}

// RoomNumberFromRef extracts the leading digits of a free-form room reference ("101 - Deluxe" -> "101").
func RoomNumberFromRef(ref string) (string, bool) {
	m := leadingNumber.FindStringSubmatch(strings.TrimSpace(ref))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// RoomStatusAfter returns the room status a booking transition implies, if any.
func RoomStatusAfter(bookingStatus, roomStatus string) (string, bool) {
	switch bookingStatus {
	case models.BookingCheckedIn:
		return models.RoomOccupied, true
	case models.BookingCheckedOut:
		return models.RoomCleaning, true
	case models.BookingCancelled:
		if roomStatus == models.RoomOccupied {
			return models.RoomAvailable, true
		}
	}
	return "", false
}

func (s *BookingService) resolveRoomID(ctx context.Context, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if models.IsValidID(ref) {
		return ref, nil
	}

	number, ok := RoomNumberFromRef(ref)
	if !ok {
		return "", invalidf("Invalid room ID format: %s", ref)
	}

	var room models.Room
	err := s.DB.WithContext(ctx).Select("id").Where("room_number = ?", number).First(&room).Error
	if isRecordNotFound(err) {
		return "", invalidf("Room not found with number: %s", number)
	}
	if err != nil {
		return "", errors.Wrap(err, "lookup room by number")
	}
	return room.ID, nil
}

func (s *BookingService) List(ctx context.Context, f BookingFilter) ([]models.BookingView, error) {
	q, err := f.Apply(s.DB.WithContext(ctx).Model(&models.Booking{}))
	if err != nil {
		return nil, err
	}

	var list []models.Booking
	if err := q.Preload("Room").Preload("Guest").Order("check_in DESC").Find(&list).Error; err != nil {
		return nil, errors.Wrap(err, "list bookings")
	}

	views := make([]models.BookingView, 0, len(list))
	for _, b := range list {
		views = append(views, models.NewBookingView(b))
	}
	return views, nil
}

func (s *BookingService) Get(ctx context.Context, id string) (models.BookingView, error) {
	b, err := s.load(s.DB.WithContext(ctx), id)
	if err != nil {
		return models.BookingView{}, err
	}
	return models.NewBookingView(b), nil
}

func (s *BookingService) load(db *gorm.DB, id string) (models.Booking, error) {
	var b models.Booking
	if !models.IsValidID(id) {
		return b, notFound("Booking not found")
	}
	err := db.Preload("Room").Preload("Guest").Where("id = ?", id).First(&b).Error
	if isRecordNotFound(err) {
		return b, notFound("Booking not found")
	}
	if err != nil {
		return b, errors.Wrapf(err, "load booking %s", id)
	}
	return b, nil
}

// Create books a room. The availability checks, the insert and the room status
// write share one transaction holding the room row lock.
func (s *BookingService) Create(ctx context.Context, in CreateBookingInput) (models.BookingView, error) {
	roomID, err := s.resolveRoomID(ctx, in.RoomID)
	if err != nil {
		return models.BookingView{}, err
	}
	if !models.IsValidID(in.GuestID) {
		return models.BookingView{}, invalidf("Invalid guestId format: %s", in.GuestID)
	}

	checkIn, err := utils.ParseDate(in.CheckIn)
	if err != nil {
		return models.BookingView{}, invalidf("Invalid checkIn date: %s", in.CheckIn)
	}
	checkOut, err := utils.ParseDate(in.CheckOut)
	if err != nil {
		return models.BookingView{}, invalidf("Invalid checkOut date: %s", in.CheckOut)
	}
	if !checkIn.Before(checkOut) {
		return models.BookingView{}, invalid("Check-out date must be after check-in date")
	}

	source := strings.TrimSpace(in.BookingSource)
	if source == "" {
		source = models.SourceDirectWebsite
	}
	if !models.IsValidBookingSource(source) {
		return models.BookingView{}, invalidf("Invalid bookingSource: %s", source)
	}

	guests := in.NumberOfGuests
	if guests <= 0 {
		guests = 1
	}

	booking := models.Booking{
		RoomID:          roomID,
		GuestID:         in.GuestID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		NumberOfGuests:  guests,
		Status:          models.BookingConfirmed,
		TotalPrice:      in.TotalPrice,
		PaymentStatus:   models.PaymentPending,
		SpecialRequests: in.SpecialRequests,
		BookingSource:   source,
	}

	today := utils.BeginningOfDay(s.now().UTC())
	occupyNow := !utils.BeginningOfDay(checkIn).After(today)

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room models.Room
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", roomID).First(&room).Error
		if isRecordNotFound(err) {
			return notFound("Room not found")
		}
		if err != nil {
			return errors.Wrap(err, "lock room")
		}

		if room.Status != models.RoomAvailable {
			return invalid("Room is not available for booking")
		}

		var clashes int64
		if err := tx.Model(&models.Booking{}).
			Where("room_id = ?", roomID).
			Where("status NOT IN ?", []string{models.BookingCancelled, models.BookingCheckedOut}).
			Where(stayOverlaps(checkIn, checkOut)).
			Count(&clashes).Error; err != nil {
			return errors.Wrap(err, "check overlapping bookings")
		}
		if clashes > 0 {
			return conflict("Room is already booked for the selected dates")
		}

		if err := tx.Create(&booking).Error; err != nil {
			return errors.Wrap(err, "create booking")
		}

		if occupyNow {
			if err := tx.Model(&models.Room{}).Where("id = ?", roomID).
				Update("status", models.RoomOccupied).Error; err != nil {
				return errors.Wrap(err, "occupy room")
			}
		}
		return nil
	})
	if err != nil {
		return models.BookingView{}, err
	}

	s.log.Info("booking created",
		zap.String("booking_id", booking.ID),
		zap.String("room_id", roomID),
		zap.Bool("occupied", occupyNow),
	)
	return s.Get(ctx, booking.ID)
}

// Update applies a partial change. A status change moves the room along with it.
func (s *BookingService) Update(ctx context.Context, id string, in UpdateBookingInput) (models.BookingView, error) {
	if !models.IsValidID(id) {
		return models.BookingView{}, notFound("Booking not found")
	}

	updates := map[string]interface{}{}
	if in.CheckIn != nil {
		t, err := utils.ParseDate(*in.CheckIn)
		if err != nil {
			return models.BookingView{}, invalidf("Invalid checkIn date: %s", *in.CheckIn)
		}
		updates["check_in"] = t
	}
	if in.CheckOut != nil {
		t, err := utils.ParseDate(*in.CheckOut)
		if err != nil {
			return models.BookingView{}, invalidf("Invalid checkOut date: %s", *in.CheckOut)
		}
		updates["check_out"] = t
	}
	if in.NumberOfGuests != nil {
		if *in.NumberOfGuests < 1 {
			return models.BookingView{}, invalid("numberOfGuests must be at least 1")
		}
		updates["number_of_guests"] = *in.NumberOfGuests
	}
	if in.Status != nil {
		if !models.IsValidBookingStatus(*in.Status) {
			return models.BookingView{}, invalidf("Invalid status: %s", *in.Status)
		}
		updates["status"] = *in.Status
	}
	if in.TotalPrice != nil {
		updates["total_price"] = *in.TotalPrice
	}
	if in.PaymentStatus != nil {
		if !models.IsValidPaymentStatus(*in.PaymentStatus) {
			return models.BookingView{}, invalidf("Invalid paymentStatus: %s", *in.PaymentStatus)
		}
		updates["payment_status"] = *in.PaymentStatus
	}
	if in.SpecialRequests != nil {
		updates["special_requests"] = *in.SpecialRequests
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&booking).Error
		if isRecordNotFound(err) {
			return notFound("Booking not found")
		}
		if err != nil {
			return errors.Wrap(err, "lock booking")
		}

		checkIn, checkOut := booking.CheckIn, booking.CheckOut
		if t, ok := updates["check_in"].(time.Time); ok {
			checkIn = t
		}
		if t, ok := updates["check_out"].(time.Time); ok {
			checkOut = t
		}
		if !checkIn.Before(checkOut) {
			return invalid("Check-out date must be after check-in date")
		}

		if in.Status != nil && *in.Status != booking.Status {
			if err := s.moveRoom(tx, booking.RoomID, *in.Status); err != nil {
				return err
			}
		}

		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&booking).Updates(updates).Error; err != nil {
			return errors.Wrap(err, "update booking")
		}
		return nil
	})
	if err != nil {
		return models.BookingView{}, err
	}

	return s.Get(ctx, id)
}

func (s *BookingService) moveRoom(tx *gorm.DB, roomID, bookingStatus string) error {
	var room models.Room
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", roomID).First(&room).Error
	if isRecordNotFound(err) {
		s.log.Warn("booking references a missing room", zap.String("room_id", roomID))
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "lock room")
	}

	next, ok := RoomStatusAfter(bookingStatus, room.Status)
	if !ok || next == room.Status {
		return nil
	}
	if err := tx.Model(&models.Room{}).Where("id = ?", roomID).Update("status", next).Error; err != nil {
		return errors.Wrap(err, "update room status")
	}
	s.log.Info("room status changed",
		zap.String("room_id", roomID),
		zap.String("from", room.Status),
		zap.String("to", next),
	)
	return nil
}

// Delete removes the booking only; the room keeps whatever status it has.
func (s *BookingService) Delete(ctx context.Context, id string) error {
	if !models.IsValidID(id) {
		return notFound("Booking not found")
	}
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Booking{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete booking")
	}
	if res.RowsAffected == 0 {
		return notFound("Booking not found")
	}
	return nil
}
