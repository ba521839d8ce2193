package services

import (
	"context"
	"strings"

	"hotel-management/models"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type RoomService struct {
	DB  *gorm.DB
	log *zap.Logger
}

func NewRoomService(db *gorm.DB, log *zap.Logger) *RoomService {
	return &RoomService{DB: db, log: log.Named("rooms")}
}

type CreateRoomInput struct {
	RoomNumber   string   `json:"roomNumber"`
	Type         string   `json:"type"`
	BasePrice    *float64 `json:"basePrice"`
	WeekendPrice *float64 `json:"weekendPrice"`
	HolidayPrice *float64 `json:"holidayPrice"`
	Status       string   `json:"status"`
	Amenities    []string `json:"amenities"`
	Capacity     int      `json:"capacity"`
	Images       []string `json:"images"`
}

type UpdateRoomInput struct {
	RoomNumber   *string   `json:"roomNumber"`
	Type         *string   `json:"type"`
	BasePrice    *float64  `json:"basePrice"`
	WeekendPrice *float64  `json:"weekendPrice"`
	HolidayPrice *float64  `json:"holidayPrice"`
	Status       *string   `json:"status"`
	Amenities    *[]string `json:"amenities"`
	Capacity     *int      `json:"capacity"`
	Images       *[]string `json:"images"`
}

func (s *RoomService) List(ctx context.Context, f RoomFilter) ([]models.Room, error) {
	var rooms []models.Room
	if err := f.Apply(s.DB.WithContext(ctx)).Order("room_number ASC").Find(&rooms).Error; err != nil {
		return nil, errors.Wrap(err, "list rooms")
	}
	return rooms, nil
}

func (s *RoomService) Get(ctx context.Context, id string) (models.Room, error) {
	var room models.Room
	if !models.IsValidID(id) {
		return room, notFound("Room not found")
	}
	err := s.DB.WithContext(ctx).Where("id = ?", id).First(&room).Error
	if isRecordNotFound(err) {
		return room, notFound("Room not found")
	}
	if err != nil {
		return room, errors.Wrapf(err, "load room %s", id)
	}
	return room, nil
}

// ListForGuest returns the rooms held by the guest's confirmed or checked-in bookings.
func (s *RoomService) ListForGuest(ctx context.Context, guestID string) ([]models.Room, error) {
	rooms := []models.Room{}
	if !models.IsValidID(guestID) {
		return rooms, nil
	}

	held := s.DB.Model(&models.Booking{}).Select("room_id").
		Where("guest_id = ?", guestID).
		Where("status IN ?", []string{models.BookingConfirmed, models.BookingCheckedIn})

	if err := s.DB.WithContext(ctx).Where("id IN (?)", held).Order("room_number ASC").Find(&rooms).Error; err != nil {
		return nil, errors.Wrap(err, "list guest rooms")
	}
	return rooms, nil
}

func (s *RoomService) Create(ctx context.Context, in CreateRoomInput) (models.Room, error) {
	in.RoomNumber = strings.TrimSpace(in.RoomNumber)
	if in.RoomNumber == "" || in.BasePrice == nil || in.WeekendPrice == nil || in.HolidayPrice == nil {
		return models.Room{}, &Error{
			Kind: ErrValidation,
			Msg:  "Missing required fields",
			Details: map[string]string{
				"roomNumber":   presence(in.RoomNumber),
				"basePrice":    presenceOf(in.BasePrice),
				"weekendPrice": presenceOf(in.WeekendPrice),
				"holidayPrice": presenceOf(in.HolidayPrice),
			},
		}
	}

	room := models.Room{
		RoomNumber:   in.RoomNumber,
		Type:         models.RoomTypeStandard,
		BasePrice:    *in.BasePrice,
		WeekendPrice: *in.WeekendPrice,
		HolidayPrice: *in.HolidayPrice,
		Status:       models.RoomAvailable,
		Amenities:    models.StringList(in.Amenities),
		Capacity:     2,
		Images:       models.StringList(in.Images),
	}
	if in.Type != "" {
		if !models.IsValidRoomType(in.Type) {
			return models.Room{}, invalidf("Invalid room type: %s", in.Type)
		}
		room.Type = in.Type
	}
	if in.Status != "" {
		if !models.IsValidRoomStatus(in.Status) {
			return models.Room{}, invalidf("Invalid room status: %s", in.Status)
		}
		room.Status = in.Status
	}
	if in.Capacity > 0 {
		room.Capacity = in.Capacity
	}

	var existing int64
	if err := s.DB.WithContext(ctx).Model(&models.Room{}).
		Where("room_number = ?", room.RoomNumber).Count(&existing).Error; err != nil {
		return models.Room{}, errors.Wrap(err, "check room number")
	}
	if existing > 0 {
		return models.Room{}, conflict("Room with this number already exists")
	}

	if err := s.DB.WithContext(ctx).Create(&room).Error; err != nil {
		if isDuplicateKey(err) {
			return models.Room{}, conflict("Room with this number already exists")
		}
		return models.Room{}, errors.Wrap(err, "create room")
	}

	s.log.Info("room created", zap.String("room_id", room.ID), zap.String("room_number", room.RoomNumber))
	return room, nil
}

func (s *RoomService) Update(ctx context.Context, id string, in UpdateRoomInput) (models.Room, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return models.Room{}, err
	}

	updates := map[string]interface{}{}
	if in.RoomNumber != nil && strings.TrimSpace(*in.RoomNumber) != "" {
		updates["room_number"] = strings.TrimSpace(*in.RoomNumber)
	}
	if in.Type != nil && *in.Type != "" {
		if !models.IsValidRoomType(*in.Type) {
			return models.Room{}, invalidf("Invalid room type: %s", *in.Type)
		}
		updates["type"] = *in.Type
	}
	if in.BasePrice != nil {
		updates["base_price"] = *in.BasePrice
	}
	if in.WeekendPrice != nil {
		updates["weekend_price"] = *in.WeekendPrice
	}
	if in.HolidayPrice != nil {
		updates["holiday_price"] = *in.HolidayPrice
	}
	if in.Status != nil && *in.Status != "" {
		if !models.IsValidRoomStatus(*in.Status) {
			return models.Room{}, invalidf("Invalid room status: %s", *in.Status)
		}
		updates["status"] = *in.Status
	}
	if in.Amenities != nil {
		updates["amenities"] = models.StringList(*in.Amenities)
	}
	if in.Capacity != nil && *in.Capacity > 0 {
		updates["capacity"] = *in.Capacity
	}
	if in.Images != nil {
		updates["images"] = models.StringList(*in.Images)
	}

	if len(updates) > 0 {
		err := s.DB.WithContext(ctx).Model(&models.Room{}).Where("id = ?", id).Updates(updates).Error
		if isDuplicateKey(err) {
			return models.Room{}, conflict("Room with this number already exists")
		}
		if err != nil {
			return models.Room{}, errors.Wrap(err, "update room")
		}
	}
	return s.Get(ctx, id)
}

// Delete leaves bookings that reference the room in place.
func (s *RoomService) Delete(ctx context.Context, id string) error {
	if !models.IsValidID(id) {
		return notFound("Room not found")
	}
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Room{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete room")
	}
	if res.RowsAffected == 0 {
		return notFound("Room not found")
	}
	return nil
}

func presenceOf[T any](v *T) string {
	if v == nil {
		return "missing"
	}
	return "provided"
}
