package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

const (
	RoomTypeStandard     = "Standard"
	RoomTypeDeluxe       = "Deluxe"
	RoomTypeSuite        = "Suite"
	RoomTypePresidential = "Presidential"
)

const (
	RoomAvailable   = "Available"
	RoomOccupied    = "Occupied"
	RoomCleaning    = "Cleaning"
	RoomMaintenance = "Maintenance"
)

func IsValidRoomType(t string) bool {
	return oneOf(t, RoomTypeStandard, RoomTypeDeluxe, RoomTypeSuite, RoomTypePresidential)
}

func IsValidRoomStatus(s string) bool {
	return oneOf(s, RoomAvailable, RoomOccupied, RoomCleaning, RoomMaintenance)
}

type Room struct {
	Base

	RoomNumber   string         `gorm:"column:room_number;uniqueIndex;type:varchar(50);not null" json:"roomNumber"`
	Type         string         `gorm:"column:type;size:32;index;not null" json:"type"`
	BasePrice    float64        `gorm:"column:base_price;not null" json:"basePrice"`
	WeekendPrice float64        `gorm:"column:weekend_price;not null" json:"weekendPrice"`
	HolidayPrice float64        `gorm:"column:holiday_price;not null" json:"holidayPrice"`
	Status       string         `gorm:"column:status;size:32;index;not null" json:"status"`
	Amenities    datatypes.JSON `gorm:"column:amenities" json:"amenities"`
	Capacity     int            `gorm:"column:capacity;not null" json:"capacity"`
	Images       datatypes.JSON `gorm:"column:images" json:"images"`
}

// StringList encodes values as a JSON array column; nil becomes [].
func StringList(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(raw)
}

// Strings decodes a JSON array column written by StringList.
func Strings(raw datatypes.JSON) []string {
	out := []string{}
	if len(raw) == 0 {
		return out
	}
	_ = json.Unmarshal(raw, &out)
	return out
}
