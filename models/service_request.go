package models

const (
	ServiceFoodBeverage = "Food & Beverage"
	ServiceHousekeeping = "Housekeeping"
	ServiceMaintenance  = "Maintenance"
	ServiceWakeUpCall   = "Wake-up Call"
)

const (
	ServicePending    = "pending"
	ServiceProcessing = "processing"
	ServiceDelivered  = "delivered"
	ServiceCompleted  = "completed"
	ServiceCancelled  = "cancelled"
)

func IsValidServiceType(t string) bool {
	return oneOf(t, ServiceFoodBeverage, ServiceHousekeeping, ServiceMaintenance, ServiceWakeUpCall)
}

func IsValidServiceStatus(s string) bool {
	return oneOf(s, ServicePending, ServiceProcessing, ServiceDelivered, ServiceCompleted, ServiceCancelled)
}

// ServiceRequest is a guest ask (meals, cleaning, repairs, wake-up calls) tied to a room and optionally a booking.
type ServiceRequest struct {
	Base

	Type       string  `gorm:"column:type;size:32;index;not null" json:"type"`
	GuestID    string  `gorm:"column:guest_id;type:varchar(36);index;not null" json:"guestId"`
	RoomID     string  `gorm:"column:room_id;type:varchar(36);index;not null" json:"roomId"`
	BookingID  *string `gorm:"column:booking_id;type:varchar(36);index" json:"bookingId"`
	Item       string  `gorm:"column:item;size:255;not null" json:"item"`
	Quantity   int     `gorm:"column:quantity;not null" json:"quantity"`
	Price      float64 `gorm:"column:price;not null" json:"price"`
	Status     string  `gorm:"column:status;size:32;index;not null" json:"status"`
	Notes      string  `gorm:"column:notes;type:text" json:"notes"`
	AssignedTo *string `gorm:"column:assigned_to;type:varchar(36);index" json:"assignedTo"`

	Guest    *User `gorm:"foreignKey:GuestID;references:ID" json:"-"`
	Room     *Room `gorm:"foreignKey:RoomID;references:ID" json:"-"`
	Assignee *User `gorm:"foreignKey:AssignedTo;references:ID" json:"-"`
}

func (ServiceRequest) TableName() string {
	return "services"
}
