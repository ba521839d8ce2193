package models

// Response projections. Summaries carry only what list screens render.

type RoomSummary struct {
	ID         string   `json:"id"`
	RoomNumber string   `json:"roomNumber"`
	Type       string   `json:"type"`
	BasePrice  float64  `json:"basePrice"`
	Status     string   `json:"status"`
	Amenities  []string `json:"amenities"`
}

type GuestSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type BookingView struct {
	Booking

	Room      *RoomSummary  `json:"room"`
	Guest     *GuestSummary `json:"guest"`
	GuestName string        `json:"guestName"`
	Phone     string        `json:"phone"`
}

type ServiceView struct {
	ServiceRequest

	Guest      *GuestSummary `json:"guest"`
	Room       *RoomSummary  `json:"room"`
	AssignedTo *GuestSummary `json:"assignedTo"`
	// stored assignee id, kept when the user row is gone
	AssignedToID *string `json:"assignedToId"`
}

type MaintenanceView struct {
	MaintenanceTask

	Room *RoomSummary `json:"room"`
}

func SummarizeRoom(r *Room) *RoomSummary {
	if r == nil || r.ID == "" {
		return nil
	}
	return &RoomSummary{
		ID:         r.ID,
		RoomNumber: r.RoomNumber,
		Type:       r.Type,
		BasePrice:  r.BasePrice,
		Status:     r.Status,
		Amenities:  Strings(r.Amenities),
	}
}

func SummarizeUser(u *User) *GuestSummary {
	if u == nil || u.ID == "" {
		return nil
	}
	return &GuestSummary{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Email:    u.Email,
		Phone:    u.Phone,
	}
}

// DisplayName prefers the full name and falls back to the username.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

func NewBookingView(b Booking) BookingView {
	v := BookingView{
		Booking: b,
		Room:    SummarizeRoom(b.Room),
		Guest:   SummarizeUser(b.Guest),
	}
	if b.Guest != nil && b.Guest.ID != "" {
		v.GuestName = b.Guest.DisplayName()
		v.Phone = b.Guest.Phone
	}
	return v
}

func NewServiceView(s ServiceRequest) ServiceView {
	return ServiceView{
		ServiceRequest: s,
		Guest:          SummarizeUser(s.Guest),
		Room:           SummarizeRoom(s.Room),
		AssignedTo:     SummarizeUser(s.Assignee),
		AssignedToID:   s.AssignedTo,
	}
}

func NewMaintenanceView(t MaintenanceTask) MaintenanceView {
	return MaintenanceView{
		MaintenanceTask: t,
		Room:            SummarizeRoom(t.Room),
	}
}
