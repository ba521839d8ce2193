package services

import (
	"context"
	"testing"

	"hotel-management/models"
	"hotel-management/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func ptr[T any](v T) *T { return &v }

func TestUserServiceCreateAndPassword(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	svc := NewUserService(db, zap.NewNop())

	_, err := svc.Create(ctx, CreateUserInput{Username: "frontdesk"})
	require.ErrorIs(t, err, ErrValidation)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Missing required fields", verr.Msg)
	assert.Equal(t, map[string]string{
		"username": "provided",
		"email":    "missing",
		"password": "missing",
		"role":     "missing",
	}, verr.Details)

	u, err := svc.Create(ctx, CreateUserInput{
		Username: " frontdesk ",
		Email:    "Desk@Hotel.Example",
		Password: "s3cret!",
		Role:     models.RoleReceptionist,
		FullName: "Front Desk",
	})
	require.NoError(t, err)
	assert.Equal(t, "frontdesk", u.Username)
	assert.Equal(t, "desk@hotel.example", u.Email)
	assert.True(t, u.IsActive)
	require.NotNil(t, u.JoiningDate)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("s3cret!")))

	_, err = svc.Create(ctx, CreateUserInput{Username: "other", Email: "desk@hotel.example", Password: "x", Role: models.RoleGuest})
	require.ErrorIs(t, err, ErrConflict)
	assert.EqualError(t, err, "User already exists")

	err = svc.ChangePassword(ctx, u.ID, ChangePasswordInput{CurrentPassword: "wrong", NewPassword: "n3wpass"})
	assert.EqualError(t, err, "Current password is incorrect")

	require.NoError(t, svc.ChangePassword(ctx, u.ID, ChangePasswordInput{CurrentPassword: "s3cret!", NewPassword: "n3wpass"}))
	reloaded, err := svc.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(reloaded.Password), []byte("n3wpass")))
}

func TestUserServiceUpdateListDelete(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	svc := NewUserService(db, zap.NewNop())

	guest, err := svc.Create(ctx, CreateUserInput{Username: "g1", Email: "g1@example.com", Password: "pw", Role: models.RoleGuest})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateUserInput{Username: "hk", Email: "hk@example.com", Password: "pw", Role: models.RoleHousekeeping})
	require.NoError(t, err)

	guests, err := svc.List(ctx, UserFilter{Role: models.RoleGuest})
	require.NoError(t, err)
	require.Len(t, guests, 1)
	assert.Equal(t, "g1", guests[0].Username)

	updated, err := svc.Update(ctx, guest.ID, UpdateUserInput{
		FullName: ptr("Guest One"),
		Address:  ptr(""),
		IsActive: ptr(false),
		Phone:    ptr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "Guest One", updated.FullName)
	assert.False(t, updated.IsActive)

	_, err = svc.Update(ctx, guest.ID, UpdateUserInput{Role: ptr("owner")})
	assert.ErrorIs(t, err, ErrValidation)

	require.NoError(t, svc.Delete(ctx, guest.ID))
	_, err = svc.Get(ctx, guest.ID)
	require.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "User not found")
	assert.ErrorIs(t, svc.Delete(ctx, "garbage"), ErrNotFound)
}

func TestRoomServiceCRUDAndFilters(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	svc := NewRoomService(db, zap.NewNop())

	_, err := svc.Create(ctx, CreateRoomInput{RoomNumber: "101"})
	require.ErrorIs(t, err, ErrValidation)

	std, err := svc.Create(ctx, CreateRoomInput{
		RoomNumber: " 101 ", BasePrice: ptr(100.0), WeekendPrice: ptr(120.0), HolidayPrice: ptr(150.0),
		Amenities: []string{"wifi", "tv"},
	})
	require.NoError(t, err)
	assert.Equal(t, "101", std.RoomNumber)
	assert.Equal(t, models.RoomTypeStandard, std.Type)
	assert.Equal(t, models.RoomAvailable, std.Status)
	assert.Equal(t, 2, std.Capacity)
	assert.Equal(t, []string{"wifi", "tv"}, models.Strings(std.Amenities))

	_, err = svc.Create(ctx, CreateRoomInput{RoomNumber: "101", BasePrice: ptr(1.0), WeekendPrice: ptr(1.0), HolidayPrice: ptr(1.0)})
	require.ErrorIs(t, err, ErrConflict)
	assert.EqualError(t, err, "Room with this number already exists")

	suite, err := svc.Create(ctx, CreateRoomInput{
		RoomNumber: "301", Type: models.RoomTypeSuite, BasePrice: ptr(400.0), WeekendPrice: ptr(450.0), HolidayPrice: ptr(500.0), Capacity: 4,
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateRoomInput{
		RoomNumber: "201", Type: models.RoomTypeDeluxe, BasePrice: ptr(250.0), WeekendPrice: ptr(280.0), HolidayPrice: ptr(300.0),
	})
	require.NoError(t, err)

	all, err := svc.List(ctx, RoomFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"101", "201", "301"}, []string{all[0].RoomNumber, all[1].RoomNumber, all[2].RoomNumber})

	mid, err := svc.List(ctx, RoomFilter{MinPrice: ptr(200), MaxPrice: ptr(400)})
	require.NoError(t, err)
	assert.Len(t, mid, 2)

	suites, err := svc.List(ctx, RoomFilter{Type: models.RoomTypeSuite, Status: models.RoomAvailable})
	require.NoError(t, err)
	require.Len(t, suites, 1)
	assert.Equal(t, suite.ID, suites[0].ID)

	updated, err := svc.Update(ctx, std.ID, UpdateRoomInput{Status: ptr(models.RoomMaintenance), Amenities: &[]string{"minibar"}})
	require.NoError(t, err)
	assert.Equal(t, models.RoomMaintenance, updated.Status)
	assert.Equal(t, []string{"minibar"}, models.Strings(updated.Amenities))

	_, err = svc.Update(ctx, std.ID, UpdateRoomInput{RoomNumber: ptr("301")})
	assert.ErrorIs(t, err, ErrConflict)

	require.NoError(t, svc.Delete(ctx, std.ID))
	_, err = svc.Get(ctx, std.ID)
	assert.EqualError(t, err, "Room not found")
}

func TestRoomServiceListForGuest(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	rooms := NewRoomService(db, zap.NewNop())

	a := seedRoom(t, db, "101", models.RoomOccupied)
	b := seedRoom(t, db, "102", models.RoomAvailable)
	c := seedRoom(t, db, "103", models.RoomAvailable)
	guest := seedGuest(t, db, "nora")

	for _, bk := range []models.Booking{
		{RoomID: a.ID, GuestID: guest.ID, Status: models.BookingCheckedIn},
		{RoomID: b.ID, GuestID: guest.ID, Status: models.BookingConfirmed},
		{RoomID: c.ID, GuestID: guest.ID, Status: models.BookingCheckedOut},
	} {
		bk := bk
		bk.CheckIn = mustDate(t, "2024-06-01")
		bk.CheckOut = mustDate(t, "2024-06-03")
		bk.PaymentStatus = models.PaymentPending
		bk.BookingSource = models.SourceWalkIn
		bk.NumberOfGuests = 1
		require.NoError(t, db.Create(&bk).Error)
	}

	held, err := rooms.ListForGuest(ctx, guest.ID)
	require.NoError(t, err)
	require.Len(t, held, 2)
	assert.Equal(t, "101", held[0].RoomNumber)
	assert.Equal(t, "102", held[1].RoomNumber)

	none, err := rooms.ListForGuest(ctx, "not-a-guest")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestServiceRequestLifecycle(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	svc := NewServiceRequestService(db, zap.NewNop())

	room := seedRoom(t, db, "110", models.RoomOccupied)
	guest := seedGuest(t, db, "oscar")
	staff := seedGuest(t, db, "paula")

	_, err := svc.Create(ctx, CreateServiceInput{Type: "Spa", GuestID: guest.ID, RoomID: room.ID, Item: "massage"})
	assert.ErrorIs(t, err, ErrValidation)

	sr, err := svc.Create(ctx, CreateServiceInput{
		Type: models.ServiceFoodBeverage, GuestID: guest.ID, RoomID: room.ID, Item: "Club sandwich",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, sr.Quantity)
	assert.Zero(t, sr.Price)
	assert.Equal(t, models.ServicePending, sr.Status)
	require.NotNil(t, sr.Guest)
	assert.Equal(t, "oscar", sr.Guest.Username)
	require.NotNil(t, sr.Room)
	assert.Equal(t, "110", sr.Room.RoomNumber)
	assert.Nil(t, sr.AssignedTo)
	assert.Nil(t, sr.AssignedToID)

	updated, err := svc.Update(ctx, sr.ID, UpdateServiceInput{
		Status: ptr(models.ServiceDelivered), AssignedTo: ptr(staff.ID), Price: ptr(0.0),
	})
	require.NoError(t, err)
	assert.Equal(t, models.ServiceDelivered, updated.Status)
	require.NotNil(t, updated.AssignedTo)
	assert.Equal(t, "paula", updated.AssignedTo.Username)
	require.NotNil(t, updated.AssignedToID)
	assert.Equal(t, staff.ID, *updated.AssignedToID)

	require.NoError(t, db.Where("id = ?", staff.ID).Delete(&models.User{}).Error)
	orphaned, err := svc.Get(ctx, sr.ID)
	require.NoError(t, err)
	assert.Nil(t, orphaned.AssignedTo)
	require.NotNil(t, orphaned.AssignedToID)
	assert.Equal(t, staff.ID, *orphaned.AssignedToID)

	pending, err := svc.List(ctx, ServiceFilter{Status: models.ServicePending})
	require.NoError(t, err)
	assert.Empty(t, pending)

	mine, err := svc.List(ctx, ServiceFilter{GuestID: guest.ID, RoomID: room.ID})
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	require.NoError(t, svc.Delete(ctx, sr.ID))
	_, err = svc.Get(ctx, sr.ID)
	assert.EqualError(t, err, "Service request not found")
}

func TestInventoryServiceStatus(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	svc := NewInventoryService(db, zap.NewNop())

	towels, err := svc.Create(ctx, InventoryInput{Name: ptr("Towels")})
	require.NoError(t, err)
	assert.Equal(t, 0, towels.Stock)
	assert.Equal(t, models.DefaultLowThreshold, towels.LowThreshold)
	assert.Equal(t, models.DefaultCriticalThreshold, towels.CriticalThreshold)
	assert.Equal(t, models.StockCritical, towels.Status)

	towels, err = svc.Update(ctx, towels.ID, InventoryInput{Stock: ptr(30)})
	require.NoError(t, err)
	assert.Equal(t, models.StockLow, towels.Status)

	towels, err = svc.Update(ctx, towels.ID, InventoryInput{Stock: ptr(60)})
	require.NoError(t, err)
	assert.Equal(t, models.StockSufficient, towels.Status)

	towels, err = svc.Update(ctx, towels.ID, InventoryInput{LowThreshold: ptr(80)})
	require.NoError(t, err)
	assert.Equal(t, models.StockLow, towels.Status)

	_, err = svc.Update(ctx, towels.ID, InventoryInput{Stock: ptr(-1)})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, InventoryInput{Name: ptr("Towels")})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.Create(ctx, InventoryInput{})
	assert.ErrorIs(t, err, ErrValidation)

	require.NoError(t, svc.Delete(ctx, towels.ID))
	assert.EqualError(t, svc.Delete(ctx, towels.ID), "Item not found")
}

func TestStockAuditRepairsStatuses(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	inv := NewInventoryService(db, zap.NewNop())

	soap, err := inv.Create(ctx, InventoryInput{Name: ptr("Soap"), Stock: ptr(100)})
	require.NoError(t, err)
	_, err = inv.Create(ctx, InventoryInput{Name: ptr("Shampoo"), Stock: ptr(5)})
	require.NoError(t, err)

	// stock drained outside the API
	require.NoError(t, db.Model(&models.Inventory{}).Where("id = ?", soap.ID).Update("stock", 3).Error)

	auditor := NewStockAuditor(inv, zap.NewNop())
	res := auditor.Run(ctx)
	assert.Equal(t, 2, res.Checked)
	assert.Equal(t, 1, res.Corrected)
	assert.Len(t, res.Critical, 2)

	var reloaded models.Inventory
	require.NoError(t, db.Where("id = ?", soap.ID).First(&reloaded).Error)
	assert.Equal(t, models.StockCritical, reloaded.Status)

	again := auditor.Run(ctx)
	assert.Zero(t, again.Corrected)

	require.Error(t, auditor.Start("every now and then"))
	require.NoError(t, auditor.Start(""))
	auditor.Stop()
}

func TestMaintenanceLifecycle(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	svc := NewMaintenanceService(db, zap.NewNop())

	room := seedRoom(t, db, "202", models.RoomAvailable)
	guest := seedGuest(t, db, "quinn")

	_, err := svc.Create(ctx, CreateTaskInput{RoomID: "999", Issue: "Leaky faucet"})
	require.ErrorIs(t, err, ErrNotFound)

	task, err := svc.Create(ctx, CreateTaskInput{RoomID: "202", Issue: "AC not cooling", ReportedBy: guest.ID})
	require.NoError(t, err)
	assert.Equal(t, room.ID, task.RoomID)
	assert.Equal(t, models.TaskPending, task.Status)
	assert.Equal(t, models.PriorityMedium, task.Priority)
	require.NotNil(t, task.Room)
	assert.Equal(t, "202", task.Room.RoomNumber)

	_, err = svc.Create(ctx, CreateTaskInput{RoomID: room.ID, Issue: "Broken lock", Priority: "urgent"})
	assert.ErrorIs(t, err, ErrValidation)

	updated, err := svc.Update(ctx, task.ID, UpdateTaskInput{Status: ptr(models.TaskInProgress), AssignedTo: ptr("Maintenance crew")})
	require.NoError(t, err)
	assert.Equal(t, models.TaskInProgress, updated.Status)
	assert.Equal(t, "Maintenance crew", updated.AssignedTo)

	byRoom, err := svc.ListForRoom(ctx, room.ID)
	require.NoError(t, err)
	assert.Len(t, byRoom, 1)

	byGuest, err := svc.ListReportedBy(ctx, guest.ID)
	require.NoError(t, err)
	assert.Len(t, byGuest, 1)

	high, err := svc.List(ctx, MaintenanceFilter{Priority: models.PriorityHigh})
	require.NoError(t, err)
	assert.Empty(t, high)

	_, err = svc.Update(ctx, "5b7c2f1e-0000-4000-8000-000000000000", UpdateTaskInput{Status: ptr(models.TaskCompleted)})
	assert.EqualError(t, err, "Task not found")

	require.NoError(t, svc.Delete(ctx, task.ID))
	assert.ErrorIs(t, svc.Delete(ctx, task.ID), ErrNotFound)
}
