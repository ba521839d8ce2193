package services

import (
	"context"
	"strings"

	"hotel-management/models"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ServiceRequestService struct {
	DB  *gorm.DB
	log *zap.Logger
}

func NewServiceRequestService(db *gorm.DB, log *zap.Logger) *ServiceRequestService {
	return &ServiceRequestService{DB: db, log: log.Named("services")}
}

type CreateServiceInput struct {
	Type      string   `json:"type" binding:"required"`
	GuestID   string   `json:"guestId" binding:"required"`
	RoomID    string   `json:"roomId" binding:"required"`
	BookingID string   `json:"bookingId"`
	Item      string   `json:"item" binding:"required"`
	Quantity  int      `json:"quantity"`
	Price     *float64 `json:"price"`
	Notes     string   `json:"notes"`
}

type UpdateServiceInput struct {
	Status     *string  `json:"status"`
	AssignedTo *string  `json:"assignedTo"`
	Notes      *string  `json:"notes"`
	Price      *float64 `json:"price"`
}

func (s *ServiceRequestService) withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Guest").Preload("Room").Preload("Assignee")
}

func (s *ServiceRequestService) List(ctx context.Context, f ServiceFilter) ([]models.ServiceView, error) {
	var list []models.ServiceRequest
	q := f.Apply(s.withRelations(s.DB.WithContext(ctx)))
	if err := q.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, errors.Wrap(err, "list service requests")
	}

	views := make([]models.ServiceView, 0, len(list))
	for _, sr := range list {
		views = append(views, models.NewServiceView(sr))
	}
	return views, nil
}

func (s *ServiceRequestService) Get(ctx context.Context, id string) (models.ServiceView, error) {
	if !models.IsValidID(id) {
		return models.ServiceView{}, notFound("Service request not found")
	}
	var sr models.ServiceRequest
	err := s.withRelations(s.DB.WithContext(ctx)).Where("id = ?", id).First(&sr).Error
	if isRecordNotFound(err) {
		return models.ServiceView{}, notFound("Service request not found")
	}
	if err != nil {
		return models.ServiceView{}, errors.Wrapf(err, "load service request %s", id)
	}
	return models.NewServiceView(sr), nil
}

func (s *ServiceRequestService) Create(ctx context.Context, in CreateServiceInput) (models.ServiceView, error) {
	if !models.IsValidServiceType(in.Type) {
		return models.ServiceView{}, invalidf("Invalid service type: %s", in.Type)
	}
	if !models.IsValidID(in.GuestID) {
		return models.ServiceView{}, invalidf("Invalid guestId format: %s", in.GuestID)
	}
	if !models.IsValidID(in.RoomID) {
		return models.ServiceView{}, invalidf("Invalid roomId format: %s", in.RoomID)
	}

	sr := models.ServiceRequest{
		Type:     in.Type,
		GuestID:  in.GuestID,
		RoomID:   in.RoomID,
		Item:     strings.TrimSpace(in.Item),
		Quantity: 1,
		Status:   models.ServicePending,
		Notes:    in.Notes,
	}
	if in.BookingID != "" {
		if !models.IsValidID(in.BookingID) {
			return models.ServiceView{}, invalidf("Invalid bookingId format: %s", in.BookingID)
		}
		bookingID := in.BookingID
		sr.BookingID = &bookingID
	}
	if in.Quantity > 0 {
		sr.Quantity = in.Quantity
	}
	if in.Price != nil {
		sr.Price = *in.Price
	}

	if err := s.DB.WithContext(ctx).Create(&sr).Error; err != nil {
		return models.ServiceView{}, errors.Wrap(err, "create service request")
	}

	s.log.Info("service request created", zap.String("service_id", sr.ID), zap.String("type", sr.Type))
	return s.Get(ctx, sr.ID)
}

func (s *ServiceRequestService) Update(ctx context.Context, id string, in UpdateServiceInput) (models.ServiceView, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return models.ServiceView{}, err
	}

	updates := map[string]interface{}{}
	if in.Status != nil && *in.Status != "" {
		if !models.IsValidServiceStatus(*in.Status) {
			return models.ServiceView{}, invalidf("Invalid status: %s", *in.Status)
		}
		updates["status"] = *in.Status
	}
	if in.AssignedTo != nil && *in.AssignedTo != "" {
		if !models.IsValidID(*in.AssignedTo) {
			return models.ServiceView{}, invalidf("Invalid assignedTo format: %s", *in.AssignedTo)
		}
		updates["assigned_to"] = *in.AssignedTo
	}
	if in.Notes != nil && *in.Notes != "" {
		updates["notes"] = *in.Notes
	}
	if in.Price != nil {
		updates["price"] = *in.Price
	}

	if len(updates) > 0 {
		if err := s.DB.WithContext(ctx).Model(&models.ServiceRequest{}).Where("id = ?", id).
			Updates(updates).Error; err != nil {
			return models.ServiceView{}, errors.Wrap(err, "update service request")
		}
	}
	return s.Get(ctx, id)
}

func (s *ServiceRequestService) Delete(ctx context.Context, id string) error {
	if !models.IsValidID(id) {
		return notFound("Service request not found")
	}
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.ServiceRequest{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete service request")
	}
	if res.RowsAffected == 0 {
		return notFound("Service request not found")
	}
	return nil
}
