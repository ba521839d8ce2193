package services

import (
	"context"
	"strings"

	"hotel-management/models"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MaintenanceService struct {
	DB  *gorm.DB
	log *zap.Logger
}

func NewMaintenanceService(db *gorm.DB, log *zap.Logger) *MaintenanceService {
	return &MaintenanceService{DB: db, log: log.Named("maintenance")}
}

type CreateTaskInput struct {
	RoomID     string `json:"roomId" binding:"required"`
	Issue      string `json:"issue" binding:"required"`
	Priority   string `json:"priority"`
	ReportedBy string `json:"reportedBy"`
	AssignedTo string `json:"assignedTo"`
	Notes      string `json:"notes"`
}

type UpdateTaskInput struct {
	Status     *string `json:"status"`
	Priority   *string `json:"priority"`
	AssignedTo *string `json:"assignedTo"`
	Notes      *string `json:"notes"`
}

func (s *MaintenanceService) find(ctx context.Context, q *gorm.DB) ([]models.MaintenanceView, error) {
	var tasks []models.MaintenanceTask
	if err := q.WithContext(ctx).Preload("Room").Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, errors.Wrap(err, "list maintenance tasks")
	}
	views := make([]models.MaintenanceView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, models.NewMaintenanceView(t))
	}
	return views, nil
}

func (s *MaintenanceService) List(ctx context.Context, f MaintenanceFilter) ([]models.MaintenanceView, error) {
	return s.find(ctx, f.Apply(s.DB))
}

func (s *MaintenanceService) ListForRoom(ctx context.Context, roomID string) ([]models.MaintenanceView, error) {
	return s.find(ctx, s.DB.Where("room_id = ?", roomID))
}

// ListReportedBy returns the tasks a guest raised.
func (s *MaintenanceService) ListReportedBy(ctx context.Context, guestID string) ([]models.MaintenanceView, error) {
	return s.find(ctx, s.DB.Where("reported_by = ?", guestID))
}

func (s *MaintenanceService) Get(ctx context.Context, id string) (models.MaintenanceView, error) {
	if !models.IsValidID(id) {
		return models.MaintenanceView{}, notFound("Task not found")
	}
	var t models.MaintenanceTask
	err := s.DB.WithContext(ctx).Preload("Room").Where("id = ?", id).First(&t).Error
	if isRecordNotFound(err) {
		return models.MaintenanceView{}, notFound("Task not found")
	}
	if err != nil {
		return models.MaintenanceView{}, errors.Wrapf(err, "load task %s", id)
	}
	return models.NewMaintenanceView(t), nil
}

func (s *MaintenanceService) Create(ctx context.Context, in CreateTaskInput) (models.MaintenanceView, error) {
	roomID, err := s.roomID(ctx, in.RoomID)
	if err != nil {
		return models.MaintenanceView{}, err
	}

	task := models.MaintenanceTask{
		RoomID:     roomID,
		Issue:      strings.TrimSpace(in.Issue),
		Status:     models.TaskPending,
		Priority:   models.PriorityMedium,
		ReportedBy: in.ReportedBy,
		AssignedTo: in.AssignedTo,
		Notes:      in.Notes,
	}
	if in.Priority != "" {
		if !models.IsValidTaskPriority(in.Priority) {
			return models.MaintenanceView{}, invalidf("Invalid priority: %s", in.Priority)
		}
		task.Priority = in.Priority
	}

	if err := s.DB.WithContext(ctx).Create(&task).Error; err != nil {
		return models.MaintenanceView{}, errors.Wrap(err, "create task")
	}

	s.log.Info("maintenance task created",
		zap.String("task_id", task.ID),
		zap.String("room_id", task.RoomID),
		zap.String("priority", task.Priority),
	)
	return s.Get(ctx, task.ID)
}

// roomID accepts a room id or a room number.
func (s *MaintenanceService) roomID(ctx context.Context, ref string) (string, error) {
	var room models.Room
	q := s.DB.WithContext(ctx).Select("id")
	if models.IsValidID(ref) {
		q = q.Where("id = ?", ref)
	} else if number, ok := RoomNumberFromRef(ref); ok {
		q = q.Where("room_number = ?", number)
	} else {
		return "", invalidf("Invalid room ID format: %s", ref)
	}

	err := q.First(&room).Error
	if isRecordNotFound(err) {
		return "", notFound("Room not found")
	}
	if err != nil {
		return "", errors.Wrap(err, "lookup room")
	}
	return room.ID, nil
}

func (s *MaintenanceService) Update(ctx context.Context, id string, in UpdateTaskInput) (models.MaintenanceView, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return models.MaintenanceView{}, err
	}

	updates := map[string]interface{}{}
	if in.Status != nil && *in.Status != "" {
		if !models.IsValidTaskStatus(*in.Status) {
			return models.MaintenanceView{}, invalidf("Invalid status: %s", *in.Status)
		}
		updates["status"] = *in.Status
	}
	if in.Priority != nil && *in.Priority != "" {
		if !models.IsValidTaskPriority(*in.Priority) {
			return models.MaintenanceView{}, invalidf("Invalid priority: %s", *in.Priority)
		}
		updates["priority"] = *in.Priority
	}
	if in.AssignedTo != nil && *in.AssignedTo != "" {
		updates["assigned_to"] = *in.AssignedTo
	}
	if in.Notes != nil {
		updates["notes"] = *in.Notes
	}

	if len(updates) > 0 {
		if err := s.DB.WithContext(ctx).Model(&models.MaintenanceTask{}).Where("id = ?", id).
			Updates(updates).Error; err != nil {
			return models.MaintenanceView{}, errors.Wrap(err, "update task")
		}
	}
	return s.Get(ctx, id)
}

func (s *MaintenanceService) Delete(ctx context.Context, id string) error {
	if !models.IsValidID(id) {
		return notFound("Task not found")
	}
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.MaintenanceTask{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete task")
	}
	if res.RowsAffected == 0 {
		return notFound("Task not found")
	}
	return nil
}
