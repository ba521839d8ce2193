package models

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

const (
	TaskPending    = "pending"
	TaskInProgress = "in-progress"
	TaskCompleted  = "completed"
)

func IsValidTaskPriority(p string) bool {
	return oneOf(p, PriorityLow, PriorityMedium, PriorityHigh)
}

func IsValidTaskStatus(s string) bool {
	return oneOf(s, TaskPending, TaskInProgress, TaskCompleted)
}

// MaintenanceTask is a repair job on a room. ReportedBy is free text or the reporting user's id.
type MaintenanceTask struct {
	Base

	RoomID     string `gorm:"column:room_id;type:varchar(36);index;not null" json:"roomId"`
	Issue      string `gorm:"column:issue;size:255;not null" json:"issue"`
	Status     string `gorm:"column:status;size:32;index;not null" json:"status"`
	Priority   string `gorm:"column:priority;size:16;index;not null" json:"priority"`
	ReportedBy string `gorm:"column:reported_by;size:150;index" json:"reportedBy"`
	AssignedTo string `gorm:"column:assigned_to;size:150" json:"assignedTo"`
	Notes      string `gorm:"column:notes;type:text" json:"notes"`

	Room *Room `gorm:"foreignKey:RoomID;references:ID" json:"-"`
}
