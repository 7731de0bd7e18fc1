package types

// TaskStatus is the state of an asynchronous InstaWP task
type TaskStatus string

const (
	// TaskStatusProgress is reported while the task is still running
	TaskStatusProgress TaskStatus = "progress"
	// TaskStatusCompleted is reported when the task finished successfully
	TaskStatusCompleted TaskStatus = "completed"
	// TaskStatusFailed is reported when the task gave up
	TaskStatusFailed TaskStatus = "failed"
)

// IsInProgress reports whether the task still has to be polled
func (s TaskStatus) IsInProgress() bool {
	return s == TaskStatusProgress
}

// IsSuccess reports whether the task finished successfully
func (s TaskStatus) IsSuccess() bool {
	return s == TaskStatusCompleted
}

func (s TaskStatus) String() string {
	return string(s)
}

// TaskStatusResponse is the envelope returned by GET /tasks/{id}/status
type TaskStatusResponse struct {
	Status  bool      `json:"status"`
	Message string    `json:"message"`
	Data    *TaskData `json:"data"`
}

// TaskData describes one InstaWP task
// Example: {"id":7,"type":"create_site","status":"progress","percentage_complete":"40"}
type TaskData struct {
	ID                 int        `json:"id"`
	TeamID             int        `json:"team_id"`
	UserID             int        `json:"user_id"`
	Type               string     `json:"type"`
	Comment            *string    `json:"comment"`
	CloudTaskID        string     `json:"cloud_task_id"`
	ResourceID         int        `json:"resource_id"`
	ResourceType       string     `json:"resource_type"`
	PercentageComplete string     `json:"percentage_complete"`
	Status             TaskStatus `json:"status"`
	TimeoutAt          string     `json:"timeout_at"`
	TaskMeta           *string    `json:"task_meta"`
	CreatedAt          string     `json:"created_at"`
	UpdatedAt          string     `json:"updated_at"`
}
