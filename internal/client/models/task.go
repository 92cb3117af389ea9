package models

// TaskStatus is the two-state completion flag used by the toggle.
type TaskStatus string

const (
	TaskPending   TaskStatus = "PENDING"
	TaskCompleted TaskStatus = "COMPLETED"
)

// TaskPriority levels as the server defines them.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
)

// Task is a CRM task, optionally linked to a contact and a project.
type Task struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	DueDate     string       `json:"due_date,omitempty"`
	Priority    TaskPriority `json:"priority"`
	Status      TaskStatus   `json:"status"`
	ContactID   *int64       `json:"contact_id,omitempty"`
	ProjectID   *int64       `json:"project_id,omitempty"`
	Contact     *ContactRef  `json:"contact,omitempty"`
	Project     *ProjectRef  `json:"project,omitempty"`
	CreatedAt   string       `json:"created_at"`
	UpdatedAt   string       `json:"updated_at"`
}

type CreateTaskRequest struct {
	Title       string       `json:"title" validate:"required"`
	Description string       `json:"description,omitempty"`
	DueDate     string       `json:"due_date,omitempty"`
	Priority    TaskPriority `json:"priority" validate:"required,oneof=LOW MEDIUM HIGH"`
	ContactID   *int64       `json:"contact_id,omitempty"`
	ProjectID   *int64       `json:"project_id,omitempty"`
}

type UpdateTaskRequest struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	DueDate     string       `json:"due_date,omitempty"`
	Priority    TaskPriority `json:"priority,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	Status      TaskStatus   `json:"status,omitempty" validate:"omitempty,oneof=PENDING COMPLETED"`
	ContactID   *int64       `json:"contact_id,omitempty"`
	ProjectID   *int64       `json:"project_id,omitempty"`
}

// Pagination is the metadata block the task list endpoint returns. The
// client trusts these fields verbatim for paging controls.
type Pagination struct {
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	PageSize    int  `json:"page_size"`
	TotalItems  int  `json:"total_items"`
	HasNext     bool `json:"has_next"`
	HasPrev     bool `json:"has_prev"`
}

// TaskList is the typed /tasks/list payload.
type TaskList struct {
	Tasks      []Task     `json:"tasks"`
	TotalTasks int        `json:"total_tasks"`
	Pagination Pagination `json:"pagination"`
}
