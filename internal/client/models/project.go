package models

// ProjectStatus values as the server defines them.
type ProjectStatus string

const (
	ProjectInProgress ProjectStatus = "IN_PROGRESS"
	ProjectCompleted  ProjectStatus = "COMPLETED"
	ProjectCancelled  ProjectStatus = "CANCELLED"
)

// Project is a CRM project, optionally linked to a client contact.
type Project struct {
	ID             int64         `json:"id"`
	Name           string        `json:"name"`
	Description    string        `json:"description,omitempty"`
	StartDate      string        `json:"start_date,omitempty"`
	EndDate        string        `json:"end_date,omitempty"`
	Status         ProjectStatus `json:"status"`
	ClientID       *int64        `json:"client_id,omitempty"`
	Client         *ContactRef   `json:"client,omitempty"`
	TasksCount     int           `json:"tasks_count,omitempty"`
	CompletedTasks int           `json:"completed_tasks,omitempty"`
	CreatedAt      string        `json:"created_at"`
	UpdatedAt      string        `json:"updated_at"`
}

// ProjectRef is the embedded short form other entities carry.
type ProjectRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CreateProjectRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	ClientID    *int64 `json:"client_id,omitempty"`
}

type UpdateProjectRequest struct {
	Name        string        `json:"name,omitempty"`
	Description string        `json:"description,omitempty"`
	StartDate   string        `json:"start_date,omitempty"`
	EndDate     string        `json:"end_date,omitempty"`
	Status      ProjectStatus `json:"status,omitempty" validate:"omitempty,oneof=IN_PROGRESS COMPLETED CANCELLED"`
	ClientID    *int64        `json:"client_id,omitempty"`
}
